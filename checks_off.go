//go:build !jni_checks

package jni

const checksEnabled = false
