//go:build !jni_prelinked

package jni

import "testing"

func TestInitLinkNullPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("InitLink(0, 0) did not panic")
		}
	}()
	InitLink(0, 0)
}
