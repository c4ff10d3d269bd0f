//go:build jni_checks

package jni

import (
	"errors"
	"runtime"
	"strings"
	"testing"
)

func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic mentioning %q", want)
		}
		if msg, _ := r.(string); !strings.Contains(msg, want) {
			t.Fatalf("panic %v does not mention %q", r, want)
		}
	}()
	fn()
}

func TestCheckedPendingException(t *testing.T) {
	withEnv(t, func(env Env) {
		rte := env.FindClass("java/lang/RuntimeException")
		env.ThrowNew(rte, "pending")
		expectPanic(t, "FindClass", func() {
			env.FindClass("java/lang/String")
		})
		// Exception functions stay usable while one is pending.
		if !env.ExceptionCheck() {
			t.Fatalf("exception was lost")
		}
		env.ExceptionClear()
	})
}

func TestCheckedWrongThread(t *testing.T) {
	withEnv(t, func(env Env) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			expectPanic(t, "belongs to thread", func() {
				env.GetVersion()
			})
		}()
		<-done
	})
}

func TestCheckedRejectsXcheckJNI(t *testing.T) {
	requireJVM(t)
	_, _, err := CreateJavaVMWithOptions(Version1_8, []string{"-Xcheck:jni"}, false)
	if !errors.Is(err, ErrCheckedJNIConflict) {
		t.Fatalf("CreateJavaVMWithOptions(-Xcheck:jni) = %v, want ErrCheckedJNIConflict", err)
	}
}
