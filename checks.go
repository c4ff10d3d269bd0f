package jni

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tinyrange/jni/internal/native"
)

// ErrCheckedJNIConflict is returned by CreateJavaVM in checked builds when
// the options ask the JVM for -Xcheck:jni as well.
var ErrCheckedJNIConflict = errors.New("jni: checked build cannot be combined with -Xcheck:jni")

// envOwners maps each Env this package handed out to the OS thread it was
// obtained on. Only populated in checked builds.
var envOwners sync.Map

func trackEnv(env Env) {
	if !checksEnabled || env == 0 {
		return
	}
	envOwners.Store(env, native.ThreadID())
}

func untrackThread() {
	if !checksEnabled {
		return
	}
	tid := native.ThreadID()
	envOwners.Range(func(k, v any) bool {
		if v.(uint64) == tid {
			envOwners.Delete(k)
		}
		return true
	})
}

// onThread panics if e is used away from the thread that owns it. Envs
// obtained outside this package, e.g. passed to a native method, are not
// checked.
func (e Env) onThread(fn string) {
	if !checksEnabled {
		return
	}
	owner, ok := envOwners.Load(e)
	if !ok {
		return
	}
	if tid := native.ThreadID(); owner.(uint64) != tid {
		slog.Error("jni: Env used from the wrong thread", "func", fn, "owner", owner, "thread", tid)
		panic(fmt.Sprintf("jni: %s: Env belongs to thread %d, called from thread %d", fn, owner, tid))
	}
}

// checked is onThread plus a pending exception check. Functions the JNI
// allows while an exception is pending only call onThread.
func (e Env) checked(fn string) {
	if !checksEnabled {
		return
	}
	e.onThread(fn)
	if native.Bool(native.CallSlot(uintptr(e), slotExceptionCheck)) {
		slog.Error("jni: call with a pending exception", "func", fn)
		panic(fmt.Sprintf("jni: %s called with a pending Java exception", fn))
	}
}
