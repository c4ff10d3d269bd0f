package jvmti

import (
	"sync"
	"unsafe"

	"github.com/tinyrange/jni"
	"github.com/tinyrange/jni/internal/handles"
	"github.com/tinyrange/jni/internal/native"
)

// ---- Raw monitors ----

// RawMonitor is a jrawMonitorID.
type RawMonitor uintptr

func (e Env) CreateRawMonitor(name string) (RawMonitor, error) {
	var m RawMonitor
	err := e.call(fnCreateRawMonitor, uintptr(unsafe.Pointer(cstr(name))), uintptr(unsafe.Pointer(&m)))
	return m, err
}

func (e Env) DestroyRawMonitor(m RawMonitor) error {
	return e.call(fnDestroyRawMonitor, uintptr(m))
}

func (e Env) RawMonitorEnter(m RawMonitor) error {
	return e.call(fnRawMonitorEnter, uintptr(m))
}

func (e Env) RawMonitorExit(m RawMonitor) error {
	return e.call(fnRawMonitorExit, uintptr(m))
}

// RawMonitorWait waits for a notification or until millis have passed. Zero
// waits forever.
func (e Env) RawMonitorWait(m RawMonitor, millis int64) error {
	return e.call(fnRawMonitorWait, uintptr(m), uintptr(millis))
}

func (e Env) RawMonitorNotify(m RawMonitor) error {
	return e.call(fnRawMonitorNotify, uintptr(m))
}

func (e Env) RawMonitorNotifyAll(m RawMonitor) error {
	return e.call(fnRawMonitorNotifyAll, uintptr(m))
}

// ---- Agent threads ----

// Thread priorities for RunAgentThread.
const (
	ThreadMinPriority  int32 = 1
	ThreadNormPriority int32 = 5
	ThreadMaxPriority  int32 = 10
)

// AgentFunc is the body of an agent thread.
type AgentFunc func(env Env, jniEnv jni.Env)

// agentFuncs holds the bodies of agent threads that have not started yet,
// owned by the Env that launched them.
var agentFuncs handles.Table[AgentFunc]

// agentStart is the single jvmtiStartFunction shared by every agent
// thread. Its arg is an agentFuncs token.
var agentStart = sync.OnceValue(func() uintptr {
	return native.Callback(func(env, jniEnv, arg uintptr) uintptr {
		fn, ok := agentFuncs.Take(arg)
		if ok {
			fn(Env(env), jni.Env(jniEnv))
		}
		return 0
	})
})

// RunAgentThread starts fn on thread, a java.lang.Thread that has not been
// started. The thread is a daemon and is already attached when fn runs.
func (e Env) RunAgentThread(thread jni.Object, fn AgentFunc, priority int32) error {
	if fn == nil {
		return ErrNullPointer
	}
	h := agentFuncs.Put(uintptr(e), fn)
	err := e.call(fnRunAgentThread, uintptr(thread), agentStart(), h, uintptr(priority))
	if err != nil {
		agentFuncs.Take(h)
	}
	return err
}

// ---- Environment local storage ----

// localStorage holds the values behind each Env's local storage pointer.
// DisposeEnvironment releases everything the Env owns.
var localStorage handles.Table[any]

func (e Env) storageHandle() (uintptr, error) {
	var h uintptr
	err := e.call(fnGetEnvironmentLocalStorage, uintptr(unsafe.Pointer(&h)))
	return h, err
}

// GetEnvironmentLocalStorage returns the value stored with
// SetEnvironmentLocalStorage, or nil.
func (e Env) GetEnvironmentLocalStorage() (any, error) {
	h, err := e.storageHandle()
	if err != nil || h == 0 {
		return nil, err
	}
	v, _ := localStorage.Get(h)
	return v, nil
}

// SetEnvironmentLocalStorage associates v with e, replacing any previous
// value. A nil v clears it.
func (e Env) SetEnvironmentLocalStorage(v any) error {
	old, err := e.storageHandle()
	if err != nil {
		return err
	}
	var h uintptr
	if v != nil {
		h = localStorage.Put(uintptr(e), v)
	}
	if err := e.call(fnSetEnvironmentLocalStorage, h); err != nil {
		if h != 0 {
			localStorage.Take(h)
		}
		return err
	}
	if old != 0 {
		localStorage.Take(old)
	}
	return nil
}
