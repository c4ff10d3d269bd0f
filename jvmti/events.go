package jvmti

import (
	"fmt"
	"unsafe"

	"github.com/tinyrange/jni"
	"github.com/tinyrange/jni/internal/native"
)

// Event is jvmtiEvent.
type Event int32

const (
	EventVMInit                  Event = 50
	EventVMDeath                 Event = 51
	EventThreadStart             Event = 52
	EventThreadEnd               Event = 53
	EventClassFileLoadHook       Event = 54
	EventClassLoad               Event = 55
	EventClassPrepare            Event = 56
	EventVMStart                 Event = 57
	EventException               Event = 58
	EventExceptionCatch          Event = 59
	EventSingleStep              Event = 60
	EventFramePop                Event = 61
	EventBreakpoint              Event = 62
	EventFieldAccess             Event = 63
	EventFieldModification       Event = 64
	EventMethodEntry             Event = 65
	EventMethodExit              Event = 66
	EventNativeMethodBind        Event = 67
	EventCompiledMethodLoad      Event = 68
	EventCompiledMethodUnload    Event = 69
	EventDynamicCodeGenerated    Event = 70
	EventDataDumpRequest         Event = 71
	EventMonitorWait             Event = 73
	EventMonitorWaited           Event = 74
	EventMonitorContendedEnter   Event = 75
	EventMonitorContendedEntered Event = 76
	EventResourceExhausted       Event = 80
	EventGarbageCollectionStart  Event = 81
	EventGarbageCollectionFinish Event = 82
	EventObjectFree              Event = 83
	EventVMObjectAlloc           Event = 84
	EventSampledObjectAlloc      Event = 86
	EventVirtualThreadStart      Event = 87
	EventVirtualThreadEnd        Event = 88
)

const (
	minEvent Event = 50
	maxEvent Event = 88
)

var eventNames = map[Event]string{
	EventVMInit:                  "VMInit",
	EventVMDeath:                 "VMDeath",
	EventThreadStart:             "ThreadStart",
	EventThreadEnd:               "ThreadEnd",
	EventClassFileLoadHook:       "ClassFileLoadHook",
	EventClassLoad:               "ClassLoad",
	EventClassPrepare:            "ClassPrepare",
	EventVMStart:                 "VMStart",
	EventException:               "Exception",
	EventExceptionCatch:          "ExceptionCatch",
	EventSingleStep:              "SingleStep",
	EventFramePop:                "FramePop",
	EventBreakpoint:              "Breakpoint",
	EventFieldAccess:             "FieldAccess",
	EventFieldModification:       "FieldModification",
	EventMethodEntry:             "MethodEntry",
	EventMethodExit:              "MethodExit",
	EventNativeMethodBind:        "NativeMethodBind",
	EventCompiledMethodLoad:      "CompiledMethodLoad",
	EventCompiledMethodUnload:    "CompiledMethodUnload",
	EventDynamicCodeGenerated:    "DynamicCodeGenerated",
	EventDataDumpRequest:         "DataDumpRequest",
	EventMonitorWait:             "MonitorWait",
	EventMonitorWaited:           "MonitorWaited",
	EventMonitorContendedEnter:   "MonitorContendedEnter",
	EventMonitorContendedEntered: "MonitorContendedEntered",
	EventResourceExhausted:       "ResourceExhausted",
	EventGarbageCollectionStart:  "GarbageCollectionStart",
	EventGarbageCollectionFinish: "GarbageCollectionFinish",
	EventObjectFree:              "ObjectFree",
	EventVMObjectAlloc:           "VMObjectAlloc",
	EventSampledObjectAlloc:      "SampledObjectAlloc",
	EventVirtualThreadStart:      "VirtualThreadStart",
	EventVirtualThreadEnd:        "VirtualThreadEnd",
}

func (ev Event) String() string {
	if name, ok := eventNames[ev]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int32(ev))
}

// EventCallbacks is jvmtiEventCallbacks: one C function pointer per event
// number from 50 to 88, including the reserved ones.
type EventCallbacks [maxEvent - minEvent + 1]uintptr

// Set installs fn as the handler for ev and reports whether ev is a known
// event. Use the New*Callback functions or native.Callback-compatible
// pointers from elsewhere.
func (c *EventCallbacks) Set(ev Event, fn uintptr) bool {
	if _, ok := eventNames[ev]; !ok {
		return false
	}
	c[ev-minEvent] = fn
	return true
}

// Get returns the handler installed for ev.
func (c *EventCallbacks) Get(ev Event) uintptr {
	if ev < minEvent || ev > maxEvent {
		return 0
	}
	return c[ev-minEvent]
}

// Events returns the events that have a handler.
func (c *EventCallbacks) Events() []Event {
	var out []Event
	for i, fn := range c {
		if fn != 0 {
			out = append(out, minEvent+Event(i))
		}
	}
	return out
}

// Callbacks are created once and never freed; the runtime only supports a
// limited number of them. Handlers run on JVM threads that are already
// attached.

// NewVMInitCallback converts fn into a VMInit handler.
func NewVMInitCallback(fn func(env Env, jniEnv jni.Env, thread jni.Object)) uintptr {
	if fn == nil {
		return 0
	}
	return native.Callback(func(env, jniEnv, thread uintptr) uintptr {
		fn(Env(env), jni.Env(jniEnv), jni.Object(thread))
		return 0
	})
}

// NewVMStartCallback converts fn into a VMStart handler.
func NewVMStartCallback(fn func(env Env, jniEnv jni.Env)) uintptr {
	if fn == nil {
		return 0
	}
	return native.Callback(func(env, jniEnv uintptr) uintptr {
		fn(Env(env), jni.Env(jniEnv))
		return 0
	})
}

// NewVMDeathCallback converts fn into a VMDeath handler.
func NewVMDeathCallback(fn func(env Env, jniEnv jni.Env)) uintptr {
	return NewVMStartCallback(fn)
}

// NewThreadCallback converts fn into a ThreadStart, ThreadEnd,
// VirtualThreadStart or VirtualThreadEnd handler.
func NewThreadCallback(fn func(env Env, jniEnv jni.Env, thread jni.Object)) uintptr {
	return NewVMInitCallback(fn)
}

// NewClassCallback converts fn into a ClassLoad or ClassPrepare handler.
func NewClassCallback(fn func(env Env, jniEnv jni.Env, thread jni.Object, class jni.Class)) uintptr {
	if fn == nil {
		return 0
	}
	return native.Callback(func(env, jniEnv, thread, class uintptr) uintptr {
		fn(Env(env), jni.Env(jniEnv), jni.Object(thread), jni.Class(class))
		return 0
	})
}

// NewMethodCallback converts fn into a MethodEntry handler.
func NewMethodCallback(fn func(env Env, jniEnv jni.Env, thread jni.Object, method jni.MethodID)) uintptr {
	if fn == nil {
		return 0
	}
	return native.Callback(func(env, jniEnv, thread, method uintptr) uintptr {
		fn(Env(env), jni.Env(jniEnv), jni.Object(thread), jni.MethodID(method))
		return 0
	})
}

// NewEnvCallback converts fn into a handler for events that only receive
// the JVMTI Env: GarbageCollectionStart, GarbageCollectionFinish and
// DataDumpRequest. Such handlers must not call JNI functions.
func NewEnvCallback(fn func(env Env)) uintptr {
	if fn == nil {
		return 0
	}
	return native.Callback(func(env uintptr) uintptr {
		fn(Env(env))
		return 0
	})
}

// NewObjectFreeCallback converts fn into an ObjectFree handler.
func NewObjectFreeCallback(fn func(env Env, tag int64)) uintptr {
	if fn == nil {
		return 0
	}
	return native.Callback(func(env uintptr, tag int64) uintptr {
		fn(Env(env), tag)
		return 0
	})
}

// ClassFileLoadHookFunc is called with the class file bytes the JVM is about
// to load. Returning a non-nil slice replaces the class file.
type ClassFileLoadHookFunc func(env Env, jniEnv jni.Env, redefined jni.Class, loader jni.Object, name string, data []byte) []byte

// NewClassFileLoadHookCallback converts fn into a ClassFileLoadHook
// handler. Replacement bytes are copied into memory from Env.Allocate as
// the JVM requires.
func NewClassFileLoadHookCallback(fn ClassFileLoadHookFunc) uintptr {
	if fn == nil {
		return 0
	}
	return native.Callback(func(env, jniEnv, redefined, loader, name, domain, dataLen, data, newLen, newData uintptr) uintptr {
		e := Env(env)
		out := fn(e, jni.Env(jniEnv), jni.Class(redefined), jni.Object(loader),
			decodeString(name), native.GoBytes(data, int(int32(dataLen))))
		if out == nil {
			return 0
		}
		mem, err := e.Allocate(int64(len(out)))
		if err != nil || mem == 0 {
			return 0
		}
		copy(unsafe.Slice((*byte)(unsafe.Pointer(mem)), len(out)), out)
		*(*int32)(unsafe.Pointer(newLen)) = int32(len(out))
		*(*uintptr)(unsafe.Pointer(newData)) = mem
		return 0
	})
}
