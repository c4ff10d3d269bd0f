package jvmti

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/tinyrange/jni"
)

var testJVM = sync.OnceValues(func() (jni.VM, error) {
	if err := jni.EnsureLoaded(); err != nil {
		return 0, err
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	vm, _, err := jni.CreateJavaVMWithOptions(jni.Version1_8, []string{"-Xrs"}, false)
	if err != nil {
		return 0, err
	}
	if err := vm.DetachCurrentThread(); err != nil {
		return 0, err
	}
	return vm, nil
})

// withEnvs runs fn on an attached thread with a fresh JVMTI environment
// that is disposed afterwards.
func withEnvs(t *testing.T, fn func(ti Env, env jni.Env)) {
	t.Helper()
	vm, err := testJVM()
	if err != nil {
		t.Skipf("JVM not available: %v", err)
	}
	err = vm.Do(jni.Version1_8, func(env jni.Env) error {
		ti, err := GetEnv(vm, Version1_2)
		if err != nil {
			return err
		}
		defer ti.DisposeEnvironment()
		fn(ti, env)
		return nil
	})
	if err != nil {
		t.Fatalf("%v", err)
	}
}

func TestEnvBasics(t *testing.T) {
	withEnvs(t, func(ti Env, env jni.Env) {
		v, err := ti.GetVersionNumber()
		if err != nil || v < Version1_2 {
			t.Fatalf("GetVersionNumber = %#x, %v", int32(v), err)
		}
		phase, err := ti.GetPhase()
		if err != nil || phase != PhaseLive {
			t.Fatalf("GetPhase = %v, %v", phase, err)
		}
		n, err := ti.GetAvailableProcessors()
		if err != nil || n < 1 {
			t.Fatalf("GetAvailableProcessors = %d, %v", n, err)
		}
		name, err := ti.GetErrorName(ErrInvalidThread)
		if err != nil || name != "JVMTI_ERROR_INVALID_THREAD" {
			t.Fatalf("GetErrorName = %q, %v", name, err)
		}
		if _, err := ti.GetTime(); err != nil {
			t.Fatalf("GetTime: %v", err)
		}
		info, err := ti.GetTimerInfo()
		if err != nil || info.MaxValue == 0 {
			t.Fatalf("GetTimerInfo = %+v, %v", info, err)
		}
	})
}

func TestCapabilitiesExchange(t *testing.T) {
	withEnvs(t, func(ti Env, env jni.Env) {
		potential, err := ti.GetPotentialCapabilities()
		if err != nil {
			t.Fatalf("GetPotentialCapabilities: %v", err)
		}
		if potential.IsZero() {
			t.Fatalf("JVM offers no capabilities")
		}
		if !potential.Has(CanTagObjects) {
			t.Skipf("JVM cannot tag objects")
		}

		granted, err := ti.AddPotentialCapabilities(NewCapabilities(CanTagObjects))
		if err != nil {
			t.Fatalf("AddCapabilities: %v", err)
		}
		have, err := ti.GetCapabilities()
		if err != nil || !have.Has(CanTagObjects) || !granted.Has(CanTagObjects) {
			t.Fatalf("GetCapabilities = %v, %v", have, err)
		}

		str := env.NewStringUTF("tagged")
		defer env.DeleteLocalRef(str)
		if err := ti.SetTag(str, 42); err != nil {
			t.Fatalf("SetTag: %v", err)
		}
		if tag, err := ti.GetTag(str); err != nil || tag != 42 {
			t.Fatalf("GetTag = %d, %v", tag, err)
		}

		if err := ti.RelinquishCapabilities(NewCapabilities(CanTagObjects)); err != nil {
			t.Fatalf("RelinquishCapabilities: %v", err)
		}
		_, err = ti.GetTag(str)
		if code, ok := AsError(err); !ok || code != ErrMustPossessCapability {
			t.Fatalf("GetTag without capability = %v", err)
		}
	})
}

func TestIntrospection(t *testing.T) {
	withEnvs(t, func(ti Env, env jni.Env) {
		system := env.FindClass("java/lang/System")
		defer env.DeleteLocalRef(system)
		sig, _, err := ti.GetClassSignature(system)
		if err != nil || sig != "Ljava/lang/System;" {
			t.Fatalf("GetClassSignature = %q, %v", sig, err)
		}

		nanoTime := env.GetStaticMethodID(system, "nanoTime", "()J")
		name, msig, _, err := ti.GetMethodName(nanoTime)
		if err != nil || name != "nanoTime" || msig != "()J" {
			t.Fatalf("GetMethodName = %q %q, %v", name, msig, err)
		}
		decl, err := ti.GetMethodDeclaringClass(nanoTime)
		if err != nil || !env.IsSameObject(decl, system) {
			t.Fatalf("GetMethodDeclaringClass = %#x, %v", uintptr(decl), err)
		}

		classes, err := ti.GetLoadedClasses()
		if err != nil || len(classes) == 0 {
			t.Fatalf("GetLoadedClasses = %d classes, %v", len(classes), err)
		}

		thread, err := ti.GetCurrentThread()
		if err != nil {
			t.Fatalf("GetCurrentThread: %v", err)
		}
		info, err := ti.GetThreadInfo(thread)
		if err != nil || info.Name == "" {
			t.Fatalf("GetThreadInfo = %+v, %v", info, err)
		}
		if _, err := ti.GetFrameCount(thread); err != nil {
			t.Fatalf("GetFrameCount: %v", err)
		}
		if _, err := ti.GetStackTrace(thread, 0, 16); err != nil {
			t.Fatalf("GetStackTrace: %v", err)
		}

		size, err := ti.GetObjectSize(system)
		if err != nil || size <= 0 {
			t.Fatalf("GetObjectSize = %d, %v", size, err)
		}
	})
}

func TestSystemProperties(t *testing.T) {
	withEnvs(t, func(ti Env, env jni.Env) {
		version, err := ti.GetSystemProperty("java.vm.version")
		if err != nil || version == "" {
			t.Fatalf("GetSystemProperty = %q, %v", version, err)
		}
		props, err := ti.GetSystemProperties()
		if err != nil || len(props) == 0 {
			t.Fatalf("GetSystemProperties = %v, %v", props, err)
		}
		// Only allowed during OnLoad.
		err = ti.SetSystemProperty("jni.test", "x")
		if code, ok := AsError(err); !ok || (code != ErrWrongPhase && code != ErrNotAvailable) {
			t.Fatalf("SetSystemProperty in live phase = %v", err)
		}
	})
}

func TestRawMonitor(t *testing.T) {
	withEnvs(t, func(ti Env, env jni.Env) {
		m, err := ti.CreateRawMonitor("jvmti-test")
		if err != nil {
			t.Fatalf("CreateRawMonitor: %v", err)
		}
		defer ti.DestroyRawMonitor(m)

		if err := ti.RawMonitorEnter(m); err != nil {
			t.Fatalf("RawMonitorEnter: %v", err)
		}
		if err := ti.RawMonitorWait(m, 1); err != nil {
			t.Fatalf("RawMonitorWait: %v", err)
		}
		if err := ti.RawMonitorNotifyAll(m); err != nil {
			t.Fatalf("RawMonitorNotifyAll: %v", err)
		}
		if err := ti.RawMonitorExit(m); err != nil {
			t.Fatalf("RawMonitorExit: %v", err)
		}
		if err := ti.RawMonitorExit(m); !errors.Is(err, ErrNotMonitorOwner) {
			t.Fatalf("second RawMonitorExit = %v, want ErrNotMonitorOwner", err)
		}
	})
}

func TestEnvironmentLocalStorage(t *testing.T) {
	withEnvs(t, func(ti Env, env jni.Env) {
		if v, err := ti.GetEnvironmentLocalStorage(); err != nil || v != nil {
			t.Fatalf("fresh storage = %v, %v", v, err)
		}
		type state struct{ n int }
		want := &state{n: 3}
		if err := ti.SetEnvironmentLocalStorage(want); err != nil {
			t.Fatalf("SetEnvironmentLocalStorage: %v", err)
		}
		got, err := ti.GetEnvironmentLocalStorage()
		if err != nil || got != want {
			t.Fatalf("GetEnvironmentLocalStorage = %v, %v", got, err)
		}
		if err := ti.SetEnvironmentLocalStorage(nil); err != nil {
			t.Fatalf("clear storage: %v", err)
		}
		if got, _ := ti.GetEnvironmentLocalStorage(); got != nil {
			t.Fatalf("storage not cleared: %v", got)
		}
	})
}

func TestDisposeReleasesLocalStorage(t *testing.T) {
	withEnvs(t, func(_ Env, env jni.Env) {
		vm, err := env.GetJavaVM()
		if err != nil {
			t.Fatalf("GetJavaVM: %v", err)
		}
		ti, err := GetEnv(vm, Version1_2)
		if err != nil {
			t.Fatalf("GetEnv: %v", err)
		}
		if err := ti.SetEnvironmentLocalStorage("first"); err != nil {
			t.Fatalf("SetEnvironmentLocalStorage: %v", err)
		}
		if err := ti.SetEnvironmentLocalStorage("second"); err != nil {
			t.Fatalf("SetEnvironmentLocalStorage: %v", err)
		}
		if err := ti.DisposeEnvironment(); err != nil {
			t.Fatalf("DisposeEnvironment: %v", err)
		}
		if n := localStorage.Release(uintptr(ti)); n != 0 {
			t.Fatalf("%d storage values outlived DisposeEnvironment", n)
		}
	})
}

func TestAllocate(t *testing.T) {
	withEnvs(t, func(ti Env, env jni.Env) {
		mem, err := ti.Allocate(64)
		if err != nil || mem == 0 {
			t.Fatalf("Allocate = %#x, %v", mem, err)
		}
		if err := ti.Deallocate(mem); err != nil {
			t.Fatalf("Deallocate: %v", err)
		}
	})
}

func TestRunAgentThread(t *testing.T) {
	withEnvs(t, func(ti Env, env jni.Env) {
		threadClass := env.FindClass("java/lang/Thread")
		ctor := env.GetMethodID(threadClass, "<init>", "()V")
		thread := env.NewObject0(threadClass, ctor)
		if env.ExceptionCheck() {
			env.ExceptionDescribe()
			env.ExceptionClear()
			t.Fatalf("new Thread() failed")
		}

		ran := make(chan jni.Version, 1)
		err := ti.RunAgentThread(thread, func(agent Env, agentJNI jni.Env) {
			ran <- agentJNI.GetVersion()
		}, ThreadNormPriority)
		if err != nil {
			t.Fatalf("RunAgentThread: %v", err)
		}
		if v := <-ran; v < jni.Version1_8 {
			t.Fatalf("agent thread saw JNI version %v", v)
		}
	})
}
