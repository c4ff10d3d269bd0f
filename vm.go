package jni

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/tinyrange/jni/internal/native"
)

// VM is a JavaVM pointer.
type VM uintptr

// AttachArgs is JavaVMAttachArgs.
type AttachArgs struct {
	Version Version
	Name    *byte
	Group   Object
}

// DestroyJavaVM unloads the JVM. The calling thread becomes the JVM's main
// thread and the call blocks until every other non-daemon thread has
// exited. The JVM cannot be created again afterwards.
func (vm VM) DestroyJavaVM() error {
	status := Status(int32(native.CallSlot(uintptr(vm), vmSlotDestroyJavaVM)))
	return status.Err()
}

// AttachCurrentThread attaches the calling OS thread to the JVM, or returns
// the existing Env if it is already attached. name and group may be empty
// and null.
func (vm VM) AttachCurrentThread(version Version, name string, group Object) (Env, error) {
	return vm.attach(vmSlotAttachCurrentThread, version, name, group)
}

// AttachCurrentThreadAsDaemon is AttachCurrentThread for threads the JVM
// does not wait for on shutdown.
func (vm VM) AttachCurrentThreadAsDaemon(version Version, name string, group Object) (Env, error) {
	return vm.attach(vmSlotAttachCurrentThreadAsDaemon, version, name, group)
}

func (vm VM) attach(slot int, version Version, name string, group Object) (Env, error) {
	args := &AttachArgs{Version: version, Group: group}
	if name != "" {
		args.Name = cstr(name)
	}

	var env Env
	status := Status(int32(native.CallSlot(uintptr(vm), slot,
		uintptr(unsafe.Pointer(&env)),
		uintptr(unsafe.Pointer(args)),
	)))
	runtime.KeepAlive(args)
	if status != OK {
		return 0, status
	}
	trackEnv(env)
	return env, nil
}

// DetachCurrentThread detaches the calling OS thread. Every local reference
// it still holds is released.
func (vm VM) DetachCurrentThread() error {
	status := Status(int32(native.CallSlot(uintptr(vm), vmSlotDetachCurrentThread)))
	if status == OK {
		untrackThread()
	}
	return status.Err()
}

// GetEnv returns the Env of the calling thread. It fails with EDETACHED if
// the thread is not attached and EVERSION if version is not supported.
func (vm VM) GetEnv(version Version) (Env, error) {
	p, err := vm.GetEnvRaw(version)
	if err != nil {
		return 0, err
	}
	env := Env(p)
	trackEnv(env)
	return env, nil
}

// GetEnvRaw is GetEnv for interfaces other than JNI, such as JVMTI. The
// returned pointer is whatever environment version selects.
func (vm VM) GetEnvRaw(version Version) (uintptr, error) {
	var env uintptr
	status := Status(int32(native.CallSlot(uintptr(vm), vmSlotGetEnv,
		uintptr(unsafe.Pointer(&env)),
		uintptr(version),
	)))
	if status != OK {
		return 0, status
	}
	return env, nil
}

// Do runs fn on an OS thread attached to the JVM. The goroutine is locked
// to its thread for the duration. If the thread was not attached already it
// is attached before fn and detached after it.
func (vm VM) Do(version Version, fn func(env Env) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	env, err := vm.GetEnv(version)
	if err == nil {
		return fn(env)
	}
	if !errors.Is(err, EDETACHED) {
		return fmt.Errorf("jni: GetEnv: %w", err)
	}

	env, err = vm.AttachCurrentThread(version, "", 0)
	if err != nil {
		return fmt.Errorf("jni: AttachCurrentThread: %w", err)
	}
	defer vm.DetachCurrentThread()

	return fn(env)
}
