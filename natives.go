package jni

import (
	"runtime"
	"unsafe"

	"github.com/tinyrange/jni/internal/native"
)

// NativeMethod is JNINativeMethod.
type NativeMethod struct {
	Name      *byte
	Signature *byte
	FnPtr     uintptr
}

// NewNativeMethod returns a NativeMethod implemented by the Go function fn.
//
// fn receives the Env and the receiver (the class for static methods)
// followed by the Java parameters, e.g. for "(IJ)I":
//
//	func(env jni.Env, this jni.Object, a int32, b int64) int32
//
// Parameters and the result must be integer or pointer sized. Each call
// creates a callback that is never freed and the runtime supports a limited
// number of them, so native methods should be created once at startup.
func NewNativeMethod(name, signature string, fn any) NativeMethod {
	return NativeMethod{
		Name:      cstr(name),
		Signature: cstr(signature),
		FnPtr:     native.Callback(fn),
	}
}

// RegisterNatives binds the given native methods of class.
func (e Env) RegisterNatives(class Class, methods []NativeMethod) Status {
	e.checked("RegisterNatives")
	status := Status(int32(native.CallSlot(uintptr(e), slotRegisterNatives,
		uintptr(class),
		uintptr(unsafe.Pointer(unsafe.SliceData(methods))),
		uintptr(len(methods)),
	)))
	runtime.KeepAlive(methods)
	return status
}

func (e Env) UnregisterNatives(class Class) Status {
	e.checked("UnregisterNatives")
	return Status(int32(native.CallSlot(uintptr(e), slotUnregisterNatives, uintptr(class))))
}
