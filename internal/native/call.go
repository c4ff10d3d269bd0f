// Package native holds the low-level plumbing shared by the jni and jvmti
// packages: function table lookups, purego calls and bindings, dynamic
// library access and C string helpers.
//
// Nothing here is safe. Callers are expected to pass valid native pointers.
package native

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// Slot returns the function pointer at index idx of the function table that
// iface points to. JNIEnv*, JavaVM* and jvmtiEnv* all point at a pointer to
// their function table.
func Slot(iface uintptr, idx int) uintptr {
	table := *(*unsafe.Pointer)(unsafe.Pointer(iface))
	return *(*uintptr)(unsafe.Add(table, uintptr(idx)*ptrSize))
}

// Table returns the address of the function table iface points to.
func Table(iface uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(iface))
}

// Call invokes fn with integer and pointer arguments only and returns the
// first integer return register.
//
//go:uintptrescapes
func Call(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}

// CallSlot is Call(Slot(iface, idx), iface, args...).
//
//go:uintptrescapes
func CallSlot(iface uintptr, idx int, args ...uintptr) uintptr {
	fn := Slot(iface, idx)
	all := make([]uintptr, 0, len(args)+1)
	all = append(all, iface)
	all = append(all, args...)
	r1, _, _ := purego.SyscallN(fn, all...)
	return r1
}

type bindKey struct {
	fn  uintptr
	typ reflect.Type
}

var bindings sync.Map

// Bind returns a Go function of type F that calls the C function fn.
//
// It is used for signatures SyscallN cannot express, i.e. anything passing or
// returning float32/float64. Bindings are cached per (fn, F) pair since
// building one is far more expensive than calling it.
func Bind[F any](fn uintptr) F {
	key := bindKey{fn: fn, typ: reflect.TypeFor[F]()}
	if v, ok := bindings.Load(key); ok {
		return v.(F)
	}

	var f F
	purego.RegisterFunc(&f, fn)
	v, _ := bindings.LoadOrStore(key, f)
	return v.(F)
}

// Callback returns a C function pointer that calls the Go function fn.
//
// purego can only create a bounded number of callbacks per process and never
// frees them, so callers should create them once and keep them.
func Callback(fn any) uintptr {
	return purego.NewCallback(fn)
}

// Bool converts the low byte of a return register to a Go bool.
func Bool(r uintptr) bool {
	return uint8(r) != 0
}

// FromBool converts a Go bool to a jboolean argument.
func FromBool(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}
