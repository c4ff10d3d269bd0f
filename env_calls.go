package jni

import (
	"unsafe"

	"github.com/tinyrange/jni/internal/native"
)

// The fixed arity forms (Method0 to Method3) and the A forms call the same
// jvalue array entry point; the fixed forms only spare the caller building
// the slice. Each Value must match the Java parameter type at its position.

// ---- Object construction ----

func (e Env) NewObjectA(class Class, constructor MethodID, args []Value) Object {
	e.checked("NewObjectA")
	return Object(native.CallSlot(uintptr(e), slotNewObjectA, uintptr(class), uintptr(constructor), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) NewObject0(class Class, constructor MethodID) Object {
	return e.NewObjectA(class, constructor, nil)
}

func (e Env) NewObject1(class Class, constructor MethodID, a0 Value) Object {
	args := [1]Value{a0}
	return e.NewObjectA(class, constructor, args[:])
}

func (e Env) NewObject2(class Class, constructor MethodID, a0, a1 Value) Object {
	args := [2]Value{a0, a1}
	return e.NewObjectA(class, constructor, args[:])
}

func (e Env) NewObject3(class Class, constructor MethodID, a0, a1, a2 Value) Object {
	args := [3]Value{a0, a1, a2}
	return e.NewObjectA(class, constructor, args[:])
}

// ---- Instance methods ----

func (e Env) CallObjectMethodA(obj Object, method MethodID, args []Value) Object {
	e.checked("CallObjectMethodA")
	return Object(native.CallSlot(uintptr(e), slotCallObjectMethodA, uintptr(obj), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallObjectMethod0(obj Object, method MethodID) Object {
	return e.CallObjectMethodA(obj, method, nil)
}

func (e Env) CallObjectMethod1(obj Object, method MethodID, a0 Value) Object {
	args := [1]Value{a0}
	return e.CallObjectMethodA(obj, method, args[:])
}

func (e Env) CallObjectMethod2(obj Object, method MethodID, a0, a1 Value) Object {
	args := [2]Value{a0, a1}
	return e.CallObjectMethodA(obj, method, args[:])
}

func (e Env) CallObjectMethod3(obj Object, method MethodID, a0, a1, a2 Value) Object {
	args := [3]Value{a0, a1, a2}
	return e.CallObjectMethodA(obj, method, args[:])
}

func (e Env) CallBooleanMethodA(obj Object, method MethodID, args []Value) bool {
	e.checked("CallBooleanMethodA")
	return native.Bool(native.CallSlot(uintptr(e), slotCallBooleanMethodA, uintptr(obj), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallBooleanMethod0(obj Object, method MethodID) bool {
	return e.CallBooleanMethodA(obj, method, nil)
}

func (e Env) CallBooleanMethod1(obj Object, method MethodID, a0 Value) bool {
	args := [1]Value{a0}
	return e.CallBooleanMethodA(obj, method, args[:])
}

func (e Env) CallBooleanMethod2(obj Object, method MethodID, a0, a1 Value) bool {
	args := [2]Value{a0, a1}
	return e.CallBooleanMethodA(obj, method, args[:])
}

func (e Env) CallBooleanMethod3(obj Object, method MethodID, a0, a1, a2 Value) bool {
	args := [3]Value{a0, a1, a2}
	return e.CallBooleanMethodA(obj, method, args[:])
}

func (e Env) CallByteMethodA(obj Object, method MethodID, args []Value) int8 {
	e.checked("CallByteMethodA")
	return int8(native.CallSlot(uintptr(e), slotCallByteMethodA, uintptr(obj), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallByteMethod0(obj Object, method MethodID) int8 {
	return e.CallByteMethodA(obj, method, nil)
}

func (e Env) CallByteMethod1(obj Object, method MethodID, a0 Value) int8 {
	args := [1]Value{a0}
	return e.CallByteMethodA(obj, method, args[:])
}

func (e Env) CallByteMethod2(obj Object, method MethodID, a0, a1 Value) int8 {
	args := [2]Value{a0, a1}
	return e.CallByteMethodA(obj, method, args[:])
}

func (e Env) CallByteMethod3(obj Object, method MethodID, a0, a1, a2 Value) int8 {
	args := [3]Value{a0, a1, a2}
	return e.CallByteMethodA(obj, method, args[:])
}

func (e Env) CallCharMethodA(obj Object, method MethodID, args []Value) uint16 {
	e.checked("CallCharMethodA")
	return uint16(native.CallSlot(uintptr(e), slotCallCharMethodA, uintptr(obj), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallCharMethod0(obj Object, method MethodID) uint16 {
	return e.CallCharMethodA(obj, method, nil)
}

func (e Env) CallCharMethod1(obj Object, method MethodID, a0 Value) uint16 {
	args := [1]Value{a0}
	return e.CallCharMethodA(obj, method, args[:])
}

func (e Env) CallCharMethod2(obj Object, method MethodID, a0, a1 Value) uint16 {
	args := [2]Value{a0, a1}
	return e.CallCharMethodA(obj, method, args[:])
}

func (e Env) CallCharMethod3(obj Object, method MethodID, a0, a1, a2 Value) uint16 {
	args := [3]Value{a0, a1, a2}
	return e.CallCharMethodA(obj, method, args[:])
}

func (e Env) CallShortMethodA(obj Object, method MethodID, args []Value) int16 {
	e.checked("CallShortMethodA")
	return int16(native.CallSlot(uintptr(e), slotCallShortMethodA, uintptr(obj), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallShortMethod0(obj Object, method MethodID) int16 {
	return e.CallShortMethodA(obj, method, nil)
}

func (e Env) CallShortMethod1(obj Object, method MethodID, a0 Value) int16 {
	args := [1]Value{a0}
	return e.CallShortMethodA(obj, method, args[:])
}

func (e Env) CallShortMethod2(obj Object, method MethodID, a0, a1 Value) int16 {
	args := [2]Value{a0, a1}
	return e.CallShortMethodA(obj, method, args[:])
}

func (e Env) CallShortMethod3(obj Object, method MethodID, a0, a1, a2 Value) int16 {
	args := [3]Value{a0, a1, a2}
	return e.CallShortMethodA(obj, method, args[:])
}

func (e Env) CallIntMethodA(obj Object, method MethodID, args []Value) int32 {
	e.checked("CallIntMethodA")
	return int32(native.CallSlot(uintptr(e), slotCallIntMethodA, uintptr(obj), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallIntMethod0(obj Object, method MethodID) int32 {
	return e.CallIntMethodA(obj, method, nil)
}

func (e Env) CallIntMethod1(obj Object, method MethodID, a0 Value) int32 {
	args := [1]Value{a0}
	return e.CallIntMethodA(obj, method, args[:])
}

func (e Env) CallIntMethod2(obj Object, method MethodID, a0, a1 Value) int32 {
	args := [2]Value{a0, a1}
	return e.CallIntMethodA(obj, method, args[:])
}

func (e Env) CallIntMethod3(obj Object, method MethodID, a0, a1, a2 Value) int32 {
	args := [3]Value{a0, a1, a2}
	return e.CallIntMethodA(obj, method, args[:])
}

func (e Env) CallLongMethodA(obj Object, method MethodID, args []Value) int64 {
	e.checked("CallLongMethodA")
	return int64(native.CallSlot(uintptr(e), slotCallLongMethodA, uintptr(obj), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallLongMethod0(obj Object, method MethodID) int64 {
	return e.CallLongMethodA(obj, method, nil)
}

func (e Env) CallLongMethod1(obj Object, method MethodID, a0 Value) int64 {
	args := [1]Value{a0}
	return e.CallLongMethodA(obj, method, args[:])
}

func (e Env) CallLongMethod2(obj Object, method MethodID, a0, a1 Value) int64 {
	args := [2]Value{a0, a1}
	return e.CallLongMethodA(obj, method, args[:])
}

func (e Env) CallLongMethod3(obj Object, method MethodID, a0, a1, a2 Value) int64 {
	args := [3]Value{a0, a1, a2}
	return e.CallLongMethodA(obj, method, args[:])
}

func (e Env) CallFloatMethodA(obj Object, method MethodID, args []Value) float32 {
	e.checked("CallFloatMethodA")
	fn := native.Bind[func(uintptr, Object, MethodID, unsafe.Pointer) float32](native.Slot(uintptr(e), slotCallFloatMethodA))
	return fn(uintptr(e), obj, method, unsafe.Pointer(unsafe.SliceData(args)))
}

func (e Env) CallFloatMethod0(obj Object, method MethodID) float32 {
	return e.CallFloatMethodA(obj, method, nil)
}

func (e Env) CallFloatMethod1(obj Object, method MethodID, a0 Value) float32 {
	args := [1]Value{a0}
	return e.CallFloatMethodA(obj, method, args[:])
}

func (e Env) CallFloatMethod2(obj Object, method MethodID, a0, a1 Value) float32 {
	args := [2]Value{a0, a1}
	return e.CallFloatMethodA(obj, method, args[:])
}

func (e Env) CallFloatMethod3(obj Object, method MethodID, a0, a1, a2 Value) float32 {
	args := [3]Value{a0, a1, a2}
	return e.CallFloatMethodA(obj, method, args[:])
}

func (e Env) CallDoubleMethodA(obj Object, method MethodID, args []Value) float64 {
	e.checked("CallDoubleMethodA")
	fn := native.Bind[func(uintptr, Object, MethodID, unsafe.Pointer) float64](native.Slot(uintptr(e), slotCallDoubleMethodA))
	return fn(uintptr(e), obj, method, unsafe.Pointer(unsafe.SliceData(args)))
}

func (e Env) CallDoubleMethod0(obj Object, method MethodID) float64 {
	return e.CallDoubleMethodA(obj, method, nil)
}

func (e Env) CallDoubleMethod1(obj Object, method MethodID, a0 Value) float64 {
	args := [1]Value{a0}
	return e.CallDoubleMethodA(obj, method, args[:])
}

func (e Env) CallDoubleMethod2(obj Object, method MethodID, a0, a1 Value) float64 {
	args := [2]Value{a0, a1}
	return e.CallDoubleMethodA(obj, method, args[:])
}

func (e Env) CallDoubleMethod3(obj Object, method MethodID, a0, a1, a2 Value) float64 {
	args := [3]Value{a0, a1, a2}
	return e.CallDoubleMethodA(obj, method, args[:])
}

func (e Env) CallVoidMethodA(obj Object, method MethodID, args []Value) {
	e.checked("CallVoidMethodA")
	native.CallSlot(uintptr(e), slotCallVoidMethodA, uintptr(obj), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args))))
}

func (e Env) CallVoidMethod0(obj Object, method MethodID) {
	e.CallVoidMethodA(obj, method, nil)
}

func (e Env) CallVoidMethod1(obj Object, method MethodID, a0 Value) {
	args := [1]Value{a0}
	e.CallVoidMethodA(obj, method, args[:])
}

func (e Env) CallVoidMethod2(obj Object, method MethodID, a0, a1 Value) {
	args := [2]Value{a0, a1}
	e.CallVoidMethodA(obj, method, args[:])
}

func (e Env) CallVoidMethod3(obj Object, method MethodID, a0, a1, a2 Value) {
	args := [3]Value{a0, a1, a2}
	e.CallVoidMethodA(obj, method, args[:])
}

// ---- Non-virtual instance methods ----

func (e Env) CallNonvirtualObjectMethodA(obj Object, class Class, method MethodID, args []Value) Object {
	e.checked("CallNonvirtualObjectMethodA")
	return Object(native.CallSlot(uintptr(e), slotCallNonvirtualObjectMethodA, uintptr(obj), uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallNonvirtualObjectMethod0(obj Object, class Class, method MethodID) Object {
	return e.CallNonvirtualObjectMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualObjectMethod1(obj Object, class Class, method MethodID, a0 Value) Object {
	args := [1]Value{a0}
	return e.CallNonvirtualObjectMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualObjectMethod2(obj Object, class Class, method MethodID, a0, a1 Value) Object {
	args := [2]Value{a0, a1}
	return e.CallNonvirtualObjectMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualObjectMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) Object {
	args := [3]Value{a0, a1, a2}
	return e.CallNonvirtualObjectMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualBooleanMethodA(obj Object, class Class, method MethodID, args []Value) bool {
	e.checked("CallNonvirtualBooleanMethodA")
	return native.Bool(native.CallSlot(uintptr(e), slotCallNonvirtualBooleanMethodA, uintptr(obj), uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallNonvirtualBooleanMethod0(obj Object, class Class, method MethodID) bool {
	return e.CallNonvirtualBooleanMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualBooleanMethod1(obj Object, class Class, method MethodID, a0 Value) bool {
	args := [1]Value{a0}
	return e.CallNonvirtualBooleanMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualBooleanMethod2(obj Object, class Class, method MethodID, a0, a1 Value) bool {
	args := [2]Value{a0, a1}
	return e.CallNonvirtualBooleanMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualBooleanMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) bool {
	args := [3]Value{a0, a1, a2}
	return e.CallNonvirtualBooleanMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualByteMethodA(obj Object, class Class, method MethodID, args []Value) int8 {
	e.checked("CallNonvirtualByteMethodA")
	return int8(native.CallSlot(uintptr(e), slotCallNonvirtualByteMethodA, uintptr(obj), uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallNonvirtualByteMethod0(obj Object, class Class, method MethodID) int8 {
	return e.CallNonvirtualByteMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualByteMethod1(obj Object, class Class, method MethodID, a0 Value) int8 {
	args := [1]Value{a0}
	return e.CallNonvirtualByteMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualByteMethod2(obj Object, class Class, method MethodID, a0, a1 Value) int8 {
	args := [2]Value{a0, a1}
	return e.CallNonvirtualByteMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualByteMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) int8 {
	args := [3]Value{a0, a1, a2}
	return e.CallNonvirtualByteMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualCharMethodA(obj Object, class Class, method MethodID, args []Value) uint16 {
	e.checked("CallNonvirtualCharMethodA")
	return uint16(native.CallSlot(uintptr(e), slotCallNonvirtualCharMethodA, uintptr(obj), uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallNonvirtualCharMethod0(obj Object, class Class, method MethodID) uint16 {
	return e.CallNonvirtualCharMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualCharMethod1(obj Object, class Class, method MethodID, a0 Value) uint16 {
	args := [1]Value{a0}
	return e.CallNonvirtualCharMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualCharMethod2(obj Object, class Class, method MethodID, a0, a1 Value) uint16 {
	args := [2]Value{a0, a1}
	return e.CallNonvirtualCharMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualCharMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) uint16 {
	args := [3]Value{a0, a1, a2}
	return e.CallNonvirtualCharMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualShortMethodA(obj Object, class Class, method MethodID, args []Value) int16 {
	e.checked("CallNonvirtualShortMethodA")
	return int16(native.CallSlot(uintptr(e), slotCallNonvirtualShortMethodA, uintptr(obj), uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallNonvirtualShortMethod0(obj Object, class Class, method MethodID) int16 {
	return e.CallNonvirtualShortMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualShortMethod1(obj Object, class Class, method MethodID, a0 Value) int16 {
	args := [1]Value{a0}
	return e.CallNonvirtualShortMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualShortMethod2(obj Object, class Class, method MethodID, a0, a1 Value) int16 {
	args := [2]Value{a0, a1}
	return e.CallNonvirtualShortMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualShortMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) int16 {
	args := [3]Value{a0, a1, a2}
	return e.CallNonvirtualShortMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualIntMethodA(obj Object, class Class, method MethodID, args []Value) int32 {
	e.checked("CallNonvirtualIntMethodA")
	return int32(native.CallSlot(uintptr(e), slotCallNonvirtualIntMethodA, uintptr(obj), uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallNonvirtualIntMethod0(obj Object, class Class, method MethodID) int32 {
	return e.CallNonvirtualIntMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualIntMethod1(obj Object, class Class, method MethodID, a0 Value) int32 {
	args := [1]Value{a0}
	return e.CallNonvirtualIntMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualIntMethod2(obj Object, class Class, method MethodID, a0, a1 Value) int32 {
	args := [2]Value{a0, a1}
	return e.CallNonvirtualIntMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualIntMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) int32 {
	args := [3]Value{a0, a1, a2}
	return e.CallNonvirtualIntMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualLongMethodA(obj Object, class Class, method MethodID, args []Value) int64 {
	e.checked("CallNonvirtualLongMethodA")
	return int64(native.CallSlot(uintptr(e), slotCallNonvirtualLongMethodA, uintptr(obj), uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallNonvirtualLongMethod0(obj Object, class Class, method MethodID) int64 {
	return e.CallNonvirtualLongMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualLongMethod1(obj Object, class Class, method MethodID, a0 Value) int64 {
	args := [1]Value{a0}
	return e.CallNonvirtualLongMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualLongMethod2(obj Object, class Class, method MethodID, a0, a1 Value) int64 {
	args := [2]Value{a0, a1}
	return e.CallNonvirtualLongMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualLongMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) int64 {
	args := [3]Value{a0, a1, a2}
	return e.CallNonvirtualLongMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualFloatMethodA(obj Object, class Class, method MethodID, args []Value) float32 {
	e.checked("CallNonvirtualFloatMethodA")
	fn := native.Bind[func(uintptr, Object, Class, MethodID, unsafe.Pointer) float32](native.Slot(uintptr(e), slotCallNonvirtualFloatMethodA))
	return fn(uintptr(e), obj, class, method, unsafe.Pointer(unsafe.SliceData(args)))
}

func (e Env) CallNonvirtualFloatMethod0(obj Object, class Class, method MethodID) float32 {
	return e.CallNonvirtualFloatMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualFloatMethod1(obj Object, class Class, method MethodID, a0 Value) float32 {
	args := [1]Value{a0}
	return e.CallNonvirtualFloatMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualFloatMethod2(obj Object, class Class, method MethodID, a0, a1 Value) float32 {
	args := [2]Value{a0, a1}
	return e.CallNonvirtualFloatMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualFloatMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) float32 {
	args := [3]Value{a0, a1, a2}
	return e.CallNonvirtualFloatMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualDoubleMethodA(obj Object, class Class, method MethodID, args []Value) float64 {
	e.checked("CallNonvirtualDoubleMethodA")
	fn := native.Bind[func(uintptr, Object, Class, MethodID, unsafe.Pointer) float64](native.Slot(uintptr(e), slotCallNonvirtualDoubleMethodA))
	return fn(uintptr(e), obj, class, method, unsafe.Pointer(unsafe.SliceData(args)))
}

func (e Env) CallNonvirtualDoubleMethod0(obj Object, class Class, method MethodID) float64 {
	return e.CallNonvirtualDoubleMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualDoubleMethod1(obj Object, class Class, method MethodID, a0 Value) float64 {
	args := [1]Value{a0}
	return e.CallNonvirtualDoubleMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualDoubleMethod2(obj Object, class Class, method MethodID, a0, a1 Value) float64 {
	args := [2]Value{a0, a1}
	return e.CallNonvirtualDoubleMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualDoubleMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) float64 {
	args := [3]Value{a0, a1, a2}
	return e.CallNonvirtualDoubleMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualVoidMethodA(obj Object, class Class, method MethodID, args []Value) {
	e.checked("CallNonvirtualVoidMethodA")
	native.CallSlot(uintptr(e), slotCallNonvirtualVoidMethodA, uintptr(obj), uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args))))
}

func (e Env) CallNonvirtualVoidMethod0(obj Object, class Class, method MethodID) {
	e.CallNonvirtualVoidMethodA(obj, class, method, nil)
}

func (e Env) CallNonvirtualVoidMethod1(obj Object, class Class, method MethodID, a0 Value) {
	args := [1]Value{a0}
	e.CallNonvirtualVoidMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualVoidMethod2(obj Object, class Class, method MethodID, a0, a1 Value) {
	args := [2]Value{a0, a1}
	e.CallNonvirtualVoidMethodA(obj, class, method, args[:])
}

func (e Env) CallNonvirtualVoidMethod3(obj Object, class Class, method MethodID, a0, a1, a2 Value) {
	args := [3]Value{a0, a1, a2}
	e.CallNonvirtualVoidMethodA(obj, class, method, args[:])
}

// ---- Static methods ----

func (e Env) CallStaticObjectMethodA(class Class, method MethodID, args []Value) Object {
	e.checked("CallStaticObjectMethodA")
	return Object(native.CallSlot(uintptr(e), slotCallStaticObjectMethodA, uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallStaticObjectMethod0(class Class, method MethodID) Object {
	return e.CallStaticObjectMethodA(class, method, nil)
}

func (e Env) CallStaticObjectMethod1(class Class, method MethodID, a0 Value) Object {
	args := [1]Value{a0}
	return e.CallStaticObjectMethodA(class, method, args[:])
}

func (e Env) CallStaticObjectMethod2(class Class, method MethodID, a0, a1 Value) Object {
	args := [2]Value{a0, a1}
	return e.CallStaticObjectMethodA(class, method, args[:])
}

func (e Env) CallStaticObjectMethod3(class Class, method MethodID, a0, a1, a2 Value) Object {
	args := [3]Value{a0, a1, a2}
	return e.CallStaticObjectMethodA(class, method, args[:])
}

func (e Env) CallStaticBooleanMethodA(class Class, method MethodID, args []Value) bool {
	e.checked("CallStaticBooleanMethodA")
	return native.Bool(native.CallSlot(uintptr(e), slotCallStaticBooleanMethodA, uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallStaticBooleanMethod0(class Class, method MethodID) bool {
	return e.CallStaticBooleanMethodA(class, method, nil)
}

func (e Env) CallStaticBooleanMethod1(class Class, method MethodID, a0 Value) bool {
	args := [1]Value{a0}
	return e.CallStaticBooleanMethodA(class, method, args[:])
}

func (e Env) CallStaticBooleanMethod2(class Class, method MethodID, a0, a1 Value) bool {
	args := [2]Value{a0, a1}
	return e.CallStaticBooleanMethodA(class, method, args[:])
}

func (e Env) CallStaticBooleanMethod3(class Class, method MethodID, a0, a1, a2 Value) bool {
	args := [3]Value{a0, a1, a2}
	return e.CallStaticBooleanMethodA(class, method, args[:])
}

func (e Env) CallStaticByteMethodA(class Class, method MethodID, args []Value) int8 {
	e.checked("CallStaticByteMethodA")
	return int8(native.CallSlot(uintptr(e), slotCallStaticByteMethodA, uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallStaticByteMethod0(class Class, method MethodID) int8 {
	return e.CallStaticByteMethodA(class, method, nil)
}

func (e Env) CallStaticByteMethod1(class Class, method MethodID, a0 Value) int8 {
	args := [1]Value{a0}
	return e.CallStaticByteMethodA(class, method, args[:])
}

func (e Env) CallStaticByteMethod2(class Class, method MethodID, a0, a1 Value) int8 {
	args := [2]Value{a0, a1}
	return e.CallStaticByteMethodA(class, method, args[:])
}

func (e Env) CallStaticByteMethod3(class Class, method MethodID, a0, a1, a2 Value) int8 {
	args := [3]Value{a0, a1, a2}
	return e.CallStaticByteMethodA(class, method, args[:])
}

func (e Env) CallStaticCharMethodA(class Class, method MethodID, args []Value) uint16 {
	e.checked("CallStaticCharMethodA")
	return uint16(native.CallSlot(uintptr(e), slotCallStaticCharMethodA, uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallStaticCharMethod0(class Class, method MethodID) uint16 {
	return e.CallStaticCharMethodA(class, method, nil)
}

func (e Env) CallStaticCharMethod1(class Class, method MethodID, a0 Value) uint16 {
	args := [1]Value{a0}
	return e.CallStaticCharMethodA(class, method, args[:])
}

func (e Env) CallStaticCharMethod2(class Class, method MethodID, a0, a1 Value) uint16 {
	args := [2]Value{a0, a1}
	return e.CallStaticCharMethodA(class, method, args[:])
}

func (e Env) CallStaticCharMethod3(class Class, method MethodID, a0, a1, a2 Value) uint16 {
	args := [3]Value{a0, a1, a2}
	return e.CallStaticCharMethodA(class, method, args[:])
}

func (e Env) CallStaticShortMethodA(class Class, method MethodID, args []Value) int16 {
	e.checked("CallStaticShortMethodA")
	return int16(native.CallSlot(uintptr(e), slotCallStaticShortMethodA, uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallStaticShortMethod0(class Class, method MethodID) int16 {
	return e.CallStaticShortMethodA(class, method, nil)
}

func (e Env) CallStaticShortMethod1(class Class, method MethodID, a0 Value) int16 {
	args := [1]Value{a0}
	return e.CallStaticShortMethodA(class, method, args[:])
}

func (e Env) CallStaticShortMethod2(class Class, method MethodID, a0, a1 Value) int16 {
	args := [2]Value{a0, a1}
	return e.CallStaticShortMethodA(class, method, args[:])
}

func (e Env) CallStaticShortMethod3(class Class, method MethodID, a0, a1, a2 Value) int16 {
	args := [3]Value{a0, a1, a2}
	return e.CallStaticShortMethodA(class, method, args[:])
}

func (e Env) CallStaticIntMethodA(class Class, method MethodID, args []Value) int32 {
	e.checked("CallStaticIntMethodA")
	return int32(native.CallSlot(uintptr(e), slotCallStaticIntMethodA, uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallStaticIntMethod0(class Class, method MethodID) int32 {
	return e.CallStaticIntMethodA(class, method, nil)
}

func (e Env) CallStaticIntMethod1(class Class, method MethodID, a0 Value) int32 {
	args := [1]Value{a0}
	return e.CallStaticIntMethodA(class, method, args[:])
}

func (e Env) CallStaticIntMethod2(class Class, method MethodID, a0, a1 Value) int32 {
	args := [2]Value{a0, a1}
	return e.CallStaticIntMethodA(class, method, args[:])
}

func (e Env) CallStaticIntMethod3(class Class, method MethodID, a0, a1, a2 Value) int32 {
	args := [3]Value{a0, a1, a2}
	return e.CallStaticIntMethodA(class, method, args[:])
}

func (e Env) CallStaticLongMethodA(class Class, method MethodID, args []Value) int64 {
	e.checked("CallStaticLongMethodA")
	return int64(native.CallSlot(uintptr(e), slotCallStaticLongMethodA, uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args)))))
}

func (e Env) CallStaticLongMethod0(class Class, method MethodID) int64 {
	return e.CallStaticLongMethodA(class, method, nil)
}

func (e Env) CallStaticLongMethod1(class Class, method MethodID, a0 Value) int64 {
	args := [1]Value{a0}
	return e.CallStaticLongMethodA(class, method, args[:])
}

func (e Env) CallStaticLongMethod2(class Class, method MethodID, a0, a1 Value) int64 {
	args := [2]Value{a0, a1}
	return e.CallStaticLongMethodA(class, method, args[:])
}

func (e Env) CallStaticLongMethod3(class Class, method MethodID, a0, a1, a2 Value) int64 {
	args := [3]Value{a0, a1, a2}
	return e.CallStaticLongMethodA(class, method, args[:])
}

func (e Env) CallStaticFloatMethodA(class Class, method MethodID, args []Value) float32 {
	e.checked("CallStaticFloatMethodA")
	fn := native.Bind[func(uintptr, Object, MethodID, unsafe.Pointer) float32](native.Slot(uintptr(e), slotCallStaticFloatMethodA))
	return fn(uintptr(e), class, method, unsafe.Pointer(unsafe.SliceData(args)))
}

func (e Env) CallStaticFloatMethod0(class Class, method MethodID) float32 {
	return e.CallStaticFloatMethodA(class, method, nil)
}

func (e Env) CallStaticFloatMethod1(class Class, method MethodID, a0 Value) float32 {
	args := [1]Value{a0}
	return e.CallStaticFloatMethodA(class, method, args[:])
}

func (e Env) CallStaticFloatMethod2(class Class, method MethodID, a0, a1 Value) float32 {
	args := [2]Value{a0, a1}
	return e.CallStaticFloatMethodA(class, method, args[:])
}

func (e Env) CallStaticFloatMethod3(class Class, method MethodID, a0, a1, a2 Value) float32 {
	args := [3]Value{a0, a1, a2}
	return e.CallStaticFloatMethodA(class, method, args[:])
}

func (e Env) CallStaticDoubleMethodA(class Class, method MethodID, args []Value) float64 {
	e.checked("CallStaticDoubleMethodA")
	fn := native.Bind[func(uintptr, Object, MethodID, unsafe.Pointer) float64](native.Slot(uintptr(e), slotCallStaticDoubleMethodA))
	return fn(uintptr(e), class, method, unsafe.Pointer(unsafe.SliceData(args)))
}

func (e Env) CallStaticDoubleMethod0(class Class, method MethodID) float64 {
	return e.CallStaticDoubleMethodA(class, method, nil)
}

func (e Env) CallStaticDoubleMethod1(class Class, method MethodID, a0 Value) float64 {
	args := [1]Value{a0}
	return e.CallStaticDoubleMethodA(class, method, args[:])
}

func (e Env) CallStaticDoubleMethod2(class Class, method MethodID, a0, a1 Value) float64 {
	args := [2]Value{a0, a1}
	return e.CallStaticDoubleMethodA(class, method, args[:])
}

func (e Env) CallStaticDoubleMethod3(class Class, method MethodID, a0, a1, a2 Value) float64 {
	args := [3]Value{a0, a1, a2}
	return e.CallStaticDoubleMethodA(class, method, args[:])
}

func (e Env) CallStaticVoidMethodA(class Class, method MethodID, args []Value) {
	e.checked("CallStaticVoidMethodA")
	native.CallSlot(uintptr(e), slotCallStaticVoidMethodA, uintptr(class), uintptr(method), uintptr(unsafe.Pointer(unsafe.SliceData(args))))
}

func (e Env) CallStaticVoidMethod0(class Class, method MethodID) {
	e.CallStaticVoidMethodA(class, method, nil)
}

func (e Env) CallStaticVoidMethod1(class Class, method MethodID, a0 Value) {
	args := [1]Value{a0}
	e.CallStaticVoidMethodA(class, method, args[:])
}

func (e Env) CallStaticVoidMethod2(class Class, method MethodID, a0, a1 Value) {
	args := [2]Value{a0, a1}
	e.CallStaticVoidMethodA(class, method, args[:])
}

func (e Env) CallStaticVoidMethod3(class Class, method MethodID, a0, a1, a2 Value) {
	args := [3]Value{a0, a1, a2}
	e.CallStaticVoidMethodA(class, method, args[:])
}
