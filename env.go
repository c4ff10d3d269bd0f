package jni

import (
	"unsafe"

	"github.com/tinyrange/jni/internal/native"
)

// Env is a JNIEnv pointer. It is only valid on the OS thread it was
// obtained on.
type Env uintptr

// ---- Version ----

func (e Env) GetVersion() Version {
	e.checked("GetVersion")
	return Version(int32(native.CallSlot(uintptr(e), slotGetVersion)))
}

// GetJavaVM returns the VM e belongs to.
func (e Env) GetJavaVM() (VM, error) {
	e.checked("GetJavaVM")
	var vm VM
	status := Status(int32(native.CallSlot(uintptr(e), slotGetJavaVM, uintptr(unsafe.Pointer(&vm)))))
	if status != OK {
		return 0, status
	}
	return vm, nil
}

// ---- Classes ----

// DefineClass defines a class from class file bytes. name may be empty to
// let the JVM take it from the class file.
func (e Env) DefineClass(name string, loader Object, buf []byte) Class {
	e.checked("DefineClass")
	var cname *byte
	if name != "" {
		cname = cstr(name)
	}
	return Class(native.CallSlot(uintptr(e), slotDefineClass,
		uintptr(unsafe.Pointer(cname)),
		uintptr(loader),
		uintptr(unsafe.Pointer(unsafe.SliceData(buf))),
		uintptr(len(buf)),
	))
}

// FindClass looks up a class by its internal name, e.g. "java/lang/String".
func (e Env) FindClass(name string) Class {
	return e.FindClassBytes(cbytes(name))
}

// FindClassBytes is FindClass for a name already encoded as modified UTF-8.
// A name ending in a NUL byte is passed without copying.
func (e Env) FindClassBytes(name []byte) Class {
	e.checked("FindClass")
	return Class(native.CallSlot(uintptr(e), slotFindClass, uintptr(unsafe.Pointer(native.CBytes(name)))))
}

func (e Env) GetSuperclass(class Class) Class {
	e.checked("GetSuperclass")
	return Class(native.CallSlot(uintptr(e), slotGetSuperclass, uintptr(class)))
}

func (e Env) IsAssignableFrom(from, to Class) bool {
	e.checked("IsAssignableFrom")
	return native.Bool(native.CallSlot(uintptr(e), slotIsAssignableFrom, uintptr(from), uintptr(to)))
}

func (e Env) GetModule(class Class) Object {
	e.checked("GetModule")
	return Object(native.CallSlot(uintptr(e), slotGetModule, uintptr(class)))
}

// ---- Reflection ----

func (e Env) FromReflectedMethod(method Object) MethodID {
	e.checked("FromReflectedMethod")
	return MethodID(native.CallSlot(uintptr(e), slotFromReflectedMethod, uintptr(method)))
}

func (e Env) FromReflectedField(field Object) FieldID {
	e.checked("FromReflectedField")
	return FieldID(native.CallSlot(uintptr(e), slotFromReflectedField, uintptr(field)))
}

func (e Env) ToReflectedMethod(class Class, method MethodID, isStatic bool) Object {
	e.checked("ToReflectedMethod")
	return Object(native.CallSlot(uintptr(e), slotToReflectedMethod, uintptr(class), uintptr(method), native.FromBool(isStatic)))
}

func (e Env) ToReflectedField(class Class, field FieldID, isStatic bool) Object {
	e.checked("ToReflectedField")
	return Object(native.CallSlot(uintptr(e), slotToReflectedField, uintptr(class), uintptr(field), native.FromBool(isStatic)))
}

// ---- Exceptions ----

func (e Env) Throw(obj Throwable) Status {
	e.checked("Throw")
	return Status(int32(native.CallSlot(uintptr(e), slotThrow, uintptr(obj))))
}

func (e Env) ThrowNew(class Class, message string) Status {
	e.checked("ThrowNew")
	return Status(int32(native.CallSlot(uintptr(e), slotThrowNew, uintptr(class), uintptr(unsafe.Pointer(cstr(message))))))
}

func (e Env) ExceptionOccurred() Throwable {
	e.onThread("ExceptionOccurred")
	return Throwable(native.CallSlot(uintptr(e), slotExceptionOccurred))
}

func (e Env) ExceptionDescribe() {
	e.onThread("ExceptionDescribe")
	native.CallSlot(uintptr(e), slotExceptionDescribe)
}

func (e Env) ExceptionClear() {
	e.onThread("ExceptionClear")
	native.CallSlot(uintptr(e), slotExceptionClear)
}

func (e Env) ExceptionCheck() bool {
	e.onThread("ExceptionCheck")
	return native.Bool(native.CallSlot(uintptr(e), slotExceptionCheck))
}

// FatalError aborts the JVM. It does not return.
func (e Env) FatalError(message string) {
	native.CallSlot(uintptr(e), slotFatalError, uintptr(unsafe.Pointer(cstr(message))))
}

// ---- References ----

func (e Env) PushLocalFrame(capacity int32) Status {
	e.onThread("PushLocalFrame")
	return Status(int32(native.CallSlot(uintptr(e), slotPushLocalFrame, uintptr(capacity))))
}

func (e Env) PopLocalFrame(result Object) Object {
	e.onThread("PopLocalFrame")
	return Object(native.CallSlot(uintptr(e), slotPopLocalFrame, uintptr(result)))
}

func (e Env) EnsureLocalCapacity(capacity int32) Status {
	e.checked("EnsureLocalCapacity")
	return Status(int32(native.CallSlot(uintptr(e), slotEnsureLocalCapacity, uintptr(capacity))))
}

func (e Env) NewGlobalRef(obj Object) Object {
	e.checked("NewGlobalRef")
	return Object(native.CallSlot(uintptr(e), slotNewGlobalRef, uintptr(obj)))
}

func (e Env) DeleteGlobalRef(ref Object) {
	e.onThread("DeleteGlobalRef")
	native.CallSlot(uintptr(e), slotDeleteGlobalRef, uintptr(ref))
}

func (e Env) NewLocalRef(obj Object) Object {
	e.checked("NewLocalRef")
	return Object(native.CallSlot(uintptr(e), slotNewLocalRef, uintptr(obj)))
}

func (e Env) DeleteLocalRef(ref Object) {
	e.onThread("DeleteLocalRef")
	native.CallSlot(uintptr(e), slotDeleteLocalRef, uintptr(ref))
}

func (e Env) NewWeakGlobalRef(obj Object) Weak {
	e.checked("NewWeakGlobalRef")
	return Weak(native.CallSlot(uintptr(e), slotNewWeakGlobalRef, uintptr(obj)))
}

func (e Env) DeleteWeakGlobalRef(ref Weak) {
	e.onThread("DeleteWeakGlobalRef")
	native.CallSlot(uintptr(e), slotDeleteWeakGlobalRef, uintptr(ref))
}

func (e Env) IsSameObject(a, b Object) bool {
	e.checked("IsSameObject")
	return native.Bool(native.CallSlot(uintptr(e), slotIsSameObject, uintptr(a), uintptr(b)))
}

func (e Env) GetObjectRefType(obj Object) RefType {
	e.checked("GetObjectRefType")
	return RefType(int32(native.CallSlot(uintptr(e), slotGetObjectRefType, uintptr(obj))))
}

// ---- Objects ----

func (e Env) AllocObject(class Class) Object {
	e.checked("AllocObject")
	return Object(native.CallSlot(uintptr(e), slotAllocObject, uintptr(class)))
}

func (e Env) GetObjectClass(obj Object) Class {
	e.checked("GetObjectClass")
	return Class(native.CallSlot(uintptr(e), slotGetObjectClass, uintptr(obj)))
}

func (e Env) IsInstanceOf(obj Object, class Class) bool {
	e.checked("IsInstanceOf")
	return native.Bool(native.CallSlot(uintptr(e), slotIsInstanceOf, uintptr(obj), uintptr(class)))
}

func (e Env) IsVirtualThread(obj Object) bool {
	e.checked("IsVirtualThread")
	return native.Bool(native.CallSlot(uintptr(e), slotIsVirtualThread, uintptr(obj)))
}

// ---- Member IDs ----

// GetMethodID looks up an instance method or constructor ("<init>") by name
// and JVM type signature, e.g. "(Ljava/lang/String;)V".
func (e Env) GetMethodID(class Class, name, sig string) MethodID {
	return e.GetMethodIDBytes(class, cbytes(name), cbytes(sig))
}

func (e Env) GetMethodIDBytes(class Class, name, sig []byte) MethodID {
	return e.memberID("GetMethodID", slotGetMethodID, class, name, sig)
}

func (e Env) GetStaticMethodID(class Class, name, sig string) MethodID {
	return e.GetStaticMethodIDBytes(class, cbytes(name), cbytes(sig))
}

func (e Env) GetStaticMethodIDBytes(class Class, name, sig []byte) MethodID {
	return e.memberID("GetStaticMethodID", slotGetStaticMethodID, class, name, sig)
}

func (e Env) GetFieldID(class Class, name, sig string) FieldID {
	return e.GetFieldIDBytes(class, cbytes(name), cbytes(sig))
}

func (e Env) GetFieldIDBytes(class Class, name, sig []byte) FieldID {
	return e.memberID("GetFieldID", slotGetFieldID, class, name, sig)
}

func (e Env) GetStaticFieldID(class Class, name, sig string) FieldID {
	return e.GetStaticFieldIDBytes(class, cbytes(name), cbytes(sig))
}

func (e Env) GetStaticFieldIDBytes(class Class, name, sig []byte) FieldID {
	return e.memberID("GetStaticFieldID", slotGetStaticFieldID, class, name, sig)
}

func (e Env) memberID(fn string, slot int, class Class, name, sig []byte) Object {
	e.checked(fn)
	return Object(native.CallSlot(uintptr(e), slot,
		uintptr(class),
		uintptr(unsafe.Pointer(native.CBytes(name))),
		uintptr(unsafe.Pointer(native.CBytes(sig))),
	))
}

// ---- Monitors ----

func (e Env) MonitorEnter(obj Object) Status {
	e.checked("MonitorEnter")
	return Status(int32(native.CallSlot(uintptr(e), slotMonitorEnter, uintptr(obj))))
}

func (e Env) MonitorExit(obj Object) Status {
	e.onThread("MonitorExit")
	return Status(int32(native.CallSlot(uintptr(e), slotMonitorExit, uintptr(obj))))
}

// ---- Direct buffers ----

// NewDirectByteBuffer wraps capacity bytes at address in a
// java.nio.ByteBuffer. The memory must stay valid and must not be Go heap
// memory, which the JVM cannot keep alive.
func (e Env) NewDirectByteBuffer(address unsafe.Pointer, capacity int64) Object {
	e.checked("NewDirectByteBuffer")
	return Object(native.CallSlot(uintptr(e), slotNewDirectByteBuffer, uintptr(address), uintptr(capacity)))
}

func (e Env) GetDirectBufferAddress(buf Object) unsafe.Pointer {
	e.checked("GetDirectBufferAddress")
	p := native.CallSlot(uintptr(e), slotGetDirectBufferAddress, uintptr(buf))
	return *(*unsafe.Pointer)(unsafe.Pointer(&p))
}

func (e Env) GetDirectBufferCapacity(buf Object) int64 {
	e.checked("GetDirectBufferCapacity")
	return int64(native.CallSlot(uintptr(e), slotGetDirectBufferCapacity, uintptr(buf)))
}

// ---- Arrays ----

func (e Env) GetArrayLength(array Array) int32 {
	e.checked("GetArrayLength")
	return int32(native.CallSlot(uintptr(e), slotGetArrayLength, uintptr(array)))
}

func (e Env) NewObjectArray(length int32, elementClass Class, initial Object) Array {
	e.checked("NewObjectArray")
	return Array(native.CallSlot(uintptr(e), slotNewObjectArray, uintptr(length), uintptr(elementClass), uintptr(initial)))
}

func (e Env) GetObjectArrayElement(array Array, index int32) Object {
	e.checked("GetObjectArrayElement")
	return Object(native.CallSlot(uintptr(e), slotGetObjectArrayElement, uintptr(array), uintptr(index)))
}

func (e Env) SetObjectArrayElement(array Array, index int32, value Object) {
	e.checked("SetObjectArrayElement")
	native.CallSlot(uintptr(e), slotSetObjectArrayElement, uintptr(array), uintptr(index), uintptr(value))
}

// GetPrimitiveArrayCritical pins array and returns its elements. No other
// JNI call may be made until the matching release.
func (e Env) GetPrimitiveArrayCritical(array Array) (elems uintptr, isCopy bool) {
	e.checked("GetPrimitiveArrayCritical")
	var copied uint8
	elems = native.CallSlot(uintptr(e), slotGetPrimitiveArrayCritical, uintptr(array), uintptr(unsafe.Pointer(&copied)))
	return elems, copied != 0
}

func (e Env) ReleasePrimitiveArrayCritical(array Array, elems uintptr, mode int32) {
	e.onThread("ReleasePrimitiveArrayCritical")
	native.CallSlot(uintptr(e), slotReleasePrimitiveArrayCritical, uintptr(array), elems, uintptr(mode))
}

// NewByteArrayFrom returns a new byte[] holding a copy of b.
func (e Env) NewByteArrayFrom(b []byte) Array {
	array := e.NewByteArray(int32(len(b)))
	if array != 0 && len(b) > 0 {
		e.SetByteArrayRegion(array, 0, unsafe.Slice((*int8)(unsafe.Pointer(unsafe.SliceData(b))), len(b)))
	}
	return array
}

// GoBytes copies the contents of a byte[].
func (e Env) GoBytes(array Array) []byte {
	n := e.GetArrayLength(array)
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	e.GetByteArrayRegion(array, 0, unsafe.Slice((*int8)(unsafe.Pointer(&out[0])), n))
	return out
}
