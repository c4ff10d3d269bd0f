package jni

import (
	"unsafe"

	"github.com/tinyrange/jni/internal/native"
)

// Region functions take the length from the Go slice. The elements functions
// return a pointer owned by the JVM that must be handed back to the matching
// Release function with Commit, Abort or 0.

// ---- boolean arrays ----

func (e Env) NewBooleanArray(length int32) Array {
	e.checked("NewBooleanArray")
	return Array(native.CallSlot(uintptr(e), slotNewBooleanArray, uintptr(length)))
}

func (e Env) GetBooleanArrayElements(array Array) (elems uintptr, isCopy bool) {
	e.checked("GetBooleanArrayElements")
	var copied uint8
	elems = native.CallSlot(uintptr(e), slotGetBooleanArrayElements, uintptr(array), uintptr(unsafe.Pointer(&copied)))
	return elems, copied != 0
}

func (e Env) ReleaseBooleanArrayElements(array Array, elems uintptr, mode int32) {
	e.onThread("ReleaseBooleanArrayElements")
	native.CallSlot(uintptr(e), slotReleaseBooleanArrayElements, uintptr(array), elems, uintptr(mode))
}

func (e Env) GetBooleanArrayRegion(array Array, start int32, buf []bool) {
	e.checked("GetBooleanArrayRegion")
	native.CallSlot(uintptr(e), slotGetBooleanArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

func (e Env) SetBooleanArrayRegion(array Array, start int32, buf []bool) {
	e.checked("SetBooleanArrayRegion")
	native.CallSlot(uintptr(e), slotSetBooleanArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

// ---- byte arrays ----

func (e Env) NewByteArray(length int32) Array {
	e.checked("NewByteArray")
	return Array(native.CallSlot(uintptr(e), slotNewByteArray, uintptr(length)))
}

func (e Env) GetByteArrayElements(array Array) (elems uintptr, isCopy bool) {
	e.checked("GetByteArrayElements")
	var copied uint8
	elems = native.CallSlot(uintptr(e), slotGetByteArrayElements, uintptr(array), uintptr(unsafe.Pointer(&copied)))
	return elems, copied != 0
}

func (e Env) ReleaseByteArrayElements(array Array, elems uintptr, mode int32) {
	e.onThread("ReleaseByteArrayElements")
	native.CallSlot(uintptr(e), slotReleaseByteArrayElements, uintptr(array), elems, uintptr(mode))
}

func (e Env) GetByteArrayRegion(array Array, start int32, buf []int8) {
	e.checked("GetByteArrayRegion")
	native.CallSlot(uintptr(e), slotGetByteArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

func (e Env) SetByteArrayRegion(array Array, start int32, buf []int8) {
	e.checked("SetByteArrayRegion")
	native.CallSlot(uintptr(e), slotSetByteArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

// ---- char arrays ----

func (e Env) NewCharArray(length int32) Array {
	e.checked("NewCharArray")
	return Array(native.CallSlot(uintptr(e), slotNewCharArray, uintptr(length)))
}

func (e Env) GetCharArrayElements(array Array) (elems uintptr, isCopy bool) {
	e.checked("GetCharArrayElements")
	var copied uint8
	elems = native.CallSlot(uintptr(e), slotGetCharArrayElements, uintptr(array), uintptr(unsafe.Pointer(&copied)))
	return elems, copied != 0
}

func (e Env) ReleaseCharArrayElements(array Array, elems uintptr, mode int32) {
	e.onThread("ReleaseCharArrayElements")
	native.CallSlot(uintptr(e), slotReleaseCharArrayElements, uintptr(array), elems, uintptr(mode))
}

func (e Env) GetCharArrayRegion(array Array, start int32, buf []uint16) {
	e.checked("GetCharArrayRegion")
	native.CallSlot(uintptr(e), slotGetCharArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

func (e Env) SetCharArrayRegion(array Array, start int32, buf []uint16) {
	e.checked("SetCharArrayRegion")
	native.CallSlot(uintptr(e), slotSetCharArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

// ---- short arrays ----

func (e Env) NewShortArray(length int32) Array {
	e.checked("NewShortArray")
	return Array(native.CallSlot(uintptr(e), slotNewShortArray, uintptr(length)))
}

func (e Env) GetShortArrayElements(array Array) (elems uintptr, isCopy bool) {
	e.checked("GetShortArrayElements")
	var copied uint8
	elems = native.CallSlot(uintptr(e), slotGetShortArrayElements, uintptr(array), uintptr(unsafe.Pointer(&copied)))
	return elems, copied != 0
}

func (e Env) ReleaseShortArrayElements(array Array, elems uintptr, mode int32) {
	e.onThread("ReleaseShortArrayElements")
	native.CallSlot(uintptr(e), slotReleaseShortArrayElements, uintptr(array), elems, uintptr(mode))
}

func (e Env) GetShortArrayRegion(array Array, start int32, buf []int16) {
	e.checked("GetShortArrayRegion")
	native.CallSlot(uintptr(e), slotGetShortArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

func (e Env) SetShortArrayRegion(array Array, start int32, buf []int16) {
	e.checked("SetShortArrayRegion")
	native.CallSlot(uintptr(e), slotSetShortArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

// ---- int arrays ----

func (e Env) NewIntArray(length int32) Array {
	e.checked("NewIntArray")
	return Array(native.CallSlot(uintptr(e), slotNewIntArray, uintptr(length)))
}

func (e Env) GetIntArrayElements(array Array) (elems uintptr, isCopy bool) {
	e.checked("GetIntArrayElements")
	var copied uint8
	elems = native.CallSlot(uintptr(e), slotGetIntArrayElements, uintptr(array), uintptr(unsafe.Pointer(&copied)))
	return elems, copied != 0
}

func (e Env) ReleaseIntArrayElements(array Array, elems uintptr, mode int32) {
	e.onThread("ReleaseIntArrayElements")
	native.CallSlot(uintptr(e), slotReleaseIntArrayElements, uintptr(array), elems, uintptr(mode))
}

func (e Env) GetIntArrayRegion(array Array, start int32, buf []int32) {
	e.checked("GetIntArrayRegion")
	native.CallSlot(uintptr(e), slotGetIntArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

func (e Env) SetIntArrayRegion(array Array, start int32, buf []int32) {
	e.checked("SetIntArrayRegion")
	native.CallSlot(uintptr(e), slotSetIntArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

// ---- long arrays ----

func (e Env) NewLongArray(length int32) Array {
	e.checked("NewLongArray")
	return Array(native.CallSlot(uintptr(e), slotNewLongArray, uintptr(length)))
}

func (e Env) GetLongArrayElements(array Array) (elems uintptr, isCopy bool) {
	e.checked("GetLongArrayElements")
	var copied uint8
	elems = native.CallSlot(uintptr(e), slotGetLongArrayElements, uintptr(array), uintptr(unsafe.Pointer(&copied)))
	return elems, copied != 0
}

func (e Env) ReleaseLongArrayElements(array Array, elems uintptr, mode int32) {
	e.onThread("ReleaseLongArrayElements")
	native.CallSlot(uintptr(e), slotReleaseLongArrayElements, uintptr(array), elems, uintptr(mode))
}

func (e Env) GetLongArrayRegion(array Array, start int32, buf []int64) {
	e.checked("GetLongArrayRegion")
	native.CallSlot(uintptr(e), slotGetLongArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

func (e Env) SetLongArrayRegion(array Array, start int32, buf []int64) {
	e.checked("SetLongArrayRegion")
	native.CallSlot(uintptr(e), slotSetLongArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

// ---- float arrays ----

func (e Env) NewFloatArray(length int32) Array {
	e.checked("NewFloatArray")
	return Array(native.CallSlot(uintptr(e), slotNewFloatArray, uintptr(length)))
}

func (e Env) GetFloatArrayElements(array Array) (elems uintptr, isCopy bool) {
	e.checked("GetFloatArrayElements")
	var copied uint8
	elems = native.CallSlot(uintptr(e), slotGetFloatArrayElements, uintptr(array), uintptr(unsafe.Pointer(&copied)))
	return elems, copied != 0
}

func (e Env) ReleaseFloatArrayElements(array Array, elems uintptr, mode int32) {
	e.onThread("ReleaseFloatArrayElements")
	native.CallSlot(uintptr(e), slotReleaseFloatArrayElements, uintptr(array), elems, uintptr(mode))
}

func (e Env) GetFloatArrayRegion(array Array, start int32, buf []float32) {
	e.checked("GetFloatArrayRegion")
	native.CallSlot(uintptr(e), slotGetFloatArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

func (e Env) SetFloatArrayRegion(array Array, start int32, buf []float32) {
	e.checked("SetFloatArrayRegion")
	native.CallSlot(uintptr(e), slotSetFloatArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

// ---- double arrays ----

func (e Env) NewDoubleArray(length int32) Array {
	e.checked("NewDoubleArray")
	return Array(native.CallSlot(uintptr(e), slotNewDoubleArray, uintptr(length)))
}

func (e Env) GetDoubleArrayElements(array Array) (elems uintptr, isCopy bool) {
	e.checked("GetDoubleArrayElements")
	var copied uint8
	elems = native.CallSlot(uintptr(e), slotGetDoubleArrayElements, uintptr(array), uintptr(unsafe.Pointer(&copied)))
	return elems, copied != 0
}

func (e Env) ReleaseDoubleArrayElements(array Array, elems uintptr, mode int32) {
	e.onThread("ReleaseDoubleArrayElements")
	native.CallSlot(uintptr(e), slotReleaseDoubleArrayElements, uintptr(array), elems, uintptr(mode))
}

func (e Env) GetDoubleArrayRegion(array Array, start int32, buf []float64) {
	e.checked("GetDoubleArrayRegion")
	native.CallSlot(uintptr(e), slotGetDoubleArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}

func (e Env) SetDoubleArrayRegion(array Array, start int32, buf []float64) {
	e.checked("SetDoubleArrayRegion")
	native.CallSlot(uintptr(e), slotSetDoubleArrayRegion, uintptr(array), uintptr(start), uintptr(len(buf)), uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
}
