package jni

import (
	"fmt"
	"unsafe"
)

// Value is a jvalue: eight bytes holding one of the JNI primitive types or a
// reference. It carries no tag. Which interpretation is used is decided by
// the method signature of the call that consumes it, and a mismatch is
// undefined behaviour.
//
// Values are written through typed pointers so the active member sits at
// offset 0 like in the C union, on either byte order.
type Value struct {
	raw uint64
}

// Primitive is the set of Go types with a lossless Value conversion.
type Primitive interface {
	~bool | ~int8 | ~uint16 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~uintptr
}

// ValueOf converts a primitive Go value to a Value.
func ValueOf[T Primitive](v T) Value {
	var out Value
	*(*T)(unsafe.Pointer(&out)) = v
	return out
}

func Bool(v bool) Value       { return ValueOf(v) }
func Byte(v int8) Value       { return ValueOf(v) }
func Char(v uint16) Value     { return ValueOf(v) }
func Short(v int16) Value     { return ValueOf(v) }
func Int(v int32) Value       { return ValueOf(v) }
func Long(v int64) Value      { return ValueOf(v) }
func Float(v float32) Value   { return ValueOf(v) }
func Double(v float64) Value  { return ValueOf(v) }
func Obj(v Object) Value      { return ValueOf(v) }
func RawValue(v uint64) Value { return Value{raw: v} }

func (v Value) Bool() bool      { return *(*uint8)(unsafe.Pointer(&v)) != 0 }
func (v Value) Byte() int8      { return *(*int8)(unsafe.Pointer(&v)) }
func (v Value) Char() uint16    { return *(*uint16)(unsafe.Pointer(&v)) }
func (v Value) Short() int16    { return *(*int16)(unsafe.Pointer(&v)) }
func (v Value) Int() int32      { return *(*int32)(unsafe.Pointer(&v)) }
func (v Value) Long() int64     { return *(*int64)(unsafe.Pointer(&v)) }
func (v Value) Float() float32  { return *(*float32)(unsafe.Pointer(&v)) }
func (v Value) Double() float64 { return *(*float64)(unsafe.Pointer(&v)) }
func (v Value) Object() Object  { return *(*Object)(unsafe.Pointer(&v)) }

// Raw returns the eight bytes of v as an integer in host byte order.
func (v Value) Raw() uint64 { return v.raw }

// Values converts a list of Go values to a contiguous Value slice in order,
// for use with the ...A call family. Supported element types are bool, int8,
// uint16, int16, int32, int64, float32, float64, Object and Value itself.
// Plain int is not accepted since its width does not say which JNI
// slot it is meant for.
func Values(args ...any) []Value {
	out := make([]Value, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case Value:
			out[i] = v
		case bool:
			out[i] = Bool(v)
		case int8:
			out[i] = Byte(v)
		case uint16:
			out[i] = Char(v)
		case int16:
			out[i] = Short(v)
		case int32:
			out[i] = Int(v)
		case int64:
			out[i] = Long(v)
		case float32:
			out[i] = Float(v)
		case float64:
			out[i] = Double(v)
		case Object:
			out[i] = Obj(v)
		default:
			panic(fmt.Sprintf("jni: Values: unsupported argument %d of type %T", i, a))
		}
	}
	return out
}
