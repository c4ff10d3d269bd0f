package jni

import "github.com/tinyrange/jni/internal/native"

// ---- Instance fields ----

func (e Env) GetObjectField(obj Object, field FieldID) Object {
	e.checked("GetObjectField")
	return Object(native.CallSlot(uintptr(e), slotGetObjectField, uintptr(obj), uintptr(field)))
}

func (e Env) GetBooleanField(obj Object, field FieldID) bool {
	e.checked("GetBooleanField")
	return native.Bool(native.CallSlot(uintptr(e), slotGetBooleanField, uintptr(obj), uintptr(field)))
}

func (e Env) GetByteField(obj Object, field FieldID) int8 {
	e.checked("GetByteField")
	return int8(native.CallSlot(uintptr(e), slotGetByteField, uintptr(obj), uintptr(field)))
}

func (e Env) GetCharField(obj Object, field FieldID) uint16 {
	e.checked("GetCharField")
	return uint16(native.CallSlot(uintptr(e), slotGetCharField, uintptr(obj), uintptr(field)))
}

func (e Env) GetShortField(obj Object, field FieldID) int16 {
	e.checked("GetShortField")
	return int16(native.CallSlot(uintptr(e), slotGetShortField, uintptr(obj), uintptr(field)))
}

func (e Env) GetIntField(obj Object, field FieldID) int32 {
	e.checked("GetIntField")
	return int32(native.CallSlot(uintptr(e), slotGetIntField, uintptr(obj), uintptr(field)))
}

func (e Env) GetLongField(obj Object, field FieldID) int64 {
	e.checked("GetLongField")
	return int64(native.CallSlot(uintptr(e), slotGetLongField, uintptr(obj), uintptr(field)))
}

func (e Env) GetFloatField(obj Object, field FieldID) float32 {
	e.checked("GetFloatField")
	fn := native.Bind[func(uintptr, Object, FieldID) float32](native.Slot(uintptr(e), slotGetFloatField))
	return fn(uintptr(e), obj, field)
}

func (e Env) GetDoubleField(obj Object, field FieldID) float64 {
	e.checked("GetDoubleField")
	fn := native.Bind[func(uintptr, Object, FieldID) float64](native.Slot(uintptr(e), slotGetDoubleField))
	return fn(uintptr(e), obj, field)
}

func (e Env) SetObjectField(obj Object, field FieldID, value Object) {
	e.checked("SetObjectField")
	native.CallSlot(uintptr(e), slotSetObjectField, uintptr(obj), uintptr(field), uintptr(value))
}

func (e Env) SetBooleanField(obj Object, field FieldID, value bool) {
	e.checked("SetBooleanField")
	native.CallSlot(uintptr(e), slotSetBooleanField, uintptr(obj), uintptr(field), native.FromBool(value))
}

func (e Env) SetByteField(obj Object, field FieldID, value int8) {
	e.checked("SetByteField")
	native.CallSlot(uintptr(e), slotSetByteField, uintptr(obj), uintptr(field), uintptr(value))
}

func (e Env) SetCharField(obj Object, field FieldID, value uint16) {
	e.checked("SetCharField")
	native.CallSlot(uintptr(e), slotSetCharField, uintptr(obj), uintptr(field), uintptr(value))
}

func (e Env) SetShortField(obj Object, field FieldID, value int16) {
	e.checked("SetShortField")
	native.CallSlot(uintptr(e), slotSetShortField, uintptr(obj), uintptr(field), uintptr(value))
}

func (e Env) SetIntField(obj Object, field FieldID, value int32) {
	e.checked("SetIntField")
	native.CallSlot(uintptr(e), slotSetIntField, uintptr(obj), uintptr(field), uintptr(value))
}

func (e Env) SetLongField(obj Object, field FieldID, value int64) {
	e.checked("SetLongField")
	native.CallSlot(uintptr(e), slotSetLongField, uintptr(obj), uintptr(field), uintptr(value))
}

func (e Env) SetFloatField(obj Object, field FieldID, value float32) {
	e.checked("SetFloatField")
	fn := native.Bind[func(uintptr, Object, FieldID, float32)](native.Slot(uintptr(e), slotSetFloatField))
	fn(uintptr(e), obj, field, value)
}

func (e Env) SetDoubleField(obj Object, field FieldID, value float64) {
	e.checked("SetDoubleField")
	fn := native.Bind[func(uintptr, Object, FieldID, float64)](native.Slot(uintptr(e), slotSetDoubleField))
	fn(uintptr(e), obj, field, value)
}

// ---- Static fields ----

func (e Env) GetStaticObjectField(class Class, field FieldID) Object {
	e.checked("GetStaticObjectField")
	return Object(native.CallSlot(uintptr(e), slotGetStaticObjectField, uintptr(class), uintptr(field)))
}

func (e Env) GetStaticBooleanField(class Class, field FieldID) bool {
	e.checked("GetStaticBooleanField")
	return native.Bool(native.CallSlot(uintptr(e), slotGetStaticBooleanField, uintptr(class), uintptr(field)))
}

func (e Env) GetStaticByteField(class Class, field FieldID) int8 {
	e.checked("GetStaticByteField")
	return int8(native.CallSlot(uintptr(e), slotGetStaticByteField, uintptr(class), uintptr(field)))
}

func (e Env) GetStaticCharField(class Class, field FieldID) uint16 {
	e.checked("GetStaticCharField")
	return uint16(native.CallSlot(uintptr(e), slotGetStaticCharField, uintptr(class), uintptr(field)))
}

func (e Env) GetStaticShortField(class Class, field FieldID) int16 {
	e.checked("GetStaticShortField")
	return int16(native.CallSlot(uintptr(e), slotGetStaticShortField, uintptr(class), uintptr(field)))
}

func (e Env) GetStaticIntField(class Class, field FieldID) int32 {
	e.checked("GetStaticIntField")
	return int32(native.CallSlot(uintptr(e), slotGetStaticIntField, uintptr(class), uintptr(field)))
}

func (e Env) GetStaticLongField(class Class, field FieldID) int64 {
	e.checked("GetStaticLongField")
	return int64(native.CallSlot(uintptr(e), slotGetStaticLongField, uintptr(class), uintptr(field)))
}

func (e Env) GetStaticFloatField(class Class, field FieldID) float32 {
	e.checked("GetStaticFloatField")
	fn := native.Bind[func(uintptr, Object, FieldID) float32](native.Slot(uintptr(e), slotGetStaticFloatField))
	return fn(uintptr(e), class, field)
}

func (e Env) GetStaticDoubleField(class Class, field FieldID) float64 {
	e.checked("GetStaticDoubleField")
	fn := native.Bind[func(uintptr, Object, FieldID) float64](native.Slot(uintptr(e), slotGetStaticDoubleField))
	return fn(uintptr(e), class, field)
}

func (e Env) SetStaticObjectField(class Class, field FieldID, value Object) {
	e.checked("SetStaticObjectField")
	native.CallSlot(uintptr(e), slotSetStaticObjectField, uintptr(class), uintptr(field), uintptr(value))
}

func (e Env) SetStaticBooleanField(class Class, field FieldID, value bool) {
	e.checked("SetStaticBooleanField")
	native.CallSlot(uintptr(e), slotSetStaticBooleanField, uintptr(class), uintptr(field), native.FromBool(value))
}

func (e Env) SetStaticByteField(class Class, field FieldID, value int8) {
	e.checked("SetStaticByteField")
	native.CallSlot(uintptr(e), slotSetStaticByteField, uintptr(class), uintptr(field), uintptr(value))
}

func (e Env) SetStaticCharField(class Class, field FieldID, value uint16) {
	e.checked("SetStaticCharField")
	native.CallSlot(uintptr(e), slotSetStaticCharField, uintptr(class), uintptr(field), uintptr(value))
}

func (e Env) SetStaticShortField(class Class, field FieldID, value int16) {
	e.checked("SetStaticShortField")
	native.CallSlot(uintptr(e), slotSetStaticShortField, uintptr(class), uintptr(field), uintptr(value))
}

func (e Env) SetStaticIntField(class Class, field FieldID, value int32) {
	e.checked("SetStaticIntField")
	native.CallSlot(uintptr(e), slotSetStaticIntField, uintptr(class), uintptr(field), uintptr(value))
}

func (e Env) SetStaticLongField(class Class, field FieldID, value int64) {
	e.checked("SetStaticLongField")
	native.CallSlot(uintptr(e), slotSetStaticLongField, uintptr(class), uintptr(field), uintptr(value))
}

func (e Env) SetStaticFloatField(class Class, field FieldID, value float32) {
	e.checked("SetStaticFloatField")
	fn := native.Bind[func(uintptr, Object, FieldID, float32)](native.Slot(uintptr(e), slotSetStaticFloatField))
	fn(uintptr(e), class, field, value)
}

func (e Env) SetStaticDoubleField(class Class, field FieldID, value float64) {
	e.checked("SetStaticDoubleField")
	fn := native.Bind[func(uintptr, Object, FieldID, float64)](native.Slot(uintptr(e), slotSetStaticDoubleField))
	fn(uintptr(e), class, field, value)
}
