package jni

import (
	"unsafe"

	"github.com/tinyrange/jni/internal/mutf8"
	"github.com/tinyrange/jni/internal/native"
)

// JNI "UTF" strings are modified UTF-8: NUL is encoded as two bytes and
// supplementary characters as surrogate pairs. Every Go string passed to
// the JVM goes through mutf8 first.

func cbytes(s string) []byte {
	return mutf8.EncodeCString(s)
}

func cstr(s string) *byte {
	return &cbytes(s)[0]
}

// NewString creates a java.lang.String from UTF-16 code units.
func (e Env) NewString(chars []uint16) String {
	e.checked("NewString")
	return String(native.CallSlot(uintptr(e), slotNewString,
		uintptr(unsafe.Pointer(unsafe.SliceData(chars))),
		uintptr(len(chars)),
	))
}

// NewStringUTF creates a java.lang.String from a Go string.
func (e Env) NewStringUTF(s string) String {
	return e.NewStringUTFBytes(cbytes(s))
}

// NewStringUTFBytes creates a java.lang.String from modified UTF-8 bytes.
// Bytes ending in NUL are passed without copying.
func (e Env) NewStringUTFBytes(b []byte) String {
	e.checked("NewStringUTF")
	return String(native.CallSlot(uintptr(e), slotNewStringUTF, uintptr(unsafe.Pointer(native.CBytes(b)))))
}

// GetStringLength returns the length of str in UTF-16 code units.
func (e Env) GetStringLength(str String) int32 {
	e.checked("GetStringLength")
	return int32(native.CallSlot(uintptr(e), slotGetStringLength, uintptr(str)))
}

// GetStringUTFLength returns the length of str in modified UTF-8 bytes.
func (e Env) GetStringUTFLength(str String) int32 {
	e.checked("GetStringUTFLength")
	return int32(native.CallSlot(uintptr(e), slotGetStringUTFLength, uintptr(str)))
}

func (e Env) GetStringChars(str String) (chars uintptr, isCopy bool) {
	e.checked("GetStringChars")
	var copied uint8
	chars = native.CallSlot(uintptr(e), slotGetStringChars, uintptr(str), uintptr(unsafe.Pointer(&copied)))
	return chars, copied != 0
}

func (e Env) ReleaseStringChars(str String, chars uintptr) {
	e.onThread("ReleaseStringChars")
	native.CallSlot(uintptr(e), slotReleaseStringChars, uintptr(str), chars)
}

func (e Env) GetStringUTFChars(str String) (chars uintptr, isCopy bool) {
	e.checked("GetStringUTFChars")
	var copied uint8
	chars = native.CallSlot(uintptr(e), slotGetStringUTFChars, uintptr(str), uintptr(unsafe.Pointer(&copied)))
	return chars, copied != 0
}

func (e Env) ReleaseStringUTFChars(str String, chars uintptr) {
	e.onThread("ReleaseStringUTFChars")
	native.CallSlot(uintptr(e), slotReleaseStringUTFChars, uintptr(str), chars)
}

// GetStringRegion copies len(buf) UTF-16 code units of str starting at
// start into buf.
func (e Env) GetStringRegion(str String, start int32, buf []uint16) {
	e.checked("GetStringRegion")
	native.CallSlot(uintptr(e), slotGetStringRegion,
		uintptr(str),
		uintptr(start),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(unsafe.SliceData(buf))),
	)
}

// GetStringUTFRegion encodes length UTF-16 code units of str starting at
// start as modified UTF-8 into buf. buf must hold GetStringUTFLength bytes
// for the region plus a NUL.
func (e Env) GetStringUTFRegion(str String, start, length int32, buf []byte) {
	e.checked("GetStringUTFRegion")
	native.CallSlot(uintptr(e), slotGetStringUTFRegion,
		uintptr(str),
		uintptr(start),
		uintptr(length),
		uintptr(unsafe.Pointer(unsafe.SliceData(buf))),
	)
}

func (e Env) GetStringCritical(str String) (chars uintptr, isCopy bool) {
	e.checked("GetStringCritical")
	var copied uint8
	chars = native.CallSlot(uintptr(e), slotGetStringCritical, uintptr(str), uintptr(unsafe.Pointer(&copied)))
	return chars, copied != 0
}

func (e Env) ReleaseStringCritical(str String, chars uintptr) {
	e.onThread("ReleaseStringCritical")
	native.CallSlot(uintptr(e), slotReleaseStringCritical, uintptr(str), chars)
}

// GoString copies a java.lang.String into a Go string. A null str yields "".
func (e Env) GoString(str String) string {
	if str == 0 {
		return ""
	}
	n := e.GetStringLength(str)
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n)
	e.GetStringRegion(str, 0, buf)
	return mutf8.DecodeUTF16(buf)
}

// GoStringUTF is GoString going through the JVM's modified UTF-8 encoder.
func (e Env) GoStringUTF(str String) string {
	if str == 0 {
		return ""
	}
	chars, _ := e.GetStringUTFChars(str)
	if chars == 0 {
		return ""
	}
	defer e.ReleaseStringUTFChars(str, chars)
	return mutf8.Decode(native.GoBytes(chars, native.Strlen(chars)))
}
