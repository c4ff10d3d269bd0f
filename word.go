package jni

import "unsafe"

// jlong arguments and results are passed to native code as one uintptr, so
// only 64-bit targets are supported. On a 32-bit target this constant
// overflows and the package does not compile.
const _ = unsafe.Sizeof(uintptr(0)) - 8
