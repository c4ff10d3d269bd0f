//go:build jni_prelinked

package jni

/*
#include <stdint.h>

extern int32_t JNI_CreateJavaVM(void **pvm, void **penv, void *args);
extern int32_t JNI_GetCreatedJavaVMs(void **vms, int32_t len, int32_t *n);
*/
import "C"

import "unsafe"

// The JVM symbols come from the link. Binaries built this way must either
// be linked against libjvm (CGO_LDFLAGS=-ljvm) or be loaded into a process
// that already has it, such as a JNI library or a JVMTI agent.
func init() {
	std.cur.Store(&link{
		createJavaVM:      uintptr(unsafe.Pointer(C.JNI_CreateJavaVM)),
		getCreatedJavaVMs: uintptr(unsafe.Pointer(C.JNI_GetCreatedJavaVMs)),
		source:            "linker",
	})
}

// LoadLibrary always returns ErrAlreadyLoaded in this build.
func LoadLibrary(path string) error {
	return ErrAlreadyLoaded
}

// InitLink does nothing in this build and returns false.
func InitLink(createJavaVM, getCreatedJavaVMs uintptr) bool {
	return false
}
