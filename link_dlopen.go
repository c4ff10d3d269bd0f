//go:build !jni_prelinked

package jni

import (
	"fmt"

	"github.com/tinyrange/jni/internal/native"
)

// LoadLibrary opens the JVM shared library at path and binds
// JNI_CreateJavaVM and JNI_GetCreatedJavaVMs from it.
//
// Only the first successful load has any effect; later calls return
// ErrAlreadyLoaded without touching the file system.
func LoadLibrary(path string) error {
	return std.init(func() (*link, error) {
		return openLink(path)
	})
}

func openLink(path string) (*link, error) {
	lib, err := native.Open(path)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}

	create, err := native.Lookup(lib, "JNI_CreateJavaVM")
	if err != nil || create == 0 {
		return nil, &LoadError{Op: "lookup", Path: path, Err: fmt.Errorf("%w: JNI_CreateJavaVM", ErrSymbolNotFound)}
	}
	getCreated, err := native.Lookup(lib, "JNI_GetCreatedJavaVMs")
	if err != nil || getCreated == 0 {
		return nil, &LoadError{Op: "lookup", Path: path, Err: fmt.Errorf("%w: JNI_GetCreatedJavaVMs", ErrSymbolNotFound)}
	}

	return &link{createJavaVM: create, getCreatedJavaVMs: getCreated, source: path}, nil
}

// InitLink binds the JVM entry points from function pointers obtained some
// other way, such as from a host process. It panics if either pointer is
// null and returns false if the entry points were already bound.
func InitLink(createJavaVM, getCreatedJavaVMs uintptr) bool {
	return manualLink(createJavaVM, getCreatedJavaVMs)
}
