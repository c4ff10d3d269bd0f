//go:build !windows

package native

import "github.com/ebitengine/purego"

// Open loads the shared library at path with global symbol visibility.
// The handle is never closed; the JVM does not support being unloaded.
func Open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// Lookup resolves name in the library handle lib.
func Lookup(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}
