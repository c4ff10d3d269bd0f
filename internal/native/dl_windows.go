//go:build windows

package native

import "golang.org/x/sys/windows"

// Open loads the DLL at path. The handle is never freed; the JVM does not
// support being unloaded.
func Open(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

// Lookup resolves name in the module handle lib.
func Lookup(lib uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(lib), name)
}
