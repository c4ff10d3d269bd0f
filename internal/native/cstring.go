package native

import "unsafe"

// CString returns a pointer to a NUL-terminated copy of s.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// CBytes returns b unchanged when it already ends in a NUL byte, otherwise a
// NUL-terminated copy of it.
func CBytes(b []byte) *byte {
	if n := len(b); n > 0 && b[n-1] == 0 {
		return &b[0]
	}
	c := make([]byte, len(b)+1)
	copy(c, b)
	return &c[0]
}

// Strlen returns the length of the NUL-terminated string at p.
func Strlen(p uintptr) int {
	if p == 0 {
		return 0
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}

// GoString copies the NUL-terminated string at p. A null p yields "".
func GoString(p uintptr) string {
	n := Strlen(p)
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// GoBytes copies n bytes starting at p.
func GoBytes(p uintptr, n int) []byte {
	if p == 0 || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
	return out
}
