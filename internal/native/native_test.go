package native

import (
	"runtime"
	"testing"
	"unsafe"
)

func TestSlot(t *testing.T) {
	table := [4]uintptr{10, 20, 30, 40}
	tablePtr := uintptr(unsafe.Pointer(&table[0]))
	iface := uintptr(unsafe.Pointer(&tablePtr))

	for i, want := range table {
		if got := Slot(iface, i); got != want {
			t.Fatalf("Slot(%d) = %d, want %d", i, got, want)
		}
	}
	if got := Table(iface); got != tablePtr {
		t.Fatalf("Table = %#x, want %#x", got, tablePtr)
	}
}

func TestCString(t *testing.T) {
	p := CString("hello")
	if got := GoString(uintptr(unsafe.Pointer(p))); got != "hello" {
		t.Fatalf("GoString(CString) = %q", got)
	}

	if got := GoString(0); got != "" {
		t.Fatalf("GoString(0) = %q", got)
	}
}

func TestCBytesPassThrough(t *testing.T) {
	b := []byte("abc\x00")
	if p := CBytes(b); p != &b[0] {
		t.Fatal("NUL-terminated input was copied")
	}

	raw := []byte("abc")
	p := CBytes(raw)
	if p == &raw[0] {
		t.Fatal("unterminated input was not copied")
	}
	if got := GoString(uintptr(unsafe.Pointer(p))); got != "abc" {
		t.Fatalf("GoString(CBytes) = %q", got)
	}
}

func TestGoBytes(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	got := GoBytes(uintptr(unsafe.Pointer(&src[0])), 3)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("GoBytes = %v", got)
	}
	if GoBytes(0, 3) != nil {
		t.Fatal("GoBytes(0) should be nil")
	}
}

func TestThreadIDStable(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if a, b := ThreadID(), ThreadID(); a != b {
		t.Fatalf("thread id changed on a locked thread: %d -> %d", a, b)
	}
}

func TestBool(t *testing.T) {
	if !Bool(0x101) {
		t.Fatal("Bool(0x101) should be true")
	}
	if Bool(0x100) {
		t.Fatal("Bool must only look at the low byte")
	}
	if FromBool(true) != 1 || FromBool(false) != 0 {
		t.Fatal("FromBool mismatch")
	}
}
