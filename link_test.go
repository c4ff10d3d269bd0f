package jni

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"
)

func TestLinkerConcurrentInit(t *testing.T) {
	var (
		l        linker
		resolves atomic.Int32
		wg       sync.WaitGroup
	)
	const n = 32
	errs := make([]error, n)
	start := make(chan struct{})

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = l.init(func() (*link, error) {
				resolves.Add(1)
				return &link{createJavaVM: 0x1000, getCreatedJavaVMs: 0x2000, source: "test"}, nil
			})
		}()
	}
	close(start)
	wg.Wait()

	if got := resolves.Load(); got != 1 {
		t.Fatalf("resolved %d times, want 1", got)
	}
	winners := 0
	for i, err := range errs {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrAlreadyLoaded):
		default:
			t.Fatalf("goroutine %d: unexpected error %v", i, err)
		}
	}
	if winners != 1 {
		t.Fatalf("%d goroutines won the init, want 1", winners)
	}
	ln := l.get()
	if ln == nil || ln.createJavaVM != 0x1000 || ln.getCreatedJavaVMs != 0x2000 {
		t.Fatalf("unexpected link %+v", ln)
	}
}

func TestLinkerFailedResolveRetries(t *testing.T) {
	var l linker
	boom := errors.New("boom")
	if err := l.init(func() (*link, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("init error = %v, want boom", err)
	}
	if l.get() != nil {
		t.Fatalf("failed init published a link")
	}
	if err := l.init(func() (*link, error) { return &link{createJavaVM: 1, getCreatedJavaVMs: 2}, nil }); err != nil {
		t.Fatalf("retry: %v", err)
	}
	first := l.get()
	if err := l.init(func() (*link, error) { return &link{createJavaVM: 3, getCreatedJavaVMs: 4}, nil }); !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("second init error = %v, want ErrAlreadyLoaded", err)
	}
	if l.get() != first {
		t.Fatalf("link replaced after init")
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	err := error(&LoadError{Op: "lookup", Path: "/x/libjvm.so", Err: ErrSymbolNotFound})
	if !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("LoadError does not unwrap to its cause")
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Op != "lookup" {
		t.Fatalf("errors.As failed on %v", err)
	}
}

func TestCreateJavaVMNilArgs(t *testing.T) {
	_, _, err := CreateJavaVM(nil)
	if !errors.Is(err, EINVAL) {
		t.Fatalf("CreateJavaVM(nil) = %v, want EINVAL", err)
	}
}

func TestWordSize(t *testing.T) {
	if n := unsafe.Sizeof(uintptr(0)); n != 8 {
		t.Fatalf("uintptr is %d bytes, jlong needs 8", n)
	}
}
