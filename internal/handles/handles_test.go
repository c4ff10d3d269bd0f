package handles

import (
	"sync"
	"testing"
)

func TestTablePutTake(t *testing.T) {
	var tab Table[string]
	h := tab.Put(1, "storage")
	if h == 0 {
		t.Fatal("token 0 issued")
	}
	if v, ok := tab.Get(h); !ok || v != "storage" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
	if v, ok := tab.Take(h); !ok || v != "storage" {
		t.Fatalf("Take = %q, %v", v, ok)
	}
	if _, ok := tab.Take(h); ok {
		t.Fatal("second Take returned a value")
	}
	if _, ok := tab.Get(0); ok {
		t.Fatal("Get(0) returned a value")
	}
	if n := tab.Len(); n != 0 {
		t.Fatalf("Len = %d after Take", n)
	}
}

func TestTableReleaseOwner(t *testing.T) {
	var tab Table[int]
	a1 := tab.Put(0xa, 1)
	a2 := tab.Put(0xa, 2)
	b := tab.Put(0xb, 3)

	if _, ok := tab.Take(a1); !ok {
		t.Fatal("Take(a1) failed")
	}
	if n := tab.Release(0xa); n != 1 {
		t.Fatalf("Release(a) freed %d tokens, want 1", n)
	}
	if _, ok := tab.Get(a2); ok {
		t.Fatal("a2 survived its owner's release")
	}
	if v, ok := tab.Get(b); !ok || v != 3 {
		t.Fatalf("other owner's token lost: %v, %v", v, ok)
	}
	if n := tab.Release(0xa); n != 0 {
		t.Fatalf("second Release freed %d tokens", n)
	}
}

func TestTableFuncValues(t *testing.T) {
	var tab Table[func() int]
	h := tab.Put(7, func() int { return 42 })
	fn, ok := tab.Take(h)
	if !ok {
		t.Fatal("Take lost the function")
	}
	if got := fn(); got != 42 {
		t.Fatalf("fn() = %d, want 42", got)
	}
}

func TestTableConcurrent(t *testing.T) {
	const (
		numGoroutines = 16
		numOps        = 500
	)

	var (
		tab Table[int]
		wg  sync.WaitGroup
	)
	seen := make([][]uintptr, numGoroutines)
	for g := range numGoroutines {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range numOps {
				h := tab.Put(uintptr(g), g*numOps+i)
				seen[g] = append(seen[g], h)
				if v, ok := tab.Get(h); !ok || v != g*numOps+i {
					t.Errorf("token %d: got %v", h, v)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	unique := make(map[uintptr]bool)
	for _, hs := range seen {
		for _, h := range hs {
			if unique[h] {
				t.Fatalf("token %d issued twice", h)
			}
			unique[h] = true
		}
	}
	for g := range numGoroutines {
		if n := tab.Release(uintptr(g)); n != numOps {
			t.Fatalf("Release(%d) = %d, want %d", g, n, numOps)
		}
	}
	if n := tab.Len(); n != 0 {
		t.Fatalf("Len = %d after releasing every owner", n)
	}
}
