// Package handles hands out tokens for Go values that native code carries as
// a void* and passes back later. Every token has an owner, typically the
// jvmtiEnv it was given to, and Release drops all tokens an owner still holds.
package handles

import "sync"

type entry[T any] struct {
	owner uintptr
	value T
}

// Table maps tokens to values of type T. The zero value is ready to use.
// Token 0 is never issued so it can stand for a native null.
type Table[T any] struct {
	mu      sync.Mutex
	last    uintptr
	entries map[uintptr]entry[T]
	byOwner map[uintptr]map[uintptr]struct{}
}

// Put stores v for owner and returns its token.
func (t *Table[T]) Put(owner uintptr, v T) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.entries == nil {
		t.entries = make(map[uintptr]entry[T])
		t.byOwner = make(map[uintptr]map[uintptr]struct{})
	}
	t.last++
	h := t.last
	t.entries[h] = entry[T]{owner: owner, value: v}
	set := t.byOwner[owner]
	if set == nil {
		set = make(map[uintptr]struct{})
		t.byOwner[owner] = set
	}
	set[h] = struct{}{}
	return h
}

// Get returns the value behind h.
func (t *Table[T]) Get(h uintptr) (T, bool) {
	t.mu.Lock()
	e, ok := t.entries[h]
	t.mu.Unlock()
	return e.value, ok
}

// Take removes h and returns the value it held.
func (t *Table[T]) Take(h uintptr) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[h]
	if !ok {
		return e.value, false
	}
	t.drop(h, e.owner)
	return e.value, true
}

// Release removes every token held by owner and reports how many there were.
func (t *Table[T]) Release(owner uintptr) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	set := t.byOwner[owner]
	for h := range set {
		delete(t.entries, h)
	}
	delete(t.byOwner, owner)
	return len(set)
}

// Len returns the number of live tokens.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

func (t *Table[T]) drop(h, owner uintptr) {
	delete(t.entries, h)
	if set := t.byOwner[owner]; set != nil {
		delete(set, h)
		if len(set) == 0 {
			delete(t.byOwner, owner)
		}
	}
}
