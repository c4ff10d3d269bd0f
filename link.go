package jni

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

var (
	// ErrAlreadyLoaded is returned when the JVM entry points have already
	// been resolved, including when they were provided by the linker.
	ErrAlreadyLoaded = errors.New("jni: JVM library already loaded")

	// ErrNotLoaded is returned by functions that need the JVM entry points
	// before any of the load functions succeeded.
	ErrNotLoaded = errors.New("jni: JVM library not loaded")

	ErrSymbolNotFound        = errors.New("jni: symbol not found")
	ErrJavaHomeUnset         = errors.New("jni: JAVA_HOME is not set")
	ErrUnknownJavaHomeLayout = errors.New("jni: no JVM library found in JAVA_HOME")
)

// LoadError describes a failure to load or bind the JVM library.
type LoadError struct {
	Op   string // "open", "lookup" or "stat"
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("jni: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// link holds the two process-wide entry points. It is never modified once
// published.
type link struct {
	createJavaVM      uintptr
	getCreatedJavaVMs uintptr
	source            string
}

// linker publishes a link at most once. Readers never take the lock.
type linker struct {
	mu  sync.Mutex
	cur atomic.Pointer[link]
}

func (l *linker) get() *link { return l.cur.Load() }

// init runs resolve and publishes its result unless a link already exists.
// resolve runs at most once across all successful calls.
func (l *linker) init(resolve func() (*link, error)) error {
	if l.cur.Load() != nil {
		return ErrAlreadyLoaded
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cur.Load() != nil {
		return ErrAlreadyLoaded
	}

	ln, err := resolve()
	if err != nil {
		return err
	}
	l.cur.Store(ln)
	slog.Debug("jni: entry points bound", "source", ln.source)
	return nil
}

var std linker

// IsLoaded reports whether the JVM entry points are available.
func IsLoaded() bool { return std.get() != nil }

func loaded() (*link, error) {
	ln := std.get()
	if ln == nil {
		return nil, ErrNotLoaded
	}
	return ln, nil
}

// EnsureLoaded loads the JVM from JAVA_HOME unless it is already loaded.
// Losing a race against another loader counts as success.
func EnsureLoaded() error {
	if IsLoaded() {
		return nil
	}
	if err := LoadJavaHome(); err != nil && !errors.Is(err, ErrAlreadyLoaded) {
		return err
	}
	return nil
}

func manualLink(createJavaVM, getCreatedJavaVMs uintptr) bool {
	if createJavaVM == 0 || getCreatedJavaVMs == 0 {
		panic("jni: InitLink called with a null function pointer")
	}
	err := std.init(func() (*link, error) {
		return &link{
			createJavaVM:      createJavaVM,
			getCreatedJavaVMs: getCreatedJavaVMs,
			source:            "manual",
		}, nil
	})
	return err == nil
}
