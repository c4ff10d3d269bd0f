//go:build !linux && !windows

package native

import (
	"sync"

	"github.com/ebitengine/purego"
)

var (
	pthreadSelfOnce sync.Once
	pthreadSelf     uintptr
)

// ThreadID returns an identifier for the calling OS thread, or 0 when the
// platform offers none.
func ThreadID() uint64 {
	pthreadSelfOnce.Do(func() {
		pthreadSelf, _ = purego.Dlsym(purego.RTLD_DEFAULT, "pthread_self")
	})
	if pthreadSelf == 0 {
		return 0
	}
	return uint64(Call(pthreadSelf))
}
