//go:build linux

package native

import "golang.org/x/sys/unix"

// ThreadID returns an identifier for the calling OS thread.
func ThreadID() uint64 {
	return uint64(unix.Gettid())
}
