//go:build windows

package native

import "golang.org/x/sys/windows"

// ThreadID returns an identifier for the calling OS thread.
func ThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
