// Package shutdowntest destroys its JVM, so it lives apart from the tests
// that need one to stay up.
package shutdowntest

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/tinyrange/jni"
)

func TestDestroyWaitsForAttachedThread(t *testing.T) {
	if err := jni.EnsureLoaded(); err != nil {
		t.Skipf("JVM not available: %v", err)
	}

	created := make(chan jni.VM, 1)
	startDestroy := make(chan struct{})
	destroyed := make(chan error, 1)
	createErr := make(chan error, 1)

	// The thread that creates the JVM also destroys it.
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		vm, _, err := jni.CreateJavaVMWithOptions(jni.Version1_8, []string{"-Xrs"}, false)
		if err != nil {
			createErr <- err
			return
		}
		created <- vm
		<-startDestroy
		destroyed <- vm.DestroyJavaVM()
	}()

	var vm jni.VM
	select {
	case err := <-createErr:
		t.Skipf("JVM not available: %v", err)
	case vm = <-created:
	}

	attached := make(chan struct{})
	release := make(chan struct{})
	detached := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if _, err := vm.AttachCurrentThread(jni.Version1_8, "shutdown-test", 0); err != nil {
			detached <- err
			close(attached)
			return
		}
		close(attached)
		<-release
		detached <- vm.DetachCurrentThread()
	}()
	<-attached

	// Start the shutdown while the second thread is still attached.
	close(startDestroy)

	select {
	case err := <-destroyed:
		if err != nil {
			close(release)
			t.Skipf("DestroyJavaVM not supported here: %v", err)
		}
		t.Fatalf("DestroyJavaVM returned while another thread was attached")
	case <-time.After(500 * time.Millisecond):
	}

	close(release)
	if err := <-detached; err != nil {
		t.Fatalf("detach: %v", err)
	}

	select {
	case err := <-destroyed:
		var status jni.Status
		if err != nil && errors.As(err, &status) {
			t.Logf("DestroyJavaVM returned %v after the last thread detached", status)
		}
	case <-time.After(30 * time.Second):
		t.Fatalf("DestroyJavaVM did not return after the last thread detached")
	}
}
