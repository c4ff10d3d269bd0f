// Package jni is a thin binding to the Java Native Interface.
//
// It mirrors the C API as closely as Go allows: every JNIEnv and JavaVM
// function is a method on Env or VM with the same name and parameter order,
// handles are raw uintptr values, and status codes are returned unchanged.
// No attempt is made to make JNI safe. Passing a handle of the wrong kind,
// an argument list that does not match a method signature, or using an Env
// from another OS thread is undefined behaviour, exactly as in C.
//
// # Loading
//
// The JVM shared library is located and bound once per process:
//
//	if err := jni.LoadJavaHome(); err != nil {
//		return err
//	}
//	vm, env, err := jni.CreateJavaVMWithOptions(jni.Version1_8, nil, false)
//
// Building with the jni_prelinked tag switches to a mode where the JVM
// symbols are resolved by the linker, for code that is itself loaded by a
// JVM.
//
// # Threads
//
// An Env belongs to the OS thread that obtained it. Goroutines move between
// threads, so code using an Env must call runtime.LockOSThread first. VM.Do
// does this and attaches/detaches the thread as needed.
//
// The JVM installs its own signal handlers. Passing -Xrs keeps it away from
// the shutdown signals the Go runtime also handles.
//
// # Checked mode
//
// Building with the jni_checks tag verifies, before each call that requires
// it, that no exception is pending and that the Env is used on its own
// thread. Violations are logged with slog and panic. Checked mode cannot be
// combined with the JVM's -Xcheck:jni.
package jni
