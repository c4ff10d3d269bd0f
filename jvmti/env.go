// Package jvmti binds the JVM Tool Interface.
//
// An Env is obtained from a running VM with GetEnv, or is handed to agent
// callbacks by the JVM. Like a JNI Env it is only usable on JVM threads,
// but unlike one it is not tied to a single thread.
//
// Every function returns the JVMTI error code unchanged as an Error. Memory
// the JVM allocates for results is copied into Go values and released
// before returning.
package jvmti

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/tinyrange/jni"
	"github.com/tinyrange/jni/internal/mutf8"
	"github.com/tinyrange/jni/internal/native"
)

// Env is a jvmtiEnv pointer.
type Env uintptr

// GetEnv returns a JVMTI environment for vm. The calling thread must be
// attached.
func GetEnv(vm jni.VM, version jni.Version) (Env, error) {
	p, err := vm.GetEnvRaw(version)
	if err != nil {
		return 0, fmt.Errorf("jvmti: GetEnv(%v): %w", version, err)
	}
	return Env(p), nil
}

// call invokes JVMTI function number fn.
//
//go:uintptrescapes
func (e Env) call(fn int, args ...uintptr) error {
	return Error(int32(native.CallSlot(uintptr(e), fn-1, args...))).Err()
}

// ---- Memory ----

// Allocate returns size bytes of JVMTI managed memory.
func (e Env) Allocate(size int64) (uintptr, error) {
	var mem uintptr
	err := e.call(fnAllocate, uintptr(size), uintptr(unsafe.Pointer(&mem)))
	return mem, err
}

// Deallocate frees memory returned by Allocate or by another JVMTI
// function.
func (e Env) Deallocate(mem uintptr) error {
	if mem == 0 {
		return nil
	}
	return e.call(fnDeallocate, mem)
}

func decodeString(p uintptr) string {
	if p == 0 {
		return ""
	}
	return mutf8.Decode(native.GoBytes(p, native.Strlen(p)))
}

// takeString decodes a JVMTI allocated string and frees it.
func (e Env) takeString(p uintptr) string {
	s := decodeString(p)
	e.Deallocate(p)
	return s
}

// takeHandles copies a JVMTI allocated array of n handles and frees it.
func (e Env) takeHandles(p uintptr, n int32) []jni.Object {
	if p == 0 {
		return nil
	}
	out := make([]jni.Object, n)
	copy(out, unsafe.Slice((*jni.Object)(unsafe.Pointer(p)), n))
	e.Deallocate(p)
	return out
}

// ---- Environment ----

func (e Env) GetVersionNumber() (jni.Version, error) {
	var v int32
	err := e.call(fnGetVersionNumber, uintptr(unsafe.Pointer(&v)))
	return jni.Version(v), err
}

func (e Env) GetPhase() (Phase, error) {
	var p Phase
	err := e.call(fnGetPhase, uintptr(unsafe.Pointer(&p)))
	return p, err
}

// DisposeEnvironment releases e and everything it holds, including its
// capabilities and environment local storage.
func (e Env) DisposeEnvironment() error {
	if err := e.call(fnDisposeEnvironment); err != nil {
		return err
	}
	localStorage.Release(uintptr(e))
	return nil
}

// GetErrorName asks the JVM for the name of err.
func (e Env) GetErrorName(err Error) (string, error) {
	var p uintptr
	if cerr := e.call(fnGetErrorName, uintptr(err), uintptr(unsafe.Pointer(&p))); cerr != nil {
		return "", cerr
	}
	return e.takeString(p), nil
}

func (e Env) GetAvailableProcessors() (int32, error) {
	var n int32
	err := e.call(fnGetAvailableProcessors, uintptr(unsafe.Pointer(&n)))
	return n, err
}

// GetJNIFunctionTable returns a copy of the current JNI function table.
// The copy must be released with Deallocate.
func (e Env) GetJNIFunctionTable() (uintptr, error) {
	var table uintptr
	err := e.call(fnGetJNIFunctionTable, uintptr(unsafe.Pointer(&table)))
	return table, err
}

// SetJNIFunctionTable replaces the JNI function table of every thread.
func (e Env) SetJNIFunctionTable(table uintptr) error {
	return e.call(fnSetJNIFunctionTable, table)
}

// ---- Capabilities ----

func (e Env) GetPotentialCapabilities() (Capabilities, error) {
	var c Capabilities
	err := e.call(fnGetPotentialCapabilities, uintptr(unsafe.Pointer(&c)))
	return c, err
}

func (e Env) GetCapabilities() (Capabilities, error) {
	var c Capabilities
	err := e.call(fnGetCapabilities, uintptr(unsafe.Pointer(&c)))
	return c, err
}

func (e Env) AddCapabilities(c Capabilities) error {
	return e.call(fnAddCapabilities, uintptr(unsafe.Pointer(&c)))
}

func (e Env) RelinquishCapabilities(c Capabilities) error {
	return e.call(fnRelinquishCapabilities, uintptr(unsafe.Pointer(&c)))
}

// AddPotentialCapabilities adds every capability in want that the JVM can
// provide and returns what was actually added.
func (e Env) AddPotentialCapabilities(want Capabilities) (Capabilities, error) {
	potential, err := e.GetPotentialCapabilities()
	if err != nil {
		return Capabilities{}, err
	}
	granted := want.Intersect(potential)
	if granted.IsZero() {
		return granted, nil
	}
	if err := e.AddCapabilities(granted); err != nil {
		return Capabilities{}, err
	}
	return granted, nil
}

// ---- Events ----

// SetEventCallbacks installs the handlers in cb, replacing all previous
// ones. A nil cb removes every handler.
func (e Env) SetEventCallbacks(cb *EventCallbacks) error {
	size := int32(0)
	if cb != nil {
		size = int32(unsafe.Sizeof(*cb))
	}
	return e.call(fnSetEventCallbacks, uintptr(unsafe.Pointer(cb)), uintptr(size))
}

// SetEventNotificationMode enables or disables ev, for every thread when
// thread is null.
func (e Env) SetEventNotificationMode(mode EventMode, ev Event, thread jni.Object) error {
	return e.call(fnSetEventNotificationMode, uintptr(mode), uintptr(ev), uintptr(thread))
}

// GenerateEvents replays CompiledMethodLoad or DynamicCodeGenerated events
// for the current state of the VM.
func (e Env) GenerateEvents(ev Event) error {
	return e.call(fnGenerateEvents, uintptr(ev))
}

// ---- Threads ----

func (e Env) GetCurrentThread() (jni.Object, error) {
	var t jni.Object
	err := e.call(fnGetCurrentThread, uintptr(unsafe.Pointer(&t)))
	return t, err
}

func (e Env) GetAllThreads() ([]jni.Object, error) {
	var (
		n int32
		p uintptr
	)
	if err := e.call(fnGetAllThreads, uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&p))); err != nil {
		return nil, err
	}
	return e.takeHandles(p, n), nil
}

func (e Env) GetAllModules() ([]jni.Object, error) {
	var (
		n int32
		p uintptr
	)
	if err := e.call(fnGetAllModules, uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&p))); err != nil {
		return nil, err
	}
	return e.takeHandles(p, n), nil
}

// ThreadInfo is the Go form of jvmtiThreadInfo.
type ThreadInfo struct {
	Name               string
	Priority           int32
	IsDaemon           bool
	ThreadGroup        jni.Object
	ContextClassLoader jni.Object
}

type threadInfo struct {
	name     uintptr
	priority int32
	isDaemon uint8
	_        [3]byte
	group    jni.Object
	loader   jni.Object
}

func (e Env) GetThreadInfo(thread jni.Object) (ThreadInfo, error) {
	var info threadInfo
	if err := e.call(fnGetThreadInfo, uintptr(thread), uintptr(unsafe.Pointer(&info))); err != nil {
		return ThreadInfo{}, err
	}
	return ThreadInfo{
		Name:               e.takeString(info.name),
		Priority:           info.priority,
		IsDaemon:           info.isDaemon != 0,
		ThreadGroup:        info.group,
		ContextClassLoader: info.loader,
	}, nil
}

// ---- Stack ----

// FrameInfo is jvmtiFrameInfo.
type FrameInfo struct {
	Method   jni.MethodID
	Location int64
}

func (e Env) GetFrameCount(thread jni.Object) (int32, error) {
	var n int32
	err := e.call(fnGetFrameCount, uintptr(thread), uintptr(unsafe.Pointer(&n)))
	return n, err
}

// GetStackTrace returns up to maxFrames frames of thread starting at depth start.
// A negative start counts from the bottom of the stack.
func (e Env) GetStackTrace(thread jni.Object, start, maxFrames int32) ([]FrameInfo, error) {
	if maxFrames <= 0 {
		return nil, nil
	}
	frames := make([]FrameInfo, maxFrames)
	var n int32
	err := e.call(fnGetStackTrace,
		uintptr(thread),
		uintptr(start),
		uintptr(maxFrames),
		uintptr(unsafe.Pointer(unsafe.SliceData(frames))),
		uintptr(unsafe.Pointer(&n)),
	)
	if err != nil {
		return nil, err
	}
	return frames[:n], nil
}

// ---- Classes and methods ----

func (e Env) GetLoadedClasses() ([]jni.Class, error) {
	var (
		n int32
		p uintptr
	)
	if err := e.call(fnGetLoadedClasses, uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&p))); err != nil {
		return nil, err
	}
	return e.takeHandles(p, n), nil
}

// GetClassSignature returns the JVM type signature of class, e.g.
// "Ljava/lang/String;", and its generic signature if it has one.
func (e Env) GetClassSignature(class jni.Class) (signature, generic string, err error) {
	var sig, gen uintptr
	if err := e.call(fnGetClassSignature, uintptr(class), uintptr(unsafe.Pointer(&sig)), uintptr(unsafe.Pointer(&gen))); err != nil {
		return "", "", err
	}
	return e.takeString(sig), e.takeString(gen), nil
}

func (e Env) GetMethodName(method jni.MethodID) (name, signature, generic string, err error) {
	var n, sig, gen uintptr
	err = e.call(fnGetMethodName,
		uintptr(method),
		uintptr(unsafe.Pointer(&n)),
		uintptr(unsafe.Pointer(&sig)),
		uintptr(unsafe.Pointer(&gen)),
	)
	if err != nil {
		return "", "", "", err
	}
	return e.takeString(n), e.takeString(sig), e.takeString(gen), nil
}

func (e Env) GetMethodDeclaringClass(method jni.MethodID) (jni.Class, error) {
	var class jni.Class
	err := e.call(fnGetMethodDeclaringClass, uintptr(method), uintptr(unsafe.Pointer(&class)))
	return class, err
}

// GetBytecodes requires CanGetBytecodes.
func (e Env) GetBytecodes(method jni.MethodID) ([]byte, error) {
	var (
		n int32
		p uintptr
	)
	if err := e.call(fnGetBytecodes, uintptr(method), uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&p))); err != nil {
		return nil, err
	}
	out := native.GoBytes(p, int(n))
	e.Deallocate(p)
	return out, nil
}

// ClassDefinition is a class and its new class file for RedefineClasses.
type ClassDefinition struct {
	Class jni.Class
	Bytes []byte
}

type classDefinition struct {
	class jni.Class
	count int32
	bytes *byte
}

// RedefineClasses requires CanRedefineClasses.
func (e Env) RedefineClasses(defs ...ClassDefinition) error {
	if len(defs) == 0 {
		return nil
	}
	cdefs := make([]classDefinition, len(defs))
	for i, d := range defs {
		cdefs[i] = classDefinition{class: d.Class, count: int32(len(d.Bytes)), bytes: unsafe.SliceData(d.Bytes)}
	}
	err := e.call(fnRedefineClasses, uintptr(len(cdefs)), uintptr(unsafe.Pointer(unsafe.SliceData(cdefs))))
	runtime.KeepAlive(defs)
	return err
}

// RetransformClasses requires CanRetransformClasses.
func (e Env) RetransformClasses(classes ...jni.Class) error {
	if len(classes) == 0 {
		return nil
	}
	return e.call(fnRetransformClasses, uintptr(len(classes)), uintptr(unsafe.Pointer(unsafe.SliceData(classes))))
}

// AddToSystemClassLoaderSearch appends a JAR file to the system class path.
func (e Env) AddToSystemClassLoaderSearch(path string) error {
	return e.call(fnAddToSystemClassLoaderSearch, uintptr(unsafe.Pointer(cstr(path))))
}

// ---- Objects ----

func (e Env) GetObjectSize(obj jni.Object) (int64, error) {
	var n int64
	err := e.call(fnGetObjectSize, uintptr(obj), uintptr(unsafe.Pointer(&n)))
	return n, err
}

// GetTag requires CanTagObjects.
func (e Env) GetTag(obj jni.Object) (int64, error) {
	var tag int64
	err := e.call(fnGetTag, uintptr(obj), uintptr(unsafe.Pointer(&tag)))
	return tag, err
}

// SetTag requires CanTagObjects.
func (e Env) SetTag(obj jni.Object, tag int64) error {
	return e.call(fnSetTag, uintptr(obj), uintptr(tag))
}

// ---- System properties ----

func (e Env) GetSystemProperties() ([]string, error) {
	var (
		n int32
		p uintptr
	)
	if err := e.call(fnGetSystemProperties, uintptr(unsafe.Pointer(&n)), uintptr(unsafe.Pointer(&p))); err != nil {
		return nil, err
	}
	if p == 0 {
		return nil, nil
	}
	ptrs := unsafe.Slice((*uintptr)(unsafe.Pointer(p)), n)
	out := make([]string, n)
	for i, s := range ptrs {
		out[i] = e.takeString(s)
	}
	e.Deallocate(p)
	return out, nil
}

func (e Env) GetSystemProperty(name string) (string, error) {
	var p uintptr
	if err := e.call(fnGetSystemProperty, uintptr(unsafe.Pointer(cstr(name))), uintptr(unsafe.Pointer(&p))); err != nil {
		return "", err
	}
	return e.takeString(p), nil
}

// SetSystemProperty may only be called in the OnLoad phase.
func (e Env) SetSystemProperty(name, value string) error {
	return e.call(fnSetSystemProperty, uintptr(unsafe.Pointer(cstr(name))), uintptr(unsafe.Pointer(cstr(value))))
}

// ---- Timers ----

func (e Env) GetTime() (int64, error) {
	var t int64
	err := e.call(fnGetTime, uintptr(unsafe.Pointer(&t)))
	return t, err
}

func (e Env) GetTimerInfo() (TimerInfo, error) {
	var info TimerInfo
	err := e.call(fnGetTimerInfo, uintptr(unsafe.Pointer(&info)))
	return info, err
}

// GetCurrentThreadCpuTime requires CanGetCurrentThreadCPUTime.
func (e Env) GetCurrentThreadCpuTime() (int64, error) {
	var t int64
	err := e.call(fnGetCurrentThreadCpuTime, uintptr(unsafe.Pointer(&t)))
	return t, err
}

func (e Env) GetCurrentThreadCpuTimerInfo() (TimerInfo, error) {
	var info TimerInfo
	err := e.call(fnGetCurrentThreadCpuTimerInfo, uintptr(unsafe.Pointer(&info)))
	return info, err
}

func cstr(s string) *byte {
	b := mutf8.EncodeCString(s)
	return &b[0]
}
