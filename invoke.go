package jni

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"unsafe"

	"github.com/tinyrange/jni/internal/native"
)

// InitArgs is JavaVMInitArgs.
type InitArgs struct {
	Version            Version
	NOptions           int32
	Options            *VMOption
	IgnoreUnrecognized uint8
}

// VMOption is JavaVMOption. OptionString is a NUL-terminated modified UTF-8
// string such as "-Xmx256m" or "-Djava.class.path=app.jar".
type VMOption struct {
	OptionString *byte
	ExtraInfo    unsafe.Pointer
}

// NewInitArgs builds InitArgs from Go strings. The returned value keeps its
// option strings alive for as long as it is reachable.
func NewInitArgs(version Version, options []string, ignoreUnrecognized bool) *InitArgs {
	args := &InitArgs{Version: version, NOptions: int32(len(options))}
	if ignoreUnrecognized {
		args.IgnoreUnrecognized = 1
	}
	if len(options) > 0 {
		opts := make([]VMOption, len(options))
		for i, o := range options {
			opts[i].OptionString = cstr(o)
		}
		args.Options = &opts[0]
	}
	return args
}

func (a *InitArgs) options() []VMOption {
	if a.Options == nil || a.NOptions <= 0 {
		return nil
	}
	return unsafe.Slice(a.Options, a.NOptions)
}

// CreateJavaVM creates a JVM and attaches the calling thread to it. The
// returned Env belongs to the current OS thread, so the caller should have
// locked its goroutine to it beforehand.
//
// A process can host at most one JVM, and a destroyed JVM cannot be
// recreated.
func CreateJavaVM(args *InitArgs) (VM, Env, error) {
	if args == nil {
		return 0, 0, fmt.Errorf("jni: JNI_CreateJavaVM: nil init args: %w", EINVAL)
	}
	ln, err := loaded()
	if err != nil {
		return 0, 0, err
	}
	if checksEnabled {
		for _, o := range args.options() {
			if opt := native.GoString(uintptr(unsafe.Pointer(o.OptionString))); strings.HasPrefix(opt, "-Xcheck:jni") {
				return 0, 0, fmt.Errorf("%w: %s", ErrCheckedJNIConflict, opt)
			}
		}
	}

	var (
		vm  VM
		env Env
	)
	status := Status(int32(native.Call(ln.createJavaVM,
		uintptr(unsafe.Pointer(&vm)),
		uintptr(unsafe.Pointer(&env)),
		uintptr(unsafe.Pointer(args)),
	)))
	runtime.KeepAlive(args)
	if status != OK {
		return 0, 0, fmt.Errorf("jni: JNI_CreateJavaVM: %w", status)
	}

	trackEnv(env)
	slog.Debug("jni: created JVM", "version", args.Version, "options", args.NOptions)
	return vm, env, nil
}

// CreateJavaVMWithOptions creates a JVM from Go option strings.
func CreateJavaVMWithOptions(version Version, options []string, ignoreUnrecognized bool) (VM, Env, error) {
	args := NewInitArgs(version, options, ignoreUnrecognized)
	vm, env, err := CreateJavaVM(args)
	runtime.KeepAlive(args)
	return vm, env, err
}

// GetCreatedJavaVMs returns every JVM created in this process. The JVM is
// asked each time, nothing is cached.
func GetCreatedJavaVMs() ([]VM, error) {
	ln, err := loaded()
	if err != nil {
		return nil, err
	}

	buf := make([]VM, 64)
	for {
		var n int32
		status := Status(int32(native.Call(ln.getCreatedJavaVMs,
			uintptr(unsafe.Pointer(unsafe.SliceData(buf))),
			uintptr(len(buf)),
			uintptr(unsafe.Pointer(&n)),
		)))
		if status != OK {
			return nil, fmt.Errorf("jni: JNI_GetCreatedJavaVMs: %w", status)
		}
		if int(n) <= len(buf) {
			return buf[:n], nil
		}
		buf = make([]VM, n)
	}
}

// GetCreatedJavaVM returns the JVM of this process, if one was created.
func GetCreatedJavaVM() (VM, bool, error) {
	vms, err := GetCreatedJavaVMs()
	if err != nil || len(vms) == 0 {
		return 0, false, err
	}
	return vms[0], true, nil
}
