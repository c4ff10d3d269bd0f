package jni

import (
	"errors"
	"fmt"
)

// Object is an opaque JVM reference. The zero value is the null reference.
//
// All reference kinds are aliases of Object. The binding does not track which
// kind a value is; passing the right kind to each function is up to the
// caller.
type Object uintptr

type (
	Class     = Object
	String    = Object
	Throwable = Object
	Array     = Object
	Weak      = Object
	MethodID  = Object
	FieldID   = Object
)

// IsNull reports whether o is the null reference.
func (o Object) IsNull() bool { return o == 0 }

// Status is a JNI status code (jint).
type Status int32

const (
	OK        Status = 0
	ERR       Status = -1
	EDETACHED Status = -2
	EVERSION  Status = -3
	ENOMEM    Status = -4
	EEXIST    Status = -5
	EINVAL    Status = -6
)

// Release modes for Release<Type>ArrayElements.
const (
	Commit int32 = 1
	Abort  int32 = 2
)

func (s Status) Error() string {
	switch s {
	case OK:
		return "ok"
	case ERR:
		return "unknown error"
	case EDETACHED:
		return "thread detached from the VM"
	case EVERSION:
		return "JNI version error"
	case ENOMEM:
		return "not enough memory"
	case EEXIST:
		return "VM already created"
	case EINVAL:
		return "invalid arguments"
	default:
		return fmt.Sprintf("unknown status: %d", int32(s))
	}
}

// Err returns nil for OK and s otherwise.
func (s Status) Err() error {
	if s == OK {
		return nil
	}
	return s
}

// AsStatus extracts a Status from err.
func AsStatus(err error) (Status, bool) {
	var s Status
	if errors.As(err, &s) {
		return s, true
	}
	return 0, false
}

// Version is a JNI interface version. JVMTI versions share the type since
// both are requested through VM.GetEnv.
type Version int32

// versionInterfaceMask holds the interface type bits. They are zero for JNI
// and 0x30000000 for JVMTI, which also keeps its minor number in bits 8-15.
const versionInterfaceMask = 0x70000000

const (
	Version1_1 Version = 0x00010001
	Version1_2 Version = 0x00010002
	Version1_4 Version = 0x00010004
	Version1_6 Version = 0x00010006
	Version1_8 Version = 0x00010008
	Version9   Version = 0x00090000
	Version10  Version = 0x000a0000
	Version19  Version = 0x00130000
	Version20  Version = 0x00140000
	Version21  Version = 0x00150000
	Version24  Version = 0x00180000
)

func (v Version) String() string {
	major := int32(v) >> 16 & 0x0fff
	minor := int32(v) & 0xffff
	if v&versionInterfaceMask != 0 {
		minor = int32(v) >> 8 & 0xff
	}
	if major == 1 {
		return fmt.Sprintf("1.%d", minor)
	}
	return fmt.Sprintf("%d", major)
}

// RefType is jobjectRefType.
type RefType int32

const (
	InvalidRefType    RefType = 0
	LocalRefType      RefType = 1
	GlobalRefType     RefType = 2
	WeakGlobalRefType RefType = 3
)

func (r RefType) String() string {
	switch r {
	case InvalidRefType:
		return "invalid"
	case LocalRefType:
		return "local"
	case GlobalRefType:
		return "global"
	case WeakGlobalRefType:
		return "weak global"
	default:
		return fmt.Sprintf("unknown ref type: %d", int32(r))
	}
}
