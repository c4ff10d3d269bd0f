package jvmti

import (
	"errors"
	"fmt"
)

// Error is a jvmtiError. Every JVMTI function returns one; ErrNone is success.
type Error int32

const (
	ErrNone                                          Error = 0
	ErrInvalidThread                                 Error = 10
	ErrInvalidThreadGroup                            Error = 11
	ErrInvalidPriority                               Error = 12
	ErrThreadNotSuspended                            Error = 13
	ErrThreadSuspended                               Error = 14
	ErrThreadNotAlive                                Error = 15
	ErrInvalidObject                                 Error = 20
	ErrInvalidClass                                  Error = 21
	ErrClassNotPrepared                              Error = 22
	ErrInvalidMethodID                               Error = 23
	ErrInvalidLocation                               Error = 24
	ErrInvalidFieldID                                Error = 25
	ErrInvalidModule                                 Error = 26
	ErrNoMoreFrames                                  Error = 31
	ErrOpaqueFrame                                   Error = 32
	ErrTypeMismatch                                  Error = 34
	ErrInvalidSlot                                   Error = 35
	ErrDuplicate                                     Error = 40
	ErrNotFound                                      Error = 41
	ErrInvalidMonitor                                Error = 50
	ErrNotMonitorOwner                               Error = 51
	ErrInterrupt                                     Error = 52
	ErrInvalidClassFormat                            Error = 60
	ErrCircularClassDefinition                       Error = 61
	ErrFailsVerification                             Error = 62
	ErrUnsupportedRedefinitionMethodAdded            Error = 63
	ErrUnsupportedRedefinitionSchemaChanged          Error = 64
	ErrInvalidTypestate                              Error = 65
	ErrUnsupportedRedefinitionHierarchyChanged       Error = 66
	ErrUnsupportedRedefinitionMethodDeleted          Error = 67
	ErrUnsupportedVersion                            Error = 68
	ErrNamesDontMatch                                Error = 69
	ErrUnsupportedRedefinitionClassModifiersChanged  Error = 70
	ErrUnsupportedRedefinitionMethodModifiersChanged Error = 71
	ErrUnsupportedRedefinitionClassAttributeChanged  Error = 72
	ErrUnsupportedOperation                          Error = 73
	ErrUnmodifiableClass                             Error = 79
	ErrUnmodifiableModule                            Error = 80
	ErrNotAvailable                                  Error = 98
	ErrMustPossessCapability                         Error = 99
	ErrNullPointer                                   Error = 100
	ErrAbsentInformation                             Error = 101
	ErrInvalidEventType                              Error = 102
	ErrIllegalArgument                               Error = 103
	ErrNativeMethod                                  Error = 104
	ErrClassLoaderUnsupported                        Error = 106
	ErrOutOfMemory                                   Error = 110
	ErrAccessDenied                                  Error = 111
	ErrWrongPhase                                    Error = 112
	ErrInternal                                      Error = 113
	ErrUnattachedThread                              Error = 115
	ErrInvalidEnvironment                            Error = 116
)

var errorNames = map[Error]string{
	ErrNone:                                          "JVMTI_ERROR_NONE",
	ErrInvalidThread:                                 "JVMTI_ERROR_INVALID_THREAD",
	ErrInvalidThreadGroup:                            "JVMTI_ERROR_INVALID_THREAD_GROUP",
	ErrInvalidPriority:                               "JVMTI_ERROR_INVALID_PRIORITY",
	ErrThreadNotSuspended:                            "JVMTI_ERROR_THREAD_NOT_SUSPENDED",
	ErrThreadSuspended:                               "JVMTI_ERROR_THREAD_SUSPENDED",
	ErrThreadNotAlive:                                "JVMTI_ERROR_THREAD_NOT_ALIVE",
	ErrInvalidObject:                                 "JVMTI_ERROR_INVALID_OBJECT",
	ErrInvalidClass:                                  "JVMTI_ERROR_INVALID_CLASS",
	ErrClassNotPrepared:                              "JVMTI_ERROR_CLASS_NOT_PREPARED",
	ErrInvalidMethodID:                               "JVMTI_ERROR_INVALID_METHODID",
	ErrInvalidLocation:                               "JVMTI_ERROR_INVALID_LOCATION",
	ErrInvalidFieldID:                                "JVMTI_ERROR_INVALID_FIELDID",
	ErrInvalidModule:                                 "JVMTI_ERROR_INVALID_MODULE",
	ErrNoMoreFrames:                                  "JVMTI_ERROR_NO_MORE_FRAMES",
	ErrOpaqueFrame:                                   "JVMTI_ERROR_OPAQUE_FRAME",
	ErrTypeMismatch:                                  "JVMTI_ERROR_TYPE_MISMATCH",
	ErrInvalidSlot:                                   "JVMTI_ERROR_INVALID_SLOT",
	ErrDuplicate:                                     "JVMTI_ERROR_DUPLICATE",
	ErrNotFound:                                      "JVMTI_ERROR_NOT_FOUND",
	ErrInvalidMonitor:                                "JVMTI_ERROR_INVALID_MONITOR",
	ErrNotMonitorOwner:                               "JVMTI_ERROR_NOT_MONITOR_OWNER",
	ErrInterrupt:                                     "JVMTI_ERROR_INTERRUPT",
	ErrInvalidClassFormat:                            "JVMTI_ERROR_INVALID_CLASS_FORMAT",
	ErrCircularClassDefinition:                       "JVMTI_ERROR_CIRCULAR_CLASS_DEFINITION",
	ErrFailsVerification:                             "JVMTI_ERROR_FAILS_VERIFICATION",
	ErrUnsupportedRedefinitionMethodAdded:            "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_METHOD_ADDED",
	ErrUnsupportedRedefinitionSchemaChanged:          "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_SCHEMA_CHANGED",
	ErrInvalidTypestate:                              "JVMTI_ERROR_INVALID_TYPESTATE",
	ErrUnsupportedRedefinitionHierarchyChanged:       "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_HIERARCHY_CHANGED",
	ErrUnsupportedRedefinitionMethodDeleted:          "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_METHOD_DELETED",
	ErrUnsupportedVersion:                            "JVMTI_ERROR_UNSUPPORTED_VERSION",
	ErrNamesDontMatch:                                "JVMTI_ERROR_NAMES_DONT_MATCH",
	ErrUnsupportedRedefinitionClassModifiersChanged:  "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_CLASS_MODIFIERS_CHANGED",
	ErrUnsupportedRedefinitionMethodModifiersChanged: "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_METHOD_MODIFIERS_CHANGED",
	ErrUnsupportedRedefinitionClassAttributeChanged:  "JVMTI_ERROR_UNSUPPORTED_REDEFINITION_CLASS_ATTRIBUTE_CHANGED",
	ErrUnsupportedOperation:                          "JVMTI_ERROR_UNSUPPORTED_OPERATION",
	ErrUnmodifiableClass:                             "JVMTI_ERROR_UNMODIFIABLE_CLASS",
	ErrUnmodifiableModule:                            "JVMTI_ERROR_UNMODIFIABLE_MODULE",
	ErrNotAvailable:                                  "JVMTI_ERROR_NOT_AVAILABLE",
	ErrMustPossessCapability:                         "JVMTI_ERROR_MUST_POSSESS_CAPABILITY",
	ErrNullPointer:                                   "JVMTI_ERROR_NULL_POINTER",
	ErrAbsentInformation:                             "JVMTI_ERROR_ABSENT_INFORMATION",
	ErrInvalidEventType:                              "JVMTI_ERROR_INVALID_EVENT_TYPE",
	ErrIllegalArgument:                               "JVMTI_ERROR_ILLEGAL_ARGUMENT",
	ErrNativeMethod:                                  "JVMTI_ERROR_NATIVE_METHOD",
	ErrClassLoaderUnsupported:                        "JVMTI_ERROR_CLASS_LOADER_UNSUPPORTED",
	ErrOutOfMemory:                                   "JVMTI_ERROR_OUT_OF_MEMORY",
	ErrAccessDenied:                                  "JVMTI_ERROR_ACCESS_DENIED",
	ErrWrongPhase:                                    "JVMTI_ERROR_WRONG_PHASE",
	ErrInternal:                                      "JVMTI_ERROR_INTERNAL",
	ErrUnattachedThread:                              "JVMTI_ERROR_UNATTACHED_THREAD",
	ErrInvalidEnvironment:                            "JVMTI_ERROR_INVALID_ENVIRONMENT",
}

// Name returns the C constant name of e, or "" for codes this package does
// not know. Env.GetErrorName asks the JVM instead.
func (e Error) Name() string {
	return errorNames[e]
}

func (e Error) Error() string {
	if name, ok := errorNames[e]; ok {
		return "jvmti: " + name
	}
	return fmt.Sprintf("jvmti: unknown error %d", int32(e))
}

// Err returns nil for ErrNone and e otherwise.
func (e Error) Err() error {
	if e == ErrNone {
		return nil
	}
	return e
}

// AsError extracts an Error from err.
func AsError(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return ErrNone, false
}
