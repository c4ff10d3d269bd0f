package jvmti

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tinyrange/jni"
)

func TestErrorNames(t *testing.T) {
	tests := map[Error]string{
		ErrNone:                  "JVMTI_ERROR_NONE",
		ErrInvalidThread:         "JVMTI_ERROR_INVALID_THREAD",
		ErrInvalidMethodID:       "JVMTI_ERROR_INVALID_METHODID",
		ErrInvalidTypestate:      "JVMTI_ERROR_INVALID_TYPESTATE",
		ErrMustPossessCapability: "JVMTI_ERROR_MUST_POSSESS_CAPABILITY",
		ErrWrongPhase:            "JVMTI_ERROR_WRONG_PHASE",
		ErrInvalidEnvironment:    "JVMTI_ERROR_INVALID_ENVIRONMENT",
	}
	for code, want := range tests {
		if got := code.Name(); got != want {
			t.Fatalf("Error(%d).Name() = %q, want %q", int32(code), got, want)
		}
	}
	for code, name := range errorNames {
		if !strings.HasPrefix(name, "JVMTI_ERROR_") || !strings.Contains(code.Error(), name) {
			t.Fatalf("Error(%d) renders as %q", int32(code), code.Error())
		}
	}
	if got := Error(9999).Error(); !strings.Contains(got, "9999") {
		t.Fatalf("unknown error renders as %q", got)
	}
}

func TestErrorErr(t *testing.T) {
	if ErrNone.Err() != nil {
		t.Fatalf("ErrNone.Err() should be nil")
	}
	err := fmt.Errorf("GetTag: %w", ErrMustPossessCapability.Err())
	if !errors.Is(err, ErrMustPossessCapability) {
		t.Fatalf("wrapped error lost: %v", err)
	}
	code, ok := AsError(err)
	if !ok || code != ErrMustPossessCapability {
		t.Fatalf("AsError = %v, %v", code, ok)
	}
}

func TestEventCallbacks(t *testing.T) {
	var cb EventCallbacks
	if len(cb) != 39 {
		t.Fatalf("jvmtiEventCallbacks has %d slots, want 39", len(cb))
	}
	if !cb.Set(EventVMInit, 0x10) || !cb.Set(EventVirtualThreadEnd, 0x20) {
		t.Fatalf("Set rejected a known event")
	}
	if cb.Set(Event(72), 0x30) || cb.Set(Event(49), 0x30) || cb.Set(Event(89), 0x30) {
		t.Fatalf("Set accepted a reserved or out of range event")
	}
	if cb[0] != 0x10 || cb[38] != 0x20 {
		t.Fatalf("callbacks landed in the wrong slots: %v", cb)
	}
	if got := cb.Events(); len(got) != 2 || got[0] != EventVMInit || got[1] != EventVirtualThreadEnd {
		t.Fatalf("Events = %v", got)
	}
	if cb.Get(EventClassLoad) != 0 || cb.Get(Event(100)) != 0 {
		t.Fatalf("Get returned a handler for an unset event")
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		v    jni.Version
		want string
	}{
		{Version1_0, "1.0"},
		{Version1_1, "1.1"},
		{Version1_2, "1.2"},
		{Version11, "11"},
		{Version21, "21"},
	}
	for _, tt := range tests {
		if got := fmt.Sprint(tt.v); got != tt.want {
			t.Fatalf("%#x printed as %q, want %q", int32(tt.v), got, tt.want)
		}
	}
}
