package jvmti

import (
	"fmt"

	"github.com/tinyrange/jni"
)

// JVMTI interface versions, passed to GetEnv.
const (
	Version1_0 jni.Version = 0x30010000
	Version1_1 jni.Version = 0x30010100
	Version1_2 jni.Version = 0x30010200
	Version9   jni.Version = 0x30090000
	Version11  jni.Version = 0x300B0000
	Version19  jni.Version = 0x30130000
	Version21  jni.Version = 0x30150000
)

// Phase is jvmtiPhase.
type Phase int32

const (
	PhaseOnLoad     Phase = 1
	PhasePrimordial Phase = 2
	PhaseStart      Phase = 6
	PhaseLive       Phase = 4
	PhaseDead       Phase = 8
)

func (p Phase) String() string {
	switch p {
	case PhaseOnLoad:
		return "onload"
	case PhasePrimordial:
		return "primordial"
	case PhaseStart:
		return "start"
	case PhaseLive:
		return "live"
	case PhaseDead:
		return "dead"
	default:
		return fmt.Sprintf("phase(%d)", int32(p))
	}
}

// EventMode is jvmtiEventMode.
type EventMode int32

const (
	Disable EventMode = 0
	Enable  EventMode = 1
)

// TimerKind is jvmtiTimerKind.
type TimerKind int32

const (
	TimerUserCPU  TimerKind = 30
	TimerTotalCPU TimerKind = 31
	TimerElapsed  TimerKind = 32
)

// TimerInfo is jvmtiTimerInfo.
type TimerInfo struct {
	MaxValue        int64
	MaySkipForward  bool
	MaySkipBackward bool
	_               [2]byte
	Kind            TimerKind
	_               int64
	_               int64
}
