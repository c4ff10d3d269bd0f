package jvmti

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Capability names one bit of jvmtiCapabilities, in declaration order.
type Capability int

const (
	CanTagObjects Capability = iota
	CanGenerateFieldModificationEvents
	CanGenerateFieldAccessEvents
	CanGetBytecodes
	CanGetSyntheticAttribute
	CanGetOwnedMonitorInfo
	CanGetCurrentContendedMonitor
	CanGetMonitorInfo
	CanPopFrame
	CanRedefineClasses
	CanSignalThread
	CanGetSourceFileName
	CanGetLineNumbers
	CanGetSourceDebugExtension
	CanAccessLocalVariables
	CanMaintainOriginalMethodOrder
	CanGenerateSingleStepEvents
	CanGenerateExceptionEvents
	CanGenerateFramePopEvents
	CanGenerateBreakpointEvents
	CanSuspend
	CanRedefineAnyClass
	CanGetCurrentThreadCPUTime
	CanGetThreadCPUTime
	CanGenerateMethodEntryEvents
	CanGenerateMethodExitEvents
	CanGenerateAllClassHookEvents
	CanGenerateCompiledMethodLoadEvents
	CanGenerateMonitorEvents
	CanGenerateVMObjectAllocEvents
	CanGenerateNativeMethodBindEvents
	CanGenerateGarbageCollectionEvents
	CanGenerateObjectFreeEvents
	CanForceEarlyReturn
	CanGetOwnedMonitorStackDepthInfo
	CanGetConstantPool
	CanSetNativeMethodPrefix
	CanRetransformClasses
	CanRetransformAnyClass
	CanGenerateResourceExhaustionHeapEvents
	CanGenerateResourceExhaustionThreadsEvents
	CanGenerateEarlyVMStart
	CanGenerateEarlyClassHookEvents
	CanGenerateSampledObjectAllocEvents
	CanSupportVirtualThreads

	capabilityCount = iota
)

var capabilityNames = [capabilityCount]string{
	"can_tag_objects",
	"can_generate_field_modification_events",
	"can_generate_field_access_events",
	"can_get_bytecodes",
	"can_get_synthetic_attribute",
	"can_get_owned_monitor_info",
	"can_get_current_contended_monitor",
	"can_get_monitor_info",
	"can_pop_frame",
	"can_redefine_classes",
	"can_signal_thread",
	"can_get_source_file_name",
	"can_get_line_numbers",
	"can_get_source_debug_extension",
	"can_access_local_variables",
	"can_maintain_original_method_order",
	"can_generate_single_step_events",
	"can_generate_exception_events",
	"can_generate_frame_pop_events",
	"can_generate_breakpoint_events",
	"can_suspend",
	"can_redefine_any_class",
	"can_get_current_thread_cpu_time",
	"can_get_thread_cpu_time",
	"can_generate_method_entry_events",
	"can_generate_method_exit_events",
	"can_generate_all_class_hook_events",
	"can_generate_compiled_method_load_events",
	"can_generate_monitor_events",
	"can_generate_vm_object_alloc_events",
	"can_generate_native_method_bind_events",
	"can_generate_garbage_collection_events",
	"can_generate_object_free_events",
	"can_force_early_return",
	"can_get_owned_monitor_stack_depth_info",
	"can_get_constant_pool",
	"can_set_native_method_prefix",
	"can_retransform_classes",
	"can_retransform_any_class",
	"can_generate_resource_exhaustion_heap_events",
	"can_generate_resource_exhaustion_threads_events",
	"can_generate_early_vmstart",
	"can_generate_early_class_hook_events",
	"can_generate_sampled_object_alloc_events",
	"can_support_virtual_threads",
}

// CapabilitiesSize is sizeof(jvmtiCapabilities): 45 named one-bit fields
// followed by reserved bits, padded to four 32-bit words.
const CapabilitiesSize = 16

// capabilityMask has a bit set for every named capability.
var capabilityMask = func() (m Capabilities) {
	for c := Capability(0); c < capabilityCount; c++ {
		m[c/8] |= 1 << (c % 8)
	}
	return m
}()

func (c Capability) valid() bool { return c >= 0 && c < capabilityCount }

// String returns the C field name, e.g. "can_tag_objects".
func (c Capability) String() string {
	if !c.valid() {
		return fmt.Sprintf("capability(%d)", int(c))
	}
	return capabilityNames[c]
}

// ParseCapability looks up a capability by its C field name. The "can_"
// prefix may be omitted.
func ParseCapability(name string) (Capability, bool) {
	if !strings.HasPrefix(name, "can_") {
		name = "can_" + name
	}
	for i, n := range capabilityNames {
		if n == name {
			return Capability(i), true
		}
	}
	return -1, false
}

// Capabilities is jvmtiCapabilities. The C struct is a sequence of one-bit
// fields; bit i lives in byte i/8 at mask 1<<(i%8), which is how every
// supported compiler lays out unsigned int bitfields on little-endian
// targets.
//
// The zero value has no capabilities. Reserved bits are never set by any
// method.
type Capabilities [CapabilitiesSize]byte

// NewCapabilities returns a set holding caps.
func NewCapabilities(caps ...Capability) Capabilities {
	var c Capabilities
	for _, cp := range caps {
		c.Set(cp)
	}
	return c
}

// AllCapabilities returns a set holding every named capability.
func AllCapabilities() Capabilities { return capabilityMask }

// Has reports whether cp is set. Unknown capabilities are never set.
func (c Capabilities) Has(cp Capability) bool {
	if !cp.valid() {
		return false
	}
	return c[cp/8]&(1<<(cp%8)) != 0
}

// Set adds cp. Unknown capabilities are ignored.
func (c *Capabilities) Set(cp Capability) {
	if !cp.valid() {
		return
	}
	c[cp/8] |= 1 << (cp % 8)
}

// Clear removes cp. Unknown capabilities are ignored.
func (c *Capabilities) Clear(cp Capability) {
	if !cp.valid() {
		return
	}
	c[cp/8] &^= 1 << (cp % 8)
}

// Union returns the capabilities in c or o.
func (c Capabilities) Union(o Capabilities) Capabilities {
	var out Capabilities
	for i := range out {
		out[i] = (c[i] | o[i]) & capabilityMask[i]
	}
	return out
}

// Intersect returns the capabilities in both c and o.
func (c Capabilities) Intersect(o Capabilities) Capabilities {
	var out Capabilities
	for i := range out {
		out[i] = c[i] & o[i] & capabilityMask[i]
	}
	return out
}

// Without returns the capabilities in c but not in o.
func (c Capabilities) Without(o Capabilities) Capabilities {
	var out Capabilities
	for i := range out {
		out[i] = c[i] &^ o[i] & capabilityMask[i]
	}
	return out
}

// Equal compares the named capabilities of c and o.
func (c Capabilities) Equal(o Capabilities) bool {
	for i := range c {
		if (c[i]^o[i])&capabilityMask[i] != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether no named capability is set.
func (c Capabilities) IsZero() bool {
	return c.Equal(Capabilities{})
}

// List returns the set capabilities in bit order.
func (c Capabilities) List() []Capability {
	var out []Capability
	for cp := Capability(0); cp < capabilityCount; cp++ {
		if c.Has(cp) {
			out = append(out, cp)
		}
	}
	return out
}

// Names returns the C field names of the set capabilities in bit order.
func (c Capabilities) Names() []string {
	var out []string
	for _, cp := range c.List() {
		out = append(out, cp.String())
	}
	return out
}

func (c Capabilities) String() string {
	return "{" + strings.Join(c.Names(), ", ") + "}"
}

// Bytes returns the wire representation of c.
func (c Capabilities) Bytes() []byte {
	out := make([]byte, CapabilitiesSize)
	copy(out, c[:])
	return out
}

// CapabilitiesFromBytes parses the wire representation produced by Bytes or
// by the JVM. Reserved bits are dropped.
func CapabilitiesFromBytes(b []byte) (Capabilities, error) {
	var c Capabilities
	if len(b) != CapabilitiesSize {
		return c, fmt.Errorf("jvmti: capabilities must be %d bytes, got %d", CapabilitiesSize, len(b))
	}
	for i := range c {
		c[i] = b[i] & capabilityMask[i]
	}
	return c, nil
}

// CheckLayout verifies that Capabilities matches how the C compiler lays out
// jvmtiCapabilities on this host. The package refuses to initialize if it
// does not.
func CheckLayout() error {
	return checkLayout(binary.NativeEndian.Uint16([]byte{0, 1}) == 1)
}

// nativeCapabilityBytes returns the bytes of a jvmtiCapabilities with only cp
// set. The struct is a run of unsigned int bitfields: little-endian ABIs
// allocate them from the least significant bit of each 32-bit word,
// big-endian ABIs from the most significant.
func nativeCapabilityBytes(cp Capability, bigEndian bool) [CapabilitiesSize]byte {
	var out [CapabilitiesSize]byte
	word, bit := int(cp)/32, uint(cp)%32
	w := out[word*4 : word*4+4]
	if bigEndian {
		binary.BigEndian.PutUint32(w, 1<<(31-bit))
	} else {
		binary.LittleEndian.PutUint32(w, 1<<bit)
	}
	return out
}

func checkLayout(bigEndian bool) error {
	if capabilityCount > CapabilitiesSize*8 {
		return fmt.Errorf("jvmti: %d capabilities do not fit in %d bytes", capabilityCount, CapabilitiesSize)
	}
	seen := make(map[string]bool, capabilityCount)
	for cp := Capability(0); cp < capabilityCount; cp++ {
		name := capabilityNames[cp]
		if !strings.HasPrefix(name, "can_") || seen[name] {
			return fmt.Errorf("jvmti: bad capability name %q at bit %d", name, int(cp))
		}
		seen[name] = true

		one := NewCapabilities(cp)
		if want := nativeCapabilityBytes(cp, bigEndian); [CapabilitiesSize]byte(one) != want {
			return fmt.Errorf("jvmti: %s is % x, native layout is % x", name, one[:], want[:])
		}
	}
	return nil
}

func init() {
	if err := CheckLayout(); err != nil {
		panic(err)
	}
}
