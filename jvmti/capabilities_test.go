package jvmti

import (
	"slices"
	"testing"
	"unsafe"
)

func TestCapabilitiesLayout(t *testing.T) {
	if err := CheckLayout(); err != nil {
		t.Fatalf("CheckLayout: %v", err)
	}
	if got := unsafe.Sizeof(Capabilities{}); got != CapabilitiesSize {
		t.Fatalf("sizeof(Capabilities) = %d, want %d", got, CapabilitiesSize)
	}
	if capabilityCount != 45 {
		t.Fatalf("%d named capabilities, want 45", capabilityCount)
	}
}

func TestCapabilitiesLayoutByteOrder(t *testing.T) {
	if err := checkLayout(false); err != nil {
		t.Fatalf("little-endian layout: %v", err)
	}
	if err := checkLayout(true); err == nil {
		t.Fatalf("big-endian bitfield layout should not match")
	}

	be := nativeCapabilityBytes(CanTagObjects, true)
	if be[0] != 0x80 || be[3] != 0 {
		t.Fatalf("big-endian bit 0 = % x, want top bit of byte 0", be[:4])
	}
	le := nativeCapabilityBytes(Capability(33), false)
	if le[4] != 0x02 {
		t.Fatalf("little-endian bit 33 = % x, want byte 4 = 02", le[4:8])
	}
}

func TestCapabilityBitPositions(t *testing.T) {
	tests := []struct {
		cp   Capability
		idx  int
		mask byte
	}{
		{CanTagObjects, 0, 0x01},
		{CanGetBytecodes, 0, 0x08},
		{CanPopFrame, 1, 0x01},
		{CanSuspend, 2, 0x10},
		{CanGenerateMethodEntryEvents, 3, 0x01},
		{CanGenerateObjectFreeEvents, 4, 0x01},
		{CanRetransformClasses, 4, 0x20},
		{CanSupportVirtualThreads, 5, 0x10},
	}
	for _, tt := range tests {
		var c Capabilities
		c.Set(tt.cp)
		for i, b := range c {
			want := byte(0)
			if i == tt.idx {
				want = tt.mask
			}
			if b != want {
				t.Fatalf("%v: byte %d = %#02x, want %#02x", tt.cp, i, b, want)
			}
		}
	}
}

func TestCapabilitySingleBit(t *testing.T) {
	for cp := Capability(0); cp < capabilityCount; cp++ {
		var c Capabilities
		c.Set(cp)
		for other := Capability(0); other < capabilityCount; other++ {
			if c.Has(other) != (other == cp) {
				t.Fatalf("setting %v changed %v", cp, other)
			}
		}
		if c != NewCapabilities(cp) {
			t.Fatalf("setting %v touched reserved bits: %v", cp, c.Bytes())
		}
		c.Clear(cp)
		if !c.IsZero() {
			t.Fatalf("Clear(%v) left %v", cp, c.Bytes())
		}
	}
}

func TestCapabilityOutOfRange(t *testing.T) {
	var c Capabilities
	c.Set(capabilityCount)
	c.Set(127)
	c.Set(-1)
	if c != (Capabilities{}) {
		t.Fatalf("out of range Set changed the vector: %v", c.Bytes())
	}
	if c.Has(capabilityCount) || c.Has(-1) {
		t.Fatalf("out of range Has returned true")
	}
}

func TestCapabilitySetAlgebra(t *testing.T) {
	a := NewCapabilities(CanTagObjects, CanGetBytecodes, CanRedefineClasses)
	b := NewCapabilities(CanSuspend, CanRetransformClasses)
	zero := Capabilities{}

	u := a.Union(b)
	for i := range u {
		if u[i] != a[i]|b[i] {
			t.Fatalf("union of disjoint sets is not OR at byte %d", i)
		}
	}
	if a.Intersect(a) != a {
		t.Fatalf("intersection is not idempotent")
	}
	if a.Union(zero) != a {
		t.Fatalf("union with zero is not identity")
	}
	if !a.Intersect(b).IsZero() {
		t.Fatalf("disjoint intersection is not empty")
	}
	if got := u.Intersect(b); !got.Equal(b) {
		t.Fatalf("(a|b)&b = %v, want %v", got, b)
	}
	if got := u.Without(a); !got.Equal(b) {
		t.Fatalf("(a|b)-a = %v, want %v", got, b)
	}
}

func TestCapabilitiesReservedBitsMasked(t *testing.T) {
	var dirty Capabilities
	for i := range dirty {
		dirty[i] = 0xff
	}
	all := AllCapabilities()
	if got := dirty.Union(Capabilities{}); got != all {
		t.Fatalf("Union kept reserved bits: %v", got.Bytes())
	}
	if got := dirty.Intersect(dirty); got != all {
		t.Fatalf("Intersect kept reserved bits: %v", got.Bytes())
	}
	if !dirty.Equal(all) {
		t.Fatalf("Equal should ignore reserved bits")
	}

	parsed, err := CapabilitiesFromBytes(dirty[:])
	if err != nil {
		t.Fatalf("CapabilitiesFromBytes: %v", err)
	}
	if parsed != all {
		t.Fatalf("CapabilitiesFromBytes kept reserved bits: %v", parsed.Bytes())
	}
	if _, err := CapabilitiesFromBytes(make([]byte, 15)); err == nil {
		t.Fatalf("CapabilitiesFromBytes accepted 15 bytes")
	}
}

func TestCapabilityNames(t *testing.T) {
	c := NewCapabilities(CanGetBytecodes, CanTagObjects)
	if got := c.Names(); !slices.Equal(got, []string{"can_tag_objects", "can_get_bytecodes"}) {
		t.Fatalf("Names = %v", got)
	}
	if got := c.String(); got != "{can_tag_objects, can_get_bytecodes}" {
		t.Fatalf("String = %q", got)
	}
	if got := (Capabilities{}).String(); got != "{}" {
		t.Fatalf("empty String = %q", got)
	}
	if got := len(AllCapabilities().Names()); got != 45 {
		t.Fatalf("AllCapabilities has %d names", got)
	}

	for _, name := range []string{"can_support_virtual_threads", "support_virtual_threads"} {
		cp, ok := ParseCapability(name)
		if !ok || cp != CanSupportVirtualThreads {
			t.Fatalf("ParseCapability(%q) = %v, %v", name, cp, ok)
		}
	}
	if _, ok := ParseCapability("can_fly"); ok {
		t.Fatalf("ParseCapability accepted an unknown name")
	}
}
