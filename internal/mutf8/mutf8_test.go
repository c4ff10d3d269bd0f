package mutf8

import (
	"bytes"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"ascii", "abc", []byte("abc")},
		{"nul", "a\x00b", []byte{'a', 0xC0, 0x80, 'b'}},
		{"two byte", "é", []byte{0xC3, 0xA9}},
		{"three byte", "€", []byte{0xE2, 0x82, 0xAC}},
		{"supplementary", "😀", []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.in); !bytes.Equal(got, tt.want) {
				t.Fatalf("Encode(%q) = % X, want % X", tt.in, got, tt.want)
			}
			if got := Decode(tt.want); got != tt.in {
				t.Fatalf("Decode(% X) = %q, want %q", tt.want, got, tt.in)
			}
		})
	}
}

func TestEncodeCString(t *testing.T) {
	got := EncodeCString("a\x00")
	want := []byte{'a', 0xC0, 0x80, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("EncodeCString = % X, want % X", got, want)
	}
	if bytes.IndexByte(got[:len(got)-1], 0) >= 0 {
		t.Fatal("encoded string contains an interior NUL")
	}
}

func TestDecodeStopsAtNul(t *testing.T) {
	if got := Decode([]byte("abc\x00def")); got != "abc" {
		t.Fatalf("Decode = %q", got)
	}
}

func TestDecodeMalformed(t *testing.T) {
	// Lone high surrogate followed by ASCII.
	in := []byte{0xED, 0xA0, 0xBD, 'x'}
	if got := Decode(in); got != "�x" {
		t.Fatalf("Decode = %q", got)
	}
	if got := Decode([]byte{0xFF}); got != "�" {
		t.Fatalf("Decode(FF) = %q", got)
	}
}

func TestUTF16(t *testing.T) {
	s := "héllo 😀"
	u := EncodeUTF16(s)
	if len(u) != 8 {
		t.Fatalf("EncodeUTF16 produced %d units, want 8", len(u))
	}
	if got := DecodeUTF16(u); got != s {
		t.Fatalf("DecodeUTF16 = %q", got)
	}
}
