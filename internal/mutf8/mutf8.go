// Package mutf8 converts between Go strings and the "modified UTF-8"
// encoding the JVM uses for its UTF string functions and class file names.
//
// Modified UTF-8 differs from standard UTF-8 in two ways: U+0000 is encoded
// as the two bytes C0 80, and supplementary characters are encoded as a
// surrogate pair with each half taking three bytes.
package mutf8

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Encode returns the modified UTF-8 form of s. Invalid UTF-8 in s is
// replaced with U+FFFD.
func Encode(s string) []byte {
	return Append(make([]byte, 0, len(s)), s)
}

// EncodeCString is Encode with a trailing NUL byte appended.
func EncodeCString(s string) []byte {
	return append(Append(make([]byte, 0, len(s)+1), s), 0)
}

// Append appends the modified UTF-8 form of s to dst.
func Append(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xC0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			dst = append3(dst, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			dst = append3(dst, hi)
			dst = append3(dst, lo)
		}
	}
	return dst
}

func append3(dst []byte, r rune) []byte {
	return append(dst, 0xE0|byte(r>>12), 0x80|byte((r>>6)&0x3F), 0x80|byte(r&0x3F))
}

// Decode converts modified UTF-8 to a Go string. Malformed sequences and
// unpaired surrogates decode to U+FFFD. Decoding stops at the first NUL byte.
func Decode(b []byte) string {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == 0:
			return string(out)
		case c < 0x80:
			out = append(out, c)
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b) && b[i+1]&0xC0 == 0x80:
			r := rune(c&0x1F)<<6 | rune(b[i+1]&0x3F)
			out = utf8.AppendRune(out, r)
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b) && b[i+1]&0xC0 == 0x80 && b[i+2]&0xC0 == 0x80:
			r := decode3(b[i:])
			i += 3
			if utf16.IsSurrogate(r) {
				if r < 0xDC00 && i+2 < len(b) && b[i]&0xF0 == 0xE0 {
					lo := decode3(b[i:])
					if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
						out = utf8.AppendRune(out, pair)
						i += 3
						continue
					}
				}
				r = utf8.RuneError
			}
			out = utf8.AppendRune(out, r)
		default:
			out = utf8.AppendRune(out, utf8.RuneError)
			i++
		}
	}
	return string(out)
}

func decode3(b []byte) rune {
	return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
}

// EncodeUTF16 returns s as UTF-16 code units, the representation of Java
// strings and jchar arrays.
func EncodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeUTF16 converts UTF-16 code units to a Go string.
func DecodeUTF16(u []uint16) string {
	return string(utf16.Decode(u))
}
