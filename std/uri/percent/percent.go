// Package percent implements the %XX escaping used by URI components.
package percent

import (
	"strings"

	"github.com/weburi/weburi/std/uri/charset"
)

const hexUpper = "0123456789ABCDEF"

// Policy selects how Decode treats literal (not escaped) bytes.
type Policy int

const (
	// AllowedChars accepts a literal byte only if it is in the set.
	AllowedChars Policy = iota
	// DisallowedChars accepts a literal byte only if it is not in the set.
	DisallowedChars
)

func (p Policy) String() string {
	switch p {
	case AllowedChars:
		return "allowed"
	case DisallowedChars:
		return "disallowed"
	default:
		return "unknown"
	}
}

// ParsePolicy parses the String form of a policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "allowed":
		return AllowedChars, true
	case "disallowed":
		return DisallowedChars, true
	}
	return AllowedChars, false
}

func (p Policy) accepts(set charset.Set, b byte) bool {
	if p == DisallowedChars {
		return !set.Contains(b)
	}
	return set.Contains(b)
}

// Encode copies every byte of in that is in allowed, and writes any other
// byte as '%' followed by two uppercase hex digits.
func Encode(in string, allowed charset.Set) string {
	if allowed.ContainsAll(in) {
		return in
	}
	return string(AppendEncode(nil, in, allowed))
}

// AppendEncode is Encode appending to dst.
func AppendEncode(dst []byte, in string, allowed charset.Set) []byte {
	if cap(dst)-len(dst) < len(in)+len(in)/2 {
		grown := make([]byte, len(dst), len(dst)+len(in)+len(in)/2)
		copy(grown, dst)
		dst = grown
	}
	for i := 0; i < len(in); i++ {
		b := in[i]
		if allowed.Contains(b) {
			dst = append(dst, b)
		} else {
			dst = append(dst, '%', hexUpper[b>>4], hexUpper[b&0x0f])
		}
	}
	return dst
}

// EncodeTo is Encode writing into a string builder.
func EncodeTo(sb *strings.Builder, in string, allowed charset.Set) {
	sb.Grow(len(in) + len(in)/2)
	for i := 0; i < len(in); i++ {
		b := in[i]
		if allowed.Contains(b) {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(hexUpper[b>>4])
			sb.WriteByte(hexUpper[b&0x0f])
		}
	}
}

// Decode decodes every %XX escape of in and checks each literal byte
// against set under policy. Decoding is all-or-nothing: on a malformed
// escape or a rejected literal it returns "", false.
func Decode(in string, set charset.Set, policy Policy) (string, bool) {
	if strings.IndexByte(in, '%') < 0 {
		for i := 0; i < len(in); i++ {
			if !policy.accepts(set, in[i]) {
				return "", false
			}
		}
		return in, true
	}

	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		b := in[i]
		if b != '%' {
			if !policy.accepts(set, b) {
				return "", false
			}
			out = append(out, b)
			continue
		}
		if i+2 >= len(in) {
			return "", false
		}
		hi, ok1 := charset.HexValue(in[i+1])
		lo, ok2 := charset.HexValue(in[i+2])
		if !ok1 || !ok2 {
			return "", false
		}
		out = append(out, hi<<4|lo)
		i += 2
	}
	return string(out), true
}

// DecodeLenient decodes well-formed escapes and copies everything else
// verbatim, as the WHATWG percent-decode algorithm does.
func DecodeLenient(in string) string {
	if strings.IndexByte(in, '%') < 0 {
		return in
	}
	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		b := in[i]
		if b == '%' && i+2 < len(in) {
			hi, ok1 := charset.HexValue(in[i+1])
			lo, ok2 := charset.HexValue(in[i+2])
			if ok1 && ok2 {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
		}
		out = append(out, b)
	}
	return string(out)
}

// NeedsEncoding returns true if in holds a byte outside allowed.
func NeedsEncoding(in string, allowed charset.Set) bool {
	return !allowed.ContainsAll(in)
}

// IsEncoded returns true if in is a valid encoding under allowed: every
// literal byte is allowed and every '%' starts a well-formed escape.
func IsEncoded(in string, allowed charset.Set) bool {
	return InvalidIndex(in, allowed) < 0
}

// InvalidIndex returns the index of the first byte that makes in an
// invalid encoding under allowed, or -1.
func InvalidIndex(in string, allowed charset.Set) int {
	for i := 0; i < len(in); i++ {
		b := in[i]
		if b == '%' {
			if i+2 >= len(in) || !charset.IsHexDigit(in[i+1]) || !charset.IsHexDigit(in[i+2]) {
				return i
			}
			i += 2
			continue
		}
		if !allowed.Contains(b) {
			return i
		}
	}
	return -1
}

// NormalizeCase uppercases the hex digits of every escape and decodes
// escapes of unreserved bytes (RFC 3986 section 6.2.2).
func NormalizeCase(in string) string {
	if strings.IndexByte(in, '%') < 0 {
		return in
	}
	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); i++ {
		b := in[i]
		if b == '%' && i+2 < len(in) {
			hi, ok1 := charset.HexValue(in[i+1])
			lo, ok2 := charset.HexValue(in[i+2])
			if ok1 && ok2 {
				if v := hi<<4 | lo; charset.Unreserved.Contains(v) {
					out = append(out, v)
				} else {
					out = append(out, '%', hexUpper[hi], hexUpper[lo])
				}
				i += 2
				continue
			}
		}
		out = append(out, b)
	}
	return string(out)
}
