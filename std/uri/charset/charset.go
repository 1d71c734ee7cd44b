// Package charset implements the byte classes of RFC 3986 and the WHATWG
// URL standard as 256-bit membership sets.
package charset

import "math/bits"

// Set is a set of bytes.
type Set [4]uint64

// Of returns the set containing every byte of chars.
func Of(chars string) (s Set) {
	for i := 0; i < len(chars); i++ {
		s[chars[i]>>6] |= 1 << (chars[i] & 63)
	}
	return s
}

// Range returns the set of bytes in [lo, hi].
func Range(lo, hi byte) (s Set) {
	for c := int(lo); c <= int(hi); c++ {
		s[c>>6] |= 1 << (c & 63)
	}
	return s
}

// Union returns the union of all given sets.
func Union(sets ...Set) (s Set) {
	for _, o := range sets {
		for i := range s {
			s[i] |= o[i]
		}
	}
	return s
}

// Contains returns true if b is a member of s.
func (s Set) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// ContainsAll returns true if every byte of str is a member of s.
func (s Set) ContainsAll(str string) bool {
	return s.IndexNotIn(str) < 0
}

// IndexNotIn returns the index of the first byte of str that is not in s, or -1.
func (s Set) IndexNotIn(str string) int {
	for i := 0; i < len(str); i++ {
		if !s.Contains(str[i]) {
			return i
		}
	}
	return -1
}

// IndexIn returns the index of the first byte of str that is in s, or -1.
func (s Set) IndexIn(str string) int {
	for i := 0; i < len(str); i++ {
		if s.Contains(str[i]) {
			return i
		}
	}
	return -1
}

// Except returns s without the bytes of chars.
func (s Set) Except(chars string) Set {
	o := Of(chars)
	for i := range s {
		s[i] &^= o[i]
	}
	return s
}

// With returns s plus the bytes of chars.
func (s Set) With(chars string) Set {
	return Union(s, Of(chars))
}

// Complement returns every byte not in s.
func (s Set) Complement() Set {
	for i := range s {
		s[i] = ^s[i]
	}
	return s
}

// Len returns the number of members.
func (s Set) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// String lists the printable members of s, mostly for debugging.
func (s Set) String() string {
	out := make([]byte, 0, s.Len())
	for c := 0x21; c < 0x7f; c++ {
		if s.Contains(byte(c)) {
			out = append(out, byte(c))
		}
	}
	return string(out)
}
