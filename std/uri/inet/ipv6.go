package inet

import (
	"strings"

	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/status"
)

// Addr6 is an IPv6 address in network byte order.
type Addr6 [16]byte

var v4MappedPrefix = [12]byte{10: 0xff, 11: 0xff}

// ParseIPv6 parses the text between the brackets of an IPv6 literal.
//
// A trailing dotted quad is only accepted in the IPv4-mapped form
// ::ffff:a.b.c.d. The deprecated IPv4-compatible form ::a.b.c.d parses
// with a warning; any other embedding is an error.
func ParseIPv6(s string) (addr Addr6, st status.Status) {
	var pieces [8]uint16
	pieceIndex, compress := 0, -1
	embedded := false
	i := 0

	if s == "" {
		st.SetError(status.IPTooFewOctets)
		return
	}
	if s[0] == ':' {
		if len(s) < 2 || s[1] != ':' {
			st.SetError(status.IPInvalidColonUsage)
			return
		}
		i = 2
		pieceIndex++
		compress = pieceIndex
	}

	for i < len(s) {
		if pieceIndex == 8 {
			st.SetError(status.IPTooManyOctets)
			return
		}
		if s[i] == ':' {
			if compress != -1 {
				st.SetError(status.IPInvalidColonUsage)
				return
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value, length := uint16(0), 0
		for length < 4 && i < len(s) {
			d, ok := charset.HexValue(s[i])
			if !ok {
				break
			}
			value = value<<4 | uint16(d)
			i++
			length++
		}

		if i < len(s) {
			switch c := s[i]; {
			case charset.IsHexDigit(c):
				st.SetError(status.IPInvalidOctetRange)
				return
			case c == '.':
				if length == 0 {
					st.SetError(status.IPInvalidCharacter)
					return
				}
				if pieceIndex > 6 {
					st.SetError(status.IPTooManyOctets)
					return
				}
				v4, v4st := ParseIPv4(s[i-length:], IPv4Options{})
				if v4st.HasError() {
					st.SetError(v4st.Value())
					return
				}
				pieces[pieceIndex] = uint16(v4[0])<<8 | uint16(v4[1])
				pieces[pieceIndex+1] = uint16(v4[2])<<8 | uint16(v4[3])
				pieceIndex += 2
				embedded = true
				i = len(s)
				continue
			case c == ':':
				i++
				if i == len(s) {
					st.SetError(status.IPBadEnding)
					return
				}
			default:
				st.SetError(status.IPInvalidCharacter)
				return
			}
		}

		pieces[pieceIndex] = value
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		pieceIndex = 7
		for pieceIndex != 0 && swaps > 0 {
			pieces[pieceIndex], pieces[compress+swaps-1] = pieces[compress+swaps-1], pieces[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		st.SetError(status.IPTooFewOctets)
		return
	}

	for j, p := range pieces {
		addr[2*j] = byte(p >> 8)
		addr[2*j+1] = byte(p)
	}

	if embedded {
		switch {
		case addr.IsIPv4Mapped():
		case [12]byte(addr[:12]) == [12]byte{}:
			st.SetWarning(status.IPv6DeprecatedIPv4Compatible)
		default:
			st.SetError(status.IPv6InvalidIPv4Embedding)
			return
		}
	}

	st.SetValid(status.Valid)
	return
}

// IsIPv4Mapped reports whether a is ::ffff:a.b.c.d.
func (a Addr6) IsIPv4Mapped() bool {
	return [12]byte(a[:12]) == v4MappedPrefix
}

// IPv4 returns the last 32 bits as an IPv4 address.
func (a Addr6) IPv4() (v4 Addr4) {
	copy(v4[:], a[12:16])
	return v4
}

// Pieces returns the eight 16-bit groups of the address.
func (a Addr6) Pieces() (p [8]uint16) {
	for i := range p {
		p[i] = uint16(a[2*i])<<8 | uint16(a[2*i+1])
	}
	return p
}

// String formats the address in the inet_ntop6 style: lowercase hex, the
// first longest run of at least two zero groups compressed to "::".
func (a Addr6) String() string {
	return string(a.AppendTo(make([]byte, 0, 39)))
}

// AppendTo appends the text form of a to b.
func (a Addr6) AppendTo(b []byte) []byte {
	if a.IsIPv4Mapped() {
		b = append(b, "::ffff:"...)
		return a.IPv4().AppendTo(b)
	}

	p := a.Pieces()
	bestStart, bestLen := -1, 0
	for i := 0; i < 8; {
		if p[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && p[j] == 0 {
			j++
		}
		if j-i > bestLen {
			bestStart, bestLen = i, j-i
		}
		i = j
	}
	if bestLen < 2 {
		bestStart = -1
	}

	const hexLower = "0123456789abcdef"
	for i := 0; i < 8; i++ {
		if i == bestStart {
			b = append(b, ':', ':')
			i += bestLen - 1
			continue
		}
		if i > 0 && i != bestStart+bestLen {
			b = append(b, ':')
		}
		v := p[i]
		started := false
		for shift := 12; shift >= 0; shift -= 4 {
			d := (v >> shift) & 0xf
			if d != 0 || started || shift == 0 {
				b = append(b, hexLower[d])
				started = true
			}
		}
	}
	return b
}

// ValidateIPvFuture checks "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ).
func ValidateIPvFuture(s string) (st status.Status) {
	if len(s) < 4 || (s[0] != 'v' && s[0] != 'V') {
		st.SetError(status.IPvFutureInvalid)
		return
	}
	dot := strings.IndexByte(s, '.')
	if dot < 2 || dot == len(s)-1 ||
		!charset.HexDigit.ContainsAll(s[1:dot]) ||
		!charset.IPvFutureLastPart.ContainsAll(s[dot+1:]) {
		st.SetError(status.IPvFutureInvalid)
		return
	}
	st.SetValid(status.Valid)
	return
}
