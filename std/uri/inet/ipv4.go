// Package inet validates and formats the IP literals that may appear as
// the host of a URI.
package inet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/status"
)

// Addr4 is an IPv4 address in network byte order.
type Addr4 [4]byte

// TrailingDotPolicy decides what happens to empty octets after the last
// dot of an IPv4 address, as in "127.0.0.1.".
type TrailingDotPolicy int

const (
	// TrailingDotReject fails on any trailing empty octet.
	TrailingDotReject TrailingDotPolicy = iota
	// TrailingDotAllowOne accepts one trailing empty octet with a warning.
	TrailingDotAllowOne
	// TrailingDotAllowMany accepts any number of them with a warning.
	TrailingDotAllowMany
)

func (p TrailingDotPolicy) String() string {
	switch p {
	case TrailingDotReject:
		return "reject"
	case TrailingDotAllowOne:
		return "one"
	case TrailingDotAllowMany:
		return "many"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p TrailingDotPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *TrailingDotPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "reject":
		*p = TrailingDotReject
	case "one":
		*p = TrailingDotAllowOne
	case "many":
		*p = TrailingDotAllowMany
	default:
		return fmt.Errorf("invalid trailing dot policy: %q", text)
	}
	return nil
}

// IPv4Options are the leniency knobs of ParseIPv4.
type IPv4Options struct {
	// Accept "0x" hexadecimal and leading-zero octal parts.
	AllowNonDecimal bool `json:"allow_non_decimal"`
	// Accept fewer than four parts, the last part filling the rest.
	AllowShortForm bool `json:"allow_short_form"`
	// What to do with trailing empty octets.
	TrailingDots TrailingDotPolicy `json:"trailing_dots"`
}

// ParseIPv4 parses a dotted IPv4 address. The returned status is Valid or
// an IP error, possibly with warnings.
func ParseIPv4(s string, opts IPv4Options) (addr Addr4, st status.Status) {
	if s == "" {
		st.SetError(status.IPEmptyOctet)
		return
	}

	parts := strings.Split(s, ".")
	trailing := 0
	for len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
		trailing++
	}
	if trailing > 0 {
		switch {
		case opts.TrailingDots == TrailingDotReject,
			opts.TrailingDots == TrailingDotAllowOne && trailing > 1:
			st.SetError(status.IPBadEnding)
			return
		}
		st.SetWarning(status.IPv4TrailingEmptyOctet)
	}

	if len(parts) > 4 {
		st.SetError(status.IPTooManyOctets)
		return
	}
	if len(parts) < 4 && !opts.AllowShortForm {
		st.SetError(status.IPTooFewOctets)
		return
	}

	var nums [4]uint64
	for i, part := range parts {
		if part == "" {
			st.SetError(status.IPEmptyOctet)
			return
		}
		n, pst := parseIPv4Number(part, opts)
		st.Merge(pst)
		if st.HasError() {
			return
		}
		if i < len(parts)-1 && n > 255 {
			st.SetError(status.IPInvalidOctetRange)
			return
		}
		nums[i] = n
	}

	last := nums[len(parts)-1]
	if last >= 1<<(8*(5-len(parts))) {
		st.SetError(status.IPInvalidOctetRange)
		return
	}

	ip := last
	for i := 0; i < len(parts)-1; i++ {
		ip += nums[i] << (8 * (3 - i))
	}
	addr = Addr4{byte(ip >> 24), byte(ip >> 16), byte(ip >> 8), byte(ip)}
	st.SetValid(status.Valid)
	return
}

func parseIPv4Number(part string, opts IPv4Options) (n uint64, st status.Status) {
	base := uint64(10)
	digits := part
	if opts.AllowNonDecimal {
		if len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X') {
			base, digits = 16, part[2:]
		} else if len(part) >= 2 && part[0] == '0' {
			base, digits = 8, part[1:]
		}
		if base != 10 {
			st.SetWarning(status.IPv4NonDecimalPart)
		}
	} else if len(part) >= 2 && part[0] == '0' {
		if charset.Digit.ContainsAll(part) {
			st.SetError(status.IPInvalidLeadingZero)
		} else {
			st.SetError(status.IPInvalidCharacter)
		}
		return
	}

	for i := 0; i < len(digits); i++ {
		d, ok := charset.HexValue(digits[i])
		if !ok || uint64(d) >= base {
			st.SetError(status.IPInvalidCharacter)
			return
		}
		n = n*base + uint64(d)
		if n > 1<<32 {
			st.SetError(status.IPInvalidOctetRange)
			return
		}
	}
	return
}

// LooksLikeIPv4 reports whether a host ends in a number, in which case it
// must be parsed as an IPv4 address rather than a domain.
func LooksLikeIPv4(host string) bool {
	host = strings.TrimRight(host, ".")
	if host == "" {
		return false
	}
	last := host[strings.LastIndexByte(host, '.')+1:]
	if charset.Digit.ContainsAll(last) {
		return true
	}
	if len(last) >= 2 && last[0] == '0' && (last[1] == 'x' || last[1] == 'X') {
		return charset.HexDigit.ContainsAll(last[2:])
	}
	return false
}

// String formats the address in dotted decimal.
func (a Addr4) String() string {
	b := make([]byte, 0, 15)
	return string(a.AppendTo(b))
}

// AppendTo appends the dotted decimal form to b.
func (a Addr4) AppendTo(b []byte) []byte {
	for i, o := range a {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(o), 10)
	}
	return b
}

// Uint32 returns the address as a number.
func (a Addr4) Uint32() uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}
