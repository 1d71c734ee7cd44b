package uri

import (
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"

	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/inet"
	"github.com/weburi/weburi/std/uri/percent"
	"github.com/weburi/weburi/std/uri/status"
)

type HostKind uint8

const (
	HostEmpty HostKind = iota
	HostRegName
	HostIPv4
	HostIPv6
	HostIPvFuture
)

func (k HostKind) String() string {
	switch k {
	case HostEmpty:
		return "empty"
	case HostRegName:
		return "reg-name"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostIPvFuture:
		return "ipvfuture"
	default:
		return "unknown"
	}
}

const maxLabelLen = 63

// Host is a validated host: a registered name or an IP literal.
type Host struct {
	kind     HostKind
	name     string
	ip4      inet.Addr4
	ip6      inet.Addr6
	punycode bool
}

// ParseHost classifies and validates a raw host as found in the
// authority. A registered name is percent-decoded. A name that ends in a
// number must be a valid IPv4 address.
func ParseHost(raw string, opts Options) (h Host, st status.Status) {
	if raw == "" {
		st.SetValid(status.Valid)
		return
	}

	if raw[0] == '[' {
		if raw[len(raw)-1] != ']' {
			st.SetError(status.IPv6Unclosed)
			return
		}
		inner := raw[1 : len(raw)-1]
		if inner != "" && (inner[0] == 'v' || inner[0] == 'V') {
			st = inet.ValidateIPvFuture(inner)
			h = Host{kind: HostIPvFuture, name: inner}
			return
		}
		h.kind = HostIPv6
		h.ip6, st = inet.ParseIPv6(inner)
		return
	}

	var name string
	if opts.Whatwg {
		if charset.ForbiddenHostCodePoints.IndexIn(raw) >= 0 {
			st.SetError(status.InvalidHostCodePoint)
			return
		}
		name = percent.DecodeLenient(raw)
		if !isASCII(name) {
			ascii, err := idna.Lookup.ToASCII(name)
			if err != nil {
				st.SetError(status.InvalidDomainCodePoint)
				return
			}
			name = ascii
		}
		name = strings.ToLower(name)
		if charset.ForbiddenDomainCodePoints.IndexIn(name) >= 0 {
			st.SetError(status.InvalidDomainCodePoint)
			return
		}
	} else {
		if i := percent.InvalidIndex(raw, charset.RegNameNotPctEncoded); i >= 0 {
			if raw[i] == '%' {
				st.SetError(status.InvalidPercentEncoding)
			} else {
				st.SetError(status.InvalidHostCodePoint)
			}
			return
		}
		name = percent.DecodeLenient(raw)
	}

	if inet.LooksLikeIPv4(name) {
		h.kind = HostIPv4
		h.ip4, st = inet.ParseIPv4(name, opts.IPv4)
		return
	}

	h = Host{kind: HostRegName, name: name}
	labels := strings.Split(strings.TrimSuffix(name, "."), ".")
	for _, label := range labels {
		if opts.CheckLabels {
			if v := checkLabel(label); v != status.Unparsed {
				st.SetError(v)
				return
			}
		}
		if len(label) >= 4 && strings.EqualFold(label[:4], "xn--") {
			h.punycode = true
			if opts.CheckPunycode {
				if _, err := idna.Punycode.ToUnicode(strings.ToLower(label)); err != nil {
					st.SetError(status.InvalidPunycode)
					return
				}
			}
		}
	}

	st.SetValid(status.Valid)
	return
}

// checkLabel returns the error of a domain label, or Unparsed.
func checkLabel(label string) status.Value {
	switch {
	case label == "":
		return status.DomainEmptyLabel
	case len(label) > maxLabelLen:
		return status.DomainLabelTooLong
	case label[0] == '-':
		return status.DomainLeadingHyphen
	case label[len(label)-1] == '-':
		return status.DomainTrailingHyphen
	case len(label) >= 4 && label[2:4] == "--" && !strings.EqualFold(label[:2], "xn"):
		return status.DomainDoubleHyphen
	}
	return status.Unparsed
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Kind returns the kind of host.
func (h Host) Kind() HostKind {
	return h.kind
}

// Name returns the decoded registered name, or the IPvFuture text.
func (h Host) Name() string {
	return h.name
}

// IPv4 returns the address of an IPv4 host.
func (h Host) IPv4() inet.Addr4 {
	return h.ip4
}

// IPv6 returns the address of an IPv6 host.
func (h Host) IPv6() inet.Addr6 {
	return h.ip6
}

// IsPunycode reports whether a label of the name starts with "xn--".
func (h Host) IsPunycode() bool {
	return h.punycode
}

// Labels returns the dot-separated labels of a registered name.
func (h Host) Labels() []string {
	if h.kind != HostRegName {
		return nil
	}
	return strings.Split(strings.TrimSuffix(h.name, "."), ".")
}

// Unicode returns the registered name with punycode labels decoded.
func (h Host) Unicode() string {
	if !h.punycode {
		return h.name
	}
	if u, err := idna.Display.ToUnicode(h.name); err == nil {
		return u
	}
	return h.name
}

// TLD returns the public suffix of a registered name, as in "co.uk".
func (h Host) TLD() string {
	if h.kind != HostRegName {
		return ""
	}
	suffix, _ := publicsuffix.PublicSuffix(h.canonicalName())
	return suffix
}

// Domain returns the public suffix plus one label, as in "example.co.uk".
func (h Host) Domain() string {
	if h.kind != HostRegName {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(h.canonicalName())
	if err != nil {
		return ""
	}
	return domain
}

// Subdomain returns the labels before the domain, as in "www".
func (h Host) Subdomain() string {
	domain := h.Domain()
	if domain == "" {
		return ""
	}
	return strings.TrimSuffix(strings.TrimSuffix(h.canonicalName(), domain), ".")
}

func (h Host) canonicalName() string {
	return strings.ToLower(strings.TrimSuffix(h.name, "."))
}

// String returns the canonical text of the host as it appears in a URI.
func (h Host) String() string {
	switch h.kind {
	case HostIPv4:
		return h.ip4.String()
	case HostIPv6:
		return "[" + h.ip6.String() + "]"
	case HostIPvFuture:
		return "[" + h.name + "]"
	case HostRegName:
		return percent.Encode(strings.ToLower(h.name), charset.RegNameNotPctEncoded)
	default:
		return ""
	}
}
