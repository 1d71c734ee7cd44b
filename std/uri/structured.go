package uri

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/weburi/weburi/std/types/optional"
	"github.com/weburi/weburi/std/types/sync_pool"
	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/percent"
)

// Structured is a URI held as decoded components. Unlike URI it owns no
// buffer; String builds the text with each component encoded against its
// own character set.
type Structured struct {
	Scheme       string
	Username     optional.Optional[string]
	Password     optional.Optional[string]
	HasAuthority bool
	// Decoded registered name, or an IP literal in brackets for IPv6.
	Host        string
	Port        string
	Path        Path
	HasQuery    bool
	Queries     Queries
	HasFragment bool
	Fragment    string
}

// NewStructured decodes every component of u. It fails if u has an error.
func NewStructured(u *URI) (*Structured, error) {
	st := u.Status()
	if st.HasError() {
		return nil, ErrParse{Input: u.String(), Status: st}
	}

	s := &Structured{
		Scheme:       u.Scheme(),
		HasAuthority: u.HasAuthority(),
		HasQuery:     u.HasQuery(),
		HasFragment:  u.HasFragment(),
	}
	fail := func() (*Structured, error) {
		return nil, ErrParse{Input: u.String(), Status: st}
	}

	if user, ok := u.DecodedUsername(); ok {
		s.Username.Set(user)
		if _, ok := u.Password(); ok {
			pass, ok := u.DecodedPassword()
			if !ok {
				return fail()
			}
			s.Password.Set(pass)
		}
	} else if _, has := u.UserInfo(); has {
		return fail()
	}

	if s.HasAuthority {
		host, _ := u.ParsedHost()
		switch host.Kind() {
		case HostRegName:
			s.Host = host.Name()
		case HostIPv4:
			s.Host = host.IPv4().String()
		case HostIPv6, HostIPvFuture:
			s.Host = host.String()
		}
		s.Port, _ = u.Port()
	}

	path, ok := u.Slugs()
	if !ok {
		return fail()
	}
	s.Path = path

	if s.HasQuery {
		if s.Queries, ok = u.Queries(); !ok {
			return fail()
		}
	}
	if s.HasFragment {
		if s.Fragment, ok = u.DecodedFragment(); !ok {
			return fail()
		}
	}
	return s, nil
}

// ParseStructured parses s and decodes its components.
func ParseStructured(s string, opts Options) (*Structured, error) {
	return NewStructured(View(s, opts))
}

// PortNumber returns the port as a number.
func (s *Structured) PortNumber() (int, bool) {
	if s.Port == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s.Port)
	if err != nil || n > 65535 {
		return 0, false
	}
	return n, true
}

// String serializes the URI.
func (s *Structured) String() string {
	return string(s.AppendTo(nil))
}

// AppendTo appends the serialized URI to b.
func (s *Structured) AppendTo(b []byte) []byte {
	if s.Scheme != "" {
		b = append(b, s.Scheme...)
		b = append(b, ':')
	}

	if s.HasAuthority {
		b = append(b, '/', '/')
		if user, ok := s.Username.Get(); ok {
			b = percent.AppendEncode(b, user, charset.Username)
			if pass, ok := s.Password.Get(); ok {
				b = append(b, ':')
				b = percent.AppendEncode(b, pass, charset.UserInfoNotPctEncoded)
			}
			b = append(b, '@')
		}
		if strings.HasPrefix(s.Host, "[") {
			b = append(b, s.Host...)
		} else {
			b = percent.AppendEncode(b, s.Host, charset.RegNameNotPctEncoded)
		}
		if s.Port != "" {
			b = append(b, ':')
			b = append(b, s.Port...)
		}
	}

	// The path must not be read back as an authority or a scheme.
	path := s.Path.AppendTo(nil)
	switch {
	case s.HasAuthority:
		if len(path) > 0 && path[0] != '/' {
			b = append(b, '/')
		}
	case len(path) > 1 && path[0] == '/' && path[1] == '/':
		b = append(b, '/', '.')
	case s.Scheme == "" && len(s.Path) > 0 && strings.IndexByte(s.Path[0], ':') >= 0:
		b = append(b, '.', '/')
	}
	b = append(b, path...)
	return s.appendSuffix(b)
}

// appendSuffix appends the query and the fragment with their delimiters.
func (s *Structured) appendSuffix(b []byte) []byte {
	if s.HasQuery {
		b = append(b, '?')
		b = s.Queries.AppendTo(b)
	}
	if s.HasFragment {
		b = append(b, '#')
		b = percent.AppendEncode(b, s.Fragment, charset.QueryOrFragmentNotPctEncoded)
	}
	return b
}

// URI returns a mutable URI holding the serialization of s.
func (s *Structured) URI(opts Options) *URI {
	return New(s.String(), opts)
}

// Normalize applies the syntax and scheme based normalizations of RFC
// 3986 section 6: lowercase scheme and host, no default port, no dot
// segments, and "/" for the empty path of a special URI with a host.
func (s *Structured) Normalize() *Structured {
	n := s.Clone()
	n.Scheme = strings.ToLower(n.Scheme)
	n.Host = strings.ToLower(n.Host)
	if p, ok := n.PortNumber(); ok {
		if def, ok := DefaultPort(n.Scheme); ok && def == p {
			n.Port = ""
		}
	}
	n.Path = n.Path.Normalize()
	if n.HasAuthority && len(n.Path) == 0 && IsSpecial(n.Scheme) {
		n.Path = Path{"", ""}
	}
	return n
}

// Hash returns a 64-bit digest of the serialization.
func (s *Structured) Hash() uint64 {
	buf := hashBufs.Get()
	defer hashBufs.Put(buf)
	*buf = s.AppendTo(*buf)
	return xxhash.Sum64(*buf)
}

var hashBufs = sync_pool.New(
	func() *[]byte { b := make([]byte, 0, 256); return &b },
	func(b *[]byte) { *b = (*b)[:0] },
)

// Key returns the scheme, the host and port, the path slugs, then one last
// segment holding the encoded "?query#fragment" (empty if neither is
// present). URIs of the same origin sort next to each other in a store,
// and URIs with different serializations never share a key.
func (s *Structured) Key() []string {
	key := make([]string, 0, len(s.Path)+3)
	key = append(key, strings.ToLower(s.Scheme))
	authority := strings.ToLower(s.Host)
	if s.Port != "" {
		authority += ":" + s.Port
	}
	key = append(key, authority)
	path := s.Path
	if path.IsAbsolute() {
		path = path[1:]
	}
	key = append(key, path...)
	return append(key, string(s.appendSuffix(nil)))
}

// Equal reports whether both URIs have the same components.
func (s *Structured) Equal(o *Structured) bool {
	return s.Scheme == o.Scheme &&
		s.Username == o.Username &&
		s.Password == o.Password &&
		s.HasAuthority == o.HasAuthority &&
		s.Host == o.Host &&
		s.Port == o.Port &&
		s.Path.Equal(o.Path) &&
		s.HasQuery == o.HasQuery &&
		s.Queries.Equal(&o.Queries) &&
		s.HasFragment == o.HasFragment &&
		s.Fragment == o.Fragment
}

// Clone returns a deep copy.
func (s *Structured) Clone() *Structured {
	c := *s
	c.Path = s.Path.Clone()
	c.Queries = s.Queries.Clone()
	return &c
}
