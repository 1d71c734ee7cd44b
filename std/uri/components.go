package uri

import (
	"strconv"
	"strings"

	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/percent"
	"github.com/weburi/weburi/std/uri/status"
)

// Raw accessors return slices of the buffer, still percent-encoded.
// Decoded accessors return false when the component is absent or does
// not decode.

func (u *URI) decode(raw string, set charset.Set) (string, bool) {
	if u.opts.Whatwg {
		return percent.DecodeLenient(raw), true
	}
	return percent.Decode(raw, set, percent.AllowedChars)
}

// HasScheme reports whether the URI has a scheme.
func (u *URI) HasScheme() bool {
	u.parseScheme()
	return u.offs.SchemeEnd.IsSet()
}

// Scheme returns the scheme as written, or "".
func (u *URI) Scheme() string {
	u.parseScheme()
	if end, ok := u.offs.SchemeEnd.Get(); ok {
		return u.buf[:end]
	}
	return ""
}

// HasAuthority reports whether the URI has an authority, even empty.
func (u *URI) HasAuthority() bool {
	u.parseScheme()
	return u.offs.AuthorityStart.IsSet()
}

// Authority returns user-info, host and port as written.
func (u *URI) Authority() string {
	u.parsePath()
	if start, ok := u.offs.AuthorityStart.Get(); ok {
		return u.buf[start:u.offs.AuthorityEnd.Unwrap()]
	}
	return ""
}

// UserInfo returns the raw user-info.
func (u *URI) UserInfo() (string, bool) {
	u.parseUserInfo()
	if end, ok := u.offs.UserInfoEnd.Get(); ok {
		return u.buf[u.offs.AuthorityStart.Unwrap():end], true
	}
	return "", false
}

// Username returns the raw user-info up to the first colon.
func (u *URI) Username() string {
	ui, _ := u.UserInfo()
	if i := strings.IndexByte(ui, ':'); i >= 0 {
		return ui[:i]
	}
	return ui
}

// Password returns the raw user-info after the first colon.
func (u *URI) Password() (string, bool) {
	ui, _ := u.UserInfo()
	if i := strings.IndexByte(ui, ':'); i >= 0 {
		return ui[i+1:], true
	}
	return "", false
}

// DecodedUsername returns the percent-decoded user name.
func (u *URI) DecodedUsername() (string, bool) {
	if _, ok := u.UserInfo(); !ok {
		return "", false
	}
	return u.decode(u.Username(), charset.Username)
}

// DecodedPassword returns the percent-decoded password.
func (u *URI) DecodedPassword() (string, bool) {
	pass, ok := u.Password()
	if !ok {
		return "", false
	}
	return u.decode(pass, charset.UserInfoNotPctEncoded)
}

// Host returns the raw host, brackets included for IP literals.
func (u *URI) Host() string {
	u.parseHost()
	if !u.offs.AuthorityStart.IsSet() {
		return ""
	}
	return u.buf[u.hostStart():u.hostEnd()]
}

// ParsedHost validates and classifies the host.
func (u *URI) ParsedHost() (Host, status.Status) {
	return ParseHost(u.Host(), u.opts)
}

// Port returns the port digits. An empty port after a colon is present.
func (u *URI) Port() (string, bool) {
	u.parsePort()
	if c, ok := u.offs.PortStart.Get(); ok {
		return u.buf[c+1 : u.offs.AuthorityEnd.Unwrap()], true
	}
	return "", false
}

// PortNumber returns the port as a number, if present and in range.
func (u *URI) PortNumber() (int, bool) {
	p, ok := u.Port()
	if !ok || p == "" {
		return 0, false
	}
	n, err := strconv.Atoi(p)
	if err != nil || n > 65535 {
		return 0, false
	}
	return n, true
}

// Path returns the raw path.
func (u *URI) Path() string {
	u.parsePath()
	return u.buf[u.offs.AuthorityEnd.Unwrap():u.queryEnd()]
}

// Slugs returns the decoded path segments.
func (u *URI) Slugs() (Path, bool) {
	raw := u.Path()
	if u.special() {
		raw = strings.ReplaceAll(raw, "\\", "/")
	}
	if raw == "" {
		return nil, true
	}
	parts := strings.Split(raw, "/")
	p := make(Path, len(parts))
	for i, part := range parts {
		slug, ok := u.decode(part, charset.Slug)
		if !ok {
			return nil, false
		}
		p[i] = slug
	}
	return p, true
}

// HasQuery reports whether the URI has a '?', even with an empty query.
func (u *URI) HasQuery() bool {
	u.parseQuery()
	return u.offs.QueryStart.IsSet()
}

// RawQuery returns the query without the '?'.
func (u *URI) RawQuery() string {
	u.parseQuery()
	if start, ok := u.offs.QueryStart.Get(); ok {
		return u.buf[start+1 : u.offs.FragmentStart.GetOr(len(u.buf))]
	}
	return ""
}

// Queries returns the decoded query pairs.
func (u *URI) Queries() (Queries, bool) {
	if !u.HasQuery() {
		return Queries{}, false
	}
	if u.opts.Whatwg {
		return ParseQueriesLenient(u.RawQuery()), true
	}
	return ParseQueries(u.RawQuery())
}

// HasFragment reports whether the URI has a '#', even with an empty fragment.
func (u *URI) HasFragment() bool {
	u.parseFragment()
	return u.offs.FragmentStart.IsSet()
}

// Fragment returns the raw fragment without the '#'.
func (u *URI) Fragment() string {
	u.parseFragment()
	if start, ok := u.offs.FragmentStart.Get(); ok {
		return u.buf[start+1:]
	}
	return ""
}

// DecodedFragment returns the percent-decoded fragment.
func (u *URI) DecodedFragment() (string, bool) {
	if !u.HasFragment() {
		return "", false
	}
	return u.decode(u.Fragment(), charset.QueryOrFragmentNotPctEncoded)
}
