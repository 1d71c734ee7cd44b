package uri

import (
	"strconv"
	"strings"

	"github.com/weburi/weburi/std/log"
	"github.com/weburi/weburi/std/types/optional"
	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/percent"
)

// Mutators encode their argument, splice it into the buffer and forget
// every offset. Nothing is adjusted in place: the next access parses the
// new text from scratch.

func (u *URI) replace(field string, start, length int, repl string) {
	u.replaceValue(start, length, repl)
	log.Trace(u, "Component replaced", "field", field)
}

// SetScheme sets or replaces the scheme.
func (u *URI) SetScheme(scheme string) error {
	if !u.mutable {
		return ErrImmutable
	}
	if scheme == "" || !charset.IsAlpha(scheme[0]) || !charset.SchemeNotFirst.ContainsAll(scheme[1:]) {
		return ErrInvalidArgument{Field: "scheme", Value: scheme, Reason: "not a valid scheme"}
	}

	u.parseScheme()
	if end, ok := u.offs.SchemeEnd.Get(); ok {
		u.replace("scheme", 0, end, scheme)
	} else {
		u.replace("scheme", 0, 0, scheme+":")
	}
	return nil
}

// SetUserInfo sets the user name and an optional password. The URI must
// have an authority.
func (u *URI) SetUserInfo(user string, password optional.Optional[string]) error {
	if !u.mutable {
		return ErrImmutable
	}
	u.parseUserInfo()
	start, ok := u.offs.AuthorityStart.Get()
	if !ok {
		return ErrNoAuthority
	}

	enc := percent.Encode(user, charset.Username)
	if pass, ok := password.Get(); ok {
		enc += ":" + percent.Encode(pass, charset.UserInfoNotPctEncoded)
	}

	if end, ok := u.offs.UserInfoEnd.Get(); ok {
		u.replace("userinfo", start, end-start, enc)
	} else {
		u.replace("userinfo", start, 0, enc+"@")
	}
	return nil
}

// ClearUserInfo removes the user-info and its '@'.
func (u *URI) ClearUserInfo() error {
	if !u.mutable {
		return ErrImmutable
	}
	u.parseUserInfo()
	if end, ok := u.offs.UserInfoEnd.Get(); ok {
		start := u.offs.AuthorityStart.Unwrap()
		u.replace("userinfo", start, end+1-start, "")
	}
	return nil
}

// SetHost sets the host, adding an authority if there is none. A
// registered name is given decoded; IP literals keep their brackets.
func (u *URI) SetHost(host string) error {
	if !u.mutable {
		return ErrImmutable
	}

	enc := host
	if !strings.HasPrefix(host, "[") {
		enc = percent.Encode(host, charset.RegNameNotPctEncoded)
	}
	if _, st := ParseHost(enc, u.opts); st.HasError() {
		return ErrInvalidArgument{Field: "host", Value: host, Reason: st.Value().String()}
	}

	u.parseHost()
	if u.offs.AuthorityStart.IsSet() {
		start := u.hostStart()
		u.replace("host", start, u.hostEnd()-start, enc)
		return nil
	}

	at := u.offs.AuthorityEnd.Unwrap()
	repl := "//" + enc
	if path := u.Path(); path != "" && path[0] != '/' {
		repl += "/"
	}
	u.replace("host", at, 0, repl)
	return nil
}

// SetPort sets the port. The URI must have an authority.
func (u *URI) SetPort(port int) error {
	if !u.mutable {
		return ErrImmutable
	}
	if port < 0 || port > 65535 {
		return ErrInvalidArgument{Field: "port", Value: port, Reason: "out of range"}
	}
	u.parsePort()
	if !u.offs.AuthorityStart.IsSet() {
		return ErrNoAuthority
	}

	digits := strconv.Itoa(port)
	end := u.offs.AuthorityEnd.Unwrap()
	if c, ok := u.offs.PortStart.Get(); ok {
		u.replace("port", c+1, end-c-1, digits)
	} else {
		u.replace("port", end, 0, ":"+digits)
	}
	return nil
}

// ClearPort removes the port and its ':'.
func (u *URI) ClearPort() error {
	if !u.mutable {
		return ErrImmutable
	}
	u.parsePort()
	if c, ok := u.offs.PortStart.Get(); ok {
		u.replace("port", c, u.offs.AuthorityEnd.Unwrap()-c, "")
	}
	return nil
}

// SetPath sets the path from decoded text. Each slug between '/' is
// encoded, so a '/' inside a slug cannot be expressed here; use SetSlugs.
func (u *URI) SetPath(path string) error {
	if path == "" {
		return u.SetSlugs(nil)
	}
	return u.SetSlugs(Path(strings.Split(path, "/")))
}

// SetSlugs sets the path from decoded slugs.
func (u *URI) SetSlugs(p Path) error {
	if !u.mutable {
		return ErrImmutable
	}
	u.parsePath()

	enc := p.String()
	switch {
	case u.offs.AuthorityStart.IsSet():
		if enc != "" && enc[0] != '/' {
			enc = "/" + enc
		}
	case strings.HasPrefix(enc, "//"):
		enc = "/." + enc
	case !u.offs.SchemeEnd.IsSet() && len(p) > 0 && strings.IndexByte(p[0], ':') >= 0:
		enc = "./" + enc
	}

	start := u.offs.AuthorityEnd.Unwrap()
	u.replace("path", start, u.queryEnd()-start, enc)
	return nil
}

// SetRawQuery sets an already encoded query.
func (u *URI) SetRawQuery(query string) error {
	if !u.mutable {
		return ErrImmutable
	}
	if !percent.IsEncoded(query, charset.QueryOrFragmentNotPctEncoded) {
		return ErrInvalidArgument{Field: "query", Value: query, Reason: "not a valid encoding"}
	}

	u.parsePath()
	if start, ok := u.offs.QueryStart.Get(); ok {
		end := u.offs.FragmentStart.GetOr(len(u.buf))
		u.replace("query", start+1, end-start-1, query)
	} else {
		u.replace("query", u.queryEnd(), 0, "?"+query)
	}
	return nil
}

// SetQueries encodes q and sets it as the query.
func (u *URI) SetQueries(q Queries) error {
	return u.SetRawQuery(q.String())
}

// ClearQuery removes the query and its '?'.
func (u *URI) ClearQuery() error {
	if !u.mutable {
		return ErrImmutable
	}
	u.parseQuery()
	if start, ok := u.offs.QueryStart.Get(); ok {
		end := u.offs.FragmentStart.GetOr(len(u.buf))
		u.replace("query", start, end-start, "")
	}
	return nil
}

// SetFragment sets the fragment from decoded text.
func (u *URI) SetFragment(fragment string) error {
	if !u.mutable {
		return ErrImmutable
	}
	enc := percent.Encode(fragment, charset.QueryOrFragmentNotPctEncoded)

	u.parseFragment()
	if start, ok := u.offs.FragmentStart.Get(); ok {
		u.replace("fragment", start+1, len(u.buf)-start-1, enc)
	} else {
		u.replace("fragment", len(u.buf), 0, "#"+enc)
	}
	return nil
}

// ClearFragment removes the fragment and its '#'.
func (u *URI) ClearFragment() error {
	if !u.mutable {
		return ErrImmutable
	}
	u.parseFragment()
	if start, ok := u.offs.FragmentStart.Get(); ok {
		u.replace("fragment", start, len(u.buf)-start, "")
	}
	return nil
}
