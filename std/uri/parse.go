package uri

import (
	"strings"

	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/status"
)

// Each parse step runs at most once per buffer version and first runs the
// steps it depends on. Errors found on the way are recorded in u.status,
// the first one wins.

func (u *URI) parseAll() {
	if u.done == stepAll {
		return
	}
	u.parseHost()
}

// special reports whether backslashes and missing slashes are tolerated.
func (u *URI) special() bool {
	if !u.opts.Whatwg {
		return false
	}
	u.parseScheme()
	end, ok := u.offs.SchemeEnd.Get()
	return ok && IsSpecial(u.buf[:end])
}

func (u *URI) parseScheme() {
	if u.done&stepScheme != 0 {
		return
	}
	u.done |= stepScheme

	s := u.buf
	pos := 0
	end := strings.IndexAny(s, ":/?#")
	switch {
	case end == 0 && s[0] == ':':
		u.status.SetErrorOnce(status.MissingScheme)
		return
	case end > 0 && s[end] == ':':
		if !charset.IsAlpha(s[0]) || !charset.SchemeNotFirst.ContainsAll(s[1:end]) {
			// a colon in the first segment of a relative reference
			u.status.SetErrorOnce(status.InvalidSchemeCharacter)
			return
		}
		u.offs.SchemeEnd.Set(end)
		pos = end + 1
	case !u.opts.AllowRelative:
		if end < 0 && s != "" && charset.IsAlpha(s[0]) && charset.SchemeNotFirst.ContainsAll(s[1:]) {
			u.status.SetErrorOnce(status.SchemeEndedUnexpectedly)
		} else {
			u.status.SetErrorOnce(status.MissingScheme)
		}
		return
	}

	if u.opts.Whatwg && pos > 0 && IsSpecial(s[:pos-1]) && !strings.EqualFold(s[:pos-1], "file") {
		n := 0
		backslash := false
		for pos+n < len(s) && (s[pos+n] == '/' || s[pos+n] == '\\') {
			backslash = backslash || s[pos+n] == '\\'
			n++
		}
		if backslash {
			u.status.SetWarning(status.ReverseSolidusUsed)
		}
		if n != 2 {
			u.status.SetWarning(status.MissingSolidusAfterScheme)
		}
		u.offs.AuthorityStart.Set(pos + n)
		return
	}

	if strings.HasPrefix(s[pos:], "//") {
		u.offs.AuthorityStart.Set(pos + 2)
	}
}

func (u *URI) parseFragment() {
	if u.done&stepFragment != 0 {
		return
	}
	u.done |= stepFragment

	if i := strings.IndexByte(u.buf, '#'); i >= 0 {
		u.offs.FragmentStart.Set(i)
	}
}

func (u *URI) parseQuery() {
	if u.done&stepQuery != 0 {
		return
	}
	u.done |= stepQuery
	u.parseFragment()

	end := u.offs.FragmentStart.GetOr(len(u.buf))
	if i := strings.IndexByte(u.buf[:end], '?'); i >= 0 {
		u.offs.QueryStart.Set(i)
	}
}

// parsePath finds where the authority ends and the path begins.
func (u *URI) parsePath() {
	if u.done&stepPath != 0 {
		return
	}
	u.done |= stepPath
	u.parseScheme()
	u.parseQuery()

	if start, ok := u.offs.AuthorityStart.Get(); ok {
		end := u.queryEnd()
		delims := "/"
		if u.special() {
			delims = "/\\"
		}
		if i := strings.IndexAny(u.buf[start:end], delims); i >= 0 {
			end = start + i
		}
		u.offs.AuthorityEnd.Set(end)
		return
	}

	if end, ok := u.offs.SchemeEnd.Get(); ok {
		u.offs.AuthorityEnd.Set(end + 1)
	} else {
		u.offs.AuthorityEnd.Set(0)
	}
}

func (u *URI) parseUserInfo() {
	if u.done&stepUserInfo != 0 {
		return
	}
	u.done |= stepUserInfo
	u.parseScheme()
	u.parsePath()

	start, ok := u.offs.AuthorityStart.Get()
	if !ok {
		return
	}
	end := u.offs.AuthorityEnd.Unwrap()
	if i := strings.LastIndexByte(u.buf[start:end], '@'); i >= 0 {
		u.offs.UserInfoEnd.Set(start + i)
	}
}

func (u *URI) parsePort() {
	if u.done&stepPort != 0 {
		return
	}
	u.done |= stepPort
	u.parseUserInfo()
	u.parsePath()

	if !u.offs.AuthorityStart.IsSet() {
		return
	}
	start := u.hostStart()
	seg := u.buf[start:u.offs.AuthorityEnd.Unwrap()]
	c := strings.LastIndexByte(seg, ':')
	if c < 0 || c < strings.LastIndexByte(seg, ']') {
		return
	}
	if !charset.Port.ContainsAll(seg[c+1:]) {
		u.status.SetErrorOnce(status.PortInvalidCharacter)
		return
	}
	u.offs.PortStart.Set(start + c)
}

// parseHost has no offset of its own, the host is what remains of the
// authority once the user-info and the port are known.
func (u *URI) parseHost() {
	u.parseUserInfo()
	u.parsePort()
	u.parsePath()
}

func (u *URI) hostStart() int {
	if i, ok := u.offs.UserInfoEnd.Get(); ok {
		return i + 1
	}
	return u.offs.AuthorityStart.Unwrap()
}

func (u *URI) hostEnd() int {
	if i, ok := u.offs.PortStart.Get(); ok {
		return i
	}
	return u.offs.AuthorityEnd.Unwrap()
}

// queryEnd is where the path ends.
func (u *URI) queryEnd() int {
	if i, ok := u.offs.QueryStart.Get(); ok {
		return i
	}
	return u.offs.FragmentStart.GetOr(len(u.buf))
}
