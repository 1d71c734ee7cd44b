package uri

import (
	"strconv"
	"strings"

	"github.com/weburi/weburi/std/log"
	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/percent"
	"github.com/weburi/weburi/std/uri/status"
)

// Status parses and validates the whole URI and returns the outcome.
// Components are checked in order and the first error stops the check.
func (u *URI) Status() status.Status {
	if !u.checked {
		u.parseAll()
		u.validate()
		u.checked = true
		if log.HasTrace() {
			log.Trace(u, "URI validated", "value", u.status.Value().Name(), "warnings", u.status.Warnings().Count())
		}
	}
	return u.status
}

// IsValid is a shortcut for Status().IsValid().
func (u *URI) IsValid() bool {
	return u.Status().IsValid()
}

func (u *URI) validate() {
	st := &u.status
	if st.HasError() {
		return
	}

	punycode := false
	for _, check := range []func(*status.Status) bool{
		u.validateScheme,
		u.validateUserInfo,
		func(st *status.Status) bool {
			ok, p := u.validateHost(st)
			punycode = p
			return ok
		},
		u.validatePort,
		u.validatePath,
		u.validateQuery,
		u.validateFragment,
	} {
		if !check(st) {
			return
		}
	}

	path := u.Path()
	switch {
	case !u.HasScheme():
		st.SetValid(status.ValidRelative)
	case punycode:
		st.SetValid(status.ValidPunycode)
	case !u.HasAuthority() && path != "" && path[0] != '/':
		st.SetValid(status.ValidOpaquePath)
	default:
		st.SetValid(status.Valid)
	}
}

// checkChars reports invalid bytes of a component: an error in strict
// mode, a warning in loose mode.
func (u *URI) checkChars(st *status.Status, raw string, allowed charset.Set, errValue status.Value, warn status.Warning) bool {
	i := percent.InvalidIndex(raw, allowed)
	if i < 0 {
		return true
	}
	if u.opts.Whatwg {
		st.SetWarning(warn)
		return true
	}
	if raw[i] == '%' {
		st.SetErrorOnce(status.InvalidPercentEncoding)
	} else {
		st.SetErrorOnce(errValue)
	}
	return false
}

func (u *URI) validateScheme(st *status.Status) bool {
	if s := u.Scheme(); s != strings.ToLower(s) {
		st.SetWarning(status.UppercaseScheme)
	}
	return true
}

func (u *URI) validateUserInfo(st *status.Status) bool {
	ui, ok := u.UserInfo()
	if !ok {
		return true
	}
	if u.opts.Whatwg {
		st.SetWarning(status.HasCredentials)
	}
	return u.checkChars(st, ui, charset.UserInfoNotPctEncoded,
		status.InvalidCredentials, status.InvalidUserInfoCharacterUsed)
}

func (u *URI) validateHost(st *status.Status) (ok bool, punycode bool) {
	if !u.HasAuthority() {
		return true, false
	}

	raw := u.Host()
	if raw == "" {
		_, hasUserInfo := u.UserInfo()
		_, hasPort := u.Port()
		scheme := strings.ToLower(u.Scheme())
		if hasUserInfo || hasPort || (IsSpecial(scheme) && scheme != "file") {
			st.SetErrorOnce(status.HostMissing)
			return false, false
		}
		return true, false
	}

	host, hst := ParseHost(raw, u.opts)
	st.Merge(hst)
	if st.HasError() {
		return false, false
	}
	return true, host.IsPunycode()
}

func (u *URI) validatePort(st *status.Status) bool {
	port, ok := u.Port()
	if !ok {
		return true
	}
	if port == "" {
		st.SetWarning(status.EmptyPort)
		return true
	}
	n, err := strconv.Atoi(port)
	if err != nil || n > 65535 {
		st.SetErrorOnce(status.PortOutOfRange)
		return false
	}
	if def, ok := DefaultPort(u.Scheme()); ok && def == n {
		st.SetWarning(status.DefaultPortUsed)
	}
	return true
}

func (u *URI) validatePath(st *status.Status) bool {
	raw := u.Path()
	allowed := charset.PathNotPctEncoded
	if u.special() && strings.IndexByte(raw, '\\') >= 0 {
		st.SetWarning(status.ReverseSolidusUsed)
		allowed = allowed.With("\\")
	}
	if strings.EqualFold(u.Scheme(), "file") {
		if p, ok := u.Slugs(); ok && p.HasWindowsDriveLetter() {
			st.SetWarning(status.WindowsDriveLetterUsed)
		}
	}
	return u.checkChars(st, raw, allowed,
		status.InvalidPathCharacter, status.InvalidPathCharacterUsed)
}

func (u *URI) validateQuery(st *status.Status) bool {
	if !u.HasQuery() {
		return true
	}
	return u.checkChars(st, u.RawQuery(), charset.QueryOrFragmentNotPctEncoded,
		status.InvalidQueryCharacter, status.InvalidQueryCharacterUsed)
}

func (u *URI) validateFragment(st *status.Status) bool {
	if !u.HasFragment() {
		return true
	}
	return u.checkChars(st, u.Fragment(), charset.QueryOrFragmentNotPctEncoded,
		status.InvalidFragmentCharacter, status.InvalidFragmentCharacterUsed)
}
