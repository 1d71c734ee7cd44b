// Package uri parses, validates and edits URI references.
//
// A URI keeps its text in a single buffer and finds component boundaries
// lazily: each boundary is computed on first use and cached until the
// buffer changes. Strict options follow RFC 3986, Loose options follow
// the WHATWG URL standard and turn most syntax errors into warnings.
package uri

import (
	"strings"

	"github.com/weburi/weburi/std/types/optional"
	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/status"
)

// Offsets are the component boundaries of a URI. Absent offsets are
// either not yet computed or mark a component that is not there.
type Offsets struct {
	// Index of the ':' ending the scheme.
	SchemeEnd optional.Optional[int]
	// Index right after the "//" introducing the authority.
	AuthorityStart optional.Optional[int]
	// Index of the '@' ending the user-info.
	UserInfoEnd optional.Optional[int]
	// Index of the ':' before the port.
	PortStart optional.Optional[int]
	// Index where the path begins.
	AuthorityEnd optional.Optional[int]
	// Index of the '?' starting the query.
	QueryStart optional.Optional[int]
	// Index of the '#' starting the fragment.
	FragmentStart optional.Optional[int]
}

// List returns the offsets in buffer order.
func (o Offsets) List() [7]optional.Optional[int] {
	return [7]optional.Optional[int]{
		o.SchemeEnd, o.AuthorityStart, o.UserInfoEnd, o.PortStart,
		o.AuthorityEnd, o.QueryStart, o.FragmentStart,
	}
}

type step uint8

const (
	stepScheme step = 1 << iota
	stepFragment
	stepQuery
	stepPath
	stepUserInfo
	stepPort
	stepAll step = 1<<iota - 1
)

// URI is a URI reference held in a text buffer.
// A URI is not safe for concurrent use, except for reads once Status
// has been called and no mutator runs.
type URI struct {
	buf     string
	mutable bool
	opts    Options

	// warnings found while cleaning up the input
	pre     status.Warning
	done    step
	offs    Offsets
	status  status.Status
	checked bool
}

// New creates a mutable URI from s.
func New(s string, opts Options) *URI {
	u := &URI{mutable: true, opts: opts}
	u.assign(s)
	return u
}

// View creates an immutable URI from s. Mutators fail with ErrImmutable.
func View(s string, opts Options) *URI {
	u := &URI{opts: opts}
	u.assign(s)
	return u
}

// Parse creates a mutable URI and fails if it does not validate.
func Parse(s string, opts Options) (*URI, error) {
	u := New(s, opts)
	if st := u.Status(); st.HasError() {
		return nil, ErrParse{Input: s, Status: st}
	}
	return u, nil
}

// Assign replaces the whole text of the URI.
func (u *URI) Assign(s string) error {
	if !u.mutable {
		return ErrImmutable
	}
	u.assign(s)
	return nil
}

func (u *URI) assign(s string) {
	u.pre = 0
	if u.opts.Whatwg {
		s, u.pre = preprocess(s)
	}
	u.buf = s
	u.unparse()
}

// preprocess applies the WHATWG input cleanup.
func preprocess(s string) (string, status.Warning) {
	var w status.Warning

	lo, hi := 0, len(s)
	for lo < hi && charset.C0ControlOrSpace.Contains(s[lo]) {
		lo++
	}
	for hi > lo && charset.C0ControlOrSpace.Contains(s[hi-1]) {
		hi--
	}
	if lo > 0 || hi < len(s) {
		w |= status.LeadingTrailingC0ControlOrSpace
		s = s[lo:hi]
	}

	if charset.ASCIITabOrNL.IndexIn(s) >= 0 {
		w |= status.TabOrNewlineIgnored
		sb := strings.Builder{}
		sb.Grow(len(s))
		for i := 0; i < len(s); i++ {
			if !charset.ASCIITabOrNL.Contains(s[i]) {
				sb.WriteByte(s[i])
			}
		}
		s = sb.String()
	}
	return s, w
}

// unparse forgets every computed offset and the validation result.
func (u *URI) unparse() {
	u.done = 0
	u.offs = Offsets{}
	u.status = status.New(status.Unparsed, u.pre)
	u.checked = false
}

// replaceValue splices repl over buf[start:start+length] and unparses.
func (u *URI) replaceValue(start, length int, repl string) {
	sb := strings.Builder{}
	sb.Grow(len(u.buf) - length + len(repl))
	sb.WriteString(u.buf[:start])
	sb.WriteString(repl)
	sb.WriteString(u.buf[start+length:])
	u.buf = sb.String()
	u.unparse()
}

// String returns the text of the URI.
func (u *URI) String() string {
	return u.buf
}

// Len returns the length of the text.
func (u *URI) Len() int {
	return len(u.buf)
}

// IsMutable returns false for views.
func (u *URI) IsMutable() bool {
	return u.mutable
}

// Options returns the options the URI was created with.
func (u *URI) Options() Options {
	return u.opts
}

// Offsets computes and returns every component boundary.
func (u *URI) Offsets() Offsets {
	u.parseAll()
	return u.offs
}

// Clone returns an independent mutable copy.
func (u *URI) Clone() *URI {
	c := *u
	c.mutable = true
	return &c
}
