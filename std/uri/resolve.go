package uri

import (
	"github.com/weburi/weburi/std/uri/status"
)

// Resolve resolves the reference ref against base (RFC 3986 section
// 5.2.2). The result is a new value and the path is always normalized.
func Resolve(base, ref *Structured) *Structured {
	t := &Structured{}

	switch {
	case ref.Scheme != "":
		*t = *ref.Clone()
		t.Path = t.Path.Normalize()
	case ref.HasAuthority:
		*t = *ref.Clone()
		t.Scheme = base.Scheme
		t.Path = t.Path.Normalize()
	default:
		t.Scheme = base.Scheme
		t.Username, t.Password = base.Username, base.Password
		t.HasAuthority, t.Host, t.Port = base.HasAuthority, base.Host, base.Port

		switch {
		case len(ref.Path) == 0:
			t.Path = base.Path.Normalize()
			if ref.HasQuery {
				t.HasQuery, t.Queries = true, ref.Queries.Clone()
			} else {
				t.HasQuery, t.Queries = base.HasQuery, base.Queries.Clone()
			}
		case ref.Path.IsAbsolute():
			t.Path = ref.Path.Normalize()
			t.HasQuery, t.Queries = ref.HasQuery, ref.Queries.Clone()
		default:
			t.Path = merge(base, ref.Path).Normalize()
			t.HasQuery, t.Queries = ref.HasQuery, ref.Queries.Clone()
		}
	}

	t.HasFragment, t.Fragment = ref.HasFragment, ref.Fragment
	return t
}

// merge appends a relative path to all but the last slug of the base path.
func merge(base *Structured, ref Path) Path {
	if base.HasAuthority && len(base.Path) == 0 {
		return append(Path{""}, ref...)
	}
	if len(base.Path) == 0 {
		return ref.Clone()
	}
	out := append(Path(nil), base.Path[:len(base.Path)-1]...)
	return append(out, ref...)
}

// ResolveString parses base and ref, resolves ref and serializes the
// result. base must be an absolute URI. A reference other than a bare
// fragment cannot be resolved against a base with an opaque path.
func ResolveString(base, ref string, opts Options) (string, error) {
	t, err := View(base, opts).Resolve(ref)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// Resolve resolves ref against u and returns a new mutable URI.
func (u *URI) Resolve(ref string) (*URI, error) {
	b, err := NewStructured(u)
	if err != nil {
		return nil, err
	}
	if b.Scheme == "" {
		return nil, ErrParse{Input: u.String(), Status: status.Of(status.MissingScheme)}
	}

	r := View(ref, u.opts)
	rs, err := NewStructured(r)
	if err != nil {
		return nil, err
	}
	if u.Status().Value() == status.ValidOpaquePath && rs.Scheme == "" &&
		(rs.HasAuthority || len(rs.Path) > 0 || rs.HasQuery) {
		return nil, ErrParse{Input: ref, Status: status.Of(status.IncompatibleSchemes)}
	}
	return Resolve(b, rs).URI(u.opts), nil
}
