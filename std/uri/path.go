package uri

import (
	"strings"

	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/percent"
)

// Path is a sequence of decoded slugs. A leading empty slug makes the
// path absolute: "/" is ["", ""] and "/a/" is ["", "a", ""]. The empty
// path is nil.
type Path []string

// ParsePath splits a raw path and decodes every slug leniently.
func ParsePath(raw string) Path {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "/")
	for i, part := range parts {
		parts[i] = percent.DecodeLenient(part)
	}
	return parts
}

// IsAbsolute reports whether the path starts with '/'.
func (p Path) IsAbsolute() bool {
	return len(p) > 1 && p[0] == ""
}

// Normalize removes dot segments, stripping ".." that would climb above
// the root of an absolute path.
func (p Path) Normalize() Path {
	return p.RemoveDotSegments(p.IsAbsolute())
}

// RemoveDotSegments resolves "." and ".." slugs in one left to right pass
// (RFC 3986 section 5.2.4). A ".." with nothing left to remove is dropped
// when stripLeading is set on an absolute path, and kept otherwise.
// A dot slug at the end leaves a trailing slash.
func (p Path) RemoveDotSegments(stripLeading bool) Path {
	if len(p) == 0 {
		return p
	}

	abs := p.IsAbsolute()
	body := []string(p)
	if abs {
		body = body[1:]
	}

	out := make([]string, 0, len(body))
	for i, slug := range body {
		last := i == len(body)-1
		switch slug {
		case ".":
			if last {
				out = append(out, "")
			}
		case "..":
			switch n := len(out); {
			case n > 0 && out[n-1] != "..":
				out = out[:n-1]
			case abs && stripLeading:
			default:
				out = append(out, "..")
				continue
			}
			if last {
				out = append(out, "")
			}
		default:
			out = append(out, slug)
		}
	}

	if abs {
		if len(out) == 0 {
			out = append(out, "")
		}
		return append(Path{""}, out...)
	}
	return out
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

// Append returns p with slugs added, replacing a trailing empty slug.
func (p Path) Append(slugs ...string) Path {
	out := p.Clone()
	if n := len(out); n > 0 && out[n-1] == "" && (n > 1 || len(slugs) > 0) {
		out = out[:n-1]
	}
	return append(out, slugs...)
}

// Last returns the last slug, or "".
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Equal reports whether both paths have the same slugs.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// HasWindowsDriveLetter reports whether the first slug after the root is
// a drive letter such as "C:" or "C|".
func (p Path) HasWindowsDriveLetter() bool {
	first := 0
	if p.IsAbsolute() {
		first = 1
	}
	if len(p) <= first {
		return false
	}
	s := p[first]
	return len(s) == 2 && charset.IsAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

// String encodes every slug and joins them with '/'.
func (p Path) String() string {
	return string(p.AppendTo(nil))
}

// AppendTo appends the encoded path to b.
func (p Path) AppendTo(b []byte) []byte {
	for i, slug := range p {
		if i > 0 {
			b = append(b, '/')
		}
		b = percent.AppendEncode(b, slug, charset.Slug)
	}
	return b
}
