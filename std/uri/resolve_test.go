package uri_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/uri"
	"github.com/weburi/weburi/std/uri/status"
	tu "github.com/weburi/weburi/std/utils/testutils"
)

const rfcBase = "http://a/b/c/d;p?q"

func TestResolveNormal(t *testing.T) {
	tu.SetT(t)

	cases := map[string]string{
		"g:h":     "g:h",
		"g":       "http://a/b/c/g",
		"./g":     "http://a/b/c/g",
		"g/":      "http://a/b/c/g/",
		"/g":      "http://a/g",
		"//g":     "http://g",
		"?y":      "http://a/b/c/d;p?y",
		"g?y":     "http://a/b/c/g?y",
		"#s":      "http://a/b/c/d;p?q#s",
		"g#s":     "http://a/b/c/g#s",
		"g?y#s":   "http://a/b/c/g?y#s",
		";x":      "http://a/b/c/;x",
		"g;x":     "http://a/b/c/g;x",
		"g;x?y#s": "http://a/b/c/g;x?y#s",
		"":        "http://a/b/c/d;p?q",
		".":       "http://a/b/c/",
		"./":      "http://a/b/c/",
		"..":      "http://a/b/",
		"../":     "http://a/b/",
		"../g":    "http://a/b/g",
		"../..":   "http://a/",
		"../../":  "http://a/",
		"../../g": "http://a/g",
	}
	for ref, want := range cases {
		require.Equal(t, want, tu.NoErr(uri.ResolveString(rfcBase, ref, uri.Strict)), "%q", ref)
	}
}

func TestResolveAbnormal(t *testing.T) {
	tu.SetT(t)

	cases := map[string]string{
		"../../../g":    "http://a/g",
		"../../../../g": "http://a/g",
		"/./g":          "http://a/g",
		"/../g":         "http://a/g",
		"g.":            "http://a/b/c/g.",
		".g":            "http://a/b/c/.g",
		"g..":           "http://a/b/c/g..",
		"..g":           "http://a/b/c/..g",
		"./../g":        "http://a/b/g",
		"./g/.":         "http://a/b/c/g/",
		"g/./h":         "http://a/b/c/g/h",
		"g/../h":        "http://a/b/c/h",
		"g;x=1/./y":     "http://a/b/c/g;x=1/y",
		"g;x=1/../y":    "http://a/b/c/y",
		"g?y/./x":       "http://a/b/c/g?y/./x",
		"g?y/../x":      "http://a/b/c/g?y/../x",
		"g#s/./x":       "http://a/b/c/g#s/./x",
		"g#s/../x":      "http://a/b/c/g#s/../x",
		"http:g":        "http:g",
	}
	for ref, want := range cases {
		require.Equal(t, want, tu.NoErr(uri.ResolveString(rfcBase, ref, uri.Strict)), "%q", ref)
	}
}

func TestResolveIdentity(t *testing.T) {
	tu.SetT(t)

	empty := &uri.Structured{}
	for _, in := range []string{
		rfcBase,
		"http://a/b/./c/../d?x=1",
		"https://user@host:8080",
		"file:///C:/dir/../x",
		"urn:isbn:0451450523",
	} {
		base := tu.NoErr(uri.ParseStructured(in, uri.Strict))
		target := uri.Resolve(base, empty)

		want := base.Clone()
		want.Path = want.Path.Normalize()
		require.True(t, want.Equal(target), "%q: got %s", in, target)
	}
}

func TestResolvePure(t *testing.T) {
	tu.SetT(t)

	base := tu.NoErr(uri.ParseStructured(rfcBase, uri.Strict))
	ref := tu.NoErr(uri.ParseStructured("../g?y", uri.Strict))
	target := uri.Resolve(base, ref)
	require.Equal(t, "http://a/b/g?y", target.String())

	target.Path[1] = "z"
	target.Queries.Set("y", "1")
	require.Equal(t, rfcBase, base.String())
	require.Equal(t, "../g?y", ref.String())
}

func TestResolveErrors(t *testing.T) {
	tu.SetT(t)

	var perr uri.ErrParse
	require.ErrorAs(t, tu.Err(uri.ResolveString("/a/b", "c", uri.Strict)), &perr)
	require.Equal(t, status.MissingScheme, perr.Status.Value())

	require.ErrorAs(t, tu.Err(uri.ResolveString("mailto:a@b", "c", uri.Strict)), &perr)
	require.Equal(t, status.IncompatibleSchemes, perr.Status.Value())

	require.ErrorAs(t, tu.Err(uri.ResolveString(rfcBase, "http://h:99999/", uri.Strict)), &perr)
	require.Equal(t, status.PortOutOfRange, perr.Status.Value())

	require.Equal(t, "mailto:a@b#top", tu.NoErr(uri.ResolveString("mailto:a@b", "#top", uri.Strict)))
}

func TestURIResolve(t *testing.T) {
	tu.SetT(t)

	base := uri.View("http://a/b/c/d;p?q", uri.Strict)
	u := tu.NoErr(base.Resolve("../../../g"))
	require.Equal(t, "http://a/g", u.String())
	require.True(t, u.IsMutable())
	require.True(t, u.IsValid())
}
