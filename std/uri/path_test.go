package uri_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/uri"
)

func TestParsePath(t *testing.T) {
	require.Nil(t, uri.ParsePath(""))
	require.Equal(t, uri.Path{"", ""}, uri.ParsePath("/"))
	require.Equal(t, uri.Path{"", "a", ""}, uri.ParsePath("/a/"))
	require.Equal(t, uri.Path{"a", "b c"}, uri.ParsePath("a/b%20c"))
	require.True(t, uri.ParsePath("/a").IsAbsolute())
	require.False(t, uri.ParsePath("a").IsAbsolute())
}

func TestRemoveDotSegments(t *testing.T) {
	cases := map[string]string{
		"/a/b/c/./../../g": "/a/g",
		"mid/content=5/../6": "mid/6",
		"/a/./b":           "/a/b",
		"/a/.":             "/a/",
		"/a/..":            "/",
		"/..":              "/",
		"/../a":            "/a",
		"/a/b/..":          "/a/",
		"/a//..":           "/a/",
		"/.":               "/",
		"a/./b":            "a/b",
		"../a":             "../a",
		"a/../../b":        "../b",
		"./a":              "a",
		"/a/b/":            "/a/b/",
	}
	for in, want := range cases {
		got := uri.ParsePath(in).Normalize()
		require.Equal(t, want, got.String(), "%q", in)
	}

	require.Equal(t, uri.Path{"", "..", "a"}, uri.ParsePath("/../a").RemoveDotSegments(false))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{
		"/a/b/c/./../../g", "a/../../b", "/a//..", "./.././x/", "/.", "..", "a/..", "/x/./y/../../..",
	} {
		once := uri.ParsePath(in).Normalize()
		require.Equal(t, once, once.Normalize(), "%q", in)
	}
}

func TestPathHelpers(t *testing.T) {
	p := uri.Path{"", "a b", "c/d"}
	require.Equal(t, "/a%20b/c%2Fd", p.String())
	require.Equal(t, "c/d", p.Last())
	require.Equal(t, "", uri.Path(nil).Last())

	q := p.Clone()
	q[1] = "x"
	require.Equal(t, "a b", p[1])
	require.False(t, p.Equal(q))
	require.True(t, p.Equal(p.Clone()))

	require.Equal(t, uri.Path{"", "a", "b"}, uri.Path{"", "a", ""}.Append("b"))
	require.Equal(t, uri.Path{"", "x"}, uri.Path{"", ""}.Append("x"))
	require.Equal(t, uri.Path{"x", "y"}, uri.Path(nil).Append("x", "y"))

	require.True(t, uri.ParsePath("/C:/x").HasWindowsDriveLetter())
	require.True(t, uri.ParsePath("c|/x").HasWindowsDriveLetter())
	require.False(t, uri.ParsePath("/CD:/x").HasWindowsDriveLetter())
	require.False(t, uri.ParsePath("/").HasWindowsDriveLetter())
}
