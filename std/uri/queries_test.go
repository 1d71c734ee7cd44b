package uri_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/uri"
	tu "github.com/weburi/weburi/std/utils/testutils"
)

func TestParseQueries(t *testing.T) {
	tu.SetT(t)

	q := tu.Ok(uri.ParseQueries("x=1&y=2&x=3"))
	require.Equal(t, 2, q.Len())
	require.Equal(t, []string{"x", "y"}, q.Keys())
	require.Equal(t, "3", tu.Ok(q.Get("x")))
	require.Equal(t, "x=3&y=2", q.String())

	q = tu.Ok(uri.ParseQueries("a&&b=&c=d%20e"))
	require.Equal(t, []string{"a", "b", "c"}, q.Keys())
	require.Equal(t, "", tu.Ok(q.Get("a")))
	require.Equal(t, "d e", tu.Ok(q.Get("c")))
	require.Equal(t, "a&b&c=d%20e", q.String())

	q = tu.Ok(uri.ParseQueries("a=b+c&k=x=y"))
	require.Equal(t, "b+c", tu.Ok(q.Get("a")))
	require.Equal(t, "x=y", tu.Ok(q.Get("k")))

	_, ok := uri.ParseQueries("a=%zz")
	require.False(t, ok)
	_, ok = uri.ParseQueries("a=b c")
	require.False(t, ok)

	q = uri.ParseQueriesLenient("a=%zz&b=c d")
	require.Equal(t, "%zz", tu.Ok(q.Get("a")))
	require.Equal(t, "c d", tu.Ok(q.Get("b")))
}

func TestQueriesEdit(t *testing.T) {
	q := uri.Queries{}
	require.Equal(t, "", q.String())

	q.Set("a b", "c&d")
	q.Set("k+", "v=1")
	require.Equal(t, "a%20b=c%26d&k%2B=v=1", q.String())
	require.True(t, q.Has("a b"))

	c := q.Clone()
	require.True(t, q.Equal(&c))
	require.True(t, q.Delete("a b"))
	require.False(t, q.Delete("a b"))
	require.False(t, q.Equal(&c))
	require.Equal(t, 2, c.Len())

	var keys, vals []string
	for k, v := range c.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	require.Equal(t, []string{"a b", "k+"}, keys)
	require.Equal(t, []string{"c&d", "v=1"}, vals)
}
