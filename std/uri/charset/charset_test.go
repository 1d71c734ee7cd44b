package charset_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/uri/charset"
)

func TestSetBasic(t *testing.T) {
	s := charset.Of("abc")
	require.True(t, s.Contains('a'))
	require.True(t, s.Contains('c'))
	require.False(t, s.Contains('d'))
	require.Equal(t, 3, s.Len())

	s = s.With("\xff").Except("b")
	require.True(t, s.Contains(0xff))
	require.False(t, s.Contains('b'))
	require.Equal(t, 3, s.Len())

	r := charset.Range(0x00, 0xff)
	require.Equal(t, 256, r.Len())
	require.Equal(t, 0, r.Complement().Len())
	require.Equal(t, 253, s.Complement().Len())
}

func TestSetScan(t *testing.T) {
	require.True(t, charset.Digit.ContainsAll("0123456789"))
	require.False(t, charset.Digit.ContainsAll("12a"))
	require.Equal(t, 2, charset.Digit.IndexNotIn("12a4"))
	require.Equal(t, -1, charset.Digit.IndexNotIn(""))
	require.Equal(t, 3, charset.GenDelims.IndexIn("abc/def"))
	require.Equal(t, -1, charset.GenDelims.IndexIn("abcdef"))
}

func TestTables(t *testing.T) {
	require.Equal(t, 52, charset.Alpha.Len())
	require.Equal(t, 22, charset.HexDigit.Len())
	require.Equal(t, 66, charset.Unreserved.Len())
	require.Equal(t, "!$&'()*+,;=", charset.SubDelims.String())

	// pchar is a strict superset of unreserved plus ":@"
	for _, c := range []byte("-._~:@!$&'()*+,;=") {
		require.True(t, charset.PcharNotPctEncoded.Contains(c), string(c))
	}
	require.False(t, charset.PcharNotPctEncoded.Contains('/'))
	require.True(t, charset.PathNotPctEncoded.Contains('/'))
	require.True(t, charset.QueryOrFragmentNotPctEncoded.Contains('?'))
	require.False(t, charset.QueryOrFragmentNotPctEncoded.Contains('#'))
	require.False(t, charset.QueryKey.Contains('='))
	require.True(t, charset.QueryValue.Contains('='))
	require.False(t, charset.Username.Contains(':'))
	require.True(t, charset.UserInfoNotPctEncoded.Contains(':'))
	require.False(t, charset.RegNameNotPctEncoded.Contains(':'))
	require.True(t, charset.SchemeNotFirst.Contains('+'))
	require.False(t, charset.SchemeNotFirst.Contains('_'))
	require.False(t, charset.PcharNotPctEncoded.Contains('%'))
}

func TestWhatwgTables(t *testing.T) {
	require.True(t, charset.FragmentPercentEncode.Contains(' '))
	require.True(t, charset.FragmentPercentEncode.Contains('`'))
	require.False(t, charset.FragmentPercentEncode.Contains('#'))
	require.True(t, charset.QueryPercentEncode.Contains('#'))
	require.False(t, charset.QueryPercentEncode.Contains('\''))
	require.True(t, charset.SpecialQueryPercent.Contains('\''))
	require.True(t, charset.PathPercentEncode.Contains('?'))
	require.True(t, charset.UserInfoPercentEncode.Contains('@'))
	require.True(t, charset.UserInfoPercentEncode.Contains(0x80))
	require.True(t, charset.ForbiddenDomainCodePoints.Contains('%'))
	require.False(t, charset.ForbiddenHostCodePoints.Contains('%'))
}

func TestHexValue(t *testing.T) {
	v, ok := charset.HexValue('a')
	require.True(t, ok)
	require.Equal(t, byte(10), v)
	v, ok = charset.HexValue('F')
	require.True(t, ok)
	require.Equal(t, byte(15), v)
	_, ok = charset.HexValue('g')
	require.False(t, ok)
}
