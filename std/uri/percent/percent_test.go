package percent_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/uri/charset"
	"github.com/weburi/weburi/std/uri/percent"
)

func TestEncode(t *testing.T) {
	require.Equal(t, "abc", percent.Encode("abc", charset.Unreserved))
	require.Equal(t, "a%20b", percent.Encode("a b", charset.Unreserved))
	require.Equal(t, "%3A%2F%3F%23%5B%5D%40", percent.Encode(":/?#[]@", charset.Unreserved))
	require.Equal(t, "%E2%82%AC", percent.Encode("€", charset.Unreserved))
	require.Equal(t, "", percent.Encode("", charset.Unreserved))
	require.Equal(t, "100%25", percent.Encode("100%", charset.PcharNotPctEncoded))

	buf := percent.AppendEncode([]byte("x="), "a/b", charset.Slug)
	require.Equal(t, "x=a%2Fb", string(buf))
}

func TestDecode(t *testing.T) {
	out, ok := percent.Decode("%41", charset.Unreserved, percent.AllowedChars)
	require.True(t, ok)
	require.Equal(t, "A", out)

	out, ok = percent.Decode("a%2fb%2F", charset.Unreserved, percent.AllowedChars)
	require.True(t, ok)
	require.Equal(t, "a/b/", out)

	out, ok = percent.Decode("", charset.Unreserved, percent.AllowedChars)
	require.True(t, ok)
	require.Equal(t, "", out)

	// truncated escapes are failures
	_, ok = percent.Decode("%2", charset.Unreserved, percent.AllowedChars)
	require.False(t, ok)
	_, ok = percent.Decode("abc%", charset.Unreserved, percent.AllowedChars)
	require.False(t, ok)
	_, ok = percent.Decode("%zz", charset.Unreserved, percent.AllowedChars)
	require.False(t, ok)

	// literal bytes obey the policy
	_, ok = percent.Decode("a b", charset.Unreserved, percent.AllowedChars)
	require.False(t, ok)
	out, ok = percent.Decode("a b", charset.Of("/"), percent.DisallowedChars)
	require.True(t, ok)
	require.Equal(t, "a b", out)
	_, ok = percent.Decode("a/b", charset.Of("/"), percent.DisallowedChars)
	require.False(t, ok)

	// escaped bytes are not checked against the set
	out, ok = percent.Decode("a%2Fb", charset.Of("/"), percent.DisallowedChars)
	require.True(t, ok)
	require.Equal(t, "a/b", out)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"", "plain", "with space", "100%", "a/b?c#d", "€uro", "\x00\x01\xff",
		"key=value&other", "%41%42",
	}
	sets := []charset.Set{
		charset.Unreserved, charset.PcharNotPctEncoded, charset.QueryKey,
		charset.RegNameNotPctEncoded, charset.Alpha,
	}
	for _, s := range inputs {
		for _, set := range sets {
			enc := percent.Encode(s, set)
			require.True(t, percent.IsEncoded(enc, set))
			dec, ok := percent.Decode(enc, set, percent.AllowedChars)
			require.True(t, ok, enc)
			require.Equal(t, s, dec)

			// decoding then re-encoding text that needs no escaping is stable
			if !percent.NeedsEncoding(s, set) {
				dec, ok := percent.Decode(s, set, percent.AllowedChars)
				require.True(t, ok)
				require.Equal(t, s, percent.Encode(dec, set))
			}
		}
	}
}

func TestDecodeLenient(t *testing.T) {
	require.Equal(t, "A%2", percent.DecodeLenient("%41%2"))
	require.Equal(t, "%zzA", percent.DecodeLenient("%zz%41"))
	require.Equal(t, "plain", percent.DecodeLenient("plain"))
}

func TestInvalidIndex(t *testing.T) {
	require.Equal(t, -1, percent.InvalidIndex("a%20b", charset.Unreserved))
	require.Equal(t, 1, percent.InvalidIndex("a b", charset.Unreserved))
	require.Equal(t, 1, percent.InvalidIndex("a%2", charset.Unreserved))
	require.False(t, percent.IsEncoded("%", charset.Unreserved))
}

func TestNormalizeCase(t *testing.T) {
	require.Equal(t, "a%2Fb~", percent.NormalizeCase("%61%2fb%7E"))
	require.Equal(t, "%", percent.NormalizeCase("%"))
}

func TestPolicy(t *testing.T) {
	p, ok := percent.ParsePolicy("disallowed")
	require.True(t, ok)
	require.Equal(t, percent.DisallowedChars, p)
	require.Equal(t, "disallowed", p.String())
	_, ok = percent.ParsePolicy("x")
	require.False(t, ok)
}
