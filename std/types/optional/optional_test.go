package optional_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/types/optional"
)

func TestOptional(t *testing.T) {
	option := optional.Some(42)
	require.True(t, option.IsSet())
	val, ok := option.Get()
	require.Equal(t, 42, val)
	require.True(t, ok)
	require.Equal(t, 42, option.Unwrap())
	require.Equal(t, 42, option.GetOr(5))
	require.Equal(t, "42", option.String())

	option = optional.None[int]()
	require.False(t, option.IsSet())
	val, ok = option.Get()
	require.Equal(t, 0, val)
	require.False(t, ok)
	require.Panics(t, func() { option.Unwrap() })
	require.Equal(t, 5, option.GetOr(5))
	require.Equal(t, "none", option.String())
	require.Nil(t, option.Ptr())

	option.Set(45)
	require.True(t, option.IsSet())
	require.Equal(t, 45, *option.Ptr())

	option.Unset()
	require.False(t, option.IsSet())
	val, _ = option.Get()
	require.Equal(t, 0, val)
}

func TestOptionalOr(t *testing.T) {
	a, b := optional.None[string](), optional.Some("b")
	require.Equal(t, b, a.Or(b))
	require.Equal(t, optional.Some("x"), optional.Some("x").Or(b))

	s := "p"
	require.Equal(t, optional.Some("p"), optional.FromPtr(&s))
	require.False(t, optional.FromPtr[string](nil).IsSet())
}

func TestCastInt(t *testing.T) {
	require.Equal(t, optional.Some[uint32](7), optional.CastInt[int, uint32](optional.Some(7)))
	require.False(t, optional.CastInt[int, uint32](optional.None[int]()).IsSet())
}
