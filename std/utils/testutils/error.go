// Package utils holds small helpers shared by the test suites.
package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testT *testing.T

// SetT sets the test used by the helpers below.
func SetT(t *testing.T) {
	testT = t
}

// NoErr asserts err is nil and returns v.
func NoErr[T any](v T, err error) T {
	require.NoError(testT, err)
	return v
}

// Err asserts err is not nil and returns it.
func Err[T any](_ T, err error) error {
	require.Error(testT, err)
	return err
}

// Ok asserts ok is true and returns v.
func Ok[T any](v T, ok bool) T {
	require.True(testT, ok)
	return v
}
