package uri

import (
	"errors"
	"fmt"

	"github.com/weburi/weburi/std/uri/status"
)

// ErrInvalidArgument is returned by a mutator given a value that cannot be
// put in its component.
type ErrInvalidArgument struct {
	Field  string
	Value  any
	Reason string
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid value for %s: %v (%s)", e.Field, e.Value, e.Reason)
}

// ErrParse is returned by the helpers that require a URI without errors.
type ErrParse struct {
	Input  string
	Status status.Status
}

func (e ErrParse) Error() string {
	return fmt.Sprintf("unable to parse %q: %s", e.Input, e.Status.Value())
}

// ErrImmutable is returned when a mutator is called on a view.
var ErrImmutable = errors.New("URI view cannot be modified")

// ErrNoAuthority is returned when setting an authority part of a URI
// that has no authority to put it in.
var ErrNoAuthority = errors.New("URI has no authority")
