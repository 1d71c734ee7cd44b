package optional

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Optional is a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value T
	isSet bool
}

// Some creates a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, isSet: true}
}

// None creates an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr creates a value that is present if p is not nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSet returns true if the value is present
func (o Optional[T]) IsSet() bool {
	return o.isSet
}

// Set stores v and marks the value present
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isSet = true
}

// Unset marks the value absent
func (o *Optional[T]) Unset() {
	var zero T
	o.value = zero
	o.isSet = false
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOr returns the value, or def if absent
func (o Optional[T]) GetOr(def T) T {
	if o.isSet {
		return o.value
	}
	return def
}

// Or returns o if present, otherwise other
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.isSet {
		return o
	}
	return other
}

// Ptr returns a pointer to a copy of the value, or nil if absent
func (o Optional[T]) Ptr() *T {
	if !o.isSet {
		return nil
	}
	v := o.value
	return &v
}

// Unwrap returns the value or panics if absent
func (o Optional[T]) Unwrap() T {
	if o.isSet {
		return o.value
	}
	panic("Optional value is not set")
}

func (o Optional[T]) String() string {
	if !o.isSet {
		return "none"
	}
	return fmt.Sprint(o.value)
}

// CastInt converts an integer optional value to another type
func CastInt[A, B constraints.Integer](a Optional[A]) (out Optional[B]) {
	if a.IsSet() {
		out.Set(B(a.Unwrap()))
	}
	return out
}
