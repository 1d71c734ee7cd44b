// Package status holds the diagnostics of URI parsing: one exclusive
// outcome (unparsed, a valid kind or an error kind) plus any number of
// non-fatal warnings.
package status

import (
	"iter"
	"strings"
)

// Layout of Code. Warnings never alias the value region.
const (
	valueMask    uint32 = 0xff
	validBit     uint32 = 1 << 8
	errorBit     uint32 = 1 << 9
	warningShift        = 10
)

// Status is the diagnostics of a parse. The zero value is Unparsed with no
// warnings.
type Status struct {
	value    Value
	warnings Warning
}

// New returns a status holding v and the warnings w.
func New(v Value, w Warning) Status {
	return Status{value: v, warnings: w}
}

// Of returns a status holding only v.
func Of(v Value) Status {
	return Status{value: v}
}

// Value returns the exclusive outcome.
func (s Status) Value() Value {
	return s.value
}

// Warnings returns the set of warnings.
func (s Status) Warnings() Warning {
	return s.warnings
}

// SetValid overwrites the outcome with a valid kind.
func (s *Status) SetValid(v Value) {
	if v.IsValid() {
		s.value = v
	}
}

// SetError overwrites the outcome with an error kind.
func (s *Status) SetError(v Value) {
	if v.IsError() {
		s.value = v
	}
}

// SetErrorOnce records v unless an error is already recorded.
// It returns true if v is now the outcome.
func (s *Status) SetErrorOnce(v Value) bool {
	if s.HasError() {
		return false
	}
	s.SetError(v)
	return s.value == v
}

// SetWarning adds warnings. Setting a warning twice has no further effect.
func (s *Status) SetWarning(w Warning) {
	s.warnings |= w
}

// ClearWarning removes warnings.
func (s *Status) ClearWarning(w Warning) {
	s.warnings &^= w
}

// Merge adds the warnings of o, and its error if s has none yet.
func (s *Status) Merge(o Status) {
	s.warnings |= o.warnings
	if o.HasError() {
		s.SetErrorOnce(o.value)
	}
}

// Reset returns s to Unparsed without warnings.
func (s *Status) Reset() {
	*s = Status{}
}

// IsUnparsed returns true before any outcome was recorded.
func (s Status) IsUnparsed() bool {
	return s.value == Unparsed
}

// IsValid returns true if the outcome is a valid kind.
func (s Status) IsValid() bool {
	return s.value.IsValid()
}

// HasError returns true if the outcome is an error kind.
func (s Status) HasError() bool {
	return s.value.IsError()
}

// HasErrorKind returns true if the outcome is exactly the error v.
func (s Status) HasErrorKind(v Value) bool {
	return v.IsError() && s.value == v
}

// HasWarnings returns true if any warning is set.
func (s Status) HasWarnings() bool {
	return s.warnings != 0
}

// HasWarning returns true if every warning of w is set.
func (s Status) HasWarning(w Warning) bool {
	return s.warnings.Has(w)
}

// Code packs the status into 32 bits: the value in the low byte, one
// control bit each for valid and error, and warnings from bit 10 up.
func (s Status) Code() uint32 {
	code := uint32(s.value) & valueMask
	switch {
	case s.value.IsValid():
		code |= validBit
	case s.value.IsError():
		code |= errorBit
	}
	return code | uint32(s.warnings)<<warningShift
}

// FromCode unpacks a Code. Unknown values decode as Unparsed.
func FromCode(code uint32) Status {
	v := Value(code & valueMask)
	switch {
	case code&validBit != 0 && !v.IsValid(),
		code&errorBit != 0 && !v.IsError(),
		code&(validBit|errorBit) == 0 && v != Unparsed:
		v = Unparsed
	}
	return Status{value: v, warnings: Warning(code >> warningShift)}
}

// String renders one sentence per warning followed by the outcome.
func (s Status) String() string {
	if s.warnings == 0 {
		return s.value.String()
	}
	sb := strings.Builder{}
	for it := s.Iter(); ; {
		part, ok := it.Next()
		if !ok {
			break
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		if part.warnings != 0 {
			sb.WriteString(part.warnings.String())
		} else {
			sb.WriteString(part.value.String())
		}
	}
	return sb.String()
}

// Iter returns an iterator over the parts of s.
func (s Status) Iter() *Iterator {
	return &Iterator{status: s, rest: s.warnings}
}

// All yields each set warning once, lowest bit first, as a status holding
// only that warning, then a status holding only the outcome.
func (s Status) All() iter.Seq[Status] {
	return func(yield func(Status) bool) {
		it := s.Iter()
		for part, ok := it.Next(); ok; part, ok = it.Next() {
			if !yield(part) {
				return
			}
		}
	}
}

// Iterator walks the warnings of a status by clearing the lowest set bit
// on each step, then yields the outcome and stops.
type Iterator struct {
	status Status
	rest   Warning
	done   bool
}

// Next returns the next part, or false when exhausted.
func (it *Iterator) Next() (Status, bool) {
	if it.rest != 0 {
		low := it.rest & -it.rest
		it.rest &= it.rest - 1
		return Status{warnings: low}, true
	}
	if !it.done {
		it.done = true
		return Status{value: it.status.value}, true
	}
	return Status{}, false
}

// Reset restarts the iteration from the first warning.
func (it *Iterator) Reset() {
	it.rest = it.status.warnings
	it.done = false
}
