// Package progress implements the value-to-geometry core of a line progress
// indicator: the value range, the segment resolver and the animated
// transition between values.
package progress

import "math"

const (
	defaultMin = 0
	defaultMax = 100
)

// RangeModel holds the min/max bounds and the current value.
//
// The model maintains max > min and min <= current <= max at all times.
// Requests that would break either invariant are dropped, not clamped.
type RangeModel struct {
	min     float64
	max     float64
	current float64
}

// NewRangeModel returns a model with min=0, max=100, current=0.
func NewRangeModel() *RangeModel {
	return &RangeModel{
		min:     defaultMin,
		max:     defaultMax,
		current: defaultMin,
	}
}

// Min returns the lower bound.
func (r *RangeModel) Min() float64 { return r.min }

// Max returns the upper bound.
func (r *RangeModel) Max() float64 { return r.max }

// Value returns the current value.
func (r *RangeModel) Value() float64 { return r.current }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SetRange applies new bounds if both are finite and max > min and reports whether it did.
// A current value that falls outside the new bounds is moved to the
// nearest bound.
func (r *RangeModel) SetRange(min, max float64) bool {
	if !isFinite(min) || !isFinite(max) || !(max > min) {
		return false
	}
	r.min = min
	r.max = max
	if r.current < min {
		r.current = min
	}
	if r.current > max {
		r.current = max
	}
	return true
}

// SetMin is SetRange(v, Max()).
func (r *RangeModel) SetMin(v float64) bool {
	return r.SetRange(v, r.max)
}

// SetMax is SetRange(Min(), v).
func (r *RangeModel) SetMax(v float64) bool {
	return r.SetRange(r.min, v)
}

// SetValue applies v if min <= v <= max and reports whether it did.
func (r *RangeModel) SetValue(v float64) bool {
	if !r.Contains(v) {
		return false
	}
	r.current = v
	return true
}

// Contains reports whether v lies within [min, max]. Non-finite values
// never do.
func (r *RangeModel) Contains(v float64) bool {
	return isFinite(v) && v >= r.min && v <= r.max
}

// Percent returns the position of the current value in [0, 100].
func (r *RangeModel) Percent() float64 {
	return (r.current - r.min) / (r.max - r.min) * 100
}
