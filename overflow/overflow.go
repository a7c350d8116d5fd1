// Package overflow models a scalar that wraps around modulo a maximum, such
// as a distance along a closed loop.
package overflow

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is returned for NaN or infinite values and for a non-positive maximum.
var ErrInvalid = errors.New("overflow: invalid value")

// Value lies in [0, max). The zero Value is not usable; build one with New or Of.
type Value struct {
	value float64
	max   float64
}

// New wraps value into [0, max).
func New(value, max float64) (Value, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Value{}, fmt.Errorf("value %v: %w", value, ErrInvalid)
	}
	if math.IsNaN(max) || math.IsInf(max, 0) || max <= 0 {
		return Value{}, fmt.Errorf("max %v: %w", max, ErrInvalid)
	}
	return Value{value: wrap(value, max), max: max}, nil
}

// Of is New for arguments known to be valid. It panics otherwise.
func Of(value, max float64) Value {
	v, err := New(value, max)
	if err != nil {
		panic(err)
	}
	return v
}

func wrap(value, max float64) float64 {
	value = math.Mod(value, max)
	if value < 0 {
		value += max
	}
	if value >= max {
		value = 0
	}
	return value
}

func (v Value) Float() float64 {
	return v.value
}

func (v Value) Max() float64 {
	return v.max
}

// Fraction is the value as a share of the maximum, in [0, 1).
func (v Value) Fraction() float64 {
	return v.value / v.max
}

// Add moves the value forward by delta (backward when negative), wrapping.
func (v Value) Add(delta float64) Value {
	return Value{value: wrap(v.value+delta, v.max), max: v.max}
}

// Forward is how far v must move forward to reach other, in [0, max).
func (v Value) Forward(other Value) float64 {
	return wrap(other.value-v.value, v.max)
}

// DistanceTo is the shorter of the two ways around the loop. It is symmetric
// and never exceeds max/2.
func (v Value) DistanceTo(other Value) float64 {
	f := v.Forward(other)
	return math.Min(f, v.max-f)
}

// SignedDistanceTo is positive when other is in front of v and negative when
// it is behind, with magnitude DistanceTo.
func (v Value) SignedDistanceTo(other Value) float64 {
	if other.IsInFrontOf(v) {
		return v.DistanceTo(other)
	}
	return -v.DistanceTo(other)
}

// IsInFrontOf reports whether v is ahead of other along the shorter arc.
// When the two are exactly half the loop apart the larger raw value is in front.
func (v Value) IsInFrontOf(other Value) bool {
	f := other.Forward(v)
	half := v.max / 2
	switch {
	case f == 0:
		return false
	case f < half:
		return true
	case f > half:
		return false
	default:
		return v.value > other.value
	}
}

func (v Value) IsBehind(other Value) bool {
	return other.IsInFrontOf(v)
}

// IsWithin reports whether v lies on the forward sweep from back to front, inclusive.
func (v Value) IsWithin(back, front Value) bool {
	return back.Forward(v) <= back.Forward(front)
}

func (v Value) String() string {
	return fmt.Sprintf("%.3f/%.3f", v.value, v.max)
}
