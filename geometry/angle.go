package geometry

import (
	"fmt"
	"math"
)

const fullTurn = 2 * math.Pi

// Angle is a direction normalized to [0, 2π). Zero points along +x and the
// angle grows clockwise on screen (towards +y).
type Angle struct {
	rad float64
}

// NewAngle normalizes radians into [0, 2π).
func NewAngle(radians float64) (Angle, error) {
	if !isFinite(radians) {
		return Angle{}, fmt.Errorf("angle %v: %w", radians, ErrNotFinite)
	}
	return Angle{rad: normalizeRadians(radians)}, nil
}

// MustAngle is NewAngle for values known to be finite. It panics otherwise.
func MustAngle(radians float64) Angle {
	a, err := NewAngle(radians)
	if err != nil {
		panic(err)
	}
	return a
}

func AngleFromDegrees(degrees float64) (Angle, error) {
	return NewAngle(degrees * math.Pi / 180)
}

// AngleOf returns the direction of v. The origin has no direction.
func AngleOf(v Vector) (Angle, error) {
	if !v.IsFinite() {
		return Angle{}, fmt.Errorf("angle of %v: %w", v, ErrNotFinite)
	}
	if v.IsOrigin() {
		return Angle{}, fmt.Errorf("angle of origin: %w", ErrDegenerate)
	}
	return Angle{rad: normalizeRadians(math.Atan2(v.Y, v.X))}, nil
}

func normalizeRadians(r float64) float64 {
	r = math.Mod(r, fullTurn)
	if r < 0 {
		r += fullTurn
	}
	// math.Mod of a tiny negative value can round back up to exactly 2π.
	if r >= fullTurn {
		r = 0
	}
	return r
}

func (a Angle) Radians() float64 {
	return a.rad
}

func (a Angle) Degrees() float64 {
	return a.rad * 180 / math.Pi
}

// Plus rotates clockwise by radians (counter-clockwise when negative).
func (a Angle) Plus(radians float64) Angle {
	return Angle{rad: normalizeRadians(a.rad + radians)}
}

// Minus is the clockwise sweep from other to a, in [0, 2π).
func (a Angle) Minus(other Angle) float64 {
	return normalizeRadians(a.rad - other.rad)
}

// DiffTo is the signed shortest rotation from a to other, in (-π, π].
// Positive means turning clockwise.
func (a Angle) DiffTo(other Angle) float64 {
	d := other.Minus(a)
	if d > math.Pi {
		d -= fullTurn
	}
	return d
}

// IsBetween reports whether a lies on the clockwise sweep from start to end,
// both ends inclusive.
func (a Angle) IsBetween(start, end Angle) bool {
	return a.Minus(start) <= end.Minus(start)
}

// TurnToward rotates a toward target by at most maxStep radians.
func (a Angle) TurnToward(target Angle, maxStep float64) Angle {
	d := a.DiffTo(target)
	if math.Abs(d) <= maxStep {
		return target
	}
	if d < 0 {
		return a.Plus(-maxStep)
	}
	return a.Plus(maxStep)
}

// Vector returns the vector of the given length pointing along a.
func (a Angle) Vector(length float64) Vector {
	return Vector{X: math.Cos(a.rad) * length, Y: math.Sin(a.rad) * length}
}

func (a Angle) String() string {
	return fmt.Sprintf("%.1f°", a.Degrees())
}
