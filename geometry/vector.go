package geometry

import (
	"math"
)

// Vector is a position or displacement on the track plane, in meters.
// Screen orientation: +x points right, +y points down.
type Vector struct {
	X float64
	Y float64
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// AngleTo calculates the unsigned angle between this vector and another vector in radians
func (v Vector) AngleTo(other Vector) float64 {
	magV := v.Magnitude()
	magOther := other.Magnitude()

	// Handle zero-length vectors
	if magV == 0 || magOther == 0 {
		return 0
	}

	// cos(θ) = (A · B) / (|A| * |B|)
	cosTheta := v.DotProduct(other) / (magV * magOther)

	return math.Acos(Clamp(cosTheta, -1, 1))
}

// Normalize returns the unit vector in the same direction, or the zero vector for the origin.
func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / magnitude, v.Y / magnitude}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Minus(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Distance is the Euclidean distance between two points.
func (v Vector) Distance(other Vector) float64 {
	return v.Minus(other).Magnitude()
}

func (v Vector) IsOrigin() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether both components are finite numbers.
func (v Vector) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
