package geometry

import "errors"

var (
	// ErrNotFinite is returned when a constructor is given NaN or an infinity.
	ErrNotFinite = errors.New("geometry: value is not finite")

	// ErrDegenerate is returned when a result is undefined for the input,
	// such as the direction of the zero vector.
	ErrDegenerate = errors.New("geometry: degenerate input")
)
