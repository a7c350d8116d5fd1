package geometry

import "cmp"

// Clamp limits value to the closed range [min, max].
func Clamp[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}

// Lerp interpolates linearly between a and b; t is clamped to [0, 1] and the
// ends return a and b exactly.
func Lerp(a, b, t float64) float64 {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a + (b-a)*t
}
