package geometry

// Shape is a one-dimensional curve that can be walked from 0 (its start) to 1 (its end).
type Shape interface {
	// Distance is the length of the curve.
	Distance() float64

	// ClosestPoint is the point on the curve nearest to p. ok is false when
	// the answer is undefined, e.g. for a zero-length segment.
	ClosestPoint(p Vector) (Vector, bool)

	// PointAt returns the point at the given fraction of the curve's length.
	PointAt(percentage float64) Vector

	// PercentageOf maps a point on the curve back to its fraction of the length.
	PercentageOf(p Vector) (float64, bool)
}

var (
	_ Shape = Line{}
	_ Shape = Arc{}
)
