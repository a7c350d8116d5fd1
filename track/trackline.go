package track

import (
	"math"

	"github.com/meghashyamc/derby2d/geometry"
)

// segment is one piece of a TrackLine. Arcs sweep clockwise while the loop runs
// counter-clockwise, so their fractions are mirrored.
type segment struct {
	shape    geometry.Shape
	reversed bool
}

func (s segment) pointAt(fraction float64) geometry.Vector {
	if s.reversed {
		fraction = 1 - fraction
	}
	return s.shape.PointAt(fraction)
}

func (s segment) fractionOf(p geometry.Vector) (float64, bool) {
	f, ok := s.shape.PercentageOf(p)
	if !ok {
		return 0, false
	}
	if s.reversed {
		f = 1 - f
	}
	return f, true
}

// TrackLine is a closed rounded rectangle: every point at Radius from the
// segment between the two turn centers. It is walked counter-clockwise on
// screen starting at the left end of the bottom straight: bottom line, right
// arc, top line, left arc.
type TrackLine struct {
	Radius float64

	segments [4]segment
	// starts[i] is the distance along the loop where segments[i] begins.
	starts   [4]float64
	distance float64
}

// NewTrackLine builds the loop around turn centers left and right, which must
// share the same y.
func NewTrackLine(left, right geometry.Vector, radius float64) TrackLine {
	top := geometry.MustAngle(3 * math.Pi / 2)
	bottom := geometry.MustAngle(math.Pi / 2)

	tl := TrackLine{Radius: radius}
	tl.segments = [4]segment{
		{shape: geometry.NewLine(
			geometry.Vector{X: left.X, Y: left.Y + radius},
			geometry.Vector{X: right.X, Y: right.Y + radius},
		)},
		{shape: geometry.NewArc(geometry.NewCircle(right, radius), top, bottom), reversed: true},
		{shape: geometry.NewLine(
			geometry.Vector{X: right.X, Y: right.Y - radius},
			geometry.Vector{X: left.X, Y: left.Y - radius},
		)},
		{shape: geometry.NewArc(geometry.NewCircle(left, radius), bottom, top), reversed: true},
	}

	for i, s := range tl.segments {
		tl.starts[i] = tl.distance
		tl.distance += s.shape.Distance()
	}
	return tl
}

// Distance is the total length of the loop.
func (tl TrackLine) Distance() float64 {
	return tl.distance
}

// StartPoint is where relative distance 0 lies.
func (tl TrackLine) StartPoint() geometry.Vector {
	return tl.segments[0].pointAt(0)
}

// Shapes returns the four segments in traversal order.
func (tl TrackLine) Shapes() []geometry.Shape {
	shapes := make([]geometry.Shape, len(tl.segments))
	for i, s := range tl.segments {
		shapes[i] = s.shape
	}
	return shapes
}

// DistanceAlong is the distance from the start point, counter-clockwise, to
// the point on the loop closest to p. A point shared by two segments is
// claimed by the lower segment index.
func (tl TrackLine) DistanceAlong(p geometry.Vector) float64 {
	best := -1
	bestGap := math.Inf(1)
	var bestFraction float64

	for i, s := range tl.segments {
		closest, ok := s.shape.ClosestPoint(p)
		if !ok {
			continue
		}
		gap := p.Distance(closest)
		if gap >= bestGap {
			continue
		}
		fraction, ok := s.fractionOf(closest)
		if !ok {
			continue
		}
		best, bestGap, bestFraction = i, gap, fraction
	}
	if best < 0 {
		return 0
	}

	d := tl.starts[best] + bestFraction*tl.segments[best].shape.Distance()
	if d >= tl.distance {
		d -= tl.distance
	}
	return d
}

// RelativePositionOf is DistanceAlong as a fraction of the loop, in [0, 1).
func (tl TrackLine) RelativePositionOf(p geometry.Vector) float64 {
	if tl.distance == 0 {
		return 0
	}
	return tl.DistanceAlong(p) / tl.distance
}

// AbsolutePositionOf is the inverse of RelativePositionOf. Values outside
// [0, 1) wrap around the loop.
func (tl TrackLine) AbsolutePositionOf(relative float64) geometry.Vector {
	relative = math.Mod(relative, 1)
	if relative < 0 {
		relative++
	}
	d := relative * tl.distance

	for i := len(tl.segments) - 1; i >= 0; i-- {
		if d < tl.starts[i] {
			continue
		}
		length := tl.segments[i].shape.Distance()
		if length == 0 {
			return tl.segments[i].pointAt(0)
		}
		return tl.segments[i].pointAt(geometry.Clamp((d-tl.starts[i])/length, 0, 1))
	}
	return tl.StartPoint()
}
