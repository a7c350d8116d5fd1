// Package track builds the flat track used for play: its boundaries, lane
// lines, the pack line used for officiating, and the start markers.
package track

import (
	"fmt"
	"math"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/overflow"
)

// Foot is one foot in meters.
const Foot = 0.3048

// Dimensions follow the WFTDA flat track, with one radius per concentric line.
const (
	halfStraightaway = 17.5 * Foot
	innerRadius      = 12.5 * Foot
	outerRadius      = 26.5 * Foot
	laneCount        = 4

	// Pivot line sits at the end of the bottom straightaway, the jammer line 30 feet behind it.
	pivotLineX  = halfStraightaway
	jammerLineX = halfStraightaway - 30*Foot
)

// minLineRadius keeps AbsolutePosition away from the degenerate spine.
const minLineRadius = 0.01

// Track is immutable once built.
type Track struct {
	Left  geometry.Vector
	Right geometry.Vector

	InnerBound TrackLine
	OuterBound TrackLine
	// PackLine runs mid-track; pack distances are measured along it.
	PackLine TrackLine
	// Lanes holds the lane dividers between the two bounds.
	Lanes []TrackLine

	JammerLine geometry.Line
	PivotLine  geometry.Line

	spine geometry.Line
}

// New builds the standard track centered on the origin.
func New() *Track {
	t, err := NewWithDimensions(halfStraightaway, innerRadius, outerRadius)
	if err != nil {
		// Only reachable if the constants above are edited into nonsense.
		panic(err)
	}
	return t
}

// NewWithDimensions builds a track whose turn centers are halfStraight either
// side of the origin.
func NewWithDimensions(halfStraight, inner, outer float64) (*Track, error) {
	for _, v := range []float64{halfStraight, inner, outer} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("track dimension %v: %w", v, geometry.ErrNotFinite)
		}
	}
	if halfStraight <= 0 || inner <= 0 || outer <= inner {
		return nil, fmt.Errorf("track dimensions straight=%v inner=%v outer=%v: %w",
			halfStraight, inner, outer, geometry.ErrDegenerate)
	}

	left := geometry.Vector{X: -halfStraight}
	right := geometry.Vector{X: halfStraight}

	t := &Track{
		Left:       left,
		Right:      right,
		InnerBound: NewTrackLine(left, right, inner),
		OuterBound: NewTrackLine(left, right, outer),
		PackLine:   NewTrackLine(left, right, (inner+outer)/2),
		spine:      geometry.NewLine(left, right),
	}

	width := (outer - inner) / laneCount
	for i := 1; i < laneCount; i++ {
		t.Lanes = append(t.Lanes, NewTrackLine(left, right, inner+width*float64(i)))
	}

	markerX := func(x float64) geometry.Line {
		x = geometry.Clamp(x, -halfStraight, halfStraight)
		return geometry.NewLine(geometry.Vector{X: x, Y: inner}, geometry.Vector{X: x, Y: outer})
	}
	t.PivotLine = markerX(halfStraight / halfStraightaway * pivotLineX)
	t.JammerLine = markerX(halfStraight / halfStraightaway * jammerLineX)

	return t, nil
}

func (t *Track) innerRadius() float64 {
	return t.InnerBound.Radius
}

func (t *Track) width() float64 {
	return t.OuterBound.Radius - t.InnerBound.Radius
}

// Length is the length of the pack line.
func (t *Track) Length() float64 {
	return t.PackLine.Distance()
}

// Lateral is the sideways offset of p: 0 on the inner bound, 1 on the outer
// bound, below 0 in the infield and above 1 outside the track.
func (t *Track) Lateral(p geometry.Vector) float64 {
	return (geometry.DistanceFromPointToLine(p, t.spine.P1, t.spine.P2) - t.innerRadius()) / t.width()
}

// IsInBounds reports whether p lies between the inner and outer bounds.
func (t *Track) IsInBounds(p geometry.Vector) bool {
	lateral := t.Lateral(p)
	return lateral >= 0 && lateral <= 1
}

// RelativePosition returns (lateral, fraction along the pack line).
func (t *Track) RelativePosition(p geometry.Vector) geometry.Vector {
	return geometry.Vector{X: t.Lateral(p), Y: t.PackLine.RelativePositionOf(p)}
}

// AbsolutePosition is the inverse of RelativePosition: the pack-line point at
// relative.Y pushed sideways to the requested lateral offset.
func (t *Track) AbsolutePosition(relative geometry.Vector) geometry.Vector {
	onPackLine := t.PackLine.AbsolutePositionOf(relative.Y)
	base, ok := t.spine.ClosestPoint(onPackLine)
	if !ok {
		return onPackLine
	}
	radius := math.Max(t.innerRadius()+relative.X*t.width(), minLineRadius)
	return base.Add(onPackLine.Minus(base).Normalize().Scale(radius))
}

// PackPosition is p's distance along the pack line as a wrapping value.
func (t *Track) PackPosition(p geometry.Vector) overflow.Value {
	return overflow.Of(t.PackLine.DistanceAlong(p), t.Length())
}

// Ahead returns the point lateral across the track and meters further along
// the pack line than relative y.
func (t *Track) Ahead(lateral, y, meters float64) geometry.Vector {
	return t.AbsolutePosition(geometry.Vector{X: lateral, Y: y + meters/t.Length()})
}

// Direction is the skating direction at p: the loop's counter-clockwise tangent.
func (t *Track) Direction(p geometry.Vector) geometry.Angle {
	rel := t.RelativePosition(p)
	next := t.Ahead(rel.X, rel.Y, 0.1)
	here := t.AbsolutePosition(rel)
	a, err := geometry.AngleOf(next.Minus(here))
	if err != nil {
		return geometry.Angle{}
	}
	return a
}

// TurnApex is the relative pack-line position of the middle of the first
// turn. The second turn's apex is half a loop later.
func (t *Track) TurnApex() float64 {
	straight := t.PackLine.segments[0].shape.Distance()
	turn := t.PackLine.segments[1].shape.Distance()
	return (straight + turn/2) / t.Length()
}

// PivotPosition and JammerPosition are the markers' pack-line positions.
func (t *Track) PivotPosition() overflow.Value {
	return t.PackPosition(t.PivotLine.PointAt(0.5))
}

func (t *Track) JammerPosition() overflow.Value {
	return t.PackPosition(t.JammerLine.PointAt(0.5))
}
