package geometry

// Arc is the part of a circle swept clockwise from Start to End.
// Equal Start and End describe the full circle.
type Arc struct {
	Circle
	Start Angle
	End   Angle
}

func NewArc(c Circle, start, end Angle) Arc {
	return Arc{Circle: c, Start: start, End: end}
}

// Sweep is the clockwise angular span of the arc in radians.
func (a Arc) Sweep() float64 {
	s := a.End.Minus(a.Start)
	if s == 0 {
		return fullTurn
	}
	return s
}

func (a Arc) Distance() float64 {
	return a.Sweep() * a.Radius
}

func (a Arc) PointAt(percentage float64) Vector {
	return a.PointAtAngle(a.Start.Plus(a.Sweep() * percentage))
}

// ClosestPoint restricts the circle's closest point to the swept range,
// falling back to the nearer endpoint.
func (a Arc) ClosestPoint(p Vector) (Vector, bool) {
	onCircle, ok := a.Circle.ClosestPoint(p)
	if !ok {
		return Vector{}, false
	}
	direction, err := AngleOf(onCircle.Minus(a.Center))
	if err != nil {
		return Vector{}, false
	}
	if direction.Minus(a.Start) <= a.Sweep() {
		return onCircle, true
	}

	start := a.PointAt(0)
	end := a.PointAt(1)
	if p.Distance(start) <= p.Distance(end) {
		return start, true
	}
	return end, true
}

func (a Arc) PercentageOf(p Vector) (float64, bool) {
	closest, ok := a.ClosestPoint(p)
	if !ok {
		return 0, false
	}
	direction, err := AngleOf(closest.Minus(a.Center))
	if err != nil {
		return 0, false
	}
	swept := direction.Minus(a.Start)
	sweep := a.Sweep()
	if swept > sweep {
		// Rounding near an endpoint; snap to whichever end is nearer.
		if swept-sweep < fullTurn-swept {
			return 1, true
		}
		return 0, true
	}
	return swept / sweep, true
}
