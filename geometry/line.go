package geometry

// Line is the segment from P1 to P2.
type Line struct {
	P1 Vector
	P2 Vector
}

func NewLine(p1, p2 Vector) Line {
	return Line{P1: p1, P2: p2}
}

func (l Line) Distance() float64 {
	return l.P1.Distance(l.P2)
}

func (l Line) direction() Vector {
	return l.P2.Minus(l.P1)
}

// projection returns the unclamped parameter of p projected onto the infinite line.
func (l Line) projection(p Vector) (float64, bool) {
	dir := l.direction()
	lengthSquared := dir.DotProduct(dir)
	if lengthSquared == 0 {
		return 0, false
	}
	return p.Minus(l.P1).DotProduct(dir) / lengthSquared, true
}

func (l Line) ClosestPoint(p Vector) (Vector, bool) {
	t, ok := l.projection(p)
	if !ok {
		return Vector{}, false
	}
	return l.PointAt(Clamp(t, 0, 1)), true
}

// PointAt is the parametric position: 0 is P1 and 1 is P2.
func (l Line) PointAt(percentage float64) Vector {
	return l.P1.Add(l.direction().Scale(percentage))
}

func (l Line) PercentageOf(p Vector) (float64, bool) {
	t, ok := l.projection(p)
	if !ok {
		return 0, false
	}
	return Clamp(t, 0, 1), true
}

// DistanceTo is the shortest distance from p to the segment.
func (l Line) DistanceTo(p Vector) float64 {
	closest, ok := l.ClosestPoint(p)
	if !ok {
		return p.Distance(l.P1)
	}
	return p.Distance(closest)
}
