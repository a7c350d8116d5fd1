package geometry

import "math"

type Circle struct {
	Center Vector
	Radius float64
}

func NewCircle(center Vector, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// ClosestPoint is the point on the circumference nearest to p. Every point
// is equally close to the center, so the center has no answer.
func (c Circle) ClosestPoint(p Vector) (Vector, bool) {
	offset := p.Minus(c.Center)
	if offset.IsOrigin() {
		return Vector{}, false
	}
	return c.Center.Add(offset.Normalize().Scale(c.Radius)), true
}

func (c Circle) Contains(p Vector) bool {
	return p.Distance(c.Center) <= c.Radius
}

// PointAtAngle is the point on the circumference in direction a from the center.
func (c Circle) PointAtAngle(a Angle) Vector {
	return c.Center.Add(a.Vector(c.Radius))
}

// Intersect returns the points where the segment l crosses the circumference,
// ordered from l.P1 toward l.P2.
func (c Circle) Intersect(l Line) []Vector {
	dir := l.direction()
	from := l.P1.Minus(c.Center)

	a := dir.DotProduct(dir)
	if a == 0 {
		return nil
	}
	b := 2 * from.DotProduct(dir)
	k := from.DotProduct(from) - c.Radius*c.Radius

	discriminant := b*b - 4*a*k
	if discriminant < 0 {
		return nil
	}

	var roots []float64
	if discriminant == 0 {
		roots = []float64{-b / (2 * a)}
	} else {
		sqrtD := math.Sqrt(discriminant)
		roots = []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
	}

	points := make([]Vector, 0, len(roots))
	for _, t := range roots {
		if t < 0 || t > 1 {
			continue
		}
		points = append(points, l.PointAt(t))
	}
	return points
}
