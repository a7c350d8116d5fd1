package geometry

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector{X: 3, Y: 4}
	b := Vector{X: 1, Y: -2}

	if got := a.Add(b); got != (Vector{X: 4, Y: 2}) {
		t.Fatalf("add: got=%v", got)
	}
	if got := a.Minus(b); got != (Vector{X: 2, Y: 6}) {
		t.Fatalf("minus: got=%v", got)
	}
	if got := a.Scale(2); got != (Vector{X: 6, Y: 8}) {
		t.Fatalf("scale: got=%v", got)
	}
	if got := a.Distance(Vector{}); got != 5 {
		t.Fatalf("distance: got=%f want=5", got)
	}
	if !(Vector{}).IsOrigin() || a.IsOrigin() {
		t.Fatalf("origin check wrong")
	}
	if got := (Vector{}).Normalize(); !got.IsOrigin() {
		t.Fatalf("normalizing origin should give origin, got=%v", got)
	}
}

func TestNewAngleRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NewAngle(v); !errors.Is(err, ErrNotFinite) {
			t.Fatalf("NewAngle(%v): expected ErrNotFinite, got=%v", v, err)
		}
	}
	if _, err := AngleOf(Vector{}); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("AngleOf(origin): expected ErrDegenerate, got=%v", err)
	}
}

func TestAngleNormalization(t *testing.T) {
	a := MustAngle(-math.Pi / 2)
	if !near(a.Radians(), 3*math.Pi/2, eps) {
		t.Fatalf("got=%f want=%f", a.Radians(), 3*math.Pi/2)
	}
	b := MustAngle(5 * math.Pi)
	if !near(b.Radians(), math.Pi, eps) {
		t.Fatalf("got=%f want=π", b.Radians())
	}
	d, err := AngleFromDegrees(450)
	if err != nil || !near(d.Degrees(), 90, 1e-9) {
		t.Fatalf("got=%v err=%v want 90°", d, err)
	}
}

func TestAngleOfIsClockwiseOnScreen(t *testing.T) {
	down, err := AngleOf(Vector{X: 0, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !near(down.Radians(), math.Pi/2, eps) {
		t.Fatalf("+y should be π/2, got=%f", down.Radians())
	}
}

func TestAngleDiffAndTurn(t *testing.T) {
	a := MustAngle(0.1)
	b := MustAngle(2*math.Pi - 0.1)
	if d := a.DiffTo(b); !near(d, -0.2, eps) {
		t.Fatalf("diff across zero: got=%f want=-0.2", d)
	}
	turned := a.TurnToward(b, 0.05)
	if !near(turned.Radians(), 0.05, eps) {
		t.Fatalf("turn limited: got=%f want=0.05", turned.Radians())
	}
	if got := a.TurnToward(b, 1); got != b {
		t.Fatalf("turn within step should land on target, got=%v", got)
	}
}

func TestAngleIsBetweenWrapsClockwise(t *testing.T) {
	start := MustAngle(3 * math.Pi / 2)
	end := MustAngle(math.Pi / 2)
	if !MustAngle(0).IsBetween(start, end) {
		t.Fatalf("0 should be on the sweep 3π/2 → π/2")
	}
	if MustAngle(math.Pi).IsBetween(start, end) {
		t.Fatalf("π should not be on the sweep 3π/2 → π/2")
	}
	if !start.IsBetween(start, end) || !end.IsBetween(start, end) {
		t.Fatalf("ends should be inclusive")
	}
}

func TestLineClosestPointAndPercentage(t *testing.T) {
	l := NewLine(Vector{X: 0, Y: 0}, Vector{X: 10, Y: 0})

	p, ok := l.ClosestPoint(Vector{X: 4, Y: 3})
	if !ok || p != (Vector{X: 4, Y: 0}) {
		t.Fatalf("closest: got=%v ok=%v", p, ok)
	}
	p, _ = l.ClosestPoint(Vector{X: -5, Y: 1})
	if p != l.P1 {
		t.Fatalf("closest before start should clamp to P1, got=%v", p)
	}
	pct, ok := l.PercentageOf(Vector{X: 2.5, Y: 0})
	if !ok || !near(pct, 0.25, eps) {
		t.Fatalf("percentage: got=%f want=0.25", pct)
	}
	if got := l.PointAt(0.25); got != (Vector{X: 2.5, Y: 0}) {
		t.Fatalf("point at: got=%v", got)
	}
	if got := DistanceFromPointToLine(Vector{X: 13, Y: 4}, l.P1, l.P2); !near(got, 5, eps) {
		t.Fatalf("distance past end: got=%f want=5", got)
	}
}

func TestZeroLengthLineHasNoClosestPoint(t *testing.T) {
	l := NewLine(Vector{X: 1, Y: 1}, Vector{X: 1, Y: 1})
	if _, ok := l.ClosestPoint(Vector{}); ok {
		t.Fatalf("expected no closest point on a zero-length line")
	}
	if _, ok := l.PercentageOf(Vector{}); ok {
		t.Fatalf("expected no percentage on a zero-length line")
	}
}

func TestCircleClosestPointAtCenterIsUndefined(t *testing.T) {
	c := NewCircle(Vector{X: 1, Y: 1}, 2)
	if _, ok := c.ClosestPoint(c.Center); ok {
		t.Fatalf("closest point of the center should be undefined")
	}
	p, ok := c.ClosestPoint(Vector{X: 5, Y: 1})
	if !ok || !near(p.X, 3, eps) || !near(p.Y, 1, eps) {
		t.Fatalf("got=%v ok=%v want (3,1)", p, ok)
	}
}

func TestCircleIntersect(t *testing.T) {
	c := NewCircle(Vector{}, 1)

	two := c.Intersect(NewLine(Vector{X: -2}, Vector{X: 2}))
	if len(two) != 2 || !near(two[0].X, -1, eps) || !near(two[1].X, 1, eps) {
		t.Fatalf("secant: got=%v", two)
	}
	one := c.Intersect(NewLine(Vector{X: -2, Y: 1}, Vector{X: 2, Y: 1}))
	if len(one) != 1 || !near(one[0].X, 0, eps) {
		t.Fatalf("tangent: got=%v", one)
	}
	if none := c.Intersect(NewLine(Vector{X: -2, Y: 2}, Vector{X: 2, Y: 2})); len(none) != 0 {
		t.Fatalf("miss: got=%v", none)
	}
	if inside := c.Intersect(NewLine(Vector{X: -0.5}, Vector{X: 0.5})); len(inside) != 0 {
		t.Fatalf("segment inside the circle never reaches it, got=%v", inside)
	}
}

func TestArcDistanceAndPoints(t *testing.T) {
	// Right half of a unit circle, swept clockwise from the top to the bottom.
	arc := NewArc(NewCircle(Vector{}, 1), MustAngle(3*math.Pi/2), MustAngle(math.Pi/2))

	if !near(arc.Distance(), math.Pi, eps) {
		t.Fatalf("distance: got=%f want=π", arc.Distance())
	}
	mid := arc.PointAt(0.5)
	if !near(mid.X, 1, eps) || !near(mid.Y, 0, eps) {
		t.Fatalf("midpoint: got=%v want (1,0)", mid)
	}
	pct, ok := arc.PercentageOf(Vector{X: 5, Y: 0})
	if !ok || !near(pct, 0.5, eps) {
		t.Fatalf("percentage: got=%f want=0.5", pct)
	}
}

func TestArcClosestPointOutsideSweepSnapsToEnd(t *testing.T) {
	arc := NewArc(NewCircle(Vector{}, 1), MustAngle(3*math.Pi/2), MustAngle(math.Pi/2))

	p, ok := arc.ClosestPoint(Vector{X: -3, Y: 0.5})
	if !ok || !near(p.X, 0, eps) || !near(p.Y, 1, eps) {
		t.Fatalf("got=%v ok=%v want the bottom end (0,1)", p, ok)
	}
	pct, _ := arc.PercentageOf(Vector{X: -3, Y: -0.5})
	if !near(pct, 0, eps) {
		t.Fatalf("got=%f want=0 (top end)", pct)
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatalf("clamp wrong")
	}
	if got := Lerp(1, 3, 0.5); got != 2 {
		t.Fatalf("lerp: got=%f want=2", got)
	}
	if got := Lerp(1, 3, 2); got != 3 {
		t.Fatalf("lerp clamps t: got=%f want=3", got)
	}
	// Ends are exact even where a+(b-a) would round.
	hi, lo := 12*math.Pi/180, 1.5*math.Pi/180
	if got := Lerp(hi, lo, 1); got != lo {
		t.Fatalf("lerp end: got=%.20f want=%.20f", got, lo)
	}
	if got := Lerp(hi, lo, 0); got != hi {
		t.Fatalf("lerp start: got=%.20f want=%.20f", got, hi)
	}
}
