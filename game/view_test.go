package game

import (
	"math"
	"testing"
	"time"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/track"
)

func TestViewFitsTheTrack(t *testing.T) {
	tr := track.New()
	v := NewView(tr, 1280, 800)

	right := geometry.Vector{X: tr.Right.X + tr.OuterBound.Radius}
	x, _ := v.ToScreen(right)
	if x > 1280-viewMargin+0.5 || x < 640 {
		t.Fatalf("right edge off screen: x=%f", x)
	}
	bottom := geometry.Vector{Y: tr.OuterBound.Radius}
	if _, y := v.ToScreen(bottom); y > 800-viewMargin+0.5 {
		t.Fatalf("bottom edge off screen: y=%f", y)
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := NewView(track.New(), 1280, 800)
	world := v.ToWorld(900, 120)
	x, y := v.ToScreen(world)
	if math.Abs(float64(x)-900) > 1e-3 || math.Abs(float64(y)-120) > 1e-3 {
		t.Fatalf("round trip: got=(%f,%f) want=(900,120)", x, y)
	}
	if got := v.ToWorld(640, 400); !got.IsOrigin() {
		t.Fatalf("screen center should be the track center, got=%v", got)
	}
}

func TestTimer(t *testing.T) {
	timer := NewTimer(50*time.Millisecond, 20*time.Millisecond)
	if !timer.IsReady() {
		t.Fatalf("a new timer has nothing to count")
	}
	timer.Reset()
	for range 2 {
		timer.Update()
		if timer.IsReady() {
			t.Fatalf("ready too early")
		}
	}
	timer.Update()
	if !timer.IsReady() {
		t.Fatalf("timer should be ready after 60ms")
	}
}
