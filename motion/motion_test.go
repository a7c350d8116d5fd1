package motion

import (
	"math"
	"testing"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/player"
)

func skater(x, y, vx, vy float64) player.Player {
	p := player.New(player.TeamHome, player.RoleBlocker, "1", geometry.Vector{X: x, Y: y})
	p.Velocity = geometry.Vector{X: vx, Y: vy}
	return p
}

func TestStoppingDistanceIsFrameDiscrete(t *testing.T) {
	tun := DefaultTuning()
	if got := tun.StoppingDistance(0); got != 0 {
		t.Fatalf("standstill: got=%f want=0", got)
	}
	// 6 m/s² at 60 fps is 0.1 m/s per frame: 0.9 + 0.8 + ... + 0 = 4.5 frames of 1 m/s.
	if got, want := tun.StoppingDistance(1), 4.5/60; math.Abs(got-want) > 1e-9 {
		t.Fatalf("from 1 m/s: got=%f want=%f", got, want)
	}
	if tun.StoppingDistance(6) <= tun.StoppingDistance(3) {
		t.Fatalf("stopping distance should grow with speed")
	}
}

func TestCaptureRadiusAndTurnRateScaleWithSpeed(t *testing.T) {
	tun := DefaultTuning()
	if got := tun.CaptureRadius(player.RoleBlocker, 0); got != tun.MinCaptureRadius {
		t.Fatalf("capture at rest: got=%f", got)
	}
	if got := tun.CaptureRadius(player.RoleBlocker, 100); got != tun.MaxCaptureRadius {
		t.Fatalf("capture at speed: got=%f", got)
	}
	if tun.TurnRate(player.RoleBlocker, 0) != tun.MaxTurn {
		t.Fatalf("a standing player turns fastest")
	}
	if tun.TurnRate(player.RoleBlocker, tun.BlockerMaxSpeed) != tun.MinTurn {
		t.Fatalf("a player at top speed turns slowest")
	}
}

func TestAdvanceFromStandstillHeadsForTarget(t *testing.T) {
	tun := DefaultTuning()
	p := skater(0, 0, 0, 0).WithTargets(player.Target{Position: geometry.Vector{X: 0, Y: 5}})

	next := tun.Advance(p)
	want := tun.LowSpeedAcceleration / tun.FrameRate
	if math.Abs(next.Speed()-want) > 1e-9 {
		t.Fatalf("speed: got=%f want=%f", next.Speed(), want)
	}
	if math.Abs(next.Velocity.X) > 1e-12 {
		t.Fatalf("should head straight down, velocity=%v", next.Velocity)
	}
	if next.Position.Y <= 0 {
		t.Fatalf("should have moved toward the target, position=%v", next.Position)
	}
	if p.Position != (geometry.Vector{}) {
		t.Fatalf("advance must not modify its input")
	}
}

func TestReachedTargetIsSkippedWithinTheSameFrame(t *testing.T) {
	tun := DefaultTuning()
	p := skater(0, 0, 0, 0).WithTargets(
		player.Target{Position: geometry.Vector{X: 0.1, Y: 0}},
		player.Target{Position: geometry.Vector{X: 0, Y: -5}},
	)
	next := tun.Advance(p)
	if len(next.Targets) != 1 {
		t.Fatalf("targets left: got=%d want=1", len(next.Targets))
	}
	if next.Velocity.Y >= 0 {
		t.Fatalf("should already head for the second target, velocity=%v", next.Velocity)
	}
}

func TestTurnIsLimitedAtSpeedAndSharpTurnsBrake(t *testing.T) {
	tun := DefaultTuning()
	p := skater(0, 0, 6, 0).WithTargets(player.Target{Position: geometry.Vector{X: -10, Y: 0.5}})

	next := tun.Advance(p)
	heading, ok := next.Heading()
	if !ok {
		t.Fatalf("still moving, expected a heading")
	}
	turned := math.Abs(geometry.MustAngle(0).DiffTo(heading))
	if turned > tun.TurnRate(player.RoleBlocker, 6)+1e-9 {
		t.Fatalf("turned %f rad, limit %f", turned, tun.TurnRate(player.RoleBlocker, 6))
	}
	if next.Speed() >= 6 {
		t.Fatalf("a target behind should slow the player, speed=%f", next.Speed())
	}
}

func TestNoTargetsCoastsToAStop(t *testing.T) {
	tun := DefaultTuning()
	p := skater(0, 0, 1, 0)
	for i := 0; i < 20; i++ {
		p = tun.Advance(p)
	}
	if p.Speed() != 0 {
		t.Fatalf("should have stopped, speed=%f", p.Speed())
	}
	if math.Abs(p.Position.X-tun.StoppingDistance(1)) > 1e-9 {
		t.Fatalf("travelled %f, stopping distance %f", p.Position.X, tun.StoppingDistance(1))
	}
}

func TestBrakesForAFinalStop(t *testing.T) {
	tun := DefaultTuning()
	p := skater(0, 0, 6, 0).WithTargets(player.Target{Position: geometry.Vector{X: 2, Y: 0}})
	next := tun.Advance(p)
	want := 6 - tun.Deceleration/tun.FrameRate
	if math.Abs(next.Speed()-want) > 1e-9 {
		t.Fatalf("speed: got=%f want=%f (braking)", next.Speed(), want)
	}

	far := skater(0, 0, 3, 0).WithTargets(player.Target{Position: geometry.Vector{X: 30, Y: 0}})
	if tun.Advance(far).Speed() <= 3 {
		t.Fatalf("a distant stop should not brake yet")
	}
}

func TestBrakesBeforeASharpBendInTheChain(t *testing.T) {
	tun := DefaultTuning()
	p := skater(0, 0, 6, 0).WithTargets(
		player.Target{Position: geometry.Vector{X: 2, Y: 0}, Velocity: geometry.Vector{X: 6}},
		player.Target{Position: geometry.Vector{X: 2, Y: 5}, Velocity: geometry.Vector{Y: 6}},
	)
	if got := tun.AccelerationWeight(p, geometry.MustAngle(0), geometry.MustAngle(0)); got != 0 {
		t.Fatalf("weight: got=%f want=0 before a right-angle bend", got)
	}
}

func TestTargetSpeedCapsAcceleration(t *testing.T) {
	tun := DefaultTuning()
	p := skater(0, 0, 2, 0).WithTargets(player.Target{
		Position: geometry.Vector{X: 50, Y: 0},
		Velocity: geometry.Vector{X: 2},
	})
	if got := tun.Advance(p).Speed(); math.Abs(got-2) > 1e-9 {
		t.Fatalf("speed: got=%f want=2", got)
	}
}

func TestResolveSeparatesOverlappingPair(t *testing.T) {
	tun := DefaultTuning()
	players := []player.Player{skater(0, 0, 1, 0), skater(0, 0.3, 0, 0)}

	tun.Resolve(players)

	d := players[0].Position.Distance(players[1].Position)
	if d < 0.8-1e-9 {
		t.Fatalf("distance after resolve: got=%f want>=0.8", d)
	}
	if math.Abs(players[0].Position.Y+0.25) > 1e-9 || math.Abs(players[1].Position.Y-0.55) > 1e-9 {
		t.Fatalf("should move symmetrically along the axis, got=%v %v", players[0].Position, players[1].Position)
	}
	if players[0].Position.X != 0 || players[1].Position.X != 0 {
		t.Fatalf("should not move off the connecting axis")
	}
	if players[0].Velocity != (geometry.Vector{X: 1}) {
		t.Fatalf("positional response keeps velocities, got=%v", players[0].Velocity)
	}
}

func TestResolveLeavesSeparatePlayersAlone(t *testing.T) {
	tun := DefaultTuning()
	players := []player.Player{skater(0, 0, 0, 0), skater(0, 0.8, 0, 0), skater(5, 5, 0, 0)}
	before := append([]player.Player(nil), players...)

	tun.Resolve(players)
	for i := range players {
		if players[i].Position != before[i].Position {
			t.Fatalf("player %d moved from %v to %v", i, before[i].Position, players[i].Position)
		}
	}
}

func TestResolveNeverIncreasesOverlap(t *testing.T) {
	tun := DefaultTuning()
	players := []player.Player{skater(0, 0, 0, 0), skater(0.5, 0.1, 0, 0), skater(0.2, 0.6, 0, 0)}
	overlap := func(a, b player.Player) float64 {
		return math.Max(0, a.Radius+b.Radius-a.Position.Distance(b.Position))
	}
	before := overlap(players[0], players[1])

	tun.Resolve(players)
	if after := overlap(players[0], players[1]); after > before {
		t.Fatalf("overlap grew: before=%f after=%f", before, after)
	}
}

func TestResolveCoincidentPlayers(t *testing.T) {
	tun := DefaultTuning()
	players := []player.Player{skater(1, 1, 0, 0), skater(1, 1, 0, 0)}
	tun.Resolve(players)
	if d := players[0].Position.Distance(players[1].Position); math.Abs(d-0.8) > 1e-9 {
		t.Fatalf("distance: got=%f want=0.8", d)
	}
	if !players[0].Position.IsFinite() {
		t.Fatalf("position should stay finite, got=%v", players[0].Position)
	}
}

func TestElasticResponseSwapsEqualMassVelocities(t *testing.T) {
	tun := DefaultTuning()
	tun.Response = ResponseElastic
	players := []player.Player{skater(0, 0, 2, 0), skater(0.7, 0, -1, 0)}

	tun.Resolve(players)
	if math.Abs(players[0].Velocity.X+1) > 1e-9 || math.Abs(players[1].Velocity.X-2) > 1e-9 {
		t.Fatalf("velocities: got=%v %v want (-1,0) (2,0)", players[0].Velocity, players[1].Velocity)
	}
}

func TestParseResponse(t *testing.T) {
	if ParseResponse("elastic") != ResponseElastic || ParseResponse("") != ResponsePositional {
		t.Fatalf("parse wrong")
	}
}
