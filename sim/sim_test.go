package sim

import (
	"slices"
	"strings"
	"testing"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/motion"
	"github.com/meghashyamc/derby2d/pack"
	"github.com/meghashyamc/derby2d/player"
	"github.com/meghashyamc/derby2d/track"
)

type testJam struct {
	track   *track.Track
	tuning  motion.Tuning
	players []player.Player
}

type jamOption func(*testJam)

func withTuning(tuning motion.Tuning) jamOption {
	return func(j *testJam) { j.tuning = tuning }
}

func withPlayer(team player.Team, role player.Role, meters, lateral float64) jamOption {
	return func(j *testJam) {
		pos := j.track.AbsolutePosition(geometry.Vector{X: lateral, Y: meters / j.track.Length()})
		j.players = append(j.players, player.New(team, role, "", pos))
	}
}

func withLineup(teamSize int, seed int64) jamOption {
	return func(j *testJam) {
		players, err := Lineup(j.track, teamSize, seed)
		if err != nil {
			panic(err)
		}
		j.players = append(j.players, players...)
	}
}

func newTestJam(opts ...jamOption) (*Engine, Frame) {
	j := &testJam{track: track.New(), tuning: motion.DefaultTuning()}
	for _, opt := range opts {
		opt(j)
	}
	return NewEngine(j.track, j.tuning, nil), NewFrame(j.players, j.track)
}

func TestLineup(t *testing.T) {
	tr := track.New()
	players, err := Lineup(tr, 4, 7)
	if err != nil {
		t.Fatalf("lineup: %v", err)
	}
	if len(players) != 10 {
		t.Fatalf("players: got=%d want=10", len(players))
	}

	jammerLine := tr.JammerPosition()
	for i, p := range players {
		if !tr.IsInBounds(p.Position) {
			t.Fatalf("player %d starts out of bounds at %v", i, p.Position)
		}
		pos := tr.PackPosition(p.Position)
		if p.Role == player.RoleJammer && !pos.IsBehind(jammerLine) {
			t.Fatalf("jammer %d should start behind the jammer line", i)
		}
		if p.Role != player.RoleJammer && pos.IsBehind(jammerLine) {
			t.Fatalf("blocker %d should start in front of the jammer line", i)
		}
		for j := i + 1; j < len(players); j++ {
			if d := p.Position.Distance(players[j].Position); d < p.Radius+players[j].Radius {
				t.Fatalf("players %d and %d overlap: %f", i, j, d)
			}
		}
	}

	state := pack.Compute(players, tr)
	if active, ok := state.ActivePack(); !ok || active.Size() != 8 {
		t.Fatalf("every blocker should start in the pack, got=%+v ok=%v", active, ok)
	}

	again, _ := Lineup(tr, 4, 7)
	if !slices.EqualFunc(players, again, func(a, b player.Player) bool { return a.Position == b.Position }) {
		t.Fatalf("lineup is not deterministic for a seed")
	}
}

func TestLineupRejectsEmptyTeams(t *testing.T) {
	if _, err := Lineup(track.New(), 0, 1); err == nil {
		t.Fatalf("expected an error for an empty team")
	}
}

func TestLoneJammerHasNoPack(t *testing.T) {
	engine, start := newTestJam(
		withPlayer(player.TeamHome, player.RoleJammer, 5, 0.5),
		withPlayer(player.TeamHome, player.RoleBlocker, 20, 0.5),
		withPlayer(player.TeamHome, player.RoleBlocker, 21, 0.5),
	)
	f := engine.Step(start)
	if _, ok := f.Pack.ActivePack(); ok {
		t.Fatalf("one team cannot form a pack")
	}
	if f.Warning != pack.WarningNoPack {
		t.Fatalf("warning: got=%v want=%v", f.Warning, pack.WarningNoPack)
	}
}

func TestStepLeavesPreviousFrameAlone(t *testing.T) {
	engine, start := newTestJam(withLineup(4, 3))
	before := slices.Clone(start.Players)

	next := engine.Step(start)
	next = engine.Step(next)
	if !slices.EqualFunc(before, start.Players, func(a, b player.Player) bool {
		return a.Position == b.Position && a.Velocity == b.Velocity && a.Goal.Kind == b.Goal.Kind
	}) {
		t.Fatalf("stepping modified the previous frame")
	}
	if next.Tick != 2 || next.Now != 2*engine.Tuning().FrameDuration() {
		t.Fatalf("clock: got tick=%d now=%v", next.Tick, next.Now)
	}
}

func TestFirstStepPicksGoalsWithoutMoving(t *testing.T) {
	engine, start := newTestJam(withLineup(4, 3))
	next := engine.Step(start)
	for i, p := range next.Players {
		if !p.Goal.Active() {
			t.Fatalf("player %d has no goal after the first step", i)
		}
		if p.Position.Distance(start.Players[i].Position) > 1e-9 {
			t.Fatalf("player %d moved in the frame its goal was picked", i)
		}
	}
}

func TestLongJamStaysFinite(t *testing.T) {
	for _, response := range []motion.Response{motion.ResponsePositional, motion.ResponseElastic} {
		tuning := motion.DefaultTuning()
		tuning.Response = response
		engine, start := newTestJam(withLineup(4, 11), withTuning(tuning))

		f := engine.Run(start, 600)
		if f.Tick != 600 {
			t.Fatalf("%v: tick got=%d want=600", response, f.Tick)
		}
		moved := false
		for i, p := range f.Players {
			if !p.Position.IsFinite() || !p.Velocity.IsFinite() {
				t.Fatalf("%v: player %d went non-finite: %+v", response, i, p)
			}
			if p.Position.Distance(start.Players[i].Position) > 1 {
				moved = true
			}
		}
		if !moved {
			t.Fatalf("%v: nobody moved in ten seconds", response)
		}
	}
}

func TestSessionManualControl(t *testing.T) {
	engine, start := newTestJam(withLineup(4, 5))
	s := NewSession(engine, start.Players, nil)
	if s.ID.String() == "" {
		t.Fatalf("session needs an id")
	}

	if _, ok := s.SelectAt(geometry.Vector{X: 1000, Y: 1000}); ok {
		t.Fatalf("selected a player in empty space")
	}
	if s.SetTarget(geometry.Vector{}) {
		t.Fatalf("target set without a selection")
	}

	first := s.Frame()
	want := 3
	i, ok := s.SelectAt(first.Players[want].Position.Add(geometry.Vector{X: 0.1}))
	if !ok || i != want {
		t.Fatalf("select: got=%d,%v want=%d", i, ok, want)
	}

	dest := first.Players[want].Position.Add(geometry.Vector{X: 2})
	if !s.SetTarget(dest) || !s.SetTarget(dest.Add(geometry.Vector{X: 1})) {
		t.Fatalf("set target failed")
	}
	if len(first.Players[want].Targets) != 0 || first.Players[want].Goal.Active() {
		t.Fatalf("an already published frame was modified")
	}

	p := s.Frame().Players[want]
	if p.Goal.Kind != player.GoalManual || len(p.Targets) != 2 {
		t.Fatalf("manual goal: got=%v targets=%d", p.Goal.Kind, len(p.Targets))
	}

	stepped := s.Step()
	if stepped.Players[want].Goal.Kind != player.GoalManual {
		t.Fatalf("manual goal should survive a step, got=%v", stepped.Players[want].Goal.Kind)
	}

	s.ClearTargets()
	if p := s.Frame().Players[want]; len(p.Targets) != 0 || p.Goal.Active() {
		t.Fatalf("clear targets: got=%+v", p)
	}
	s.ClearSelection()
	if _, ok := s.Selected(); ok {
		t.Fatalf("selection should be cleared")
	}
}

func TestSelectAtPrefersTheNearestPlayer(t *testing.T) {
	f := Frame{Players: []player.Player{
		player.New(player.TeamHome, player.RoleBlocker, "", geometry.Vector{X: 0, Y: 0}),
		player.New(player.TeamAway, player.RoleBlocker, "", geometry.Vector{X: 0.5, Y: 0}),
	}}
	if i, ok := SelectAt(f, geometry.Vector{X: 0.3, Y: 0}); !ok || i != 1 {
		t.Fatalf("select: got=%d,%v want=1", i, ok)
	}
	if i, ok := SelectAt(f, geometry.Vector{X: -0.1, Y: 0}); !ok || i != 0 {
		t.Fatalf("select: got=%d,%v want=0", i, ok)
	}
}

func TestReport(t *testing.T) {
	engine, start := newTestJam(withLineup(2, 1))
	report := engine.Step(start).Report()
	for _, want := range []string{"tick 1", "pack:", "jammer", "pivot", "in pack"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
	if lines := strings.Count(report, "\n"); lines != 2+6 {
		t.Fatalf("report lines: got=%d want=8", lines)
	}
}

func TestOneTeamKeepsSkating(t *testing.T) {
	engine, start := newTestJam(
		withPlayer(player.TeamHome, player.RoleBlocker, 10, 0.5),
		withPlayer(player.TeamHome, player.RoleBlocker, 12, 0.5),
	)
	f := engine.Run(start, 120)
	for i, p := range f.Players {
		if p.Speed() < 1 {
			t.Fatalf("player %d stalled: speed=%f goal=%v", i, p.Speed(), p.Goal.Kind)
		}
		if p.Position.Distance(start.Players[i].Position) < 2 {
			t.Fatalf("player %d barely moved", i)
		}
	}
}
