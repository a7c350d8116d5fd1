package goal

import (
	"math"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/player"
)

func (w World) inBounds(i int) bool {
	return w.Track.IsInBounds(w.Players[i].Position)
}

func (w World) relative(i int) geometry.Vector {
	return w.Track.RelativePosition(w.Players[i].Position)
}

// gap is the signed pack-line distance from player i to player j; positive
// when j is in front.
func (w World) gap(i, j int) float64 {
	return w.Pack.Position(i).SignedDistanceTo(w.Pack.Position(j))
}

func (w World) elapsed(i int) float64 {
	return (w.Now - w.Players[i].Goal.Started).Seconds()
}

// projectedStop is where player i would come to rest braking from now on.
func (w World) projectedStop(i int) geometry.Vector {
	p := w.Players[i]
	heading, ok := p.Heading()
	if !ok {
		return p.Position
	}
	return p.Position.Add(heading.Vector(w.Motion.StoppingDistance(p.Speed())))
}

// target aims at pos, moving along the track at speed.
func (w World) target(pos geometry.Vector, speed float64) player.Target {
	return player.Target{Position: pos, Velocity: w.Track.Direction(pos).Vector(speed)}
}

// ahead is the point at lateral, meters along the pack line from player i.
func (w World) ahead(i int, lateral, meters float64) geometry.Vector {
	return w.Track.Ahead(lateral, w.relative(i).Y, meters)
}

func safeLateral(lateral float64) float64 {
	return geometry.Clamp(lateral, safeInner, safeOuter)
}

// blockersAhead lists in-bounds blockers of either team within meters in
// front of player i, including anyone level with them.
func (w World) blockersAhead(i int, meters float64) []int {
	var found []int
	reach := w.Players[i].Radius * 2
	for j, q := range w.Players {
		if j == i || !q.Role.IsBlocker() || !w.inBounds(j) {
			continue
		}
		if g := w.gap(i, j); g > -reach && g <= meters {
			found = append(found, j)
		}
	}
	return found
}

// jammerOf returns the in-bounds jammer of team, if any.
func (w World) jammerOf(team player.Team) (int, bool) {
	for j, q := range w.Players {
		if q.Team == team && q.Role == player.RoleJammer && w.inBounds(j) {
			return j, true
		}
	}
	return 0, false
}

// packSpeed is the mean speed of the active pack's members.
func (w World) packSpeed() float64 {
	active, ok := w.Pack.ActivePack()
	if !ok || active.Size() == 0 {
		return 0
	}
	total := 0.0
	for _, m := range active.Members {
		total += w.Players[m].Speed()
	}
	return total / float64(active.Size())
}

func (w World) isBlocker(i int) bool {
	return w.Players[i].Role.IsBlocker()
}

func (w World) isJammer(i int) bool {
	return w.Players[i].Role == player.RoleJammer
}

func (w World) maxSpeed(i int) float64 {
	return w.Motion.MaxSpeed(w.Players[i].Role)
}

// racingLine is the ideal lateral offset for a jammer at relative position y:
// inside at each turn apex, outside mid-straight.
func (w World) racingLine(y float64) float64 {
	return 0.5 - racingAmplitude*math.Cos(4*math.Pi*(y-w.Track.TurnApex()))
}
