package goal

import (
	"math"
	"slices"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/player"
)

// chasingJammer returns the in-bounds jammer of team that is behind player i
// within meters.
func (w World) chasingJammer(i int, team player.Team, meters float64) (int, bool) {
	j, ok := w.jammerOf(team)
	if !ok {
		return 0, false
	}
	if g := w.gap(i, j); g < 0 && -g <= meters {
		return j, true
	}
	return 0, false
}

func (w World) engagedBlocker(i int) bool {
	_, hasPack := w.Pack.ActivePack()
	return w.isBlocker(i) && hasPack && w.Pack.InPlay(i)
}

func eligibleBlock(w World, i int) bool {
	if !w.engagedBlocker(i) {
		return false
	}
	_, ok := w.chasingJammer(i, w.Players[i].Team.Opponent(), blockRange)
	return ok
}

func createBlock(w World, i int) player.Goal {
	j, _ := w.chasingJammer(i, w.Players[i].Team.Opponent(), blockRange)
	return player.Goal{Kind: player.GoalBlock, Started: w.Now, Chase: &player.Chase{Jammer: j}}
}

// stillChasing reports whether the jammer named by player i's goal is still
// behind and close enough to keep reacting to.
func (w World) stillChasing(i int, giveUp float64) (int, bool) {
	chase := w.Players[i].Goal.Chase
	if chase == nil || chase.Jammer < 0 || chase.Jammer >= len(w.Players) {
		return 0, false
	}
	j := chase.Jammer
	if !w.inBounds(j) {
		return 0, false
	}
	if g := w.gap(i, j); g >= 0 || -g > giveUp {
		return 0, false
	}
	return j, true
}

func executeBlock(w World, i int) player.Player {
	p := w.Players[i]
	if !w.engagedBlocker(i) {
		return p.WithoutGoal()
	}
	j, ok := w.stillChasing(i, blockRange*chaseGiveUp)
	if !ok {
		return p.WithoutGoal()
	}

	// Stay just in front of the jammer, matching their line.
	lateral := geometry.Clamp(w.relative(j).X, 0, 1)
	speed := max(w.Players[j].Speed(), slowSpeed)
	return p.WithTargets(w.target(w.ahead(i, lateral, p.Radius), speed))
}

// obstacleFor returns the opposing in-bounds blocker nearest in front of jammer j.
func (w World) obstacleFor(j int) (int, bool) {
	team := w.Players[j].Team
	best, bestGap := 0, math.Inf(1)
	for k, q := range w.Players {
		if q.Team == team || !q.Role.IsBlocker() || !w.inBounds(k) {
			continue
		}
		if g := w.gap(j, k); g > 0 && g <= offenseRange && g < bestGap {
			best, bestGap = k, g
		}
	}
	return best, !math.IsInf(bestGap, 1)
}

func eligibleOffense(w World, i int) bool {
	if !w.engagedBlocker(i) {
		return false
	}
	j, ok := w.chasingJammer(i, w.Players[i].Team, offenseRange)
	if !ok {
		return false
	}
	_, ok = w.obstacleFor(j)
	return ok
}

func createOffense(w World, i int) player.Goal {
	j, _ := w.chasingJammer(i, w.Players[i].Team, offenseRange)
	return player.Goal{Kind: player.GoalOffense, Started: w.Now, Chase: &player.Chase{Jammer: j}}
}

func executeOffense(w World, i int) (player.Player, []DebugPoint) {
	p := w.Players[i]
	if !w.engagedBlocker(i) {
		return p.WithoutGoal(), nil
	}
	j, ok := w.stillChasing(i, offenseRange*chaseGiveUp)
	if !ok {
		return p.WithoutGoal(), nil
	}
	k, ok := w.obstacleFor(j)
	if !ok {
		return p.WithoutGoal(), nil
	}

	// Hit the obstacle from the jammer's side to push it off the jammer's line.
	obstacle := w.relative(k)
	side := -1.0
	if w.relative(j).X > obstacle.X {
		side = 1
	}
	hit := w.Track.AbsolutePosition(geometry.Vector{
		X: obstacle.X + side*p.Radius/w.trackWidth(),
		Y: obstacle.Y,
	})
	p = p.WithTargets(w.target(hit, w.maxSpeed(i)))
	return p, []DebugPoint{{Player: i, Label: "offense", Position: w.Players[k].Position}}
}

func (w World) trackWidth() float64 {
	return w.Track.OuterBound.Radius - w.Track.InnerBound.Radius
}

func eligibleReturnToPack(w World, i int) bool {
	_, hasPack := w.Pack.ActivePack()
	return w.isBlocker(i) && w.inBounds(i) && hasPack && !w.Pack.InPlay(i)
}

func executeReturnToPack(w World, i int) player.Player {
	p := w.Players[i]
	active, ok := w.Pack.ActivePack()
	if !ok || !w.inBounds(i) || w.Pack.InPack(i) {
		return p.WithoutGoal()
	}

	lateral := safeLateral(w.relative(i).X)
	pos := w.Pack.Position(i)
	length := w.Track.Length()
	if pos.IsInFrontOf(active.Midpoint()) {
		// Ease off and let the pack catch up.
		dest := w.Track.AbsolutePosition(geometry.Vector{X: lateral, Y: active.Front.Fraction()})
		return p.WithTargets(w.target(dest, slowSpeed))
	}
	dest := w.Track.AbsolutePosition(geometry.Vector{X: lateral, Y: active.Back.Fraction() + p.Radius/length})
	return p.WithTargets(w.target(dest, w.maxSpeed(i)))
}

func eligibleReformPack(w World, i int) bool {
	_, hasPack := w.Pack.ActivePack()
	if !w.isBlocker(i) || !w.inBounds(i) || hasPack {
		return false
	}
	_, found := w.nearestOtherGroup(i)
	return found
}

// nearestOtherGroup returns the midpoint of the closest pack candidate that
// player i is not part of.
func (w World) nearestOtherGroup(i int) (float64, bool) {
	own, _ := w.Pack.CandidateOf(i)
	pos := w.Pack.Position(i)
	best, found := 0.0, false
	bestDistance := math.Inf(1)
	for k, c := range w.Pack.Candidates {
		if k == own && w.Pack.IsApplicable(i) {
			continue
		}
		mid := c.Midpoint()
		if d := pos.DistanceTo(mid); d < bestDistance {
			best, bestDistance, found = pos.SignedDistanceTo(mid), d, true
		}
	}
	return best, found
}

func executeReformPack(w World, i int) player.Player {
	p := w.Players[i]
	if _, hasPack := w.Pack.ActivePack(); hasPack || !w.inBounds(i) {
		return p.WithoutGoal()
	}
	toward, ok := w.nearestOtherGroup(i)
	if !ok {
		return p.WithoutGoal()
	}

	lateral := safeLateral(w.relative(i).X)
	if toward < 0 {
		// The nearest group is behind: keep skating forward slowly until it arrives.
		return p.WithTargets(w.target(w.ahead(i, lateral, lookAhead), slowSpeed))
	}
	return p.WithTargets(w.target(w.ahead(i, lateral, toward), w.maxSpeed(i)))
}

// wallMates returns player i and up to two of the nearest in-bounds blockers
// on the same team.
func (w World) wallMates(i int) []int {
	me := w.Players[i]
	var mates []int
	for j, q := range w.Players {
		if j != i && q.Team == me.Team && q.Role.IsBlocker() && w.inBounds(j) {
			mates = append(mates, j)
		}
	}
	slices.SortStableFunc(mates, func(a, b int) int {
		da := me.Position.Distance(w.Players[a].Position)
		db := me.Position.Distance(w.Players[b].Position)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
	if len(mates) > wallSize-1 {
		mates = mates[:wallSize-1]
	}
	return append([]int{i}, mates...)
}

// wallFormed reports whether every pair in the wall is within wallSpacing.
func (w World) wallFormed(wall []int) bool {
	for a := 0; a < len(wall); a++ {
		for b := a + 1; b < len(wall); b++ {
			if w.Players[wall[a]].Position.Distance(w.Players[wall[b]].Position) > wallSpacing {
				return false
			}
		}
	}
	return true
}

func eligibleWall(w World, i int) bool {
	return w.engagedBlocker(i) && len(w.wallMates(i)) >= wallSize
}

func executeWall(w World, i int) player.Player {
	p := w.Players[i]
	if !w.engagedBlocker(i) || w.elapsed(i) >= wallFor.Seconds() {
		return p.WithoutGoal()
	}
	if _, threat := w.chasingJammer(i, p.Team.Opponent(), blockRange); threat {
		return p.WithoutGoal()
	}
	wall := w.wallMates(i)
	if len(wall) < wallSize {
		return p.WithoutGoal()
	}
	formed := w.wallFormed(wall)

	// Slots are handed out inside to outside by current lateral position.
	byLateral := slices.Clone(wall)
	slices.SortStableFunc(byLateral, func(a, b int) int {
		la, lb := w.relative(a).X, w.relative(b).X
		switch {
		case la < lb:
			return -1
		case la > lb:
			return 1
		default:
			return a - b
		}
	})
	slot := slices.Index(byLateral, i)
	lateral := 0.5 + (float64(slot)-float64(len(wall)-1)/2)*0.2

	// Line up level with the wall's average position.
	offset := 0.0
	for _, m := range wall {
		offset += w.gap(i, m)
	}
	offset /= float64(len(wall))

	pace := max(w.packSpeed(), wallPace)
	speed := pace
	if !formed {
		if offset > 0 {
			speed = pace + 1
		} else {
			speed = max(pace-1, slowSpeed)
		}
	}

	p = p.WithTargets(w.target(w.ahead(i, lateral, offset+lookAhead), speed))
	p.Goal.Wall = &player.Wall{Formed: formed}
	return p
}
