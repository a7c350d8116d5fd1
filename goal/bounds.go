package goal

import (
	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/pack"
	"github.com/meghashyamc/derby2d/player"
)

func eligibleReturnInBounds(w World, i int) bool {
	return !w.inBounds(i)
}

func createReturnInBounds(w World, _ int) player.Goal {
	return player.Goal{
		Kind:    player.GoalReturnInBounds,
		Started: w.Now,
		Return:  &player.ReturnInBounds{Limit: -1},
	}
}

// rearmostCompetitor is the opposing in-play blocker furthest behind player i
// within the engagement distance, or -1.
func (w World) rearmostCompetitor(i int) int {
	team := w.Players[i].Team
	limit, furthest := -1, 0.0
	for j, q := range w.Players {
		if q.Team == team || !q.Role.IsBlocker() || !w.Pack.InPlay(j) {
			continue
		}
		behind := -w.gap(i, j)
		if behind <= 0 || behind > pack.EngagementDistance {
			continue
		}
		if behind > furthest {
			limit, furthest = j, behind
		}
	}
	return limit
}

func executeReturnInBounds(w World, i int) (player.Player, []DebugPoint) {
	p := w.Players[i]
	if w.Now-p.Goal.Started < reactionDelay {
		return p, nil
	}

	state := player.ReturnInBounds{Limit: -1}
	if p.Goal.Return != nil {
		state = *p.Goal.Return
	}
	if !state.Retargeted {
		state.Limit = w.rearmostCompetitor(i)
		state.Retargeted = true
	}

	behindLimit := state.Limit < 0 || !w.Pack.Position(i).IsInFrontOf(w.Pack.Position(state.Limit))
	if w.inBounds(i) && behindLimit {
		state.Settled++
	} else {
		state.Settled = 0
	}
	if state.Settled >= settleFrames {
		return p.WithoutGoal(), nil
	}

	rel := w.relative(i)
	y := rel.Y
	if !behindLimit {
		limit := w.relative(state.Limit)
		y = limit.Y - reentryGap/w.Track.Length()
	}
	reentry := w.Track.AbsolutePosition(geometry.Vector{X: safeLateral(rel.X), Y: y})

	p = p.WithTargets(w.target(reentry, returnSpeed))
	p.Goal.Return = &state
	return p, []DebugPoint{{Player: i, Label: "reentry", Position: reentry}}
}

// tooClose reports whether player i is, or is about to be, near a bound.
func (w World) tooClose(i int) bool {
	lateral := w.relative(i).X
	if lateral < boundaryMargin || lateral > 1-boundaryMargin {
		return true
	}
	return !w.Track.IsInBounds(w.projectedStop(i))
}

func eligibleStayInBounds(w World, i int) bool {
	return w.inBounds(i) && w.tooClose(i)
}

func executeStayInBounds(w World, i int) player.Player {
	p := w.Players[i]
	if !w.inBounds(i) || !w.tooClose(i) {
		return p.WithoutGoal()
	}
	rel := w.relative(i)
	speed := max(p.Speed(), slowSpeed)
	return p.WithTargets(w.target(w.ahead(i, safeLateral(rel.X), lookAhead), speed))
}
