// Package goal decides, once per frame, what each player is trying to do and
// turns that into movement targets.
//
// A player without a goal takes the first eligible one from a fixed priority
// list. A player with a goal keeps executing it until the goal clears itself;
// nothing pre-empts a running goal.
package goal

import (
	"time"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/motion"
	"github.com/meghashyamc/derby2d/pack"
	"github.com/meghashyamc/derby2d/player"
	"github.com/meghashyamc/derby2d/track"
)

// World is the read-only picture a goal decides from.
type World struct {
	Now     time.Duration
	Players []player.Player
	Track   *track.Track
	Pack    pack.State
	Motion  motion.Tuning
}

// NewWorld computes the pack for players and wraps everything up.
func NewWorld(now time.Duration, players []player.Player, t *track.Track, tuning motion.Tuning) World {
	return World{
		Now:     now,
		Players: players,
		Track:   t,
		Pack:    pack.Compute(players, t),
		Motion:  tuning,
	}
}

// DebugPoint is a point a goal wants drawn this frame.
type DebugPoint struct {
	Player   int
	Label    string
	Position geometry.Vector
}

type factory struct {
	kind     player.GoalKind
	eligible func(w World, i int) bool
	create   func(w World, i int) player.Goal
}

// catalog is in priority order.
var catalog = []factory{
	{player.GoalReturnInBounds, eligibleReturnInBounds, createReturnInBounds},
	{player.GoalStayInBounds, eligibleStayInBounds, plain(player.GoalStayInBounds)},
	{player.GoalJammerEvade, eligibleJammerEvade, plain(player.GoalJammerEvade)},
	{player.GoalJammerDoLaps, eligibleJammerDoLaps, plain(player.GoalJammerDoLaps)},
	{player.GoalBlock, eligibleBlock, createBlock},
	{player.GoalOffense, eligibleOffense, createOffense},
	{player.GoalReturnToPack, eligibleReturnToPack, plain(player.GoalReturnToPack)},
	{player.GoalReformPack, eligibleReformPack, plain(player.GoalReformPack)},
	{player.GoalWall, eligibleWall, plain(player.GoalWall)},
	{player.GoalCruise, eligibleCruise, plain(player.GoalCruise)},
}

func plain(kind player.GoalKind) func(World, int) player.Goal {
	return func(w World, _ int) player.Goal {
		return player.Goal{Kind: kind, Started: w.Now}
	}
}

// Select returns the first eligible goal for player i, if any.
func Select(w World, i int) (player.Goal, bool) {
	for _, f := range catalog {
		if f.eligible(w, i) {
			return f.create(w, i), true
		}
	}
	return player.Goal{}, false
}

// Evaluate runs one frame of the state machine for player i: pick a goal if
// the player has none, otherwise execute the one held.
func Evaluate(w World, i int) (player.Player, []DebugPoint) {
	p := w.Players[i]
	if !p.Goal.Active() {
		if g, ok := Select(w, i); ok {
			p = p.WithGoal(g)
		}
		return p, nil
	}
	return execute(w, i)
}

func execute(w World, i int) (player.Player, []DebugPoint) {
	switch w.Players[i].Goal.Kind {
	case player.GoalReturnInBounds:
		return executeReturnInBounds(w, i)
	case player.GoalStayInBounds:
		return executeStayInBounds(w, i), nil
	case player.GoalJammerEvade:
		return executeJammerEvade(w, i)
	case player.GoalJammerDoLaps:
		return executeJammerDoLaps(w, i), nil
	case player.GoalBlock:
		return executeBlock(w, i), nil
	case player.GoalOffense:
		return executeOffense(w, i)
	case player.GoalReturnToPack:
		return executeReturnToPack(w, i), nil
	case player.GoalReformPack:
		return executeReformPack(w, i), nil
	case player.GoalWall:
		return executeWall(w, i), nil
	case player.GoalCruise:
		return executeCruise(w, i), nil
	case player.GoalManual:
		return executeManual(w, i), nil
	default:
		return w.Players[i].WithoutGoal(), nil
	}
}

// Manual returns the goal held by a player steered from the UI.
func Manual(now time.Duration) player.Goal {
	return player.Goal{Kind: player.GoalManual, Started: now}
}
