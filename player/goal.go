package player

import "time"

// GoalKind identifies what a player is trying to do.
type GoalKind int

const (
	GoalNone           GoalKind = iota
	GoalReturnInBounds          // out of bounds: skate back in behind the competitors passed
	GoalStayInBounds            // about to leave the track: steer back toward the middle
	GoalJammerEvade             // blockers ahead: pick the widest gap
	GoalJammerDoLaps            // open track: follow the racing line
	GoalBlock                   // opposing jammer closing in: get in front of them
	GoalOffense                 // own jammer closing in: clear a blocker out of the way
	GoalReturnToPack            // out of play: get back to the engagement zone
	GoalReformPack              // no pack: close the gap to the nearest group
	GoalWall                    // in play: line up with two teammates
	GoalCruise                  // nothing better to do: skate on
	GoalManual                  // steered by hand from the UI
)

func (k GoalKind) String() string {
	switch k {
	case GoalNone:
		return "none"
	case GoalReturnInBounds:
		return "return_in_bounds"
	case GoalStayInBounds:
		return "stay_in_bounds"
	case GoalJammerEvade:
		return "jammer_evade"
	case GoalJammerDoLaps:
		return "jammer_do_laps"
	case GoalBlock:
		return "block"
	case GoalOffense:
		return "offense"
	case GoalReturnToPack:
		return "return_to_pack"
	case GoalReformPack:
		return "reform_pack"
	case GoalWall:
		return "wall"
	case GoalCruise:
		return "cruise"
	case GoalManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Goal is a tagged variant: Kind selects which payload, if any, is set.
// Payloads are never modified after creation; executing a goal builds a new one.
type Goal struct {
	Kind    GoalKind
	Started time.Duration

	Return *ReturnInBounds
	Evade  *Evade
	Chase  *Chase
	Wall   *Wall
}

func (g Goal) Active() bool {
	return g.Kind != GoalNone
}

// ReturnInBounds tracks re-entry after leaving the track.
type ReturnInBounds struct {
	// Limit is the roster index of the rear-most competitor to re-enter
	// behind, or -1 when nobody needs to be yielded to.
	Limit int
	// Retargeted is set once the reaction delay has passed and a skate-back
	// target has been chosen.
	Retargeted bool
	// Settled counts consecutive frames spent in bounds behind Limit.
	Settled int
}

// Evade carries the lateral offset the jammer aims for.
type Evade struct {
	Lateral float64
}

// Chase names the jammer a Block or Offense goal is reacting to.
type Chase struct {
	Jammer int
}

type Wall struct {
	Formed bool
}
