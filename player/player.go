// Package player holds the skater value type. Players are replaced, never
// mutated, from one frame to the next.
package player

import (
	"github.com/meghashyamc/derby2d/geometry"
)

const (
	DefaultRadius = 0.4  // meters
	DefaultMass   = 70.0 // kilograms
)

type Team int

const (
	TeamHome Team = iota
	TeamAway
)

func (t Team) String() string {
	switch t {
	case TeamHome:
		return "home"
	case TeamAway:
		return "away"
	default:
		return "unknown"
	}
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamHome {
		return TeamAway
	}
	return TeamHome
}

type Role int

const (
	RoleBlocker Role = iota
	RolePivot
	RoleJammer
)

func (r Role) String() string {
	switch r {
	case RoleBlocker:
		return "blocker"
	case RolePivot:
		return "pivot"
	case RoleJammer:
		return "jammer"
	default:
		return "unknown"
	}
}

// IsBlocker is true for blockers and pivots: the skaters that form the pack.
func (r Role) IsBlocker() bool {
	return r == RoleBlocker || r == RolePivot
}

// Target is a point a player steers toward and the velocity it hopes to have there.
type Target struct {
	Position geometry.Vector
	Velocity geometry.Vector
}

// Speed is the desired speed at the target. Zero means stop there.
func (t Target) Speed() float64 {
	return t.Velocity.Magnitude()
}

type Player struct {
	Team   Team
	Role   Role
	Number string
	Radius float64
	Mass   float64

	Position geometry.Vector
	Velocity geometry.Vector

	// Targets are consumed front first as they are reached. The slice is
	// shared between frames and must not be written to; use WithTargets.
	Targets []Target
	Goal    Goal
}

func New(team Team, role Role, number string, position geometry.Vector) Player {
	return Player{
		Team:     team,
		Role:     role,
		Number:   number,
		Radius:   DefaultRadius,
		Mass:     DefaultMass,
		Position: position,
	}
}

func (p Player) Speed() float64 {
	return p.Velocity.Magnitude()
}

// Heading is the direction of travel; a stationary player has none.
func (p Player) Heading() (geometry.Angle, bool) {
	a, err := geometry.AngleOf(p.Velocity)
	if err != nil {
		return geometry.Angle{}, false
	}
	return a, true
}

// Contains reports whether pos lies within the player's radius.
func (p Player) Contains(pos geometry.Vector) bool {
	return p.Position.Distance(pos) <= p.Radius
}

// WithTargets returns a copy of p steering toward targets, replacing any queue.
func (p Player) WithTargets(targets ...Target) Player {
	p.Targets = append([]Target(nil), targets...)
	return p
}

// WithAppendedTarget returns a copy of p with target added behind the current queue.
func (p Player) WithAppendedTarget(target Target) Player {
	queue := make([]Target, 0, len(p.Targets)+1)
	queue = append(queue, p.Targets...)
	p.Targets = append(queue, target)
	return p
}

func (p Player) WithGoal(g Goal) Player {
	p.Goal = g
	return p
}

// WithoutGoal clears the goal, which makes the player pick a new one next frame.
func (p Player) WithoutGoal() Player {
	p.Goal = Goal{}
	return p
}
