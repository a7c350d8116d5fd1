// Package motion moves players toward their targets within acceleration,
// deceleration and turn-rate limits, then pushes overlapping players apart.
package motion

import (
	"math"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/player"
)

// speedRatio is speed as a share of the role's top speed, clamped to [0, 1].
func (t Tuning) speedRatio(role player.Role, speed float64) float64 {
	max := t.MaxSpeed(role)
	if max <= 0 {
		return 1
	}
	return geometry.Clamp(speed/max, 0, 1)
}

// CaptureRadius is how close a target must be to count as reached. Faster
// players reach targets from further away.
func (t Tuning) CaptureRadius(role player.Role, speed float64) float64 {
	return geometry.Lerp(t.MinCaptureRadius, t.MaxCaptureRadius, t.speedRatio(role, speed))
}

// TurnRate is the most a player may turn in one frame.
func (t Tuning) TurnRate(role player.Role, speed float64) float64 {
	return geometry.Lerp(t.MaxTurn, t.MinTurn, t.speedRatio(role, speed))
}

func (t Tuning) decelerationStep() float64 {
	return t.Deceleration * t.FrameSeconds()
}

// StoppingDistance sums the distance travelled frame by frame while braking
// from speed to a standstill.
func (t Tuning) StoppingDistance(speed float64) float64 {
	step := t.decelerationStep()
	if step <= 0 || speed <= 0 {
		return 0
	}
	dt := t.FrameSeconds()
	distance := 0.0
	for speed > 0 {
		speed = math.Max(0, speed-step)
		distance += speed * dt
	}
	return distance
}

// turnWeight is 1 when heading straight at the target, tapering to 0 at a
// right angle and staying 0 beyond.
func turnWeight(heading, bearing geometry.Angle) float64 {
	turn := math.Abs(heading.DiffTo(bearing))
	if turn > math.Pi/2 {
		return 0
	}
	return 1 - math.Cbrt(turn/(math.Pi/2))
}

// mustBrake walks the target chain and reports whether a sharp bend, or a
// final stop, comes up sooner than the player could stop.
func (t Tuning) mustBrake(from geometry.Vector, targets []player.Target, speed float64) bool {
	stopping := t.StoppingDistance(speed)
	remaining := 0.0
	prev := from
	for k, target := range targets {
		remaining += prev.Distance(target.Position)
		if remaining > stopping {
			return false
		}
		if k == len(targets)-1 {
			return target.Speed() == 0
		}
		in := target.Position.Minus(prev)
		out := targets[k+1].Position.Minus(target.Position)
		if !in.IsOrigin() && !out.IsOrigin() && in.AngleTo(out) > t.SharpTurn {
			return true
		}
		prev = target.Position
	}
	return false
}

// AccelerationWeight blends between braking (0) and full acceleration (1).
func (t Tuning) AccelerationWeight(p player.Player, heading, bearing geometry.Angle) float64 {
	if t.mustBrake(p.Position, p.Targets, p.Speed()) {
		return 0
	}
	return turnWeight(heading, bearing)
}

// dropReached pops targets within the capture radius. Reached targets cost
// no turning or speed change.
func (t Tuning) dropReached(p player.Player) []player.Target {
	radius := t.CaptureRadius(p.Role, p.Speed())
	targets := p.Targets
	for len(targets) > 0 && p.Position.Distance(targets[0].Position) <= radius {
		targets = targets[1:]
	}
	if len(targets) == 0 {
		return nil
	}
	return targets
}

// Advance moves p by one frame and returns the moved copy.
func (t Tuning) Advance(p player.Player) player.Player {
	p.Targets = t.dropReached(p)

	speed := p.Speed()
	heading, moving := p.Heading()
	decelerated := math.Max(0, speed-t.decelerationStep())

	var bearing geometry.Angle
	var err error
	if len(p.Targets) > 0 {
		bearing, err = geometry.AngleOf(p.Targets[0].Position.Minus(p.Position))
	}
	if len(p.Targets) == 0 || err != nil {
		if !moving {
			p.Velocity = geometry.Vector{}
			return p
		}
		return t.move(p, heading, decelerated)
	}

	if !moving {
		heading = bearing
	} else {
		heading = heading.TurnToward(bearing, t.TurnRate(p.Role, speed))
	}

	limit := t.MaxSpeed(p.Role)
	if want := p.Targets[0].Speed(); want > 0 && want < limit {
		limit = want
	}
	acceleration := t.Acceleration
	if speed < t.LowSpeedThreshold {
		acceleration = t.LowSpeedAcceleration
	}
	var accelerated float64
	if speed > limit {
		accelerated = math.Max(limit, decelerated)
	} else {
		accelerated = math.Min(limit, speed+acceleration*t.FrameSeconds())
	}

	weight := t.AccelerationWeight(p, heading, bearing)
	return t.move(p, heading, decelerated+weight*(accelerated-decelerated))
}

func (t Tuning) move(p player.Player, heading geometry.Angle, speed float64) player.Player {
	p.Velocity = heading.Vector(speed)
	p.Position = p.Position.Add(p.Velocity.Scale(t.FrameSeconds()))
	return p
}
