package motion

import (
	"math"
	"time"

	"github.com/meghashyamc/derby2d/player"
)

// Tuning holds the movement limits. Speeds are in m/s, accelerations in m/s²,
// turn rates in radians per frame; every change is applied once per frame.
type Tuning struct {
	FrameRate float64

	BlockerMaxSpeed float64
	JammerMaxSpeed  float64

	Acceleration         float64
	LowSpeedAcceleration float64 // used below LowSpeedThreshold to get going faster
	LowSpeedThreshold    float64
	Deceleration         float64

	MinTurn float64 // per frame at full speed
	MaxTurn float64 // per frame at a standstill

	MinCaptureRadius float64 // at a standstill
	MaxCaptureRadius float64 // at full speed

	// SharpTurn is the bend in the target chain worth slowing down for.
	SharpTurn float64

	Response Response
}

func DefaultTuning() Tuning {
	return Tuning{
		FrameRate:            60,
		BlockerMaxSpeed:      6.5,
		JammerMaxSpeed:       8.0,
		Acceleration:         2.5,
		LowSpeedAcceleration: 5.0,
		LowSpeedThreshold:    1.0,
		Deceleration:         6.0,
		MinTurn:              1.5 * math.Pi / 180,
		MaxTurn:              12 * math.Pi / 180,
		MinCaptureRadius:     0.3,
		MaxCaptureRadius:     1.0,
		SharpTurn:            math.Pi / 3,
		Response:             ResponsePositional,
	}
}

// FrameSeconds is the duration of one frame in seconds.
func (t Tuning) FrameSeconds() float64 {
	if t.FrameRate <= 0 {
		return 1.0 / 60.0
	}
	return 1 / t.FrameRate
}

func (t Tuning) FrameDuration() time.Duration {
	return time.Duration(t.FrameSeconds() * float64(time.Second))
}

func (t Tuning) MaxSpeed(role player.Role) float64 {
	if role == player.RoleJammer {
		return t.JammerMaxSpeed
	}
	return t.BlockerMaxSpeed
}
