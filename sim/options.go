package sim

import (
	"github.com/meghashyamc/derby2d/motion"
)

// Options configure a jam.
type Options struct {
	TeamSize int   // blockers per team, pivot included
	Seed     int64 // lineup jitter
	Tuning   motion.Tuning
}

func DefaultOptions() Options {
	return Options{
		TeamSize: 4,
		Seed:     1,
		Tuning:   motion.DefaultTuning(),
	}
}
