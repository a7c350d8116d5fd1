package sim

import (
	"github.com/meghashyamc/derby2d/goal"
	"github.com/meghashyamc/derby2d/logger"
	"github.com/meghashyamc/derby2d/motion"
	"github.com/meghashyamc/derby2d/pack"
	"github.com/meghashyamc/derby2d/player"
	"github.com/meghashyamc/derby2d/track"
)

// Engine turns one frame into the next. It holds no per-jam state.
type Engine struct {
	track  *track.Track
	tuning motion.Tuning
	log    logger.Logger
}

func NewEngine(t *track.Track, tuning motion.Tuning, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{track: t, tuning: tuning, log: log}
}

func (e *Engine) Track() *track.Track {
	return e.track
}

func (e *Engine) Tuning() motion.Tuning {
	return e.tuning
}

// Step computes the frame after prev. Goals decide from prev's pack, every
// player moves, overlaps are pushed apart and the pack is recomputed on the
// result. prev is left untouched.
func (e *Engine) Step(prev Frame) Frame {
	world := goal.World{
		Now:     prev.Now,
		Players: prev.Players,
		Track:   e.track,
		Pack:    prev.Pack,
		Motion:  e.tuning,
	}

	next := make([]player.Player, len(prev.Players))
	var diagnostics []goal.DebugPoint
	for i := range prev.Players {
		p, debug := goal.Evaluate(world, i)
		if before := prev.Players[i].Goal.Kind; p.Goal.Kind != before {
			e.log.Debug("goal changed", "tick", prev.Tick, "player", i, "from", before.String(), "to", p.Goal.Kind.String())
		}
		diagnostics = append(diagnostics, debug...)
		next[i] = e.tuning.Advance(p)
	}

	e.tuning.Resolve(next)

	state := pack.Compute(next, e.track)
	warning := state.Warning()
	if warning != prev.Warning {
		e.log.Debug("pack changed", "tick", prev.Tick+1, "from", prev.Warning.String(), "to", warning.String())
	}

	return Frame{
		Tick:        prev.Tick + 1,
		Now:         prev.Now + e.tuning.FrameDuration(),
		Players:     next,
		Pack:        state,
		Warning:     warning,
		Diagnostics: diagnostics,
	}
}

// Run steps frames times from start and returns the last frame.
func (e *Engine) Run(start Frame, frames int) Frame {
	f := start
	for range frames {
		f = e.Step(f)
	}
	return f
}
