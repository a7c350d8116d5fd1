package sim

import (
	"fmt"
	"strings"
	"time"

	"github.com/meghashyamc/derby2d/goal"
	"github.com/meghashyamc/derby2d/pack"
	"github.com/meghashyamc/derby2d/player"
	"github.com/meghashyamc/derby2d/track"
)

// Frame is one published simulation state. Once published it is never
// written to; Players and Pack may share memory with earlier frames.
type Frame struct {
	Tick    uint64
	Now     time.Duration
	Players []player.Player

	// Pack is computed from Players.
	Pack    pack.State
	Warning pack.Warning

	// Diagnostics holds the points goals asked to have drawn while producing
	// this frame.
	Diagnostics []goal.DebugPoint
}

// NewFrame is the first frame of a jam with players standing where they are.
func NewFrame(players []player.Player, t *track.Track) Frame {
	state := pack.Compute(players, t)
	return Frame{
		Players: players,
		Pack:    state,
		Warning: state.Warning(),
	}
}

// Report is a plain-text summary of the frame.
func (f Frame) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tick %d at %.2fs: %s\n", f.Tick, f.Now.Seconds(), f.Warning)

	if active, ok := f.Pack.ActivePack(); ok {
		fmt.Fprintf(&b, "pack: %d skaters, back %.2fm, front %.2fm\n", active.Size(), active.Back.Float(), active.Front.Float())
	} else if a, c, ok := f.Pack.SplitPair(); ok {
		fmt.Fprintf(&b, "split: two groups of %d around %.2fm and %.2fm\n", a.Size(), a.Midpoint().Float(), c.Midpoint().Float())
	} else {
		b.WriteString("pack: none\n")
	}

	for i, p := range f.Players {
		status := "out of play"
		switch {
		case !f.Pack.InBounds(i):
			status = "out of bounds"
		case f.Pack.InPack(i):
			status = "in pack"
		case f.Pack.InPlay(i):
			status = "in play"
		}
		fmt.Fprintf(&b, "%2d %s %-7s %-3s at %6.2fm %5.2fm/s %-16s %s\n",
			i, p.Team, p.Role, p.Number, f.Pack.Position(i).Float(), p.Speed(), p.Goal.Kind, status)
	}
	return b.String()
}
