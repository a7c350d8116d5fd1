package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/player"
	"github.com/meghashyamc/derby2d/track"
)

var ErrTeamSize = errors.New("team size must be at least one")

const (
	markerGap = 1.5 // meters kept clear of each marker line
	jitter    = 0.2 // meters either way along the track
)

// Lineup places both teams for the start of a jam: pivots just behind the
// pivot line, the other blockers spread between the markers and jammers
// behind the jammer line. Home players come first.
func Lineup(t *track.Track, teamSize int, seed int64) ([]player.Player, error) {
	if teamSize < 1 {
		return nil, fmt.Errorf("lineup of %d: %w", teamSize, ErrTeamSize)
	}
	rng := rand.New(rand.NewSource(seed))

	jammerLine := t.JammerPosition().Float()
	pivotLine := t.PivotPosition().Float()
	if pivotLine < jammerLine {
		pivotLine += t.Length()
	}

	at := func(lateral, meters float64) geometry.Vector {
		return t.AbsolutePosition(geometry.Vector{X: lateral, Y: meters / t.Length()})
	}

	// Blockers alternate teams front to back so that nobody starts stacked.
	slots := 2 * (teamSize - 1)
	first, last := jammerLine+markerGap, pivotLine-markerGap
	slotAt := func(k int) float64 {
		if slots == 1 {
			return (first + last) / 2
		}
		return first + (last-first)*float64(k)/float64(slots-1)
	}

	var players []player.Player
	for side, team := range []player.Team{player.TeamHome, player.TeamAway} {
		lane := 0.3 + 0.4*float64(side)

		players = append(players, player.New(team, player.RoleJammer, "J", at(lane, jammerLine-markerGap)))
		players = append(players, player.New(team, player.RolePivot, "P", at(lane, pivotLine-0.5)))

		for b := 0; b < teamSize-1; b++ {
			k := 2*b + side
			meters := slotAt(k) + (rng.Float64()*2-1)*jitter
			lateral := 0.2 + 0.6*rng.Float64()
			players = append(players, player.New(team, player.RoleBlocker, fmt.Sprint(b+1), at(lateral, meters)))
		}
	}
	return players, nil
}
