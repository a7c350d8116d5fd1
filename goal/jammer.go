package goal

import (
	"math"

	"github.com/meghashyamc/derby2d/player"
)

func eligibleJammerEvade(w World, i int) bool {
	return w.isJammer(i) && w.inBounds(i) && len(w.blockersAhead(i, evadeRange)) > 0
}

func eligibleJammerDoLaps(w World, i int) bool {
	return w.isJammer(i) && w.inBounds(i)
}

// bestLateral tries evenly spaced lateral offsets ahead of player i and keeps
// the one furthest from its nearest blocker. Ties go to the offset closest to
// where the player already is.
func (w World) bestLateral(i int, blockers []int) (float64, []DebugPoint) {
	current := w.relative(i).X
	best, bestClearance := current, -1.0
	debug := make([]DebugPoint, 0, evadeCandidates)

	for k := 1; k <= evadeCandidates; k++ {
		lateral := float64(k) / float64(evadeCandidates+1)
		candidate := w.ahead(i, lateral, lookAhead)
		debug = append(debug, DebugPoint{Player: i, Label: "evade", Position: candidate})

		clearance := math.Inf(1)
		for _, b := range blockers {
			clearance = math.Min(clearance, candidate.Distance(w.Players[b].Position))
		}
		closer := math.Abs(lateral-current) < math.Abs(best-current)
		if clearance > bestClearance || (clearance == bestClearance && closer) {
			best, bestClearance = lateral, clearance
		}
	}
	return best, debug
}

func executeJammerEvade(w World, i int) (player.Player, []DebugPoint) {
	p := w.Players[i]
	blockers := w.blockersAhead(i, evadeRange)
	if !w.inBounds(i) || len(blockers) == 0 {
		return p.WithoutGoal(), nil
	}

	lateral, debug := w.bestLateral(i, blockers)
	p = p.WithTargets(w.target(w.ahead(i, lateral, lookAhead), w.maxSpeed(i)))
	p.Goal.Evade = &player.Evade{Lateral: lateral}
	return p, debug
}

func executeJammerDoLaps(w World, i int) player.Player {
	p := w.Players[i]
	if !w.inBounds(i) || len(w.blockersAhead(i, evadeRange)) > 0 {
		return p.WithoutGoal()
	}

	y := w.relative(i).Y
	length := w.Track.Length()
	targets := make([]player.Target, 0, 2)
	for _, d := range []float64{lookAhead, 2 * lookAhead} {
		lateral := w.racingLine(y + d/length)
		targets = append(targets, w.target(w.ahead(i, lateral, d), w.maxSpeed(i)))
	}
	return p.WithTargets(targets...)
}
