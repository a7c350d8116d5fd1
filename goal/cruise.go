package goal

import "github.com/meghashyamc/derby2d/player"

func eligibleCruise(World, int) bool {
	return true
}

func executeCruise(w World, i int) player.Player {
	p := w.Players[i]
	if w.elapsed(i) >= cruiseFor.Seconds() {
		return p.WithoutGoal()
	}
	lateral := safeLateral(w.relative(i).X)
	return p.WithTargets(w.target(w.ahead(i, lateral, lookAhead), cruiseSpeed))
}

// executeManual keeps the hand-set targets until they are all reached.
func executeManual(w World, i int) player.Player {
	p := w.Players[i]
	if len(p.Targets) == 0 {
		return p.WithoutGoal()
	}
	return p
}
