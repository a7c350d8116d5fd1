// Package pack finds the officiating pack: the largest group of in-bounds
// blockers from both teams skating within ten feet of each other.
package pack

import (
	"slices"

	"github.com/meghashyamc/derby2d/overflow"
	"github.com/meghashyamc/derby2d/player"
	"github.com/meghashyamc/derby2d/track"
)

const (
	// Distance is the largest pack-line gap that still links two blockers.
	Distance = 10 * track.Foot
	// EngagementDistance extends the engagement zone beyond the pack at both ends.
	EngagementDistance = 20 * track.Foot
)

// Candidate is a maximal group of applicable blockers linked by gaps shorter than Distance.
type Candidate struct {
	// Members are roster indices ordered from the back of the group to the front.
	Members []int

	Back  overflow.Value
	Front overflow.Value

	ZoneBack  overflow.Value
	ZoneFront overflow.Value

	BothTeams bool

	// zoneIsLoop is set when the engagement zone wraps the entire track.
	zoneIsLoop bool
}

func (c Candidate) Size() int {
	return len(c.Members)
}

// Span is the pack-line distance from the back member to the front member.
func (c Candidate) Span() float64 {
	return c.Back.Forward(c.Front)
}

// Midpoint is halfway between the back and front members.
func (c Candidate) Midpoint() overflow.Value {
	return c.Back.Add(c.Span() / 2)
}

// Contains reports whether pos lies between the back and front members.
func (c Candidate) Contains(pos overflow.Value) bool {
	return pos.IsWithin(c.Back, c.Front)
}

func (c Candidate) InEngagementZone(pos overflow.Value) bool {
	return c.zoneIsLoop || pos.IsWithin(c.ZoneBack, c.ZoneFront)
}

func (c Candidate) hasMember(i int) bool {
	return slices.Contains(c.Members, i)
}

// State is the pack picture for one frame. It is computed from scratch every
// frame and holds no identity across frames.
type State struct {
	Candidates []Candidate

	// active indexes Candidates, or is -1. split holds the tied pair, or -1s.
	active int
	split  [2]int

	positions  []overflow.Value
	inBounds   []bool
	applicable []bool
	jammer     []bool
}

// Compute builds the pack state for players on t. It is a pure function of its inputs.
func Compute(players []player.Player, t *track.Track) State {
	n := len(players)
	s := State{
		active:     -1,
		split:      [2]int{-1, -1},
		positions:  make([]overflow.Value, n),
		inBounds:   make([]bool, n),
		applicable: make([]bool, n),
		jammer:     make([]bool, n),
	}

	var applicable []int
	for i, p := range players {
		s.positions[i] = t.PackPosition(p.Position)
		s.inBounds[i] = t.IsInBounds(p.Position)
		s.jammer[i] = p.Role == player.RoleJammer
		s.applicable[i] = s.inBounds[i] && !s.jammer[i]
		if s.applicable[i] {
			applicable = append(applicable, i)
		}
	}

	linked := s.links(applicable)
	for _, members := range components(applicable, linked) {
		s.Candidates = append(s.Candidates, s.candidate(players, members, t.Length()))
	}

	s.selectActive()
	return s
}

// links returns the adjacency matrix over applicable, indexed by position in that slice.
func (s *State) links(applicable []int) [][]bool {
	m := len(applicable)
	linked := make([][]bool, m)
	for a := range linked {
		linked[a] = make([]bool, m)
	}
	for a := 0; a < m; a++ {
		for b := a + 1; b < m; b++ {
			d := s.positions[applicable[a]].DistanceTo(s.positions[applicable[b]])
			if d < Distance {
				linked[a][b] = true
				linked[b][a] = true
			}
		}
	}
	return linked
}

// components walks the adjacency matrix breadth first, starting each new
// group from the lowest unvisited roster index.
func components(applicable []int, linked [][]bool) [][]int {
	visited := make([]bool, len(applicable))
	var groups [][]int

	for start := range applicable {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int{start}
		var group []int

		for len(queue) > 0 {
			a := queue[0]
			queue = queue[1:]
			group = append(group, applicable[a])
			for b, ok := range linked[a] {
				if ok && !visited[b] {
					visited[b] = true
					queue = append(queue, b)
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}

func (s *State) candidate(players []player.Player, members []int, length float64) Candidate {
	sorted := slices.Clone(members)
	slices.SortFunc(sorted, func(a, b int) int {
		pa, pb := s.positions[a].Float(), s.positions[b].Float()
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		default:
			return a - b
		}
	})

	// The back of the group sits just after the widest gap around the loop.
	widest, widestAt := -1.0, 0
	for k := range sorted {
		next := sorted[(k+1)%len(sorted)]
		gap := s.positions[sorted[k]].Forward(s.positions[next])
		if len(sorted) == 1 {
			gap = length
		}
		if gap > widest {
			widest, widestAt = gap, k
		}
	}
	ordered := make([]int, 0, len(sorted))
	for k := 1; k <= len(sorted); k++ {
		ordered = append(ordered, sorted[(widestAt+k)%len(sorted)])
	}

	c := Candidate{
		Members: ordered,
		Back:    s.positions[ordered[0]],
		Front:   s.positions[ordered[len(ordered)-1]],
	}
	c.ZoneBack = c.Back.Add(-EngagementDistance)
	c.ZoneFront = c.Front.Add(EngagementDistance)
	c.zoneIsLoop = c.Span()+2*EngagementDistance >= length

	var home, away bool
	for _, i := range ordered {
		switch players[i].Team {
		case player.TeamHome:
			home = true
		case player.TeamAway:
			away = true
		}
	}
	c.BothTeams = home && away
	return c
}

// selectActive picks the largest candidate with both teams. A tie for the
// largest size splits the pack; the first two tied candidates are kept.
func (s *State) selectActive() {
	best := 0
	var tied []int
	for i, c := range s.Candidates {
		if !c.BothTeams {
			continue
		}
		switch {
		case c.Size() > best:
			best = c.Size()
			tied = []int{i}
		case c.Size() == best:
			tied = append(tied, i)
		}
	}

	switch len(tied) {
	case 0:
	case 1:
		s.active = tied[0]
	default:
		s.split = [2]int{tied[0], tied[1]}
	}
}

// ActivePack returns the pack, if there is exactly one.
func (s State) ActivePack() (Candidate, bool) {
	if s.active < 0 {
		return Candidate{}, false
	}
	return s.Candidates[s.active], true
}

func (s State) IsSplit() bool {
	return s.split[0] >= 0
}

// SplitPair returns the two equal-sized groups when the pack is split.
func (s State) SplitPair() (Candidate, Candidate, bool) {
	if !s.IsSplit() {
		return Candidate{}, Candidate{}, false
	}
	return s.Candidates[s.split[0]], s.Candidates[s.split[1]], true
}

// Position is player i's pack-line position.
func (s State) Position(i int) overflow.Value {
	return s.positions[i]
}

func (s State) InBounds(i int) bool {
	return s.inBounds[i]
}

// IsApplicable reports whether player i can count towards a pack.
func (s State) IsApplicable(i int) bool {
	return s.applicable[i]
}

// CandidateOf returns the index into Candidates of player i's group.
func (s State) CandidateOf(i int) (int, bool) {
	for k, c := range s.Candidates {
		if c.hasMember(i) {
			return k, true
		}
	}
	return 0, false
}

// InPack reports whether player i belongs to the active pack.
func (s State) InPack(i int) bool {
	active, ok := s.ActivePack()
	return ok && active.hasMember(i)
}

// InEngagementZone reports whether pos lies in the active pack's engagement zone.
func (s State) InEngagementZone(pos overflow.Value) bool {
	active, ok := s.ActivePack()
	return ok && active.InEngagementZone(pos)
}

// InPlay reports whether player i may engage. Jammers are in play whenever
// they are in bounds; blockers only inside the engagement zone.
func (s State) InPlay(i int) bool {
	if !s.inBounds[i] {
		return false
	}
	if s.jammer[i] {
		return true
	}
	return s.InEngagementZone(s.positions[i])
}
