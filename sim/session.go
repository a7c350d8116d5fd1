package sim

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/goal"
	"github.com/meghashyamc/derby2d/logger"
	"github.com/meghashyamc/derby2d/player"
	"github.com/meghashyamc/derby2d/track"
)

// Session owns a running jam: the latest published frame and the player
// picked in the UI. Readers call Frame from any goroutine; writers are
// serialised.
type Session struct {
	ID uuid.UUID

	engine  *Engine
	log     logger.Logger
	mu      sync.Mutex
	current atomic.Pointer[Frame]

	selected int
}

func NewSession(engine *Engine, players []player.Player, log logger.Logger) *Session {
	if log == nil {
		log = logger.Discard()
	}
	s := &Session{
		ID:       uuid.New(),
		engine:   engine,
		log:      log,
		selected: -1,
	}
	first := NewFrame(players, engine.Track())
	s.current.Store(&first)
	log.Info("session started", "session", s.ID.String(), "players", len(players), "warning", first.Warning.String())
	return s
}

// Frame returns the latest published frame. Callers must not modify it.
func (s *Session) Frame() *Frame {
	return s.current.Load()
}

// Step advances the jam by one frame and publishes it.
func (s *Session) Step() *Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.engine.Step(*s.current.Load())
	s.current.Store(&next)
	return &next
}

// Selected returns the player picked in the UI, if any.
func (s *Session) Selected() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected >= 0
}

// SelectAt picks the player under pos.
func (s *Session) SelectAt(pos geometry.Vector) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := SelectAt(*s.current.Load(), pos)
	if !ok {
		return 0, false
	}
	s.selected = i
	p := s.current.Load().Players[i]
	s.log.Info("player selected", "session", s.ID.String(), "player", i, "team", p.Team.String(), "role", p.Role.String())
	return i, true
}

// SetTarget queues pos for the selected player, who then follows hand-set
// targets until the queue drains.
func (s *Session) SetTarget(pos geometry.Vector) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected < 0 {
		return false
	}
	next := WithManualTarget(*s.current.Load(), s.selected, pos)
	s.current.Store(&next)
	return true
}

// ClearSelection forgets the selected player without touching their targets.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = -1
}

// ClearTargets empties the selected player's queue and drops their goal.
func (s *Session) ClearTargets() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected < 0 {
		return
	}
	next := WithoutTargets(*s.current.Load(), s.selected)
	s.current.Store(&next)
}

// SelectAt returns the nearest player whose radius contains pos.
func SelectAt(f Frame, pos geometry.Vector) (int, bool) {
	best, found := 0, false
	for i, p := range f.Players {
		if !p.Contains(pos) {
			continue
		}
		if !found || pos.Distance(p.Position) < pos.Distance(f.Players[best].Position) {
			best, found = i, true
		}
	}
	return best, found
}

// WithManualTarget returns a copy of f in which player i has pos appended to
// their targets and holds a manual goal.
func WithManualTarget(f Frame, i int, pos geometry.Vector) Frame {
	players := slices.Clone(f.Players)
	p := players[i]
	if p.Goal.Kind != player.GoalManual {
		p = p.WithGoal(goal.Manual(f.Now)).WithTargets()
	}
	players[i] = p.WithAppendedTarget(player.Target{Position: pos})
	f.Players = players
	return f
}

// WithoutTargets returns a copy of f in which player i has no targets and no goal.
func WithoutTargets(f Frame, i int) Frame {
	players := slices.Clone(f.Players)
	players[i] = players[i].WithTargets().WithoutGoal()
	f.Players = players
	return f
}

func (s *Session) Track() *track.Track {
	return s.engine.Track()
}

// Start lines both teams up on t and opens a session for the jam.
func Start(t *track.Track, opts Options, log logger.Logger) (*Session, error) {
	players, err := Lineup(t, opts.TeamSize, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to line up players: %w", err)
	}
	return NewSession(NewEngine(t, opts.Tuning, log), players, log), nil
}
