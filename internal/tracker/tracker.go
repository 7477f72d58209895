// Package tracker detects goals by comparing each matchup's score against the last observation.
package tracker

import (
	"sync"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

// Scores is the last observed (home, away) pair for one event.
type Scores struct {
	Home int
	Away int
}

// ScoreMemory maps event_id to the last observed scores. It only grows for the life of the process.
type ScoreMemory struct {
	mu     sync.Mutex
	scores map[string]Scores
}

// NewScoreMemory returns an empty memory.
func NewScoreMemory() *ScoreMemory {
	return &ScoreMemory{scores: make(map[string]Scores)}
}

// Get returns the stored scores for an event.
func (m *ScoreMemory) Get(eventID string) (Scores, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.scores[eventID]
	return s, ok
}

// Len reports how many events have been observed.
func (m *ScoreMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.scores)
}

// observe records current on first sighting or when update approves it, and reports whether the
// event had been seen before.
func (m *ScoreMemory) observe(eventID string, current Scores, update func(prev Scores) bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.scores[eventID]
	if !ok || update(prev) {
		m.scores[eventID] = current
	}
	return ok
}

// Tracker reports the scoring team when a matchup's score rises.
type Tracker struct {
	memory *ScoreMemory
}

// New returns a Tracker backed by memory, or a fresh memory when nil.
func New(memory *ScoreMemory) *Tracker {
	if memory == nil {
		memory = NewScoreMemory()
	}
	return &Tracker{memory: memory}
}

// Memory exposes the backing store.
func (t *Tracker) Memory() *ScoreMemory {
	return t.memory
}

// Check compares the matchup with memory and returns the scoring team's code. The first sighting of
// an event only records a baseline. A home increase wins when both sides rose in one poll.
func (t *Tracker) Check(m domaingames.Matchup) (string, bool) {
	home, ok := m.Home()
	if !ok {
		return "", false
	}
	away, ok := m.Away()
	if !ok {
		return "", false
	}

	current := Scores{Home: value(home.HomeScore), Away: value(away.AwayScore)}
	var scorer string
	seen := t.memory.observe(home.EventID, current, func(prev Scores) bool {
		switch {
		case current.Home > prev.Home:
			scorer = home.Team
		case current.Away > prev.Away:
			scorer = away.Team
		}
		return scorer != ""
	})
	if !seen || scorer == "" {
		return "", false
	}
	return scorer, true
}

// value treats a missing score as zero.
func value(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
