// Package store holds the latest published views for the producer's HTTP surface.
package store

import (
	"sync"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

// MemoryStore keeps a thread-safe copy of the latest snapshot in memory.
type MemoryStore struct {
	mu        sync.RWMutex
	views     []domaingames.TeamView
	updatedAt time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListViews returns a copy of the current views in snapshot order.
func (s *MemoryStore) ListViews() []domaingames.TeamView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.TeamView, len(s.views))
	copy(result, s.views)
	return result
}

// ViewsForTeam returns every view of the events involving team, preserving snapshot order.
func (s *MemoryStore) ViewsForTeam(team string) []domaingames.TeamView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make(map[string]struct{})
	for _, v := range s.views {
		if v.Team == team {
			events[v.EventID] = struct{}{}
		}
	}
	result := make([]domaingames.TeamView, 0, len(events)*2)
	for _, v := range s.views {
		if _, ok := events[v.EventID]; ok {
			result = append(result, v)
		}
	}
	return result
}

// SetViews replaces the existing views with a new snapshot.
func (s *MemoryStore) SetViews(views []domaingames.TeamView, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views = make([]domaingames.TeamView, len(views))
	copy(s.views, views)
	s.updatedAt = at
}

// UpdatedAt reports when the views were last replaced; zero before the first snapshot.
func (s *MemoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
