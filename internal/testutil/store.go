package testutil

import (
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/store"
)

// NewStoreWithViews builds an in-memory store preloaded with views.
func NewStoreWithViews(views []domaingames.TeamView, at time.Time) *store.MemoryStore {
	ms := store.NewMemoryStore()
	if len(views) > 0 {
		ms.SetViews(views, at)
	}
	return ms
}
