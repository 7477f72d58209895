package snapshots

import (
	"errors"
	"log/slog"
	"sync"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
)

// Reloader keeps the last successfully loaded snapshot. A failed load leaves it untouched.
type Reloader struct {
	loader   Loader
	logger   *slog.Logger
	recorder *metrics.Recorder

	mu     sync.RWMutex
	views  []domaingames.TeamView
	loaded bool
}

// NewReloader wraps loader. logger and recorder may be nil.
func NewReloader(loader Loader, logger *slog.Logger, recorder *metrics.Recorder) *Reloader {
	return &Reloader{loader: loader, logger: logger, recorder: recorder}
}

// Reload refreshes from the loader and returns the views now held.
func (r *Reloader) Reload() []domaingames.TeamView {
	views, err := r.loader.Load()
	if r.recorder != nil {
		r.recorder.RecordSnapshotReload(err)
	}
	if err != nil {
		attrs := []any{"loaded_before", r.Loaded()}
		if errors.Is(err, ErrNoSnapshot) {
			logging.Info(r.logger, "snapshot not available yet", attrs...)
		} else {
			logging.Error(r.logger, "snapshot reload failed, keeping previous data", err, attrs...)
		}
		return r.Current()
	}

	r.mu.Lock()
	r.views = views
	r.loaded = true
	r.mu.Unlock()
	logging.Debug(r.logger, "snapshot reloaded", "views", len(views))
	return views
}

// Current returns the held views without reloading.
func (r *Reloader) Current() []domaingames.TeamView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.views
}

// Loaded reports whether any load has ever succeeded.
func (r *Reloader) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}
