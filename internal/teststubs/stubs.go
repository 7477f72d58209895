package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

// StubProvider is a test double for providers.GameProvider.
type StubProvider struct {
	Games    []domaingames.GameRecord            // returned for every date not in ByDate
	ByDate   map[string][]domaingames.GameRecord // per-day overrides
	Err      error                               // returned for every call
	ErrDates map[string]error                    // per-day failures
	Calls    atomic.Int32
	Notify   chan struct{}

	mu    sync.Mutex
	Dates []string
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, date string) ([]domaingames.GameRecord, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	s.Dates = append(s.Dates, date)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if err, ok := s.ErrDates[date]; ok {
		return nil, err
	}
	if games, ok := s.ByDate[date]; ok {
		return games, nil
	}
	if s.ByDate != nil {
		return nil, nil
	}
	return s.Games, nil
}

// SeenDates returns a copy of the dates requested so far.
func (s *StubProvider) SeenDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Dates...)
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written [][]domaingames.TeamView
	Err     error
}

// WriteSnapshot records the views for verification in tests.
func (w *StubSnapshotWriter) WriteSnapshot(views []domaingames.TeamView) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	w.Written = append(w.Written, views)
	return nil
}

// Writes returns how many snapshots were recorded.
func (w *StubSnapshotWriter) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.Written)
}

// Last returns the most recent snapshot.
func (w *StubSnapshotWriter) Last() []domaingames.TeamView {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.Written) == 0 {
		return nil
	}
	return w.Written[len(w.Written)-1]
}

// StubSnapshotLoader is a test double for a snapshot source; each Load pops the next result.
type StubSnapshotLoader struct {
	mu      sync.Mutex
	Results []LoadResult
	Calls   int
}

// LoadResult is one scripted Load outcome.
type LoadResult struct {
	Views []domaingames.TeamView
	Err   error
}

// Load returns the next scripted result, repeating the last one once exhausted.
func (l *StubSnapshotLoader) Load() ([]domaingames.TeamView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Calls++
	if len(l.Results) == 0 {
		return nil, nil
	}
	r := l.Results[0]
	if len(l.Results) > 1 {
		l.Results = l.Results[1:]
	}
	return r.Views, r.Err
}
