// Package poller runs the producer refresh cycle: fetch the window, select, explode, publish.
package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/providers"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/selection"
)

const defaultInterval = 45 * time.Second

var errNoGames = errors.New("no games found in date range")

// SnapshotWriter persists the published views.
type SnapshotWriter interface {
	WriteSnapshot(views []domaingames.TeamView) error
}

// ViewSink receives every published snapshot, e.g. the in-memory store behind the HTTP API.
type ViewSink interface {
	SetViews(views []domaingames.TeamView, at time.Time)
}

// Config controls what a refresh cycle fetches and how it projects the selection.
type Config struct {
	Roster   []string
	Window   providers.Window
	Location *time.Location
	Meta     func(team string) domaingames.TeamMeta
	Interval time.Duration
}

// Poller refreshes the snapshot on an interval.
type Poller struct {
	provider providers.GameProvider
	writer   SnapshotWriter
	sink     ViewSink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	cfg      Config
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastViews           int
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller. sink, logger and recorder may be nil.
func New(provider providers.GameProvider, writer SnapshotWriter, sink ViewSink, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Poller{
		provider: provider,
		writer:   writer,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		cfg:      cfg,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.cfg.Interval)

	go func() {
		logging.Info(p.logger, "poller started",
			slog.Int64(logging.FieldDurationMS, p.cfg.Interval.Milliseconds()),
			slog.Int(logging.FieldCount, len(p.cfg.Roster)),
		)
		// Initial refresh so the display has data on boot.
		_ = p.RunOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				_ = p.RunOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RunOnce performs a single refresh cycle. An empty window leaves the previous snapshot in place.
func (p *Poller) RunOnce(ctx context.Context) error {
	start := p.now()
	p.recordAttempt(start)
	logger := p.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldCycleID, uuid.NewString()))
	}
	ctx = logging.WithLogger(ctx, logger)

	views, err := p.refresh(ctx, logger, start)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	switch {
	case errors.Is(err, errNoGames):
		logging.Info(logger, errNoGames.Error(), slog.Int("days", len(p.cfg.Window.Dates(start))))
		p.recordSuccess(start, 0)
		return nil
	case err != nil:
		logging.Error(logger, "refresh cycle failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	p.recordSuccess(start, len(views))
	logging.Info(logger, "snapshot refreshed",
		logging.FieldCount, len(views),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) refresh(ctx context.Context, logger *slog.Logger, now time.Time) ([]domaingames.TeamView, error) {
	records, err := providers.FetchWindow(ctx, p.provider, p.cfg.Window.Dates(now), logger)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		if p.metrics != nil {
			p.metrics.RecordSelection(0, false)
		}
		return nil, errNoGames
	}

	selected := selection.SelectAt(p.cfg.Roster, records, now, logger)
	views := domaingames.Explode(selected, p.cfg.Location, p.cfg.Meta)

	written := false
	if p.writer != nil {
		if err := p.writer.WriteSnapshot(views); err != nil {
			if p.metrics != nil {
				p.metrics.RecordSelection(len(selected), false)
			}
			return nil, err
		}
		written = true
	}
	if p.metrics != nil {
		p.metrics.RecordSelection(len(selected), written)
	}
	if p.sink != nil {
		p.sink.SetViews(views, now)
	}
	return views, nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, views int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastViews = views
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.GameProvider {
	return p.provider
}
