// Package scoreboard runs the consumer loop: reload the shared snapshot, detect goals and cycle the
// display through every matchup.
package scoreboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/display"
	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/tracker"
)

const (
	defaultReloadInterval = 45 * time.Second
	defaultDwell          = 5 * time.Second
	defaultGoalDuration   = 2 * time.Second
	defaultIdleWait       = 10 * time.Second
)

// Source hands out the latest snapshot views. Reload keeps the previous views on failure.
type Source interface {
	Reload() []domaingames.TeamView
	Current() []domaingames.TeamView
}

// Config controls timing and filtering of the display loop.
type Config struct {
	Favorite       string
	ReloadInterval time.Duration
	Dwell          time.Duration
	GoalDuration   time.Duration
	IdleWait       time.Duration
}

// Board drives one display surface.
type Board struct {
	source   Source
	tracker  *tracker.Tracker
	planner  *display.Planner
	surface  display.Surface
	logger   *slog.Logger
	metrics  *metrics.Recorder
	cfg      Config
	now      func() time.Time
	sleep    func(context.Context, time.Duration) error

	lastReload time.Time
}

// New constructs a Board. tracker, logger and recorder may be nil.
func New(source Source, surface display.Surface, planner *display.Planner, goals *tracker.Tracker, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Board {
	if cfg.ReloadInterval <= 0 {
		cfg.ReloadInterval = defaultReloadInterval
	}
	if cfg.Dwell <= 0 {
		cfg.Dwell = defaultDwell
	}
	if cfg.GoalDuration <= 0 {
		cfg.GoalDuration = defaultGoalDuration
	}
	if cfg.IdleWait <= 0 {
		cfg.IdleWait = defaultIdleWait
	}
	if goals == nil {
		goals = tracker.New(nil)
	}
	if planner == nil {
		planner = display.NewPlanner(nil, logger)
	}
	return &Board{
		source:  source,
		tracker: goals,
		planner: planner,
		surface: surface,
		logger:  logger,
		metrics: recorder,
		cfg:     cfg,
		now:     time.Now,
		sleep:   sleepContext,
	}
}

// Run loops until ctx is cancelled, then blanks and releases the surface.
func (b *Board) Run(ctx context.Context) error {
	logging.Info(b.logger, "scoreboard started",
		logging.FieldTeam, b.cfg.Favorite,
		slog.Int64(logging.FieldDurationMS, b.cfg.Dwell.Milliseconds()),
	)
	b.reload()

	for ctx.Err() == nil {
		if b.now().Sub(b.lastReload) >= b.cfg.ReloadInterval {
			b.reload()
		}
		if err := b.Cycle(ctx); err != nil && !isCancel(err) {
			b.release()
			return err
		}
	}

	logging.Info(b.logger, "scoreboard stopping")
	return b.release()
}

// Cycle shows every current matchup once, or idles when there is nothing to show.
func (b *Board) Cycle(ctx context.Context) error {
	matchups := domaingames.GroupMatchups(b.source.Current(), b.cfg.Favorite)
	if len(matchups) == 0 {
		logging.Info(b.logger, "no games to display")
		return b.sleep(ctx, b.cfg.IdleWait)
	}

	for i, m := range matchups {
		if err := ctx.Err(); err != nil {
			return err
		}
		if team, ok := b.tracker.Check(m); ok {
			if err := b.celebrate(ctx, m, team); err != nil {
				return err
			}
		}

		frame, ok := b.planner.Matchup(m)
		if !ok {
			logging.Warn(b.logger, "skipping incomplete matchup", logging.FieldEventID, m.EventID)
			continue
		}
		logging.Debug(b.logger, "displaying matchup",
			logging.FieldEventID, m.EventID,
			"position", i+1,
			logging.FieldCount, len(matchups),
		)
		b.render(frame)
		if err := b.sleep(ctx, b.cfg.Dwell); err != nil {
			return err
		}
	}
	return nil
}

func (b *Board) celebrate(ctx context.Context, m domaingames.Matchup, team string) error {
	logging.Info(b.logger, "goal scored", logging.FieldTeam, team, logging.FieldEventID, m.EventID)
	if b.metrics != nil {
		b.metrics.RecordGoal(team)
	}
	b.render(b.planner.Goal(team))
	return b.sleep(ctx, b.cfg.GoalDuration)
}

func (b *Board) render(frame display.Frame) {
	if err := display.Render(b.surface, frame); err != nil {
		logging.Error(b.logger, "display swap failed", err)
	}
}

func (b *Board) reload() {
	views := b.source.Reload()
	b.lastReload = b.now()
	logging.Debug(b.logger, "snapshot views available", logging.FieldCount, len(views))
}

func (b *Board) release() error {
	b.surface.Clear()
	err := b.surface.Swap()
	if cerr := b.surface.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		logging.Error(b.logger, "failed to release display", err)
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
