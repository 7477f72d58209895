// Command scoreboard reads the shared snapshot and cycles matchups on the display.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/config"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/display"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/roster"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/scoreboard"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/snapshots"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/tracker"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "scoreboard:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.ParseFlags(config.Load(), "scoreboard", args)
	if err != nil {
		return err
	}

	// The terminal surface owns stdout, so logs go to stderr.
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName + "-display",
		Version: appVersion,
		Output:  os.Stderr,
	})

	teams, err := roster.Load(cfg.RosterPath)
	if err != nil {
		return err
	}
	favorite := ""
	if cfg.FavoriteTeam != "" {
		if favorite, err = teams.Resolve(cfg.FavoriteTeam); err != nil {
			return fmt.Errorf("favorite team %q: %w", cfg.FavoriteTeam, err)
		}
	}

	fontDir, err := display.FindFontDir(display.FontSearchDirs(cfg.FontDir))
	if err != nil {
		return err
	}
	logging.Info(logger, "using fonts", slog.String("font_dir", fontDir))

	recorder := metrics.NewRecorder()
	board := scoreboard.New(
		snapshots.NewReloader(snapshots.NewFSStore(cfg.SnapshotPath), logger, recorder),
		display.NewTerminal(out),
		display.NewPlanner(teams, logger),
		tracker.New(nil),
		logger,
		recorder,
		scoreboard.Config{
			Favorite:       favorite,
			ReloadInterval: cfg.ReloadInterval,
			Dwell:          cfg.DwellTime,
			GoalDuration:   cfg.GoalDuration,
			IdleWait:       cfg.IdleWait,
		},
	)
	return board.Run(ctx)
}
