// Command refresher polls the scores feed and rewrites the shared snapshot on an interval.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/config"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/roster"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, stop, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "refresher:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, stop context.CancelFunc, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.ParseFlags(config.Load(), "refresher", args)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Metrics.ServiceName + "-refresher",
		Version: appVersion,
	})

	teams, err := roster.Load(cfg.RosterPath)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, logger, teams)
	if err != nil {
		return err
	}
	logging.Info(logger, "refresher configured",
		slog.String(logging.FieldProvider, cfg.Provider),
		slog.String(logging.FieldTimezone, cfg.Timezone),
		slog.String("snapshot", cfg.SnapshotPath),
	)
	srv.Run(ctx, stop)
	return nil
}
