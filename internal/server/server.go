// Package server wires the producer: provider, poller, snapshot writer, HTTP surface and telemetry.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/config"
	httpserver "github.com/preston-bernstein/nwsl-scoreboard/internal/http"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/http/handlers"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/http/middleware"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/poller"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/providers"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/roster"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/snapshots"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring. An invalid timezone is an error.
func New(cfg config.Config, logger *slog.Logger, teams *roster.Roster) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return newServerWithMetrics(cfg, logger, teams, loc, nil, nil), nil
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, teams *roster.Roster, provider providers.GameProvider) *Server {
	return newServerWithMetrics(cfg, logger, teams, time.UTC, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, teams *roster.Roster, loc *time.Location, provider providers.GameProvider, recorder *metrics.Recorder) *Server {
	if teams == nil {
		teams = roster.Default()
	}
	recorder, metricsSrv, inlineMetrics, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg, teams.Codes())
	} else {
		provider = factory.wrap(provider, normalizeProviderName(cfg.Provider, provider), cfg.ESPN.RequestsPerSecond)
	}

	memoryStore := store.NewMemoryStore()
	plr := poller.New(provider, snapshots.NewWriter(cfg.SnapshotPath), memoryStore, logger, recorder, poller.Config{
		Roster:   teams.Codes(),
		Window:   providers.Window{LookbackDays: cfg.LookbackDays, LookaheadDays: cfg.LookaheadDays},
		Location: loc,
		Meta:     teams.Meta,
		Interval: cfg.PollInterval,
	})
	httpSrv := buildHTTPServer(cfg, memoryStore, teams, logger, recorder, plr, inlineMetrics)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, teams *roster.Roster, logger *slog.Logger, recorder *metrics.Recorder, plr Poller, metricsHandler http.Handler) httpServer {
	var (
		statusFn func() poller.Status
		refresh  handlers.RefreshFunc
	)
	if plr != nil {
		statusFn = plr.Status
		refresh = plr.RunOnce
	}

	handler := handlers.NewHandler(memoryStore, teams.Resolve, logger, statusFn)
	var admin *handlers.AdminHandler
	// Admin refresh is mounted only when a token is configured.
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(refresh, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin, metricsHandler, cfg.Metrics.Path)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

// buildMetrics returns the recorder plus either a dedicated metrics server or, when the metrics port
// matches the app port, a handler to mount on the main router.
func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, http.Handler, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil, nil
	}
	if handler == nil || !recCfg.Enabled {
		return rec, nil, nil, shutdown
	}
	if recCfg.Port == "" || recCfg.Port == cfg.Port {
		return rec, nil, handler, shutdown
	}

	metricsSrv := netHTTPServer{
		srv: &http.Server{
			Addr:              ":" + recCfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
	return rec, metricsSrv, nil, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Store exposes the in-memory copy of the latest snapshot.
func (s *Server) Store() *store.MemoryStore {
	return s.store
}
