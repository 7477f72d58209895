package server

import (
	"log/slog"

	"github.com/preston-bernstein/nwsl-scoreboard/internal/config"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/providers"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/providers/espn"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config, teams []string) providers.GameProvider {
	base, name := f.selectProvider(cfg, teams)
	return f.wrap(base, name, cfg.ESPN.RequestsPerSecond)
}

func (f providerFactory) wrap(base providers.GameProvider, name string, perSecond float64) providers.GameProvider {
	limited := providers.NewRateLimitedProvider(base, perSecond, name, f.logger, f.metrics)
	return providers.NewInstrumentedProvider(limited, name, f.logger, f.metrics)
}

func (f providerFactory) selectProvider(cfg config.Config, teams []string) (providers.GameProvider, string) {
	switch cfg.Provider {
	case "espn", "":
		return espn.NewClient(espn.Config{
			BaseURL: cfg.ESPN.BaseURL,
			Logger:  f.logger,
		}), "espn"
	case "fixture":
		return fixture.New(teams), "fixture"
	default:
		if f.logger != nil {
			f.logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(teams), "fixture"
	}
}
