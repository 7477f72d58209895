package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
)

// instrumentedProvider records latency and errors for every upstream call. It never retries:
// a failed day is simply empty until the next refresh.
type instrumentedProvider struct {
	inner   GameProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedProvider wraps inner with metrics and logging under the given provider name.
func NewInstrumentedProvider(inner GameProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) GameProvider {
	return &instrumentedProvider{inner: inner, name: name, logger: logger, metrics: recorder}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, date string) ([]domaingames.GameRecord, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	games, err := p.inner.FetchGames(ctx, date)
	elapsed := time.Since(start)
	p.metrics.RecordProviderAttempt(p.name, elapsed, err)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider fetch failed",
			slog.String(logging.FieldDate, date),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any(logging.FieldError, err),
		)
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "provider fetch",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return games, nil
}

// Unwrap exposes the wrapped provider.
func (p *instrumentedProvider) Unwrap() GameProvider {
	return p.inner
}

// logWithProvider logs through the context-scoped logger, tagging the provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
