package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/metrics"
)

const defaultRequestsPerSecond = 5

// newTimer is swapped in tests.
var newTimer = time.NewTimer

// rateLimitedProvider spaces upstream calls with a token bucket. One refresh issues a request per
// day in the window, so the bucket keeps a cycle from bursting the feed.
type rateLimitedProvider struct {
	next    GameProvider
	limiter *rate.Limiter
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewRateLimitedProvider returns a GameProvider allowing perSecond calls per second with a burst of one.
func NewRateLimitedProvider(next GameProvider, perSecond float64, name string, logger *slog.Logger, recorder *metrics.Recorder) GameProvider {
	if perSecond <= 0 {
		perSecond = defaultRequestsPerSecond
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *rateLimitedProvider) FetchGames(ctx context.Context, date string) ([]domaingames.GameRecord, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	r := p.limiter.Reserve()
	if !r.OK() {
		return nil, ErrProviderUnavailable
	}
	if delay := r.Delay(); delay > 0 {
		p.metrics.RecordRateLimit(p.name, delay)
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "rate limiter waiting", slog.String(logging.FieldDate, date), slog.Duration("delay", delay))
		timer := newTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			r.Cancel()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return p.next.FetchGames(ctx, date)
}
