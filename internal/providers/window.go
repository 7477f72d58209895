package providers

import (
	"context"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/timeutil"
)

// Window describes the rolling range of days fetched on every refresh.
type Window struct {
	LookbackDays  int
	LookaheadDays int
}

// Dates returns the YYYY-MM-DD days covered by the window around now (UTC).
func (w Window) Dates(now time.Time) []string {
	days := timeutil.DateRange(now.UTC(), w.LookbackDays, w.LookaheadDays)
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, timeutil.FormatDate(d))
	}
	return out
}

// FetchWindow fetches every day in the window sequentially. A failing day contributes nothing
// instead of failing the window; only context cancellation aborts the walk.
func FetchWindow(ctx context.Context, provider GameProvider, dates []string, logger *slog.Logger) ([]domaingames.GameRecord, error) {
	var all []domaingames.GameRecord
	for _, date := range dates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		games, err := provider.FetchGames(ctx, date)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			attrs := []any{
				slog.String(logging.FieldDate, date),
				slog.Any(logging.FieldError, err),
			}
			if statusErr, ok := AsStatusError(err); ok {
				attrs = append(attrs, slog.Int(logging.FieldStatusCode, statusErr.StatusCode))
			}
			logging.Warn(logging.FromContext(ctx, logger), "treating day as empty", attrs...)
			continue
		}
		all = append(all, games...)
	}
	return all, nil
}
