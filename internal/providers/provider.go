package providers

import (
	"context"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

// GameProvider fetches the games scheduled on one calendar day.
// The date parameter is a YYYY-MM-DD string; an empty date means "today" in UTC.
type GameProvider interface {
	FetchGames(ctx context.Context, date string) ([]domaingames.GameRecord, error)
}
