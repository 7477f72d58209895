// Package fixture serves deterministic games for local runs without network access.
package fixture

import (
	"context"
	"fmt"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/timeutil"
)

const matchLength = 2 * time.Hour

// kickoffs are UTC kickoff hours; every third day has no games.
var kickoffs = []int{19, 23}

// Provider fabricates a small schedule around the current time.
type Provider struct {
	teams []string
	now   func() time.Time
}

// New creates a fixture provider drawing matchups from teams.
func New(teams []string) *Provider {
	return &Provider{teams: teams, now: time.Now}
}

// FetchGames returns the games for date. States follow the clock: finished games are completed with
// a score, games in their first two hours are live, the rest are scheduled.
func (p *Provider) FetchGames(ctx context.Context, date string) ([]domaingames.GameRecord, error) {
	_ = ctx
	now := p.now().UTC()
	day := timeutil.StartOfDay(now)
	if date != "" {
		parsed, err := timeutil.ParseDate(date)
		if err != nil {
			return nil, err
		}
		day = parsed.UTC()
	}
	if len(p.teams) < 2 {
		return nil, nil
	}

	ordinal := int(day.Unix() / 86400)
	if ordinal%3 == 0 {
		return nil, nil
	}

	var games []domaingames.GameRecord
	for i, hour := range kickoffs {
		home := p.teams[(ordinal+2*i)%len(p.teams)]
		away := p.teams[(ordinal+2*i+1)%len(p.teams)]
		if home == away {
			continue
		}
		start := day.Add(time.Duration(hour) * time.Hour)
		g := domaingames.GameRecord{
			EventID:  fmt.Sprintf("fixture-%s-%d", timeutil.FormatDate(day), i),
			Date:     start,
			HomeTeam: home,
			AwayTeam: away,
		}
		elapsed := now.Sub(start)
		switch {
		case elapsed >= matchLength:
			g.State = domaingames.StateCompleted
			g.Description = "Final"
			g.DisplayClock = "90'+5'"
			g.HomeScore = domaingames.Score((ordinal + i) % 4)
			g.AwayScore = domaingames.Score((ordinal + 2*i) % 3)
		case elapsed >= 0:
			minute := int(elapsed.Minutes())
			g.State = domaingames.StateLive
			g.Description = "In Progress"
			g.DisplayClock = fmt.Sprintf("%d'", minute)
			g.HomeScore = domaingames.Score(minute / 40)
			g.AwayScore = domaingames.Score(minute / 55)
		default:
			g.State = domaingames.StateScheduled
			g.Description = "Scheduled"
			g.DisplayClock = "0'"
		}
		games = append(games, g)
	}
	return games, nil
}
