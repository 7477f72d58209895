package testutil

import (
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

// SampleRecord returns a game record with the given sides, state and kickoff.
func SampleRecord(id, away, home string, state domaingames.State, at time.Time) domaingames.GameRecord {
	return domaingames.GameRecord{
		EventID:  id,
		Date:     at,
		AwayTeam: away,
		HomeTeam: home,
		State:    state,
	}
}

// SampleMatchupViews returns the away and home views of one event with the given score.
func SampleMatchupViews(id, away, home string, state domaingames.State, awayScore, homeScore int) []domaingames.TeamView {
	rec := SampleRecord(id, away, home, state, MatchDay.Add(-time.Hour))
	rec.AwayScore = domaingames.Score(awayScore)
	rec.HomeScore = domaingames.Score(homeScore)
	return domaingames.Explode([]domaingames.GameRecord{rec}, time.UTC, nil)
}
