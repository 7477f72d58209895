// Package selection picks one representative game per roster team.
package selection

import (
	"log/slog"
	"sort"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/timeutil"
)

// RecentWindow is how far back a completed game still counts as recent.
const RecentWindow = 24 * time.Hour

// Priority names the rule that chose a team's game.
type Priority string

const (
	PriorityLive     Priority = "live"
	PriorityRecent   Priority = "recent"
	PriorityUpcoming Priority = "upcoming"
	PriorityStale    Priority = "stale"
)

// covered is the accumulator threaded through the roster fold.
type covered map[string]struct{}

func (c covered) has(team string) bool {
	_, ok := c[team]
	return ok
}

func (c covered) add(teams ...string) {
	for _, t := range teams {
		c[t] = struct{}{}
	}
}

// SelectAt returns at most one event per selecting roster team, in roster order, deduplicated
// by event_id. A live pick covers both of its teams; any other pick covers only the team that
// made it, so its opponent may still select a different event later in the pass.
func SelectAt(roster []string, records []domaingames.GameRecord, now time.Time, logger *slog.Logger) []domaingames.GameRecord {
	now = now.UTC()
	cutoff := now.Add(-RecentWindow)
	todayStart := timeutil.StartOfDay(now)

	seen := covered{}
	events := make(map[string]struct{})
	var out []domaingames.GameRecord

	for _, team := range roster {
		if seen.has(team) {
			logging.Debug(logger, "team already covered", logging.FieldTeam, team)
			continue
		}
		rec, prio, ok := pick(team, records, cutoff, todayStart)
		if !ok {
			logging.Debug(logger, "no valid games for team", logging.FieldTeam, team)
			continue
		}
		if prio == PriorityLive {
			seen.add(rec.HomeTeam, rec.AwayTeam)
		} else {
			seen.add(team)
		}

		if _, dup := events[rec.EventID]; dup {
			logging.Debug(logger, "event already selected",
				logging.FieldTeam, team,
				logging.FieldEventID, rec.EventID,
			)
			continue
		}
		events[rec.EventID] = struct{}{}
		out = append(out, rec)
		logging.Debug(logger, "selected game",
			logging.FieldTeam, team,
			logging.FieldEventID, rec.EventID,
			logging.FieldPriority, string(prio),
		)
	}
	return out
}

// pick applies the priority rules to one team's games.
func pick(team string, records []domaingames.GameRecord, cutoff, todayStart time.Time) (domaingames.GameRecord, Priority, bool) {
	var games []domaingames.GameRecord
	for _, r := range records {
		if r.Involves(team) {
			games = append(games, r)
		}
	}
	if len(games) == 0 {
		return domaingames.GameRecord{}, "", false
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date.Before(games[j].Date)
	})

	if r, ok := first(games, func(g domaingames.GameRecord) bool {
		return g.State == domaingames.StateLive
	}); ok {
		return r, PriorityLive, true
	}
	if r, ok := last(games, func(g domaingames.GameRecord) bool {
		return g.State == domaingames.StateCompleted && !g.Date.Before(cutoff)
	}); ok {
		return r, PriorityRecent, true
	}
	if r, ok := first(games, func(g domaingames.GameRecord) bool {
		return g.State == domaingames.StateScheduled && !g.Date.Before(todayStart)
	}); ok {
		return r, PriorityUpcoming, true
	}
	// No age cutoff here: a team with only old results still shows its latest one.
	if r, ok := last(games, func(g domaingames.GameRecord) bool {
		return g.State == domaingames.StateCompleted
	}); ok {
		return r, PriorityStale, true
	}
	return domaingames.GameRecord{}, "", false
}

func first(games []domaingames.GameRecord, match func(domaingames.GameRecord) bool) (domaingames.GameRecord, bool) {
	for _, g := range games {
		if match(g) {
			return g, true
		}
	}
	return domaingames.GameRecord{}, false
}

func last(games []domaingames.GameRecord, match func(domaingames.GameRecord) bool) (domaingames.GameRecord, bool) {
	for i := len(games) - 1; i >= 0; i-- {
		if match(games[i]) {
			return games[i], true
		}
	}
	return domaingames.GameRecord{}, false
}
