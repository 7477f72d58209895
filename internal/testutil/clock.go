package testutil

import "time"

// MatchDay is the reference "now" used across tests: a Sunday evening kickoff slot in UTC.
var MatchDay = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Ticking returns a clock that advances by step on every call, starting one step after start.
func Ticking(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
