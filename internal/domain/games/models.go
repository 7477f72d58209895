package games

import "time"

// State mirrors the feed's lifecycle states for a match.
type State string

const (
	StateScheduled State = "pre"
	StateLive      State = "in"
	StateCompleted State = "post"
)

// Location names which side of an event a view represents.
type Location string

const (
	LocationAway Location = "away_team"
	LocationHome Location = "home_team"
)

// GameRecord is one event as fetched from the feed for a single poll.
type GameRecord struct {
	EventID      string
	Date         time.Time
	AwayTeam     string
	HomeTeam     string
	AwayScore    *int
	HomeScore    *int
	State        State
	Description  string
	DisplayClock string
}

// Involves reports whether the team plays on either side of the event.
func (g GameRecord) Involves(team string) bool {
	return g.HomeTeam == team || g.AwayTeam == team
}

// Score returns a pointer to a copy of v, for building optional scores.
func Score(v int) *int {
	return &v
}
