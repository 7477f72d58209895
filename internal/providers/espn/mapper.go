package espn

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

// eventDateLayouts covers the minute-precision stamps the feed uses alongside RFC3339.
var eventDateLayouts = []string{time.RFC3339, "2006-01-02T15:04Z07:00", "2006-01-02T15:04Z"}

func mapEvent(e eventResponse) (domaingames.GameRecord, error) {
	if len(e.Competitions) == 0 {
		return domaingames.GameRecord{}, fmt.Errorf("event %s: no competitions", e.ID)
	}
	comp := e.Competitions[0]
	date, err := parseEventDate(e.Date)
	if err != nil {
		return domaingames.GameRecord{}, fmt.Errorf("event %s: %w", e.ID, err)
	}

	home := competitor(comp.Competitors, "home")
	away := competitor(comp.Competitors, "away")

	id := comp.ID
	if id == "" {
		id = e.ID
	}
	return domaingames.GameRecord{
		EventID:      id,
		Date:         date.UTC(),
		AwayTeam:     away.Team.Abbreviation,
		HomeTeam:     home.Team.Abbreviation,
		AwayScore:    parseScore(away.Score),
		HomeScore:    parseScore(home.Score),
		State:        mapState(e.Status.Type.State),
		Description:  e.Status.Type.Description,
		DisplayClock: e.Status.DisplayClock,
	}, nil
}

func competitor(list []competitorResponse, side string) competitorResponse {
	for _, c := range list {
		if c.HomeAway == side {
			return c
		}
	}
	return competitorResponse{}
}

func parseEventDate(raw string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

// parseScore returns nil for anything that is not a non-negative integer.
func parseScore(raw scoreValue) *int {
	v, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func mapState(state string) domaingames.State {
	switch strings.ToLower(state) {
	case "in":
		return domaingames.StateLive
	case "post":
		return domaingames.StateCompleted
	default:
		return domaingames.StateScheduled
	}
}
