package games

import "time"

// TeamMeta is the static roster metadata joined onto every view by team code.
type TeamMeta struct {
	BgColor   string `json:"bg_color,omitempty"`
	TextColor string `json:"text_color,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
}

// TeamView is a GameRecord projected onto one side. It is the record shape of the shared snapshot.
type TeamView struct {
	EventID      string   `json:"event_id"`
	Date         string   `json:"date"`
	AwayScore    *int     `json:"away_score"`
	HomeScore    *int     `json:"home_score"`
	State        State    `json:"state"`
	Description  string   `json:"description"`
	DisplayClock string   `json:"displayClock"`
	Location     Location `json:"location"`
	Team         string   `json:"team"`
	TeamMeta
}

// snapshotDateLayout is ISO-8601 without an offset; dates are already converted to the display timezone.
const snapshotDateLayout = "2006-01-02T15:04:05.000"

// ParseViewDate parses a snapshot date. Offsets are tolerated for snapshots written elsewhere.
func ParseViewDate(value string) (time.Time, error) {
	if t, err := time.Parse(snapshotDateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Explode projects the selected records into per-team views: every away view first, then every
// home view, each half in selection order. loc converts dates for display; metaFn joins metadata.
func Explode(records []GameRecord, loc *time.Location, metaFn func(team string) TeamMeta) []TeamView {
	if loc == nil {
		loc = time.UTC
	}
	views := make([]TeamView, 0, len(records)*2)
	for _, side := range []Location{LocationAway, LocationHome} {
		for _, rec := range records {
			team := rec.HomeTeam
			if side == LocationAway {
				team = rec.AwayTeam
			}
			view := TeamView{
				EventID:      rec.EventID,
				Date:         rec.Date.In(loc).Format(snapshotDateLayout),
				AwayScore:    rec.AwayScore,
				HomeScore:    rec.HomeScore,
				State:        rec.State,
				Description:  rec.Description,
				DisplayClock: rec.DisplayClock,
				Location:     side,
				Team:         team,
			}
			if metaFn != nil {
				view.TeamMeta = metaFn(team)
			}
			views = append(views, view)
		}
	}
	return views
}
