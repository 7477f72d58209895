package games

// Matchup is the set of views sharing one event_id, normally one home and one away.
type Matchup struct {
	EventID string
	Views   []TeamView
}

// Home returns the home-side view, if present.
func (m Matchup) Home() (TeamView, bool) {
	return m.side(LocationHome)
}

// Away returns the away-side view, if present.
func (m Matchup) Away() (TeamView, bool) {
	return m.side(LocationAway)
}

func (m Matchup) side(loc Location) (TeamView, bool) {
	for _, v := range m.Views {
		if v.Location == loc {
			return v, true
		}
	}
	return TeamView{}, false
}

// Sides returns the home and away views for drawing. When either side is missing it falls back to
// positional order (first view home, second away). ok is false with fewer than two views.
func (m Matchup) Sides() (home, away TeamView, ok bool) {
	if len(m.Views) < 2 {
		return TeamView{}, TeamView{}, false
	}
	h, hok := m.Home()
	a, aok := m.Away()
	if hok && aok {
		return h, a, true
	}
	return m.Views[0], m.Views[1], true
}

// HasTeam reports whether any view in the matchup belongs to team.
func (m Matchup) HasTeam(team string) bool {
	for _, v := range m.Views {
		if v.Team == team {
			return true
		}
	}
	return false
}

// GroupMatchups groups views by event_id in first-seen order. A non-empty favorite keeps only
// events that include that team.
func GroupMatchups(views []TeamView, favorite string) []Matchup {
	index := make(map[string]int)
	var out []Matchup
	for _, v := range views {
		i, ok := index[v.EventID]
		if !ok {
			i = len(out)
			index[v.EventID] = i
			out = append(out, Matchup{EventID: v.EventID})
		}
		out[i].Views = append(out[i].Views, v)
	}
	if favorite == "" {
		return out
	}
	filtered := out[:0]
	for _, m := range out {
		if m.HasTeam(favorite) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
