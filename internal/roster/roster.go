// Package roster holds the static team table: codes, names, colors and logos.
package roster

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
)

// Neutral colors used for teams missing from the table.
const (
	NeutralBackground = "#1E1E1E"
	NeutralText       = "#FFFFFF"
)

var (
	// ErrUnknownTeam is returned when a query matches no roster team.
	ErrUnknownTeam = errors.New("roster: unknown team")
	// ErrAmbiguousTeam is returned when a fuzzy query matches more than one team.
	ErrAmbiguousTeam = errors.New("roster: ambiguous team")
)

//go:embed roster.yaml
var defaultTable []byte

// Team is one roster entry.
type Team struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	BgColor   string `yaml:"bg_color"`
	TextColor string `yaml:"text_color"`
	LogoURL   string `yaml:"logo_url"`
	Home      string `yaml:"home"`
	Away      string `yaml:"away"`
}

type file struct {
	Teams []Team `yaml:"teams"`
}

// Roster is an ordered, code-indexed team table.
type Roster struct {
	teams  []Team
	byCode map[string]Team
}

// Default returns the embedded NWSL table.
func Default() *Roster {
	r, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded roster invalid: %v", err))
	}
	return r
}

// Load reads a YAML table from path, or returns the embedded table when path is empty.
func Load(path string) (*Roster, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML table. Codes must be unique and non-empty.
func Parse(data []byte) (*Roster, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if len(f.Teams) == 0 {
		return nil, errors.New("roster: no teams")
	}
	r := &Roster{byCode: make(map[string]Team, len(f.Teams))}
	for _, t := range f.Teams {
		t.Code = strings.ToUpper(strings.TrimSpace(t.Code))
		if t.Code == "" {
			return nil, errors.New("roster: team without code")
		}
		if _, dup := r.byCode[t.Code]; dup {
			return nil, fmt.Errorf("roster: duplicate code %s", t.Code)
		}
		r.byCode[t.Code] = t
		r.teams = append(r.teams, t)
	}
	return r, nil
}

// Codes returns team codes in table order.
func (r *Roster) Codes() []string {
	out := make([]string, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t.Code)
	}
	return out
}

// Team looks a team up by code.
func (r *Roster) Team(code string) (Team, bool) {
	t, ok := r.byCode[code]
	return t, ok
}

// Meta returns the snapshot metadata for a team; unknown codes get empty metadata.
func (r *Roster) Meta(code string) domaingames.TeamMeta {
	t, ok := r.byCode[code]
	if !ok {
		return domaingames.TeamMeta{}
	}
	return domaingames.TeamMeta{BgColor: t.BgColor, TextColor: t.TextColor, LogoURL: t.LogoURL}
}

// PanelColors returns the background and text colors drawn for a team, falling back to neutral.
func (r *Roster) PanelColors(code string) (background, text string) {
	background, text = NeutralBackground, NeutralText
	if t, ok := r.byCode[code]; ok {
		if t.Home != "" {
			background = t.Home
		}
		if t.Away != "" {
			text = t.Away
		}
	}
	return background, text
}

// Resolve maps user input to a team code. Exact codes win; otherwise the query is fuzzily matched
// against team names and must identify exactly one team.
func (r *Roster) Resolve(query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", nil
	}
	if t, ok := r.byCode[strings.ToUpper(q)]; ok {
		return t.Code, nil
	}

	names := make([]string, 0, len(r.teams))
	for _, t := range r.teams {
		names = append(names, t.Name)
	}
	matches := fuzzy.RankFindNormalizedFold(q, names)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrUnknownTeam, query)
	case 1:
		return r.teams[matches[0].OriginalIndex].Code, nil
	default:
		var candidates []string
		for _, m := range matches {
			candidates = append(candidates, r.teams[m.OriginalIndex].Code)
		}
		return "", fmt.Errorf("%w: %q matches %s", ErrAmbiguousTeam, query, strings.Join(candidates, ", "))
	}
}
