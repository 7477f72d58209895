package display

import (
	"log/slog"
	"strconv"
	"strings"

	domaingames "github.com/preston-bernstein/nwsl-scoreboard/internal/domain/games"
	"github.com/preston-bernstein/nwsl-scoreboard/internal/logging"
)

// Neutral colors for teams the color table does not know.
var (
	NeutralBackground = Color{R: 0x1E, G: 0x1E, B: 0x1E}
	NeutralText       = White
)

const (
	halfHeight  = Height / 2
	infoPanelX  = 35
	infoTextX   = 37
	teamTextX   = 2
	scoreTextX  = 28
	missingMark = "-"
)

// FillOp is one Fill call.
type FillOp struct {
	Rect  Rect
	Color Color
}

// Frame is a planned screen: fills first, then text.
type Frame struct {
	Fills []FillOp
	Texts []TextOp
}

func (f *Frame) fill(r Rect, c Color) {
	f.Fills = append(f.Fills, FillOp{Rect: r, Color: c})
}

func (f *Frame) text(font Font, x, y int, c Color, s string) {
	f.Texts = append(f.Texts, TextOp{Font: font, X: x, Y: y, Color: c, Text: s})
}

// Render clears s, draws f and swaps it onto the panel.
func Render(s Surface, f Frame) error {
	s.Clear()
	for _, op := range f.Fills {
		s.Fill(op.Rect, op.Color)
	}
	for _, op := range f.Texts {
		s.DrawText(op.Font, op.X, op.Y, op.Color, op.Text)
	}
	return s.Swap()
}

// ColorSource maps a team code to its panel background and text colors as hex strings.
type ColorSource interface {
	PanelColors(code string) (background, text string)
}

// Planner lays out matchup and goal frames.
type Planner struct {
	colors ColorSource
	logger *slog.Logger
}

// NewPlanner returns a Planner. A nil ColorSource draws every team in neutral colors.
func NewPlanner(colors ColorSource, logger *slog.Logger) *Planner {
	return &Planner{colors: colors, logger: logger}
}

// Matchup plans the scoreboard for one event: away team on top, home team below, status panel on
// the right. ok is false when the matchup has fewer than two views.
func (p *Planner) Matchup(m domaingames.Matchup) (Frame, bool) {
	home, away, ok := m.Sides()
	if !ok {
		return Frame{}, false
	}

	var f Frame
	showScore := home.State == domaingames.StateLive || home.State == domaingames.StateCompleted

	p.half(&f, 0, away.Team, "AWAY", away.AwayScore, showScore)
	p.half(&f, halfHeight, home.Team, "HOME", home.HomeScore, showScore)

	f.fill(Rect{X: infoPanelX, Y: 0, W: Width - infoPanelX, H: Height}, Black)
	p.status(&f, home)
	return f, true
}

func (p *Planner) half(f *Frame, top int, team, label string, score *int, showScore bool) {
	bg, fg := p.teamColors(team)
	f.fill(Rect{X: 0, Y: top, W: Width, H: halfHeight}, bg)
	f.text(FontLarge, teamTextX, top+7, fg, team)
	if showScore {
		f.text(FontLarge, scoreTextX, top+7, fg, formatScore(score))
	}
	f.text(FontSmall, teamTextX, top+14, fg, label)
}

func (p *Planner) status(f *Frame, view domaingames.TeamView) {
	switch view.State {
	case domaingames.StateCompleted:
		at, err := domaingames.ParseViewDate(view.Date)
		if err != nil {
			p.dateFailed(view, err)
			f.text(FontSmall, infoTextX, 14, Red, "Final")
			return
		}
		f.text(FontSmall, infoTextX, 24, Red, at.Format("01/02"))
		f.text(FontSmall, infoTextX, 16, Red, "Final")
	case domaingames.StateLive:
		clock := view.DisplayClock
		if clock == "" {
			clock = "Live"
		}
		f.text(FontSmall, infoTextX, 14, Red, clock)
	default:
		at, err := domaingames.ParseViewDate(view.Date)
		if err != nil {
			p.dateFailed(view, err)
			f.text(FontSmall, infoTextX, 14, Red, "Soon")
			return
		}
		f.text(FontSmall, infoTextX, 8, Red, at.Format("01/02"))
		f.text(FontSmall, infoTextX, 16, Red, at.Format("3:04pm"))
	}
}

func (p *Planner) dateFailed(view domaingames.TeamView, err error) {
	logging.Warn(p.logger, "unparseable game date",
		logging.FieldEventID, view.EventID,
		logging.FieldDate, view.Date,
		logging.FieldError, err,
	)
}

func (p *Planner) teamColors(team string) (Color, Color) {
	if p.colors == nil {
		return NeutralBackground, NeutralText
	}
	bg, fg := p.colors.PanelColors(team)
	return HexOr(bg, NeutralBackground), HexOr(fg, NeutralText)
}

// Goal plans the celebration frame for the scoring team.
func (p *Planner) Goal(team string) Frame {
	var f Frame
	f.fill(Rect{W: Width, H: Height}, Green)
	f.text(FontLarge, 10, 12, White, "GOAL!")
	f.text(FontLarge, 12, 24, White, strings.ToUpper(team))
	return f
}

func formatScore(score *int) string {
	if score == nil {
		return missingMark
	}
	return strconv.Itoa(*score)
}
