package session

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"nba-stats/internal/domain"
)

// CardTextColor is drawn over every team color.
const CardTextColor = "#fff"

type Card struct {
	PlayerID      int    `json:"player_id"`
	Team          string `json:"team"`
	TeamColor     string `json:"team_color"`
	TextColor     string `json:"text_color"`
	Name          string `json:"name"`
	Height        string `json:"height"`
	PointsPerGame string `json:"points_per_game"`
}

type StatLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StatLines []StatLine

// String renders one "Label: value" per line.
func (l StatLines) String() string {
	var b strings.Builder
	for i, s := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.Label)
		b.WriteString(": ")
		b.WriteString(s.Value)
	}
	return b.String()
}

type Detail struct {
	PlayerID int       `json:"player_id"`
	Name     string    `json:"name"`
	Stats    StatLines `json:"stats"`
}

// View is what a client draws for a session.
type View struct {
	Query  string  `json:"query"`
	Error  string  `json:"error,omitempty"`
	Cards  []Card  `json:"cards"`
	Detail *Detail `json:"detail,omitempty"`
}

func Render(s State) View {
	displayed := Displayed(s)

	v := View{Query: s.Query, Cards: make([]Card, 0, len(displayed))}
	if s.Error != nil {
		v.Error = *s.Error
	}
	for _, p := range displayed {
		v.Cards = append(v.Cards, NewCard(p))
	}
	v.Detail = detailFor(s.SelectedID, displayed)
	return v
}

func NewCard(p domain.EnrichedPlayer) Card {
	return Card{
		PlayerID:      p.ID(),
		Team:          p.Player.TeamAbbreviation,
		TeamColor:     domain.TeamColor(p.Player.TeamAbbreviation),
		TextColor:     CardTextColor,
		Name:          p.Player.FullName(),
		Height:        p.Player.Height(),
		PointsPerGame: p.SeasonAverage.Points(),
	}
}

// SelectedDetail returns the stat breakdown of the selected player, or nil
// when nothing is selected or the selection is not on screen.
func SelectedDetail(s State) *Detail {
	return detailFor(s.SelectedID, Displayed(s))
}

func detailFor(selected *int, displayed []domain.EnrichedPlayer) *Detail {
	if selected == nil {
		return nil
	}
	for _, p := range displayed {
		if p.ID() == *selected {
			return &Detail{
				PlayerID: p.ID(),
				Name:     p.Player.FullName(),
				Stats:    FormatStats(p.SeasonAverage),
			}
		}
	}
	return nil
}

// FormatStats lists every stat except player_id with a readable label.
func FormatStats(avg domain.SeasonAverage) StatLines {
	lines := make(StatLines, 0, len(avg.Stats))
	for _, s := range avg.Stats {
		if s.Key == "player_id" {
			continue
		}
		lines = append(lines, StatLine{Label: FormatStatKey(s.Key), Value: s.Display()})
	}
	return lines
}

// FormatStatKey turns fg3_pct into "Fg3 Pct".
func FormatStatKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
