package domain

import (
	"fmt"
	"strconv"
)

type Player struct {
	ID               int    `json:"id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	TeamAbbreviation string `json:"team_abbreviation"`
	HeightFeet       *int   `json:"height_feet"`
	HeightInches     *int   `json:"height_inches"`
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Height renders as 6' 9. Players without a listed height render as "N/A".
func (p Player) Height() string {
	if p.HeightFeet == nil || p.HeightInches == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d' %d", *p.HeightFeet, *p.HeightInches)
}

// SeasonAverage is one player's per-game averages for one season. Stats keeps
// every field of the upstream record in its original order, including
// player_id and season.
type SeasonAverage struct {
	PlayerID int
	Season   int
	Stats    []Stat
}

// Stat is a single named value. Value holds the JSON literal as received, so
// numbers, strings ("34:12") and null all round-trip unchanged.
type Stat struct {
	Key   string
	Value string
}

// Display renders the value the way it reads on a card: strings unquoted,
// everything else verbatim.
func (s Stat) Display() string {
	if len(s.Value) >= 2 && s.Value[0] == '"' {
		if v, err := strconv.Unquote(s.Value); err == nil {
			return v
		}
	}
	return s.Value
}

func (a SeasonAverage) Lookup(key string) (Stat, bool) {
	for _, s := range a.Stats {
		if s.Key == key {
			return s, true
		}
	}
	return Stat{}, false
}

func (a SeasonAverage) Float(key string) (float64, bool) {
	s, ok := a.Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Points is the "pts" stat rendered for display, or "N/A" when missing.
func (a SeasonAverage) Points() string {
	s, ok := a.Lookup("pts")
	if !ok {
		return "N/A"
	}
	return s.Display()
}

// EnrichedPlayer only exists for players that have an average for the target
// season.
type EnrichedPlayer struct {
	Player        Player        `json:"player"`
	SeasonAverage SeasonAverage `json:"season_averages"`
}

func (e EnrichedPlayer) ID() int {
	return e.Player.ID
}
