package session

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"nba-stats/internal/api"
	"nba-stats/internal/domain"
)

func enriched(id int, team string, pts string) domain.EnrichedPlayer {
	feet, inches := 6, 8
	return domain.EnrichedPlayer{
		Player: domain.Player{
			ID:               id,
			FirstName:        "Player",
			LastName:         strconv.Itoa(id),
			TeamAbbreviation: team,
			HeightFeet:       &feet,
			HeightInches:     &inches,
		},
		SeasonAverage: domain.SeasonAverage{
			PlayerID: id,
			Season:   2022,
			Stats: []domain.Stat{
				{Key: "games_played", Value: "70"},
				{Key: "player_id", Value: strconv.Itoa(id)},
				{Key: "season", Value: "2022"},
				{Key: "min", Value: `"34:12"`},
				{Key: "pts", Value: pts},
				{Key: "fg3_pct", Value: "0.391"},
			},
		},
	}
}

func ids(players []domain.EnrichedPlayer) []int {
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.ID()
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplySearchResult_Success(t *testing.T) {
	s := ApplySearchResult(State{}, SearchResult{
		Query:   "James",
		Players: []domain.EnrichedPlayer{enriched(2, "LAL", "27.1")},
	})

	if s.Error != nil {
		t.Errorf("Error = %q, want nil", *s.Error)
	}
	if s.Query != "James" {
		t.Errorf("Query = %q, want James", s.Query)
	}
	if got := ids(Displayed(s)); !equalInts(got, []int{2}) {
		t.Errorf("Displayed ids = %v, want [2]", got)
	}
	if !equalInts(s.SeenIDs, []int{2}) {
		t.Errorf("SeenIDs = %v, want [2]", s.SeenIDs)
	}
}

func TestApplySearchResult_NoResults(t *testing.T) {
	start := ApplySearchResult(State{}, SearchResult{
		Query:   "Curry",
		Players: []domain.EnrichedPlayer{enriched(7, "GSW", "29.4")},
	})

	tests := []struct {
		name string
		r    SearchResult
	}{
		{name: "empty players", r: SearchResult{Query: "Zzyzx"}},
		{name: "no results error", r: SearchResult{Query: "Zzyzx", Err: &domain.NoResultsError{Query: "Zzyzx", Season: 2022}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ApplySearchResult(start, tt.r)

			if s.Error == nil {
				t.Fatal("Error = nil, want message")
			}
			if !strings.Contains(*s.Error, `"Zzyzx"`) {
				t.Errorf("Error = %q, want it to contain the query", *s.Error)
			}
			if want := `No player named "Zzyzx" for the 2022 season.`; *s.Error != want {
				t.Errorf("Error = %q, want %q", *s.Error, want)
			}
			if got := ids(Displayed(s)); !equalInts(got, []int{7}) {
				t.Errorf("Displayed ids = %v, want [7] unchanged", got)
			}
			if !equalInts(s.SeenIDs, []int{7}) {
				t.Errorf("SeenIDs = %v, want [7] unchanged", s.SeenIDs)
			}
		})
	}
}

func TestApplySearchResult_Failure(t *testing.T) {
	errs := []error{
		&api.NetworkError{URL: "http://x", StatusCode: 503},
		&api.MalformedResponseError{URL: "http://x", Err: errors.New("bad json")},
		errors.New("anything else"),
	}

	for _, err := range errs {
		s := ApplySearchResult(State{}, SearchResult{Query: "James", Err: err})
		if s.Error == nil || *s.Error != SearchFailedMessage {
			t.Errorf("Error for %v = %v, want %q", err, s.Error, SearchFailedMessage)
		}
		if len(s.Results) != 0 || len(s.SeenIDs) != 0 {
			t.Errorf("state grew on failure: %+v", s)
		}
	}
}

func TestApplySearchResult_ClearsPreviousError(t *testing.T) {
	s := ApplySearchResult(State{}, SearchResult{Query: "nobody"})
	if s.Error == nil {
		t.Fatal("expected error after empty search")
	}

	s = ApplySearchResult(s, SearchResult{Query: "James", Players: []domain.EnrichedPlayer{enriched(2, "LAL", "27.1")}})
	if s.Error != nil {
		t.Errorf("Error = %q, want cleared", *s.Error)
	}
}

func TestApplySearchResult_DuplicatesAreKept(t *testing.T) {
	s := State{}
	s = ApplySearchResult(s, SearchResult{Query: "James", Players: []domain.EnrichedPlayer{enriched(1, "LAL", "20"), enriched(2, "MIA", "10")}})
	s = ApplySearchResult(s, SearchResult{Query: "James", Players: []domain.EnrichedPlayer{enriched(2, "MIA", "10"), enriched(3, "BOS", "5")}})

	want := []int{1, 2, 2, 3}
	if got := ids(Displayed(s)); !equalInts(got, want) {
		t.Errorf("Displayed ids = %v, want %v", got, want)
	}
	if !equalInts(s.SeenIDs, want) {
		t.Errorf("SeenIDs = %v, want %v", s.SeenIDs, want)
	}
}

func TestApplySearchResult_DoesNotMutateInput(t *testing.T) {
	base := ApplySearchResult(State{}, SearchResult{Query: "a", Players: []domain.EnrichedPlayer{enriched(1, "LAL", "1")}})
	base.Results = append(make([]domain.EnrichedPlayer, 0, 8), base.Results...)
	base.SeenIDs = append(make([]int, 0, 8), base.SeenIDs...)

	left := ApplySearchResult(base, SearchResult{Query: "b", Players: []domain.EnrichedPlayer{enriched(2, "LAL", "2")}})
	right := ApplySearchResult(base, SearchResult{Query: "c", Players: []domain.EnrichedPlayer{enriched(3, "LAL", "3")}})

	if got := ids(left.Results); !equalInts(got, []int{1, 2}) {
		t.Errorf("left = %v, want [1 2]", got)
	}
	if got := ids(right.Results); !equalInts(got, []int{1, 3}) {
		t.Errorf("right = %v, want [1 3]", got)
	}
	if len(base.Results) != 1 || len(base.SeenIDs) != 1 {
		t.Errorf("base changed: %+v", base)
	}
}

func TestDisplayed_FiltersUnseenIDs(t *testing.T) {
	s := State{
		Results: []domain.EnrichedPlayer{enriched(1, "LAL", "1"), enriched(2, "LAL", "2")},
		SeenIDs: []int{2},
	}
	if got := ids(Displayed(s)); !equalInts(got, []int{2}) {
		t.Errorf("Displayed ids = %v, want [2]", got)
	}
}

func TestSelection(t *testing.T) {
	s := ApplySearchResult(State{}, SearchResult{
		Query:   "James",
		Players: []domain.EnrichedPlayer{enriched(1, "LAL", "20"), enriched(2, "MIA", "10")},
	})

	s = SelectPlayer(s, 1)
	if d := SelectedDetail(s); d == nil || d.PlayerID != 1 {
		t.Fatalf("SelectedDetail = %+v, want player 1", d)
	}

	s = SelectPlayer(s, 2)
	if d := SelectedDetail(s); d == nil || d.PlayerID != 2 {
		t.Fatalf("SelectedDetail = %+v, want player 2", d)
	}
	if *s.SelectedID != 2 {
		t.Errorf("SelectedID = %d, want 2", *s.SelectedID)
	}

	s = ClearSelection(s)
	if s.SelectedID != nil {
		t.Errorf("SelectedID = %d, want nil", *s.SelectedID)
	}
	if d := SelectedDetail(s); d != nil {
		t.Errorf("SelectedDetail = %+v, want nil", d)
	}
}

func TestSelection_NotDisplayed(t *testing.T) {
	s := SelectPlayer(State{}, 42)
	if s.SelectedID == nil || *s.SelectedID != 42 {
		t.Fatalf("SelectedID = %v, want 42", s.SelectedID)
	}
	if d := SelectedDetail(s); d != nil {
		t.Errorf("SelectedDetail = %+v, want nil for a player not on screen", d)
	}
}
