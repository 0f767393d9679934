// Package session holds the per-user search state and the pure transitions
// that evolve it. Nothing here performs I/O.
package session

import (
	"errors"
	"fmt"
	"slices"

	"nba-stats/internal/constants"
	"nba-stats/internal/domain"
)

const SearchFailedMessage = "An error occurred while searching. Please try again."

// State is everything one session has accumulated. Results and SeenIDs only
// grow: a player found by two searches is listed twice.
type State struct {
	Query      string                  `json:"query"`
	Results    []domain.EnrichedPlayer `json:"results"`
	SeenIDs    []int                   `json:"seen_ids"`
	Error      *string                 `json:"error,omitempty"`
	SelectedID *int                    `json:"selected_id,omitempty"`
}

// SearchResult is the outcome of one search, successful or not.
type SearchResult struct {
	Query   string
	Players []domain.EnrichedPlayer
	Err     error
}

// ApplySearchResult records a finished search. A failure or an empty result
// replaces the error message and leaves results untouched; a success clears
// the error and appends.
func ApplySearchResult(s State, r SearchResult) State {
	s.Query = r.Query

	err := r.Err
	if err == nil && len(r.Players) == 0 {
		err = &domain.NoResultsError{Query: r.Query, Season: constants.TargetSeason}
	}
	if err != nil {
		msg := ErrorMessage(err)
		s.Error = &msg
		return s
	}

	s.Error = nil
	s.Results = append(slices.Clip(s.Results), r.Players...)
	ids := slices.Clip(s.SeenIDs)
	for _, p := range r.Players {
		ids = append(ids, p.ID())
	}
	s.SeenIDs = ids
	return s
}

func SelectPlayer(s State, playerID int) State {
	s.SelectedID = &playerID
	return s
}

func ClearSelection(s State) State {
	s.SelectedID = nil
	return s
}

// ErrorMessage is the single user-visible message for a failed search.
func ErrorMessage(err error) string {
	var noResults *domain.NoResultsError
	if errors.As(err, &noResults) {
		return fmt.Sprintf(`No player named "%s" for the %d season.`, noResults.Query, noResults.Season)
	}
	return SearchFailedMessage
}

// Displayed lists accumulated results whose id has been seen, in insertion
// order and without collapsing duplicates.
func Displayed(s State) []domain.EnrichedPlayer {
	seen := make(map[int]struct{}, len(s.SeenIDs))
	for _, id := range s.SeenIDs {
		seen[id] = struct{}{}
	}

	out := make([]domain.EnrichedPlayer, 0, len(s.Results))
	for _, p := range s.Results {
		if _, ok := seen[p.ID()]; ok {
			out = append(out, p)
		}
	}
	return out
}
