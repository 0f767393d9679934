package domain

import "fmt"

// NoResultsError reports a well-formed search that left no player with an
// average for the requested season.
type NoResultsError struct {
	Query  string
	Season int
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no player named %q for the %d season", e.Query, e.Season)
}
