package service

import (
	"context"

	"nba-stats/internal/repository"
	"nba-stats/internal/session"

	"github.com/rs/zerolog"
)

type SessionService struct {
	search *SearchService
	repo   *repository.SessionRepository
	logger zerolog.Logger
}

func NewSessionService(search *SearchService, repo *repository.SessionRepository, logger zerolog.Logger) *SessionService {
	return &SessionService{search: search, repo: repo, logger: logger}
}

func (s *SessionService) Create(ctx context.Context) (string, session.State, error) {
	return s.repo.Create(ctx)
}

func (s *SessionService) Get(ctx context.Context, id string) (session.State, error) {
	return s.repo.Get(ctx, id)
}

// Search runs a search and records its outcome on the session. Search
// failures end up in the session's error field, not in the returned error,
// which only reports store problems. A later search never cancels this one
// and both are applied in completion order.
func (s *SessionService) Search(ctx context.Context, id, query string) (session.State, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return session.State{}, err
	}

	searchCtx := context.WithoutCancel(ctx)
	players, err := s.search.Search(searchCtx, query)
	result := session.SearchResult{Query: query, Players: players, Err: err}

	state, err := s.repo.Update(searchCtx, id, func(st session.State) session.State {
		return session.ApplySearchResult(st, result)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", id).Msg("failed to apply search result")
		return session.State{}, err
	}
	return state, nil
}

func (s *SessionService) SelectPlayer(ctx context.Context, id string, playerID int) (session.State, error) {
	return s.repo.Update(ctx, id, func(st session.State) session.State {
		return session.SelectPlayer(st, playerID)
	})
}

func (s *SessionService) CloseStats(ctx context.Context, id string) (session.State, error) {
	return s.repo.Update(ctx, id, session.ClearSelection)
}
