package service

import (
	"context"
	"errors"
	"fmt"

	"nba-stats/internal/api"
	"nba-stats/internal/config"
	"nba-stats/internal/constants"
	"nba-stats/internal/domain"
	"nba-stats/internal/fanout"

	"github.com/rs/zerolog"
)

// PlayerLookup is the outbound statistics API.
type PlayerLookup interface {
	SearchPlayers(ctx context.Context, query string) ([]domain.Player, error)
	GetSeasonAverages(ctx context.Context, playerID, season int) (*domain.SeasonAverage, error)
}

type SearchService struct {
	lookup      PlayerLookup
	concurrency int
	logger      zerolog.Logger
}

func NewSearchService(lookup PlayerLookup, cfg *config.Config, logger zerolog.Logger) *SearchService {
	return &SearchService{lookup: lookup, concurrency: cfg.SearchConcurrency, logger: logger}
}

// Search resolves query to players and joins each with its average for the
// target season. Players without one are dropped; if none remain the error is
// a *domain.NoResultsError. Any failed lookup fails the whole search.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.EnrichedPlayer, error) {
	logger := s.requestLogger(ctx)
	logger.Info().Str("query", query).Msg("searching players")

	players, err := s.lookup.SearchPlayers(ctx, query)
	if err != nil {
		s.logFailure(logger, err, query, "failed to search players")
		return nil, fmt.Errorf("failed to search players: %w", err)
	}

	logger.Debug().Str("query", query).Int("player_count", len(players)).Msg("fetching season averages")

	averages, err := fanout.Map(ctx, players, s.concurrency, func(ctx context.Context, p domain.Player) (*domain.SeasonAverage, error) {
		return s.lookup.GetSeasonAverages(ctx, p.ID, constants.TargetSeason)
	})
	if err != nil {
		s.logFailure(logger, err, query, "failed to fetch season averages")
		return nil, fmt.Errorf("failed to fetch season averages: %w", err)
	}

	enriched := make([]domain.EnrichedPlayer, 0, len(players))
	for i, p := range players {
		avg := averages[i]
		if avg == nil || avg.Season != constants.TargetSeason {
			continue
		}
		enriched = append(enriched, domain.EnrichedPlayer{Player: p, SeasonAverage: *avg})
	}

	if len(enriched) == 0 {
		logger.Info().Str("query", query).Int("season", constants.TargetSeason).Msg("no players with season averages")
		return nil, &domain.NoResultsError{Query: query, Season: constants.TargetSeason}
	}

	logger.Info().Str("query", query).Int("count", len(enriched)).Msg("search completed")
	return enriched, nil
}

func (s *SearchService) logFailure(logger zerolog.Logger, err error, query, msg string) {
	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		logger.Error().Err(err).Str("query", query).Int("status", netErr.StatusCode).Msg(msg)
		return
	}
	logger.Warn().Err(err).Str("query", query).Msg(msg)
}

// requestLogger prefers the request-scoped logger the middleware attached.
func (s *SearchService) requestLogger(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return s.logger
}
