package fx

import (
	"nba-stats/internal/api"
	"nba-stats/internal/config"
	"nba-stats/internal/database"
	"nba-stats/internal/logger"
	"nba-stats/internal/repository"
	"nba-stats/internal/server"
	"nba-stats/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewSessionRepository),
	// api client
	fx.Provide(
		fx.Annotate(
			api.NewBallDontLieClient,
			fx.As(new(service.PlayerLookup)),
		),
	),
	// svc
	fx.Provide(service.NewSearchService),
	fx.Provide(service.NewSessionService),
	// server
	fx.Provide(server.NewStatsServer),
)
