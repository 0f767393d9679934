package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"nba-stats/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	BallDontLieURL    string
	DBPath            string
	ServerPort        string
	LogLevel          string
	SearchConcurrency int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		BallDontLieURL: strings.TrimRight(getEnv("BALLDONTLIE_BASE_URL", constants.DefaultBallDontLieURL), "/"),
		DBPath:         getEnv("DB_PATH", "file:nbastats?mode=memory&cache=shared"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	concurrency, err := strconv.Atoi(getEnv("SEARCH_CONCURRENCY", strconv.Itoa(constants.DefaultSearchConcurrency)))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_CONCURRENCY: %w", err)
	}
	if concurrency < 1 {
		return nil, fmt.Errorf("SEARCH_CONCURRENCY must be positive, got %d", concurrency)
	}
	cfg.SearchConcurrency = concurrency

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	logger.Info().
		Str("balldontlie_url", cfg.BallDontLieURL).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("search_concurrency", cfg.SearchConcurrency).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
