package server

import (
	"net/http"

	"nba-stats/internal/middleware"

	"github.com/rs/zerolog"
)

// NewHTTPHandler is the full inbound surface: the RPC service behind CORS and
// request-id logging.
func NewHTTPHandler(stats *StatsServer, logger zerolog.Logger) http.Handler {
	requestID := middleware.RequestID(logger)
	corsHandler := middleware.CORS()

	mux := http.NewServeMux()
	mux.Handle(StatsServicePath, requestID(corsHandler(stats.Handler())))
	return mux
}
