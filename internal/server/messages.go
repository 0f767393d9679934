package server

import "nba-stats/internal/session"

type CreateSessionRequest struct{}

type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

type SearchRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

type SelectPlayerRequest struct {
	SessionID string `json:"session_id"`
	PlayerID  int    `json:"player_id"`
}

type CloseStatsRequest struct {
	SessionID string `json:"session_id"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	session.View
}
