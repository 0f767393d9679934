package server

import (
	"context"
	"errors"
	"net/http"

	"nba-stats/internal/middleware"
	"nba-stats/internal/repository"
	"nba-stats/internal/service"
	"nba-stats/internal/session"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

const StatsServicePath = "/nbastats.v1.StatsService/"

const (
	CreateSessionProcedure = StatsServicePath + "CreateSession"
	GetSessionProcedure    = StatsServicePath + "GetSession"
	SearchProcedure        = StatsServicePath + "Search"
	SelectPlayerProcedure  = StatsServicePath + "SelectPlayer"
	CloseStatsProcedure    = StatsServicePath + "CloseStats"
)

type StatsServer struct {
	sessions *service.SessionService
	logger   zerolog.Logger
}

func NewStatsServer(sessions *service.SessionService, logger zerolog.Logger) *StatsServer {
	return &StatsServer{sessions: sessions, logger: logger}
}

// Handler mounts every procedure of the service.
func (s *StatsServer) Handler() http.Handler {
	opts := []connect.HandlerOption{CodecOption()}

	mux := http.NewServeMux()
	mux.Handle(CreateSessionProcedure, connect.NewUnaryHandler(CreateSessionProcedure, s.CreateSession, opts...))
	mux.Handle(GetSessionProcedure, connect.NewUnaryHandler(GetSessionProcedure, s.GetSession, opts...))
	mux.Handle(SearchProcedure, connect.NewUnaryHandler(SearchProcedure, s.Search, opts...))
	mux.Handle(SelectPlayerProcedure, connect.NewUnaryHandler(SelectPlayerProcedure, s.SelectPlayer, opts...))
	mux.Handle(CloseStatsProcedure, connect.NewUnaryHandler(CloseStatsProcedure, s.CloseStats, opts...))
	return mux
}

func (s *StatsServer) CreateSession(ctx context.Context, req *connect.Request[CreateSessionRequest]) (*connect.Response[SessionResponse], error) {
	id, state, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}
	zerolog.Ctx(ctx).Info().Str("session_id", id).Msg("session created")
	return sessionResponse(id, state), nil
}

func (s *StatsServer) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[SessionResponse], error) {
	state, err := s.sessions.Get(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}
	return sessionResponse(req.Msg.SessionID, state), nil
}

func (s *StatsServer) Search(ctx context.Context, req *connect.Request[SearchRequest]) (*connect.Response[SessionResponse], error) {
	state, err := s.sessions.Search(ctx, req.Msg.SessionID, req.Msg.Query)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}
	return sessionResponse(req.Msg.SessionID, state), nil
}

func (s *StatsServer) SelectPlayer(ctx context.Context, req *connect.Request[SelectPlayerRequest]) (*connect.Response[SessionResponse], error) {
	state, err := s.sessions.SelectPlayer(ctx, req.Msg.SessionID, req.Msg.PlayerID)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}
	return sessionResponse(req.Msg.SessionID, state), nil
}

func (s *StatsServer) CloseStats(ctx context.Context, req *connect.Request[CloseStatsRequest]) (*connect.Response[SessionResponse], error) {
	state, err := s.sessions.CloseStats(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, s.toConnectError(ctx, err)
	}
	return sessionResponse(req.Msg.SessionID, state), nil
}

func sessionResponse(id string, state session.State) *connect.Response[SessionResponse] {
	return connect.NewResponse(&SessionResponse{SessionID: id, View: session.Render(state)})
}

func (s *StatsServer) toConnectError(ctx context.Context, err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	s.logger.Error().Err(err).Str("request_id", middleware.GetRequestID(ctx)).Msg("request failed")
	return connect.NewError(connect.CodeInternal, err)
}
