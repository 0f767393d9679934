package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"nba-stats/internal/session"

	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores serialized session states. Update applies one
// transition at a time, so concurrent searches on a session never lose each
// other's results.
type SessionRepository struct {
	db     *sql.DB
	mu     sync.Mutex
	logger zerolog.Logger
}

func NewSessionRepository(sqlDB *sql.DB, logger zerolog.Logger) *SessionRepository {
	return &SessionRepository{db: sqlDB, logger: logger}
}

func (r *SessionRepository) Create(ctx context.Context) (string, session.State, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", session.State{}, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	var state session.State
	data, err := json.Marshal(state)
	if err != nil {
		return "", session.State{}, fmt.Errorf("failed to encode session: %w", err)
	}

	now := time.Now()
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, state, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, string(data), now, now,
	); err != nil {
		return "", session.State{}, fmt.Errorf("failed to insert session: %w", err)
	}

	r.logger.Debug().Str("session_id", id).Msg("session created")
	return id, state, nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (session.State, error) {
	return r.load(ctx, r.db, id)
}

// Update loads the session, applies fn and writes the result back in one
// transaction.
func (r *SessionRepository) Update(ctx context.Context, id string, fn func(session.State) session.State) (session.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return session.State{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	state, err := r.load(ctx, tx, id)
	if err != nil {
		return session.State{}, err
	}

	state = fn(state)

	data, err := json.Marshal(state)
	if err != nil {
		return session.State{}, fmt.Errorf("failed to encode session: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE sessions SET state = ?, updated_at = ? WHERE id = ?`,
		string(data), time.Now(), id,
	); err != nil {
		return session.State{}, fmt.Errorf("failed to update session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return session.State{}, fmt.Errorf("failed to commit session: %w", err)
	}
	return state, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *SessionRepository) load(ctx context.Context, q queryer, id string) (session.State, error) {
	var data string
	err := q.QueryRowContext(ctx, `SELECT state FROM sessions WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return session.State{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		r.logger.Error().Err(err).Str("session_id", id).Msg("failed to load session")
		return session.State{}, fmt.Errorf("failed to load session: %w", err)
	}

	var state session.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return session.State{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return state, nil
}
