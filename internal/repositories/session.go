package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/models"
)

type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetByToken returns the session with the exact token string, or nil when
// absent. Expiry is not checked here; it is the caller's decision.
func (r *SessionReadRepository) GetByToken(ctx context.Context, token string) (*models.SessionDB, error) {
	const query = `
		SELECT session_id, token, user_id, created_at, expires_at
		FROM sessions
		WHERE token = $1
	`

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, token)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Save inserts a new session row. Sessions are additive: a user may hold
// any number of concurrent sessions.
func (r *SessionWriteRepository) Save(ctx context.Context, session models.SessionDB) error {
	query := `
		INSERT INTO sessions (session_id, token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{session.SessionID, session.Token, session.UserID, session.CreatedAt, session.ExpiresAt}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{session.SessionID, session.UserID},
		"result", rowsAffected,
		"error", err,
	)

	return translateError(err)
}
