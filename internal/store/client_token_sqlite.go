package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-alerts/internal/logger"
)

const (
	loadSessionToken  = `SELECT token FROM session WHERE id = 1;`
	saveSessionToken  = `INSERT INTO session (id, token, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP) ON CONFLICT (id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at;`
	clearSessionToken = `DELETE FROM session;`
)

// sqliteTokenStore keeps the token in the single-row "session" table of the
// local SQLite file.
type sqliteTokenStore struct {
	db     *DB
	logger *logger.Logger
}

func NewSQLiteTokenStore(db *DB, logger *logger.Logger) TokenStore {
	return &sqliteTokenStore{db: db, logger: logger}
}

func (s *sqliteTokenStore) Load(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, loadSessionToken).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteTokenStore.Load").Msg("failed to read session token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return token, nil
}

func (s *sqliteTokenStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	if _, err := s.db.ExecContext(ctx, saveSessionToken, token); err != nil {
		s.logger.Err(err).Str("func", "sqliteTokenStore.Save").Msg("failed to save session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteTokenStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearSessionToken); err != nil {
		s.logger.Err(err).Str("func", "sqliteTokenStore.Clear").Msg("failed to clear session token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
