package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-job-alerts/internal/config"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
)

// ClientStorages groups the client-side persistence.
type ClientStorages struct {
	// TokenStore keeps the session token between runs.
	TokenStore TokenStore

	db *DB
}

// NewClientStorages builds the token store selected by cfg.Kind. The sqlite
// kind opens cfg.Path and applies the session schema.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("kind", cfg.Kind).Str("path", cfg.Path).Msg("creating client storages...")

	switch cfg.Kind {
	case config.SessionStorageSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &ClientStorages{TokenStore: NewSQLiteTokenStore(db, logger), db: db}, nil
	case config.SessionStorageFile:
		return &ClientStorages{TokenStore: NewFileTokenStore(cfg.Path)}, nil
	case config.SessionStorageMemory:
		return &ClientStorages{TokenStore: NewMemoryTokenStore()}, nil
	default:
		return nil, fmt.Errorf("unknown session storage kind %q", cfg.Kind)
	}
}

// Close releases the SQLite connection, if any.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
