package store

import (
	"database/sql"

	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/migrations"
)

const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB wraps a *sql.DB with the error classifier and logger used by the
// repositories built on top of it.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema matching the connection's dialect.
func (db *DB) Migrate() error {
	if db.dialect == dialectSQLite {
		return migrations.MigrateSQLite(db.DB)
	}
	return migrations.Migrate(db.DB)
}

// retryable reports whether err is a transient failure worth one more
// attempt. A DB without a classifier never retries.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
