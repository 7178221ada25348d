package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultAdapterBaseURL = "http://localhost:8080"
	defaultTokenIssuer    = "go-job-alerts"
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultSessionKind    = SessionStorageSQLite
	defaultAppDir         = ".go-job-alerts"
)

// defaults fills every field that has a sensible fallback. Secrets and the
// database DSN have none.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Storage: Storage{
			Session: Session{Kind: defaultSessionKind},
		},
		Server: Server{
			HTTPAddress: defaultServerAddress,
		},
		Adapter: Adapter{
			BaseURL: defaultAdapterBaseURL,
		},
	}
}

// defaultSessionPath returns ~/.go-job-alerts/session.db for SQLite and
// ~/.go-job-alerts/token for the plain file store. When the home directory
// is unknown the path is relative to the working directory.
func defaultSessionPath(kind string) string {
	name := "session.db"
	if kind == SessionStorageFile {
		name = "token"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(defaultAppDir, name)
	}
	return filepath.Join(home, defaultAppDir, name)
}
