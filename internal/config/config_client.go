package config

import (
	"fmt"
	"time"
)

// Session storage kinds accepted by [ClientStorage].
const (
	SessionStorageSQLite = "sqlite"
	SessionStorageFile   = "file"
	SessionStorageMemory = "memory"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the root URL of the REST service.
	BaseURL string
	// RequestTimeout is the timeout for outbound requests. Zero disables it.
	RequestTimeout time.Duration
}

// ClientStorage describes where the session token is kept.
type ClientStorage struct {
	// Kind is one of SessionStorageSQLite, SessionStorageFile, SessionStorageMemory.
	Kind string
	// Path is the SQLite database or token file path.
	Path string
}

// ClientUI holds terminal client settings.
type ClientUI struct {
	// SaveRedirectDelay is the pause between a successful save and the
	// return to the list screen.
	SaveRedirectDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	UI      ClientUI
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Kind: cfg.Storage.Session.Kind,
			Path: cfg.Storage.Session.Path,
		},
		UI: ClientUI{
			SaveRedirectDelay: cfg.UI.SaveRedirectDelay,
		},
	}

	if clientCfg.Storage.Path == "" {
		clientCfg.Storage.Path = defaultSessionPath(clientCfg.Storage.Kind)
	}

	return clientCfg, clientCfg.validate()
}
