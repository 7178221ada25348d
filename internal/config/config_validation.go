// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks invariants shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidAdapterConfigs)
	}

	return nil
}

// validateServer checks everything the REST service needs to start.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Storage.Kind {
	case SessionStorageSQLite, SessionStorageFile:
		if cfg.Storage.Path == "" {
			return ErrInvalidStorageConfigs
		}
	case SessionStorageMemory:
	default:
		return fmt.Errorf("%w: unknown session storage %q", ErrInvalidStorageConfigs, cfg.Storage.Kind)
	}

	if cfg.UI.SaveRedirectDelay < 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
