// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenTTL < cfg.App.SessionTTL {
		return fmt.Errorf("%w: token ttl must not be shorter than session ttl", ErrInvalidAppConfigs)
	}

	if cfg.App.MaxSessions < 1 {
		return fmt.Errorf("%w: max sessions must be at least 1", ErrInvalidAppConfigs)
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validate checks the engine settings shared by server and local client.
func (a App) validate() error {
	if a.MasterPassword == "" && a.MasterPasswordHash == "" {
		return fmt.Errorf("%w: master credential is required", ErrInvalidAppConfigs)
	}

	if a.LockoutThreshold < 1 {
		return fmt.Errorf("%w: lockout threshold must be at least 1", ErrInvalidAppConfigs)
	}

	if a.MatchMode != MatchModeStrict && a.MatchMode != MatchModeCombined {
		return fmt.Errorf("%w: unknown match mode %q", ErrInvalidAppConfigs, a.MatchMode)
	}

	return nil
}

// validate rejects unknown backends and DSNs that would outlive the process.
func (s Storage) validate() error {
	switch s.Backend {
	case BackendMemory:
		return nil
	case BackendSQLite:
		if !IsInMemoryDSN(s.DB.DSN) {
			return fmt.Errorf("%w: sqlite dsn must be in-memory", ErrInvalidStorageConfigs)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}
}

// IsInMemoryDSN reports whether dsn names an in-memory SQLite database.
func IsInMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote() {
		if cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
		return nil
	}

	if err := cfg.App.validate(); err != nil {
		return err
	}

	return cfg.Storage.validate()
}
