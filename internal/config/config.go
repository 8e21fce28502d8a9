// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Match modes accepted by App.MatchMode.
const (
	// MatchModeStrict looks the entry up by id and then requires both the
	// ciphertext and the passkey digest to match.
	MatchModeStrict = "strict"
	// MatchModeCombined ignores the id and scans for an entry whose
	// ciphertext and passkey digest both match.
	MatchModeCombined = "combined"
)

// Storage backends accepted by Storage.Backend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration of the vault. It is
// populated by merging environment variables, command-line flags and an
// optional JSON file.
type StructuredConfig struct {
	// App holds the vault engine settings: master credential, lockout and
	// session parameters.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the entry store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote server settings used by the terminal client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds vault engine settings.
type App struct {
	// MasterPassword is the plain master credential used to clear a lockout.
	// Env: APP_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD" json:"-"`

	// MasterPasswordHash is a bcrypt hash of the master credential. When set
	// it takes precedence over MasterPassword.
	// Env: APP_MASTER_PASSWORD_HASH
	MasterPasswordHash string `env:"MASTER_PASSWORD_HASH" json:"-"`

	// LockoutThreshold is the number of consecutive failed retrievals that
	// locks a session. Defaults to 3.
	// Env: APP_LOCKOUT_THRESHOLD
	LockoutThreshold int `env:"LOCKOUT_THRESHOLD"`

	// MatchMode is either "strict" (default) or "combined".
	// Env: APP_MATCH_MODE
	MatchMode string `env:"MATCH_MODE"`

	// TokenSignKey signs session tokens (HS256). Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"-"`

	// TokenIssuer is the "iss" claim of issued session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionTTL is how long an idle session (and its entries) survives.
	// Every authenticated request resets the idle clock.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// TokenTTL is the absolute lifetime of a session token. It bounds how
	// long an active session can last and must not be shorter than
	// SessionTTL.
	// Env: APP_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	// MaxSessions caps the number of live sessions on the server.
	// Env: APP_MAX_SESSIONS
	MaxSessions int `env:"MAX_SESSIONS"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage selects the entry store backend.
type Storage struct {
	// Backend is "memory" (default) or "sqlite".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the SQLite connection settings used by the sqlite backend.
	DB DB `envPrefix:"DB_"`
}

// DB holds SQLite connection settings.
type DB struct {
	// DSN must point at an in-memory database (":memory:" or a
	// "mode=memory" URI). Entries never outlive the process.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote vault server settings used by the client. When
// HTTPAddress is empty the client runs an in-process engine instead.
type Adapter struct {
	// HTTPAddress is the base address of a remote vault server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// SweepInterval is how often idle sessions are expired.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration from environment, flags and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// defaults returns the values used for every field left empty by all
// configuration sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LockoutThreshold: 3,
			MatchMode:        MatchModeStrict,
			TokenIssuer:      "go-secure-vault",
			SessionTTL:       30 * time.Minute,
			TokenTTL:         12 * time.Hour,
			MaxSessions:      1024,
			Version:          "dev",
		},
		Storage: Storage{
			Backend: BackendMemory,
			DB:      DB{DSN: ":memory:"},
		},
		Server: Server{
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SweepInterval: time.Minute,
		},
	}
}
