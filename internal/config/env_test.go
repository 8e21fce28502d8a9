// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG",

	"APP_MASTER_PASSWORD",
	"APP_MASTER_PASSWORD_HASH",
	"APP_LOCKOUT_THRESHOLD",
	"APP_MATCH_MODE",
	"APP_TOKEN_SIGN_KEY",
	"APP_TOKEN_ISSUER",
	"APP_SESSION_TTL",
	"APP_TOKEN_TTL",
	"APP_MAX_SESSIONS",
	"APP_VERSION",

	"STORAGE_BACKEND",
	"STORAGE_DB_DATABASE_URI",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",

	"WORKERS_SWEEP_INTERVAL",
}

// setEnvVars unsets every known key and then sets vars. t.Setenv restores
// the previous values when the test ends.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/etc/vault/config.json",

		"APP_MASTER_PASSWORD":      "master",
		"APP_MASTER_PASSWORD_HASH": "$2a$10$hash",
		"APP_LOCKOUT_THRESHOLD":    "5",
		"APP_MATCH_MODE":           "combined",
		"APP_TOKEN_SIGN_KEY":       "sign",
		"APP_TOKEN_ISSUER":         "issuer",
		"APP_SESSION_TTL":          "15m",
		"APP_TOKEN_TTL":            "1h",
		"APP_MAX_SESSIONS":         "64",
		"APP_VERSION":              "1.2.3",

		"STORAGE_BACKEND":         "sqlite",
		"STORAGE_DB_DATABASE_URI": "file:vault?mode=memory&cache=shared",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"WORKERS_SWEEP_INTERVAL": "2m",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/etc/vault/config.json", cfg.JSONFilePath)

	assert.Equal(t, "master", cfg.App.MasterPassword)
	assert.Equal(t, "$2a$10$hash", cfg.App.MasterPasswordHash)
	assert.Equal(t, 5, cfg.App.LockoutThreshold)
	assert.Equal(t, MatchModeCombined, cfg.App.MatchMode)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 15*time.Minute, cfg.App.SessionTTL)
	assert.Equal(t, time.Hour, cfg.App.TokenTTL)
	assert.Equal(t, 64, cfg.App.MaxSessions)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "file:vault?mode=memory&cache=shared", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 2*time.Minute, cfg.Workers.SweepInterval)
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "threshold not a number", vars: map[string]string{"APP_LOCKOUT_THRESHOLD": "three"}},
		{name: "bad session ttl", vars: map[string]string{"APP_SESSION_TTL": "soon"}},
		{name: "bad request timeout", vars: map[string]string{"SERVER_REQUEST_TIMEOUT": "10 seconds"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.vars)

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}
