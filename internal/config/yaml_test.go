package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeTempYAML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseConfigFile_YAML(t *testing.T) {
	path := writeTempYAML(t, "vault.yaml", `
app:
  master_password: master
  lockout_threshold: 4
  match_mode: combined
  session_ttl: 15m
  token_ttl: 4h
  max_sessions: 32
  version: 1.0.0
storage:
  backend: sqlite
  db:
    dsn: "file:vault?mode=memory&cache=shared"
server:
  http_address: ":8080"
  request_timeout: 3000000000
workers:
  sweep_interval: 1m
`)

	cfg, err := parseConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "master", cfg.App.MasterPassword)
	assert.Equal(t, 4, cfg.App.LockoutThreshold)
	assert.Equal(t, MatchModeCombined, cfg.App.MatchMode)
	assert.Equal(t, 15*time.Minute, cfg.App.SessionTTL)
	assert.Equal(t, 4*time.Hour, cfg.App.TokenTTL)
	assert.Equal(t, 32, cfg.App.MaxSessions)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "file:vault?mode=memory&cache=shared", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SweepInterval)
}

func TestParseConfigFile_ByExtension(t *testing.T) {
	yml := writeTempYAML(t, "vault.YML", "app:\n  version: from-yaml\n")
	cfg, err := parseConfigFile(yml)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.App.Version)

	js := writeTempYAML(t, "vault.conf", `{"app":{"version":"from-json"}}`)
	cfg, err = parseConfigFile(js)
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.Version)
}

func TestParseYAML_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseYAML(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "error reading a yaml file")
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := parseYAML(writeTempYAML(t, "broken.yaml", "app: [unclosed"))
		assert.ErrorContains(t, err, "error decoding yaml configs")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := parseYAML(writeTempYAML(t, "bad.yaml", "app:\n  session_ttl: forever\n"))
		assert.ErrorContains(t, err, "invalid duration value")
	})
}

func TestDuration_YAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `d: 1m30s`, want: 90 * time.Second},
		{name: "integer nanoseconds", input: `d: 1000`, want: time.Microsecond},
		{name: "garbage", input: `d: soon`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				D Duration `yaml:"d"`
			}
			err := yaml.Unmarshal([]byte(tt.input), &v)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(v.D))
		})
	}
}
