package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the config file, JSON or
// YAML. Secrets (master password, token sign key) are accepted here too so
// that the file can be mounted from a secret store.
type StructuredJSONConfig struct {
	App struct {
		MasterPassword     string   `json:"master_password" yaml:"master_password"`
		MasterPasswordHash string   `json:"master_password_hash" yaml:"master_password_hash"`
		LockoutThreshold   int      `json:"lockout_threshold" yaml:"lockout_threshold"`
		MatchMode          string   `json:"match_mode" yaml:"match_mode"`
		TokenSignKey       string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer" yaml:"token_issuer"`
		SessionTTL         Duration `json:"session_ttl" yaml:"session_ttl"`
		TokenTTL           Duration `json:"token_ttl" yaml:"token_ttl"`
		MaxSessions        int      `json:"max_sessions" yaml:"max_sessions"`
		Version            string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app"`

	Storage struct {
		Backend string `json:"backend" yaml:"backend"`
		DB      struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db"`
	} `json:"storage,omitempty" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval" yaml:"sweep_interval"`
	} `json:"workers,omitempty" yaml:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.structured(), nil
}

// structured converts the file shape into a [StructuredConfig].
func (f *StructuredJSONConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MasterPassword:     f.App.MasterPassword,
			MasterPasswordHash: f.App.MasterPasswordHash,
			LockoutThreshold:   f.App.LockoutThreshold,
			MatchMode:          f.App.MatchMode,
			TokenSignKey:       f.App.TokenSignKey,
			TokenIssuer:        f.App.TokenIssuer,
			SessionTTL:         time.Duration(f.App.SessionTTL),
			TokenTTL:           time.Duration(f.App.TokenTTL),
			MaxSessions:        f.App.MaxSessions,
			Version:            f.App.Version,
		},
		Storage: Storage{
			Backend: f.Storage.Backend,
			DB:      DB{DSN: f.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(f.Workers.SweepInterval),
		},
	}
}

// Duration wraps time.Duration so config files can carry either "30s" style
// strings or nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
