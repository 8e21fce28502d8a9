package config

import (
	"fmt"
)

// ClientConfig is the terminal client's view of [StructuredConfig].
//
// With an adapter address the client talks to a remote vault server;
// otherwise it runs the engine in-process and needs the App and Storage
// settings.
type ClientConfig struct {
	// App contains the engine settings for the in-process mode.
	App App
	// Storage selects the entry store for the in-process mode.
	Storage Storage
	// Adapter contains the remote server address and timeout.
	Adapter Adapter
}

// Remote reports whether the client should use a remote vault server.
func (cfg *ClientConfig) Remote() bool {
	return cfg.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates the client configuration from the
// same sources as [GetStructuredConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
	}

	return clientCfg, clientCfg.validate()
}
