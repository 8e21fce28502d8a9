package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-vault/internal/adapter"
	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/service"
	"github.com/MKhiriev/go-secure-vault/internal/store"
	"github.com/MKhiriev/go-secure-vault/internal/tui"
	"github.com/MKhiriev/go-secure-vault/models"
)

const closeSessionTimeout = 5 * time.Second

// App owns the vault backing the terminal UI for the process lifetime.
type App struct {
	ui UI

	// remote is set when the vault lives on a server.
	remote adapter.VaultAdapter
	// storages is set when the vault runs in-process.
	storages *store.Storages

	logger *logger.Logger
}

// NewApp builds the vault selected by cfg and a terminal UI over it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	app := &App{logger: log}

	var vault service.VaultService
	if cfg.Remote() {
		remote, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, fmt.Errorf("error creating vault adapter: %w", err)
		}
		app.remote = remote
		vault = remote
	} else {
		storages, err := store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("error creating storages: %w", err)
		}
		local, err := service.NewLocalVaultService(ctx, storages, cfg.App, log)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("error creating local vault: %w", err)
		}
		app.storages = storages
		vault = local
	}

	app.ui = tui.New(vault, buildInfo, log)
	return app, nil
}

// Run blocks until the UI exits, then ends the remote session or releases
// the local storage.
func (a *App) Run(ctx context.Context) error {
	defer a.release()

	if a.remote != nil {
		version, err := a.remote.ServerVersion(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("vault server is not reachable yet")
		} else {
			a.logger.Info().Str("server_version", version).Msg("connected to vault server")
		}
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

func (a *App) release() {
	if a.remote != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeSessionTimeout)
		defer cancel()

		if err := a.remote.CloseSession(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.release").Msg("failed to close vault session")
		}
	}

	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.release").Msg("failed to close storages")
		}
	}
}
