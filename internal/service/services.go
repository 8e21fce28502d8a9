package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/crypto"
	"github.com/MKhiriev/go-secure-vault/internal/lockout"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/store"
)

// localSessionID partitions the single vault of the standalone client.
const localSessionID = "local"

// Services is the set of server-side services.
type Services struct {
	VaultService   VaultService
	SessionService SessionService
	AppInfoService AppInfoService
}

// NewServices wires the session-partitioned vault: one cipher for the
// process, one entry store and lockout guard per session.
func NewServices(storages *store.Storages, cfg config.App, log *logger.Logger) (*Services, error) {
	master, err := crypto.NewMasterVerifier(cfg.MasterPassword, cfg.MasterPasswordHash)
	if err != nil {
		return nil, fmt.Errorf("error configuring master credential: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, log)
	if err != nil {
		return nil, err
	}

	sessions := NewSessionService(storages.Factory, master, cfg, log)

	return &Services{
		VaultService:   NewVaultService(sessions, crypto.NewPasskeyHasher(), crypto.NewCipherService(), cfg.MatchMode, log),
		SessionService: sessions,
		AppInfoService: appInfo,
	}, nil
}

// NewLocalVaultService builds a single-context vault for the standalone
// terminal client.
func NewLocalVaultService(ctx context.Context, storages *store.Storages, cfg config.App, log *logger.Logger) (VaultService, error) {
	master, err := crypto.NewMasterVerifier(cfg.MasterPassword, cfg.MasterPasswordHash)
	if err != nil {
		return nil, fmt.Errorf("error configuring master credential: %w", err)
	}

	entries, err := storages.Factory.Open(ctx, localSessionID)
	if err != nil {
		return nil, fmt.Errorf("error opening entry store: %w", err)
	}

	vc := NewVaultContext(entries, lockout.NewGuard(cfg.LockoutThreshold, master))

	return NewVaultService(NewStaticResolver(vc), crypto.NewPasskeyHasher(), crypto.NewCipherService(), cfg.MatchMode, log), nil
}
