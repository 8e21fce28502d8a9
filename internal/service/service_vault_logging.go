package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/models"
)

// VaultLoggingService records the outcome of every vault operation with
// the request-scoped logger. Passkeys, plaintext and master secrets are
// never logged.
type VaultLoggingService struct {
	inner VaultService
}

func NewVaultLoggingService() VaultServiceWrapper {
	return &VaultLoggingService{}
}

func (l *VaultLoggingService) Store(ctx context.Context, req models.StoreRequest) (models.StoreResult, error) {
	res, err := l.inner.Store(ctx, req)
	event(ctx, err).Str("op", "store").Str("id", req.ID).Msg("store finished")
	return res, err
}

func (l *VaultLoggingService) Retrieve(ctx context.Context, req models.RetrieveRequest) (models.RetrieveResult, error) {
	res, err := l.inner.Retrieve(ctx, req)
	e := event(ctx, err).Str("op", "retrieve").Str("id", req.ID)
	if remaining, ok := AttemptsRemaining(err); ok {
		e = e.Int("attempts_remaining", remaining)
	}
	e.Msg("retrieve finished")
	return res, err
}

func (l *VaultLoggingService) Reauthorize(ctx context.Context, masterSecret string) (bool, error) {
	ok, err := l.inner.Reauthorize(ctx, masterSecret)
	event(ctx, err).Str("op", "reauthorize").Bool("authorized", ok).Msg("reauthorize finished")
	return ok, err
}

func (l *VaultLoggingService) ResetAttempts(ctx context.Context) error {
	err := l.inner.ResetAttempts(ctx)
	event(ctx, err).Str("op", "reset_attempts").Msg("reset attempts finished")
	return err
}

func (l *VaultLoggingService) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := l.inner.ListIDs(ctx)
	if err != nil {
		event(ctx, err).Str("op", "list_ids").Msg("list ids failed")
	}
	return ids, err
}

func (l *VaultLoggingService) GetStatus(ctx context.Context) (models.VaultStatus, error) {
	status, err := l.inner.GetStatus(ctx)
	if err != nil {
		event(ctx, err).Str("op", "get_status").Msg("get status failed")
	}
	return status, err
}

func (l *VaultLoggingService) Wrap(inner VaultService) VaultService {
	l.inner = inner
	return l
}

// event picks the level from the outcome: Info on success, Warn otherwise.
func event(ctx context.Context, err error) *zerolog.Event {
	log := logger.FromContext(ctx)
	if err != nil {
		return log.Warn().Err(err)
	}
	return log.Info()
}
