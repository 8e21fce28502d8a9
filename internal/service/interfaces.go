package service

import (
	"context"

	"github.com/MKhiriev/go-secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the boundary of the vault engine. Every call operates on
// the [VaultContext] resolved from ctx.
type VaultService interface {
	// Store encrypts req.Text and keeps it under req.ID.
	Store(ctx context.Context, req models.StoreRequest) (models.StoreResult, error)

	// Retrieve decrypts the entry matching req. Failed matches count
	// towards the lockout.
	Retrieve(ctx context.Context, req models.RetrieveRequest) (models.RetrieveResult, error)

	// Reauthorize clears the lockout when masterSecret is correct.
	Reauthorize(ctx context.Context, masterSecret string) (bool, error)

	// ResetAttempts clears the lockout unconditionally.
	ResetAttempts(ctx context.Context) error

	ListIDs(ctx context.Context) ([]string, error)
	GetStatus(ctx context.Context) (models.VaultStatus, error)
}

// VaultServiceWrapper decorates a VaultService with extra behaviour such
// as validation or logging.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// VaultContextResolver finds the [VaultContext] a call operates on.
type VaultContextResolver interface {
	Resolve(ctx context.Context) (*VaultContext, error)
}

// SessionService owns one [VaultContext] per session.
type SessionService interface {
	VaultContextResolver

	// Open creates a session and returns its signed token.
	Open(ctx context.Context) (models.SessionResponse, error)

	// Authenticate validates token, checks that its session is alive and
	// marks it as recently used. It returns the session id.
	Authenticate(ctx context.Context, token string) (string, error)

	// Close ends a session and drops its entries.
	Close(ctx context.Context, sessionID string) error

	// Sweep closes sessions idle for longer than the session TTL and
	// returns how many were closed.
	Sweep(ctx context.Context) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
