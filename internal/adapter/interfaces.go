package adapter

import (
	"context"

	"github.com/MKhiriev/go-secure-vault/internal/service"
)

// VaultAdapter is a [service.VaultService] backed by a remote vault server.
// Vault calls open a session on first use.
type VaultAdapter interface {
	service.VaultService

	// OpenSession starts a new server session, replacing the current one.
	OpenSession(ctx context.Context) error

	// CloseSession ends the current session. It is a no-op without one.
	CloseSession(ctx context.Context) error

	Token() string

	ServerVersion(ctx context.Context) (string, error)
}
