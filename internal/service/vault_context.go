package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secure-vault/internal/lockout"
	"github.com/MKhiriev/go-secure-vault/internal/store"
)

// VaultContext is the state of one isolated vault: its entries and its
// lockout guard. Operations on a VaultContext are serialized.
type VaultContext struct {
	mu      sync.Mutex
	Entries store.EntryStore
	Guard   *lockout.Guard
}

// NewVaultContext bundles entries and guard.
func NewVaultContext(entries store.EntryStore, guard *lockout.Guard) *VaultContext {
	return &VaultContext{Entries: entries, Guard: guard}
}

// staticResolver always resolves to the same context. It backs the
// single-user terminal client.
type staticResolver struct {
	vc *VaultContext
}

// NewStaticResolver returns a resolver bound to vc.
func NewStaticResolver(vc *VaultContext) VaultContextResolver {
	return &staticResolver{vc: vc}
}

func (s *staticResolver) Resolve(context.Context) (*VaultContext, error) {
	return s.vc, nil
}
