package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
)

// Storages bundles the configured entry store [Factory] with the database
// connection it may own.
type Storages struct {
	Factory Factory
	db      *DB
}

// NewStorages builds the [Factory] selected by cfg.Backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case "", config.BackendMemory:
		return &Storages{Factory: NewMemoryFactory()}, nil
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{Factory: NewSQLFactory(db), db: db}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
