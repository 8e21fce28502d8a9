package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/migrations"
)

// DB is the SQLite connection shared by all session entry stores.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the entries schema and logs the resulting version.
func (db *DB) Migrate(ctx context.Context) error {
	version, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	db.logger.Debug().Int64("schema_version", version).Msg("entries schema is up to date")

	return nil
}
