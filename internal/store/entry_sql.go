// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/models"
)

// sqlEntryStore is the SQLite-backed [EntryStore]. All sessions share one
// entries table; every query is scoped by session_id.
type sqlEntryStore struct {
	db        *DB
	sessionID string
}

// NewSQLEntryStore returns an [EntryStore] over db scoped to sessionID.
func NewSQLEntryStore(db *DB, sessionID string) EntryStore {
	return &sqlEntryStore{db: db, sessionID: sessionID}
}

// Insert implements [EntryStore]. Uniqueness is enforced by the
// (session_id, id) primary key, so concurrent inserts of the same id leave
// exactly one row.
func (s *sqlEntryStore) Insert(ctx context.Context, entry models.Entry) error {
	log := logger.FromContext(ctx)

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query, args, err := insertEntryQuery(s.sessionID, entry.ID, entry.Ciphertext, entry.Digest, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		log.Err(err).
			Str("func", "*sqlEntryStore.Insert").
			Str("id", entry.ID).
			Msg("failed to insert entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Get implements [EntryStore].
func (s *sqlEntryStore) Get(ctx context.Context, id string) (models.Entry, error) {
	query, args, err := getEntryQuery(s.sessionID, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryOne(ctx, "*sqlEntryStore.Get", query, args)
}

// FindMatching implements [EntryStore].
func (s *sqlEntryStore) FindMatching(ctx context.Context, ciphertext, digest string) (models.Entry, error) {
	query, args, err := findMatchingQuery(s.sessionID, ciphertext, digest)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryOne(ctx, "*sqlEntryStore.FindMatching", query, args)
}

// ListIDs implements [EntryStore].
func (s *sqlEntryStore) ListIDs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := listIDsQuery(s.sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlEntryStore.ListIDs").Msg("failed to list entry ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// Count implements [EntryStore].
func (s *sqlEntryStore) Count(ctx context.Context) (int, error) {
	query, args, err := countQuery(s.sessionID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlEntryStore.Count").Msg("failed to count entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (s *sqlEntryStore) queryOne(ctx context.Context, fn, query string, args []any) (models.Entry, error) {
	var entry models.Entry
	err := s.db.QueryRowContext(ctx, query, args...).
		Scan(&entry.ID, &entry.Ciphertext, &entry.Digest, &entry.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to query entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// sqlFactory scopes one shared database by session id.
type sqlFactory struct {
	db *DB
}

// NewSQLFactory returns a [Factory] over db.
func NewSQLFactory(db *DB) Factory {
	return &sqlFactory{db: db}
}

func (f *sqlFactory) Open(_ context.Context, sessionID string) (EntryStore, error) {
	return NewSQLEntryStore(f.db, sessionID), nil
}

// Drop removes every entry of the session.
func (f *sqlFactory) Drop(ctx context.Context, sessionID string) error {
	query, args, err := dropSessionQuery(sessionID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = f.db.ExecContext(ctx, query, args...); err != nil {
		f.db.logger.Err(err).Str("func", "*sqlFactory.Drop").Str("session_id", sessionID).Msg("failed to drop session entries")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
