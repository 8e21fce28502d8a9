package store

import (
	"context"

	"github.com/MKhiriev/go-secure-vault/models"
)

// EntryStore maps an id to its [models.Entry] within one session.
type EntryStore interface {
	// Insert adds entry atomically, or fails with [ErrDuplicateID].
	Insert(ctx context.Context, entry models.Entry) error

	// Get returns the entry stored under id, or [ErrEntryNotFound].
	Get(ctx context.Context, id string) (models.Entry, error)

	// FindMatching returns the entry whose ciphertext and digest both equal
	// the supplied values, or [ErrEntryNotFound]. The id plays no part.
	FindMatching(ctx context.Context, ciphertext, digest string) (models.Entry, error)

	// ListIDs returns all ids in insertion order.
	ListIDs(ctx context.Context) ([]string, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)
}

// Factory hands out one isolated [EntryStore] per session and releases it
// when the session ends.
type Factory interface {
	Open(ctx context.Context, sessionID string) (EntryStore, error)
	Drop(ctx context.Context, sessionID string) error
}
