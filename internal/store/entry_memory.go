// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secure-vault/models"
)

// memoryEntryStore is the map-backed [EntryStore]. It keeps an index from
// digest to ids so FindMatching only compares candidates that share the
// passkey digest.
type memoryEntryStore struct {
	mu       sync.RWMutex
	entries  map[string]models.Entry
	order    []string
	byDigest map[string][]string
}

// NewMemoryEntryStore returns an empty in-memory [EntryStore].
func NewMemoryEntryStore() EntryStore {
	return &memoryEntryStore{
		entries:  make(map[string]models.Entry),
		byDigest: make(map[string][]string),
	}
}

func (m *memoryEntryStore) Insert(_ context.Context, entry models.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[entry.ID]; ok {
		return ErrDuplicateID
	}

	m.entries[entry.ID] = entry
	m.order = append(m.order, entry.ID)
	m.byDigest[entry.Digest] = append(m.byDigest[entry.Digest], entry.ID)

	return nil
}

func (m *memoryEntryStore) Get(_ context.Context, id string) (models.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[id]
	if !ok {
		return models.Entry{}, ErrEntryNotFound
	}

	return entry, nil
}

func (m *memoryEntryStore) FindMatching(_ context.Context, ciphertext, digest string) (models.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.byDigest[digest] {
		if entry := m.entries[id]; entry.Ciphertext == ciphertext {
			return entry, nil
		}
	}

	return models.Entry{}, ErrEntryNotFound
}

func (m *memoryEntryStore) ListIDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, len(m.order))
	copy(ids, m.order)

	return ids, nil
}

func (m *memoryEntryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries), nil
}

// memoryFactory creates a fresh map per session. Dropping a session simply
// forgets it; the map is garbage collected once the session releases it.
type memoryFactory struct{}

// NewMemoryFactory returns a [Factory] of in-memory stores.
func NewMemoryFactory() Factory {
	return memoryFactory{}
}

func (memoryFactory) Open(context.Context, string) (EntryStore, error) {
	return NewMemoryEntryStore(), nil
}

func (memoryFactory) Drop(context.Context, string) error {
	return nil
}
