// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/crypto"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/store"
	"github.com/MKhiriev/go-secure-vault/models"
)

// vaultService is the engine behind [VaultService]. It hashes passkeys,
// encrypts and decrypts with the shared [crypto.CipherService], and keeps
// entries and attempt counters in the [VaultContext] resolved per call.
type vaultService struct {
	resolver VaultContextResolver
	hasher   crypto.PasskeyHasher
	cipher   crypto.CipherService

	// matchMode is config.MatchModeStrict or config.MatchModeCombined.
	matchMode string

	logger *logger.Logger
}

// NewVaultService returns the engine wrapped with validation and logging.
func NewVaultService(
	resolver VaultContextResolver,
	hasher crypto.PasskeyHasher,
	cipher crypto.CipherService,
	matchMode string,
	log *logger.Logger,
) VaultService {
	if matchMode == "" {
		matchMode = config.MatchModeStrict
	}

	var svc VaultService = &vaultService{
		resolver:  resolver,
		hasher:    hasher,
		cipher:    cipher,
		matchMode: matchMode,
		logger:    log,
	}

	svc = NewVaultValidationService(matchMode).Wrap(svc)
	svc = NewVaultLoggingService().Wrap(svc)

	return svc
}

// Store hashes the passkey, encrypts the text and inserts the entry.
// Nothing is stored when encryption fails or the id is taken.
func (v *vaultService) Store(ctx context.Context, req models.StoreRequest) (models.StoreResult, error) {
	vc, err := v.resolver.Resolve(ctx)
	if err != nil {
		return models.StoreResult{}, err
	}
	vc.mu.Lock()
	defer vc.mu.Unlock()

	ciphertext, err := v.cipher.Encrypt(req.Text)
	if err != nil {
		return models.StoreResult{}, fmt.Errorf("error encrypting text: %w", err)
	}

	entry := models.Entry{
		ID:         req.ID,
		Ciphertext: ciphertext,
		Digest:     v.hasher.Hash(req.Passkey),
		CreatedAt:  time.Now().UTC(),
	}
	if err = vc.Entries.Insert(ctx, entry); err != nil {
		return models.StoreResult{}, err
	}

	return models.StoreResult{ID: entry.ID, Ciphertext: ciphertext}, nil
}

// Retrieve checks the lockout, matches the entry and decrypts it.
//
// A locked context fails with [lockout.ErrLocked] without consuming an
// attempt. A miss records a failure and returns
// [*NotFoundOrWrongPasskeyError]. A decryption failure is returned as is
// and leaves the counter alone.
func (v *vaultService) Retrieve(ctx context.Context, req models.RetrieveRequest) (models.RetrieveResult, error) {
	vc, err := v.resolver.Resolve(ctx)
	if err != nil {
		return models.RetrieveResult{}, err
	}
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if err = vc.Guard.Allow(); err != nil {
		return models.RetrieveResult{}, err
	}

	entry, err := v.match(ctx, vc.Entries, req, v.hasher.Hash(req.Passkey))
	if errors.Is(err, store.ErrEntryNotFound) {
		return models.RetrieveResult{}, &NotFoundOrWrongPasskeyError{AttemptsRemaining: vc.Guard.RecordFailure()}
	}
	if err != nil {
		return models.RetrieveResult{}, err
	}

	plaintext, err := v.cipher.Decrypt(entry.Ciphertext)
	if err != nil {
		v.logger.Err(err).
			Str("func", "*vaultService.Retrieve").
			Str("id", entry.ID).
			Msg("stored entry matched but could not be decrypted")
		return models.RetrieveResult{}, err
	}
	vc.Guard.RecordSuccess()

	return models.RetrieveResult{ID: entry.ID, Plaintext: plaintext}, nil
}

// match finds the entry for req according to the match mode. Every kind of
// miss is reported as store.ErrEntryNotFound.
func (v *vaultService) match(ctx context.Context, entries store.EntryStore, req models.RetrieveRequest, digest string) (models.Entry, error) {
	if v.matchMode == config.MatchModeCombined {
		return entries.FindMatching(ctx, req.Ciphertext, digest)
	}

	entry, err := entries.Get(ctx, req.ID)
	if err != nil {
		return models.Entry{}, err
	}

	ciphertextOK := subtle.ConstantTimeCompare([]byte(entry.Ciphertext), []byte(req.Ciphertext)) == 1
	digestOK := subtle.ConstantTimeCompare([]byte(entry.Digest), []byte(digest)) == 1
	if !ciphertextOK || !digestOK {
		return models.Entry{}, store.ErrEntryNotFound
	}

	return entry, nil
}

func (v *vaultService) Reauthorize(ctx context.Context, masterSecret string) (bool, error) {
	vc, err := v.resolver.Resolve(ctx)
	if err != nil {
		return false, err
	}
	vc.mu.Lock()
	defer vc.mu.Unlock()

	return vc.Guard.Reauthorize(masterSecret), nil
}

func (v *vaultService) ResetAttempts(ctx context.Context) error {
	vc, err := v.resolver.Resolve(ctx)
	if err != nil {
		return err
	}
	vc.mu.Lock()
	defer vc.mu.Unlock()

	vc.Guard.Reset()
	return nil
}

func (v *vaultService) ListIDs(ctx context.Context) ([]string, error) {
	vc, err := v.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	return vc.Entries.ListIDs(ctx)
}

func (v *vaultService) GetStatus(ctx context.Context) (models.VaultStatus, error) {
	vc, err := v.resolver.Resolve(ctx)
	if err != nil {
		return models.VaultStatus{}, err
	}
	vc.mu.Lock()
	defer vc.mu.Unlock()

	count, err := vc.Entries.Count(ctx)
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("error counting entries: %w", err)
	}

	return models.VaultStatus{
		LockoutState:      vc.Guard.State(),
		Threshold:         vc.Guard.Threshold(),
		AttemptsRemaining: vc.Guard.Remaining(),
		EntryCount:        count,
	}, nil
}
