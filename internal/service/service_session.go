// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/crypto"
	"github.com/MKhiriev/go-secure-vault/internal/lockout"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/store"
	"github.com/MKhiriev/go-secure-vault/internal/utils"
	"github.com/MKhiriev/go-secure-vault/models"
)

// defaultTokenTTL is used when the configuration leaves App.TokenTTL unset.
const defaultTokenTTL = 12 * time.Hour

type idGenerator interface {
	Generate() string
}

type session struct {
	models.Session
	vault *VaultContext
}

// sessionService keeps live sessions in memory. Each session owns its own
// entry store and lockout guard; nothing is shared between sessions except
// the process-wide cipher held by the vault engine.
//
// A session ends after ttl without an authenticated request. Its token
// outlives that and only bounds the total session lifetime.
type sessionService struct {
	mu       sync.RWMutex
	sessions map[string]*session

	factory     store.Factory
	master      crypto.MasterVerifier
	threshold   int
	maxSessions int

	tokenSignKey string
	tokenIssuer  string
	tokenTTL     time.Duration
	ttl          time.Duration

	ids    idGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewSessionService constructs a [SessionService] that opens entry stores
// from factory and guards them with master and cfg.LockoutThreshold.
// A zero cfg.MaxSessions leaves the number of sessions unbounded.
func NewSessionService(factory store.Factory, master crypto.MasterVerifier, cfg config.App, log *logger.Logger) SessionService {
	tokenTTL := cfg.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}

	return &sessionService{
		sessions:     make(map[string]*session),
		factory:      factory,
		master:       master,
		threshold:    cfg.LockoutThreshold,
		maxSessions:  cfg.MaxSessions,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		tokenTTL:     max(tokenTTL, cfg.SessionTTL),
		ttl:          cfg.SessionTTL,
		ids:          utils.NewSessionIDGenerator(),
		now:          time.Now,
		logger:       log,
	}
}

func (s *sessionService) Open(ctx context.Context) (models.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		logger.FromContext(ctx).Warn().Int("max_sessions", s.maxSessions).Msg("session cap reached")
		return models.SessionResponse{}, ErrTooManySessions
	}

	id := s.ids.Generate()

	token, err := utils.GenerateSessionToken(s.tokenIssuer, id, s.tokenTTL, s.tokenSignKey)
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	entries, err := s.factory.Open(ctx, id)
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("error opening entry store: %w", err)
	}

	now := s.now()
	s.sessions[id] = &session{
		Session: models.Session{ID: id, CreatedAt: now, LastSeen: now},
		vault:   NewVaultContext(entries, lockout.NewGuard(s.threshold, s.master)),
	}

	logger.FromContext(ctx).Info().Str("session_id", id).Msg("session opened")

	return models.SessionResponse{Token: token.String(), SessionID: id}, nil
}

func (s *sessionService) Authenticate(ctx context.Context, token string) (string, error) {
	parsed, err := utils.ValidateAndParseSessionToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*sessionService.Authenticate").Msg("token rejected")
		return "", fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}

	now := s.now()

	s.mu.Lock()
	sess, ok := s.sessions[parsed.SessionID]
	if !ok {
		s.mu.Unlock()
		return "", ErrSessionNotFound
	}
	if now.Sub(sess.LastSeen) > s.ttl {
		delete(s.sessions, sess.ID)
		s.mu.Unlock()

		if err = s.factory.Drop(ctx, sess.ID); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Authenticate").Msg("failed to drop idle session")
		}
		logger.FromContext(ctx).Info().Str("session_id", sess.ID).Msg("idle session expired")
		return "", ErrSessionNotFound
	}
	sess.LastSeen = now
	s.mu.Unlock()

	return sess.ID, nil
}

// Resolve returns the context of the session stored in ctx by the session
// middleware.
func (s *sessionService) Resolve(ctx context.Context) (*VaultContext, error) {
	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return sess.vault, nil
}

func (s *sessionService) Close(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	if err := s.factory.Drop(ctx, sessionID); err != nil {
		return fmt.Errorf("error dropping session entries: %w", err)
	}
	logger.FromContext(ctx).Info().Str("session_id", sessionID).Msg("session closed")

	return nil
}

func (s *sessionService) Sweep(ctx context.Context) (int, error) {
	deadline := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []string
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(deadline) {
			expired = append(expired, id)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, id := range expired {
		if err := s.factory.Drop(ctx, id); err != nil {
			return len(expired), fmt.Errorf("error dropping expired session %s: %w", id, err)
		}
	}

	return len(expired), nil
}
