// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a remote vault server over its REST API.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/utils"
	"github.com/MKhiriev/go-secure-vault/models"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient

	mu    sync.Mutex
	token string

	logger *logger.Logger
}

// NewHTTPVaultAdapter returns a [VaultAdapter] for the server at
// cfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPVaultAdapter(cfg config.Adapter, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpVaultAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpVaultAdapter) Token() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.token
}

func (h *httpVaultAdapter) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *httpVaultAdapter) OpenSession(ctx context.Context) error {
	var session models.SessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&session).
		Post("/api/session")
	if err != nil {
		return fmt.Errorf("open session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.setToken(session.Token)
	h.logger.Info().Str("session_id", session.SessionID).Msg("remote session opened")
	return nil
}

func (h *httpVaultAdapter) CloseSession(ctx context.Context) error {
	token := h.Token()
	if token == "" {
		return nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete("/api/session")
	if err != nil {
		return fmt.Errorf("close session request: %w", err)
	}
	h.setToken("")

	return mapHTTPError(resp)
}

// authedRequest opens a session on first use and returns a request
// carrying its token.
func (h *httpVaultAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.Token() == "" {
		if err := h.OpenSession(ctx); err != nil {
			return nil, err
		}
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()), nil
}

func (h *httpVaultAdapter) Store(ctx context.Context, req models.StoreRequest) (models.StoreResult, error) {
	var result models.StoreResult

	r, err := h.authedRequest(ctx)
	if err != nil {
		return result, err
	}
	resp, err := r.SetBody(req).SetResult(&result).Post("/api/vault/entries")
	if err != nil {
		return models.StoreResult{}, fmt.Errorf("store request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoreResult{}, err
	}

	return result, nil
}

func (h *httpVaultAdapter) Retrieve(ctx context.Context, req models.RetrieveRequest) (models.RetrieveResult, error) {
	var result models.RetrieveResult

	r, err := h.authedRequest(ctx)
	if err != nil {
		return result, err
	}
	resp, err := r.SetBody(req).SetResult(&result).Post("/api/vault/retrieve")
	if err != nil {
		return models.RetrieveResult{}, fmt.Errorf("retrieve request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RetrieveResult{}, err
	}

	return result, nil
}

// Reauthorize reports false without an error when the server rejects the
// master secret.
func (h *httpVaultAdapter) Reauthorize(ctx context.Context, masterSecret string) (bool, error) {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return false, err
	}
	resp, err := r.SetBody(models.ReauthorizeRequest{MasterSecret: masterSecret}).Post("/api/vault/reauthorize")
	if err != nil {
		return false, fmt.Errorf("reauthorize request: %w", err)
	}

	if resp.StatusCode() == http.StatusOK || resp.StatusCode() == http.StatusUnauthorized {
		var answer struct {
			Authorized *bool `json:"authorized"`
		}
		if json.Unmarshal(resp.Body(), &answer) == nil && answer.Authorized != nil {
			return *answer.Authorized, nil
		}
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return false, fmt.Errorf("reauthorize: unexpected response %q", resp.String())
}

func (h *httpVaultAdapter) ResetAttempts(ctx context.Context) error {
	r, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := r.Post("/api/vault/attempts/reset")
	if err != nil {
		return fmt.Errorf("reset attempts request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultAdapter) ListIDs(ctx context.Context) ([]string, error) {
	var list models.IDList

	r, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := r.SetResult(&list).Get("/api/vault/entries")
	if err != nil {
		return nil, fmt.Errorf("list ids request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.IDs, nil
}

func (h *httpVaultAdapter) GetStatus(ctx context.Context) (models.VaultStatus, error) {
	var status models.VaultStatus

	r, err := h.authedRequest(ctx)
	if err != nil {
		return status, err
	}
	resp, err := r.SetResult(&status).Get("/api/vault/status")
	if err != nil {
		return models.VaultStatus{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultStatus{}, err
	}

	return status, nil
}

func (h *httpVaultAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}
