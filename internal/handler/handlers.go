// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-secure-vault/internal/config"
	"github.com/MKhiriev/go-secure-vault/internal/handler/http"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/service"
)

// Handlers holds the transport handlers of the vault server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the vault API handler. It fails with errNoHTTPAddress
// when cfg has no HTTP address.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	logger.Info().
		Str("address", cfg.HTTPAddress).
		Dur("request_timeout", cfg.RequestTimeout).
		Msg("creating vault api handler")

	return &Handlers{HTTP: http.NewHandler(services, cfg.RequestTimeout, logger)}, nil
}
