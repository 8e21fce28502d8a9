// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/service"
)

// Handler serves the vault HTTP API on top of [service.Services].
type Handler struct {
	services *service.Services

	// requestTimeout bounds every request context. Zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates a Handler. requestTimeout is applied to each request
// through chi's Timeout middleware when positive.
func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
