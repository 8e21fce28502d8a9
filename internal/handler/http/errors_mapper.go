// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-secure-vault/internal/crypto"
	"github.com/MKhiriev/go-secure-vault/internal/lockout"
	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/service"
	"github.com/MKhiriev/go-secure-vault/internal/store"
	"github.com/MKhiriev/go-secure-vault/internal/utils"
	"github.com/MKhiriev/go-secure-vault/models"
)

// attemptsRemainingHeader reports the attempts left after a failed retrieval.
const attemptsRemainingHeader = "X-Attempts-Remaining"

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrRequestTooLarge:            http.StatusRequestEntityTooLarge,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	service.ErrValidation:             http.StatusBadRequest,
	service.ErrNotFoundOrWrongPasskey: http.StatusUnauthorized,
	service.ErrSessionNotFound:        http.StatusUnauthorized,
	service.ErrInvalidSessionToken:    http.StatusUnauthorized,
	service.ErrTokenCreationFailed:    http.StatusInternalServerError,
	service.ErrTooManySessions:        http.StatusServiceUnavailable,

	lockout.ErrLocked:    http.StatusLocked,
	crypto.ErrDecryption: http.StatusUnprocessableEntity,

	store.ErrDuplicateID:      http.StatusConflict,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError maps err to a status code. A deadline is checked first
// since store errors wrap it together with their own sentinel.
func statusFromError(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as a [models.ErrorResponse]. Failed
// retrievals also carry the remaining attempts in the body and in the
// X-Attempts-Remaining header. Internal errors are not echoed back.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	if remaining, ok := service.AttemptsRemaining(err); ok {
		w.Header().Set(attemptsRemainingHeader, strconv.Itoa(remaining))
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: err.Error(), AttemptsRemaining: &remaining}, status)
		return
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
