// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-secure-vault/internal/crypto"
	"github.com/MKhiriev/go-secure-vault/internal/lockout"
	"github.com/MKhiriev/go-secure-vault/internal/service"
	"github.com/MKhiriev/go-secure-vault/internal/store"
	"github.com/MKhiriev/go-secure-vault/models"
)

const attemptsRemainingHeader = "X-Attempts-Remaining"

// mapHTTPError turns a non-2xx response into the error the local engine
// would have returned, so callers handle both the same way.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", service.ErrValidation, msg)
	case http.StatusUnauthorized:
		if remaining, ok := attemptsRemaining(resp); ok {
			return &service.NotFoundOrWrongPasskeyError{AttemptsRemaining: remaining}
		}
		return fmt.Errorf("%w: %w: %s", ErrUnauthorized, service.ErrSessionNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", store.ErrDuplicateID, msg)
	case http.StatusLocked:
		return lockout.ErrLocked
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", crypto.ErrDecryption, msg)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrRequestTooLarge, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	case http.StatusServiceUnavailable:
		if msg == service.ErrTooManySessions.Error() {
			return fmt.Errorf("%w: %w", ErrServiceUnavailable, service.ErrTooManySessions)
		}
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

func errorMessage(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}

// attemptsRemaining reads the header first and falls back to the body.
func attemptsRemaining(resp *resty.Response) (int, bool) {
	if v := resp.Header().Get(attemptsRemainingHeader); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.AttemptsRemaining != nil {
		return *body.AttemptsRemaining, true
	}
	return 0, false
}
