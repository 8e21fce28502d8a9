// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-secure-vault/internal/logger"
	"github.com/MKhiriev/go-secure-vault/internal/utils"
	"github.com/MKhiriev/go-secure-vault/models"
)

func (h *Handler) store(w http.ResponseWriter, r *http.Request) {
	var req models.StoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.store", err)
		return
	}

	res, err := h.services.VaultService.Store(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.store", err)
		return
	}

	writeJSON(w, r, "*Handler.store", res, http.StatusCreated)
}

func (h *Handler) retrieve(w http.ResponseWriter, r *http.Request) {
	var req models.RetrieveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.retrieve", err)
		return
	}

	res, err := h.services.VaultService.Retrieve(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.retrieve", err)
		return
	}

	writeJSON(w, r, "*Handler.retrieve", res, http.StatusOK)
}

// reauthorize answers 200 with authorized=true, or 401 with
// authorized=false when the master secret is wrong.
func (h *Handler) reauthorize(w http.ResponseWriter, r *http.Request) {
	var req models.ReauthorizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "*Handler.reauthorize", err)
		return
	}

	ok, err := h.services.VaultService.Reauthorize(r.Context(), req.MasterSecret)
	if err != nil {
		writeError(w, r, "*Handler.reauthorize", err)
		return
	}

	status := http.StatusOK
	if !ok {
		status = http.StatusUnauthorized
	}
	writeJSON(w, r, "*Handler.reauthorize", models.ReauthorizeResponse{Authorized: ok}, status)
}

func (h *Handler) resetAttempts(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VaultService.ResetAttempts(r.Context()); err != nil {
		writeError(w, r, "*Handler.resetAttempts", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.services.VaultService.ListIDs(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listIDs", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	writeJSON(w, r, "*Handler.listIDs", models.IDList{IDs: ids}, http.StatusOK)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.VaultService.GetStatus(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getStatus", err)
		return
	}

	writeJSON(w, r, "*Handler.getStatus", status, http.StatusOK)
}

// maxBodySize bounds every JSON request body.
const maxBodySize = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, fn string, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
	}
}
