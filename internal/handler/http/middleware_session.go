// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-secure-vault/internal/utils"
)

// withSession authenticates the bearer token and stores the session id in
// the request context. The request logger gains a session_id field.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "*Handler.withSession", ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "*Handler.withSession", ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		sessionID, err := h.services.SessionService.Authenticate(ctx, token)
		if err != nil {
			writeError(w, r, "*Handler.withSession", err)
			return
		}

		l := zerolog.Ctx(ctx).With().Str("session_id", sessionID).Logger()
		ctx = l.WithContext(utils.WithSessionID(ctx, sessionID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
