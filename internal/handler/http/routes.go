// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	POST   /api/session               open a session
//	DELETE /api/session               close the calling session
//	POST   /api/vault/entries         store
//	GET    /api/vault/entries         list ids
//	POST   /api/vault/retrieve        retrieve
//	POST   /api/vault/reauthorize     reauthorize with the master secret
//	POST   /api/vault/attempts/reset  reset failed attempts
//	GET    /api/vault/status          lockout state and entry count
//	GET    /api/version               server version
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(withCompression())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Post("/api/session", h.openSession)

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Delete("/api/session", h.closeSession)

		r.Route("/api/vault", func(r chi.Router) {
			r.Post("/entries", h.store)
			r.Get("/entries", h.listIDs)
			r.Post("/retrieve", h.retrieve)
			r.Post("/reauthorize", h.reauthorize)
			r.Post("/attempts/reset", h.resetAttempts)
			r.Get("/status", h.getStatus)
		})
	})

	return router
}
