// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.With(h.auth).Post("/certificates", h.issue)

		r.Get("/certificates/{id}", h.getCertificate)
		r.Get("/certificates/{id}/html", h.renderHTML)
		r.Post("/certificates/{id}/html", h.renderHTML)
		r.Get("/certificates/{id}/pdf", h.renderPDF)

		r.Get("/users/{userID}/certificates", h.listUserCertificates)

		r.Get("/verify/{code}", h.verify)

		r.Get("/version/", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
