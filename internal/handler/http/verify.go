// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// verify answers 200 for every outcome; the body tells valid, expired,
// tampered and unknown codes apart.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.CertificateService.Verify(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, err, "*Handler.verify")
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}
