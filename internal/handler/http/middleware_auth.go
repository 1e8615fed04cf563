// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cert-registry/internal/utils"
)

// auth admits requests carrying a valid issuer token and stores the token's
// organization in the request context under [utils.OrganizationIDCtxKey].
//
// Requests are rejected with 401 when the "Authorization" header is missing,
// is not a bearer token, or the token fails [service.AuthService.ParseToken].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeUnauthorized(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeUnauthorized(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeUnauthorized(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.OrganizationIDCtxKey, token.OrganizationID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="certificates"`)
	writeError(w, r, fmt.Errorf("%w: %w", errUnauthorized, err), "*Handler.auth")
}
