// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the issuer authentication middleware.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingOrganization is returned when an authenticated request has no
	// organization in its context.
	ErrMissingOrganization = errors.New("no organization in request context")

	ErrInvalidJSON = errors.New("invalid JSON was passed")

	errUnauthorized = errors.New("unauthorized")
)
