// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cert-registry/internal/app"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	"github.com/MKhiriev/go-cert-registry/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                     http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrMissingOrganization:             http.StatusUnauthorized,
	errUnauthorized:                    http.StatusUnauthorized,
	service.ErrOrganizationMismatch:    http.StatusForbidden,
	service.ErrPDFExportDisabled:       http.StatusNotImplemented,
	service.ErrUniqueCodesExhausted:    http.StatusServiceUnavailable,

	store.ErrCertificateNotFound:      http.StatusNotFound,
	store.ErrCertificateAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage hides server-side failures behind fixed messages.
func errorMessage(err error, status int) string {
	switch {
	case status == http.StatusNotImplemented:
		return app.MsgPDFExportDisabled
	case status == http.StatusServiceUnavailable:
		return app.MsgCodesExhausted
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	}
	return err.Error()
}
