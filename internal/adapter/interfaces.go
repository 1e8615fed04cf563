// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of the registry.
//
// [RegistryAdapter] is the client side of the HTTP API used by the terminal
// verifier; [PDFConverter] prints rendered certificates through headless
// Chrome for the server.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RegistryAdapter talks to a running registry over its public API.
type RegistryAdapter interface {
	// Verify checks a certificate code. Not found, expired and tampered
	// certificates come back as a result, never as an error.
	Verify(ctx context.Context, code string) (models.VerificationResult, error)

	// GetCertificate returns [ErrNotFound] (wrapped) for an unknown id.
	GetCertificate(ctx context.Context, id string) (models.CertificateResponse, error)

	// ListUserCertificates returns the user's certificates newest first.
	ListUserCertificates(ctx context.Context, userID string) (models.CertificateListResponse, error)

	// ServerVersion returns the version reported by the registry.
	ServerVersion(ctx context.Context) (string, error)
}

// PDFConverter prints an HTML document to PDF.
type PDFConverter interface {
	ConvertHTML(ctx context.Context, document string) ([]byte, error)
}
