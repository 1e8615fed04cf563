// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/models"
)

// CertificateService issues, verifies and renders certificates.
type CertificateService interface {
	// Issue creates, seals and stores a new certificate.
	Issue(ctx context.Context, req models.IssueRequest) (models.Certificate, error)

	// Verify checks the certificate carrying code. Unknown, expired and
	// tampered certificates are reported through the result, not the error;
	// the error is reserved for storage faults.
	Verify(ctx context.Context, code string) (models.VerificationResult, error)

	GetCertificate(ctx context.Context, id string) (models.Certificate, error)
	ListUserCertificates(ctx context.Context, userID string) ([]models.Certificate, error)

	// Render returns the HTML document of the certificate with the given id.
	Render(ctx context.Context, id string, tmpl models.CertificateTemplate) (string, error)

	// RenderPDF prints the rendered document to PDF. It returns
	// ErrPDFExportDisabled when no converter is configured.
	RenderPDF(ctx context.Context, id string, tmpl models.CertificateTemplate) ([]byte, error)

	// Audit re-verifies every stored certificate.
	Audit(ctx context.Context) (models.AuditReport, error)
}

// AuthService mints and checks issuer tokens.
type AuthService interface {
	CreateToken(ctx context.Context, organizationID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CertificateServiceWrapper defines middleware composition for
// CertificateService. Implementations wrap an existing CertificateService to
// add behavior such as validation.
type CertificateServiceWrapper interface {
	Wrap(CertificateService) CertificateService
}
