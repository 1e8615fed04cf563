// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockCertificateService implements service.CertificateService. Each method
// field can be overridden per test case; calling an unset one panics.
type mockCertificateService struct {
	issueFn                func(ctx context.Context, req models.IssueRequest) (models.Certificate, error)
	verifyFn               func(ctx context.Context, code string) (models.VerificationResult, error)
	getCertificateFn       func(ctx context.Context, id string) (models.Certificate, error)
	listUserCertificatesFn func(ctx context.Context, userID string) ([]models.Certificate, error)
	renderFn               func(ctx context.Context, id string, tmpl models.CertificateTemplate) (string, error)
	renderPDFFn            func(ctx context.Context, id string, tmpl models.CertificateTemplate) ([]byte, error)
	auditFn                func(ctx context.Context) (models.AuditReport, error)
}

func (m *mockCertificateService) Issue(ctx context.Context, req models.IssueRequest) (models.Certificate, error) {
	return m.issueFn(ctx, req)
}

func (m *mockCertificateService) Verify(ctx context.Context, code string) (models.VerificationResult, error) {
	return m.verifyFn(ctx, code)
}

func (m *mockCertificateService) GetCertificate(ctx context.Context, id string) (models.Certificate, error) {
	return m.getCertificateFn(ctx, id)
}

func (m *mockCertificateService) ListUserCertificates(ctx context.Context, userID string) ([]models.Certificate, error) {
	return m.listUserCertificatesFn(ctx, userID)
}

func (m *mockCertificateService) Render(ctx context.Context, id string, tmpl models.CertificateTemplate) (string, error) {
	return m.renderFn(ctx, id, tmpl)
}

func (m *mockCertificateService) RenderPDF(ctx context.Context, id string, tmpl models.CertificateTemplate) ([]byte, error) {
	return m.renderPDFFn(ctx, id, tmpl)
}

func (m *mockCertificateService) Audit(ctx context.Context) (models.AuditReport, error) {
	return m.auditFn(ctx)
}

// mockAuthService implements service.AuthService.
type mockAuthService struct {
	createTokenFn func(ctx context.Context, organizationID string) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, organizationID string) (models.Token, error) {
	return m.createTokenFn(ctx, organizationID)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
