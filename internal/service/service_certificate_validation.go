// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/validators"
	"github.com/MKhiriev/go-cert-registry/models"
)

// CertificateValidationService rejects malformed input before it reaches the
// wrapped CertificateService.
type CertificateValidationService struct {
	inner     CertificateService
	validator validators.Validator
}

func NewCertificateValidationService() CertificateServiceWrapper {
	return &CertificateValidationService{
		validator: validators.NewCertificateValidator(),
	}
}

func (v *CertificateValidationService) Issue(ctx context.Context, req models.IssueRequest) (models.Certificate, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("issue request rejected")
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Issue(ctx, req)
}

// Verify answers not_found for codes that cannot be well-formed without
// touching storage.
func (v *CertificateValidationService) Verify(ctx context.Context, code string) (models.VerificationResult, error) {
	err := v.validator.Validate(ctx, NormalizeCode(code), validators.FieldUniqueCode)
	if errors.Is(err, validators.ErrInvalidUniqueCode) {
		return models.NewInvalidResult(models.VerificationReasonNotFound, nil), nil
	}
	if err != nil {
		return models.VerificationResult{}, err
	}

	return v.inner.Verify(ctx, code)
}

func (v *CertificateValidationService) GetCertificate(ctx context.Context, id string) (models.Certificate, error) {
	if err := v.validator.Validate(ctx, id, validators.FieldCertificateID); err != nil {
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.GetCertificate(ctx, id)
}

func (v *CertificateValidationService) ListUserCertificates(ctx context.Context, userID string) ([]models.Certificate, error) {
	if err := v.validator.Validate(ctx, userID, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListUserCertificates(ctx, userID)
}

func (v *CertificateValidationService) Render(ctx context.Context, id string, tmpl models.CertificateTemplate) (string, error) {
	if err := v.validateRender(ctx, id, tmpl); err != nil {
		return "", err
	}

	return v.inner.Render(ctx, id, tmpl)
}

func (v *CertificateValidationService) RenderPDF(ctx context.Context, id string, tmpl models.CertificateTemplate) ([]byte, error) {
	if err := v.validateRender(ctx, id, tmpl); err != nil {
		return nil, err
	}

	return v.inner.RenderPDF(ctx, id, tmpl)
}

func (v *CertificateValidationService) Audit(ctx context.Context) (models.AuditReport, error) {
	return v.inner.Audit(ctx)
}

func (v *CertificateValidationService) Wrap(wrapped CertificateService) CertificateService {
	v.inner = wrapped
	return v
}

func (v *CertificateValidationService) validateRender(ctx context.Context, id string, tmpl models.CertificateTemplate) error {
	err := errors.Join(
		v.validator.Validate(ctx, id, validators.FieldCertificateID),
		v.validator.Validate(ctx, tmpl),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
