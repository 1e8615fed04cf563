// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/adapter"
	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/crypto"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/render"
	"github.com/MKhiriev/go-cert-registry/internal/store"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

const (
	defaultDuration = "Self-paced"

	// maxCodeAttempts bounds regeneration after a unique code collision.
	maxCodeAttempts = 5
)

type idGenerator interface {
	Generate() string
}

// certificateService is the concrete implementation of CertificateService.
type certificateService struct {
	repository store.CertificateRepository
	renderer   *render.Renderer

	// pdf is nil when PDF export is disabled.
	pdf adapter.PDFConverter

	sealer sealer
	expiry ExpiryPolicy

	ids    idGenerator
	random io.Reader
	now    func() time.Time

	logger *logger.Logger
}

// NewCertificateService builds a CertificateService over repository. pdf may
// be nil to disable PDF export. The seal key is derived from cfg.HashKey.
func NewCertificateService(repository store.CertificateRepository, pdf adapter.PDFConverter, cfg config.App, logger *logger.Logger) (CertificateService, error) {
	if cfg.HashKey == "" {
		return nil, ErrHashKeyIsNotSpecified
	}
	expiry, err := ExpiryPolicyByName(cfg.ExpiryPolicy)
	if err != nil {
		return nil, err
	}

	return &certificateService{
		repository: repository,
		renderer:   render.NewRenderer(cfg.VerifyBaseURL),
		pdf:        pdf,
		sealer:     sealer{hasher: utils.NewHasher(string(crypto.NewKeyChain().DeriveSealKey(cfg.HashKey)))},
		expiry:     expiry,
		ids:        utils.NewUUIDGenerator(),
		random:     rand.Reader,
		now:        time.Now,
		logger:     logger,
	}, nil
}

// Issue builds a certificate from req, stamps it with a fresh id, code and
// digests, and stores it. A code collision triggers a new code, up to
// maxCodeAttempts times.
func (s *certificateService) Issue(ctx context.Context, req models.IssueRequest) (models.Certificate, error) {
	log := logger.FromContext(ctx)

	certificate := s.newCertificate(req)

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := generateUniqueCode(s.random)
		if err != nil {
			log.Err(err).Str("func", "*certificateService.Issue").Msg("failed to generate certificate code")
			return models.Certificate{}, err
		}

		certificate.UniqueCode = code
		certificate.VerificationHash = VerificationHash(certificate)
		certificate.SealHash = s.sealer.seal(certificate)

		err = s.repository.Store(ctx, certificate)
		if err == nil {
			log.Info().
				Str("certificate_id", certificate.ID).
				Str("unique_code", certificate.UniqueCode).
				Str("user_id", certificate.UserID).
				Str("module_id", certificate.ModuleID).
				Msg("certificate issued")
			return certificate.Clone(), nil
		}

		if errors.Is(err, store.ErrUniqueCodeTaken) {
			log.Warn().Err(err).Int("attempt", attempt).Msg("certificate code collision, regenerating")
			continue
		}
		if errors.Is(err, store.ErrCertificateAlreadyExists) {
			log.Error().Err(err).Str("certificate_id", certificate.ID).Msg("generated certificate id already exists")
		} else {
			log.Err(err).Str("func", "*certificateService.Issue").Msg("failed to store certificate")
		}
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrStoringCertificate, err)
	}

	log.Error().Int("attempts", maxCodeAttempts).Msg("no free certificate code found")
	return models.Certificate{}, ErrUniqueCodesExhausted
}

func (s *certificateService) newCertificate(req models.IssueRequest) models.Certificate {
	issuedAt := s.now().UTC().Truncate(time.Millisecond)

	certificate := models.Certificate{
		ID:               s.ids.Generate(),
		UserID:           req.UserID,
		UserName:         req.UserName,
		OrganizationID:   req.OrganizationID,
		OrganizationName: req.OrganizationName,
		ModuleID:         req.ModuleID,
		ModuleTitle:      req.ModuleTitle,
		IssuedAt:         issuedAt,
		CompletionDate:   req.CompletionDate.UTC().Truncate(time.Millisecond),
		Metadata: models.CertificateMetadata{
			Duration:      req.Duration,
			Instructor:    req.Instructor,
			Accreditation: req.Accreditation,
		},
	}
	if certificate.Metadata.Duration == "" {
		certificate.Metadata.Duration = defaultDuration
	}
	if req.Score != nil {
		score := *req.Score
		certificate.Score = &score
	}
	if req.Credits != nil {
		credits := *req.Credits
		certificate.Metadata.Credits = &credits
	}
	if req.ExpiresInMonths != nil && *req.ExpiresInMonths > 0 {
		expiresAt := s.expiry(issuedAt, *req.ExpiresInMonths)
		certificate.ExpiresAt = &expiresAt
	}

	return certificate
}

// Verify looks the certificate up by its normalized code and judges it in
// order: unknown, expired, tampered, valid.
func (s *certificateService) Verify(ctx context.Context, code string) (models.VerificationResult, error) {
	log := logger.FromContext(ctx)
	code = NormalizeCode(code)

	certificate, err := s.repository.GetByCode(ctx, code)
	if errors.Is(err, store.ErrCertificateNotFound) {
		log.Debug().Str("unique_code", code).Msg("certificate not found")
		return models.NewInvalidResult(models.VerificationReasonNotFound, nil), nil
	}
	if err != nil {
		log.Err(err).Str("func", "*certificateService.Verify").Msg("failed to look up certificate")
		return models.VerificationResult{}, fmt.Errorf("%w: %w", ErrVerifyingCertificate, err)
	}

	if certificate.IsExpired(s.now()) {
		return models.NewInvalidResult(models.VerificationReasonExpired, &certificate), nil
	}

	if !s.sealer.intact(certificate) {
		log.WithCertificate(certificate.ID, certificate.UniqueCode).Error().
			Msg("certificate integrity check failed")
		return models.NewInvalidResult(models.VerificationReasonIntegrityCheckFailed, nil), nil
	}

	return models.NewValidResult(certificate), nil
}

func (s *certificateService) GetCertificate(ctx context.Context, id string) (models.Certificate, error) {
	certificate, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("get certificate %s: %w", id, err)
	}
	return certificate, nil
}

func (s *certificateService) ListUserCertificates(ctx context.Context, userID string) ([]models.Certificate, error) {
	certificates, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list certificates of user %s: %w", userID, err)
	}
	return certificates, nil
}

func (s *certificateService) Render(ctx context.Context, id string, tmpl models.CertificateTemplate) (string, error) {
	certificate, err := s.GetCertificate(ctx, id)
	if err != nil {
		return "", err
	}

	document, err := s.renderer.Render(certificate, tmpl)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*certificateService.Render").Msg("failed to render certificate")
		return "", fmt.Errorf("%w: %w", ErrRenderingCertificate, err)
	}

	return document, nil
}

func (s *certificateService) RenderPDF(ctx context.Context, id string, tmpl models.CertificateTemplate) ([]byte, error) {
	if s.pdf == nil {
		return nil, ErrPDFExportDisabled
	}

	document, err := s.Render(ctx, id, tmpl)
	if err != nil {
		return nil, err
	}

	pdf, err := s.pdf.ConvertHTML(ctx, document)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*certificateService.RenderPDF").Msg("failed to print certificate")
		return nil, fmt.Errorf("%w: %w", ErrRenderingCertificate, err)
	}

	return pdf, nil
}

// Audit runs the integrity check over every stored certificate and logs each
// failure at error level.
func (s *certificateService) Audit(ctx context.Context) (models.AuditReport, error) {
	log := logger.FromContext(ctx)
	report := models.AuditReport{
		StartedAt:         s.now().UTC(),
		IntegrityFailures: []string{},
	}

	certificates, err := s.repository.ListAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "*certificateService.Audit").Msg("failed to list certificates")
		return models.AuditReport{}, fmt.Errorf("%w: %w", ErrAuditingCertificates, err)
	}

	now := s.now()
	for _, certificate := range certificates {
		if err = ctx.Err(); err != nil {
			return models.AuditReport{}, err
		}
		report.Checked++

		if !s.sealer.intact(certificate) {
			log.WithCertificate(certificate.ID, certificate.UniqueCode).Error().
				Msg("certificate integrity check failed during audit")
			report.IntegrityFailures = append(report.IntegrityFailures, certificate.ID)
			continue
		}
		if certificate.IsExpired(now) {
			report.Expired++
			continue
		}
		report.Valid++
	}

	report.FinishedAt = s.now().UTC()
	return report, nil
}
