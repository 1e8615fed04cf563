// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-cert-registry/internal/adapter"
	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/store"
)

type Services struct {
	CertificateService CertificateService
	AuthService        AuthService
	AppInfoService     AppInfoService
}

// NewServices wires the service layer. pdf may be nil to disable PDF export.
func NewServices(storages *store.Storages, pdf adapter.PDFConverter, cfg config.App, logger *logger.Logger) (*Services, error) {
	certificateService, err := NewCertificateService(storages.CertificateRepository, pdf, cfg, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CertificateService: NewCertificateValidationService().Wrap(certificateService),
		AuthService:        NewAuthService(cfg, logger),
		AppInfoService:     appInfoService,
	}, nil
}
