// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/models"
)

// Verify mirrors GET /api/verify/{code}: every outcome is a successful call.
func (h *Handler) Verify(ctx context.Context, req *VerifyRequest) (*models.VerificationResult, error) {
	result, err := h.services.CertificateService.Verify(ctx, req.Code)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &result, nil
}

func (h *Handler) GetCertificate(ctx context.Context, req *GetCertificateRequest) (*models.CertificateResponse, error) {
	certificate, err := h.services.CertificateService.GetCertificate(ctx, req.ID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	response := models.NewCertificateResponse(certificate, h.verifyBaseURL)
	return &response, nil
}

func (h *Handler) ListUserCertificates(ctx context.Context, req *ListUserCertificatesRequest) (*models.CertificateListResponse, error) {
	certificates, err := h.services.CertificateService.ListUserCertificates(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	response := &models.CertificateListResponse{
		Certificates: make([]models.CertificateResponse, 0, len(certificates)),
		Length:       len(certificates),
	}
	for _, certificate := range certificates {
		response.Certificates = append(response.Certificates, models.NewCertificateResponse(certificate, h.verifyBaseURL))
	}
	return response, nil
}
