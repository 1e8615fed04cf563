// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/models"
	"github.com/go-resty/resty/v2"
)

type httpRegistryAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPRegistryAdapter constructs an HTTP implementation of
// [RegistryAdapter]. It normalizes and validates cfg.ServerAddress and applies
// cfg.RequestTimeout to every request.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPRegistryAdapter(cfg config.ClientConfig, logger *logger.Logger) (RegistryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpRegistryAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Verify implements [RegistryAdapter] via GET /api/verify/{code}.
func (h *httpRegistryAdapter) Verify(ctx context.Context, code string) (models.VerificationResult, error) {
	var result models.VerificationResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("code", strings.TrimSpace(code)).
		SetResult(&result).
		Get("/api/verify/{code}")
	if err != nil {
		return models.VerificationResult{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerificationResult{}, err
	}

	return result, nil
}

// GetCertificate implements [RegistryAdapter] via GET /api/certificates/{id}.
func (h *httpRegistryAdapter) GetCertificate(ctx context.Context, id string) (models.CertificateResponse, error) {
	var certificate models.CertificateResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&certificate).
		Get("/api/certificates/{id}")
	if err != nil {
		return models.CertificateResponse{}, fmt.Errorf("get certificate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CertificateResponse{}, err
	}

	return certificate, nil
}

// ListUserCertificates implements [RegistryAdapter] via
// GET /api/users/{userID}/certificates.
func (h *httpRegistryAdapter) ListUserCertificates(ctx context.Context, userID string) (models.CertificateListResponse, error) {
	var list models.CertificateListResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("userID", userID).
		SetResult(&list).
		Get("/api/users/{userID}/certificates")
	if err != nil {
		return models.CertificateListResponse{}, fmt.Errorf("list certificates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CertificateListResponse{}, err
	}

	if list.Length != len(list.Certificates) {
		h.logger.Warn().
			Int("length", list.Length).
			Int("received", len(list.Certificates)).
			Msg("certificate list length mismatch")
	}

	return list, nil
}

// ServerVersion implements [RegistryAdapter] via GET /api/version/.
func (h *httpRegistryAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
