// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
)

type Handler struct {
	services *service.Services

	// verifyBaseURL prefixes the credential URL of every certificate response.
	verifyBaseURL string

	logger *logger.Logger
}

func NewHandler(services *service.Services, verifyBaseURL string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		verifyBaseURL: verifyBaseURL,
		logger:        logger,
	}
}
