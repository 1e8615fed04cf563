// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the read side of the certificate registry over gRPC.
//
// Messages are plain Go structs encoded with the JSON codec registered by this
// package, so clients must call with the "json" content-subtype.
package grpc

import (
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	grpclib "google.golang.org/grpc"
)

// Handler is the root gRPC transport handler. It implements
// [CertificateRegistryServer].
type Handler struct {
	services *service.Services

	// verifyBaseURL prefixes the credential URL of certificate responses.
	verifyBaseURL string

	logger *logger.Logger
}

// NewHandler constructs a [Handler] over the service layer.
func NewHandler(services *service.Services, verifyBaseURL string, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:      services,
		verifyBaseURL: verifyBaseURL,
		logger:        logger,
	}
}

// Register attaches the registry service to server.
func (h *Handler) Register(server grpclib.ServiceRegistrar) {
	server.RegisterService(&ServiceDesc, h)
}

// ServerOptions returns the interceptors the registry service expects.
func (h *Handler) ServerOptions() []grpclib.ServerOption {
	return []grpclib.ServerOption{
		grpclib.ChainUnaryInterceptor(h.recoverer, h.withTraceID, h.withLogging),
	}
}
