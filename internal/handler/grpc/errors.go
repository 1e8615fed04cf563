// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cert-registry/internal/app"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	"github.com/MKhiriev/go-cert-registry/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrInvalidDataProvided: codes.InvalidArgument,
	store.ErrCertificateNotFound:   codes.NotFound,
}

// toStatus converts a service error into a gRPC status. Unmapped errors become
// Internal without their message.
func toStatus(ctx context.Context, err error) error {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, err.Error())
		}
	}

	logger.FromContext(ctx).Err(err).Msg("gRPC call failed")
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
