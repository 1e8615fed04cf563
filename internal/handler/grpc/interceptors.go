// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/app"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const traceIDKey = "x-trace-id"

// withTraceID attaches a child logger tagged with the call's trace id, taken
// from the x-trace-id metadata or generated, and echoes it in the header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpclib.UnaryServerInfo, next grpclib.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	_ = grpclib.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpclib.UnaryServerInfo, next grpclib.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// recoverer turns a panicking handler into an Internal error.
func (h *Handler) recoverer(ctx context.Context, req any, info *grpclib.UnaryServerInfo, next grpclib.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().Interface("panic", r).Str("method", info.FullMethod).Msg("gRPC handler panicked")
			err = status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()

	return next(ctx, req)
}
