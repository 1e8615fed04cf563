// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	myGRPC "github.com/MKhiriev/go-cert-registry/internal/handler/grpc"
	"github.com/MKhiriev/go-cert-registry/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type grpcServer struct {
	address string

	server *grpc.Server
	health *health.Server

	logger *logger.Logger
}

// newGRPCServer registers the registry service and the standard health
// service on a new gRPC server.
func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(myGRPC.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
		health:  healthServer,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server failed to listen")
		return
	}
	g.serve(listener)
}

func (g *grpcServer) serve(listener net.Listener) {
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.health.Shutdown()
	g.server.GracefulStop()
}
