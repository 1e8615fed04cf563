// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/handler"
	myGRPC "github.com/MKhiriev/go-cert-registry/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-cert-registry/internal/handler/http"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func testServices(t *testing.T) *service.Services {
	t.Helper()
	appInfo, err := service.NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())
	require.NoError(t, err)
	return &service.Services{AppInfoService: appInfo}
}

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer(t *testing.T) {
	services := testServices(t)
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, "https://example.com/verify", logger.Nop()),
		GRPC: myGRPC.NewHandler(services, "https://example.com/verify", logger.Nop()),
	}

	srv, err := NewServer(handlers, config.Server{HTTPAddress: ":0", GRPCAddress: ":0"}, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)
	assert.NotNil(t, s.httpServer)
	assert.NotNil(t, s.gRPCServer)

	srv, err = NewServer(handlers, config.Server{HTTPAddress: ":0"}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, srv.(*server).gRPCServer)

	_, err = NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

// ─────────────────────────────────────────────
// HTTP
// ─────────────────────────────────────────────

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	h := myHTTP.NewHandler(testServices(t), "https://example.com/verify", logger.Nop())
	srv := newHTTPServer(h.Init(), config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		srv.serve(listener)
		close(done)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/api/version/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1.2.3", string(body))

	srv.Shutdown()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("HTTP server did not stop")
	}
}

func TestRun_StopsWhenContextIsDone(t *testing.T) {
	h := myHTTP.NewHandler(testServices(t), "https://example.com/verify", logger.Nop())
	s := &server{
		httpServer: newHTTPServer(h.Init(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, s.run(ctx))
}

// ─────────────────────────────────────────────
// gRPC
// ─────────────────────────────────────────────

func TestGRPCServer_ReportsHealth(t *testing.T) {
	h := myGRPC.NewHandler(testServices(t), "https://example.com/verify", logger.Nop())
	srv := newGRPCServer(h, config.Server{}, logger.Nop())

	listener := bufconn.Listen(1 << 20)
	go srv.serve(listener)
	t.Cleanup(srv.Shutdown)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	for _, name := range []string{"", myGRPC.ServiceName} {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), "service %q", name)
	}
}
