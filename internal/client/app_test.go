// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/mock"
	"github.com/MKhiriev/go-cert-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubVerifier struct {
	called bool
	err    error
}

func (s *stubVerifier) Run(context.Context) error {
	s.called = true
	return s.err
}

func TestNewApp(t *testing.T) {
	cfg := &config.ClientConfig{
		ServerAddress:  "http://localhost:8080",
		RequestTimeout: time.Second,
		VerifyBaseURL:  "https://certs.example.com/verify",
	}

	app, err := NewApp(cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, app.registry)
	assert.NotNil(t, app.ui)
}

func TestNewApp_InvalidAddress(t *testing.T) {
	cfg := &config.ClientConfig{ServerAddress: "   ", RequestTimeout: time.Second}

	app, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name       string
		versionErr error
		uiErr      error
		wantErr    bool
	}{
		{name: "registry reachable"},
		{name: "registry unreachable still opens the verifier", versionErr: errors.New("connection refused")},
		{name: "verifier failure", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			registry := mock.NewMockRegistryAdapter(ctrl)
			registry.EXPECT().ServerVersion(gomock.Any()).Return("1.2.3", tt.versionErr)

			ui := &stubVerifier{err: tt.uiErr}
			app := &App{registry: registry, ui: ui, logger: logger.Nop()}

			err := app.run(context.Background())

			assert.True(t, ui.called)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
