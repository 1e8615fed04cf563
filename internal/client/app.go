// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cert-registry/internal/adapter"
	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/tui"
	"github.com/MKhiriev/go-cert-registry/models"
)

type verifier interface {
	Run(ctx context.Context) error
}

// App is the interactive certificate verifier.
type App struct {
	registry adapter.RegistryAdapter
	ui       verifier
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	registry, err := adapter.NewHTTPRegistryAdapter(*cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create registry adapter: %w", err)
	}

	return &App{
		registry: registry,
		ui:       tui.New(registry, cfg.VerifyBaseURL, buildInfo, logger),
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	// an unreachable registry is reported inside the UI, not here
	if version, err := a.registry.ServerVersion(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("registry version check failed")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to registry")
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("verifier: %w", err)
	}
	return nil
}
