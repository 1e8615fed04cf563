// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cert-registry/internal/adapter"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	registry      adapter.RegistryAdapter
	verifyBaseURL string
	buildInfo     models.AppBuildInfo
	logger        *logger.Logger
}

func New(registry adapter.RegistryAdapter, verifyBaseURL string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		registry:      registry,
		verifyBaseURL: verifyBaseURL,
		buildInfo:     buildInfo,
		logger:        logger.GetChildLogger(),
	}
}

// Run blocks until the user quits the verifier.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Debug().Msg("starting verifier")

	model := newVerifierModel(ctx, t.registry, t.verifyBaseURL, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		t.logger.Err(err).Msg("verifier stopped with error")
		return err
	}
	return nil
}
