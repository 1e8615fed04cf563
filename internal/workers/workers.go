// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled in cfg. An empty audit schedule
// leaves the audit disabled.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if cfg.AuditSchedule != "" {
		audit, err := NewAuditWorker(services.CertificateService, cfg.AuditSchedule, logger)
		if err != nil {
			return nil, err
		}
		w.workers = append(w.workers, audit)
	}

	logger.Info().Int("workers", len(w.workers)).Msg("workers created")
	return w, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop halts the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
