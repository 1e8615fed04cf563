// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// auditTimeout bounds a single audit run.
const auditTimeout = 10 * time.Minute

// auditWorker re-checks the integrity of every stored certificate on a cron
// schedule. Failures are reported through the error log.
type auditWorker struct {
	cron    *cron.Cron
	service service.CertificateService
	logger  *logger.Logger
}

// NewAuditWorker schedules the integrity audit. schedule is a standard
// five-field cron expression or a descriptor such as "@every 1h".
func NewAuditWorker(svc service.CertificateService, schedule string, log *logger.Logger) (Worker, error) {
	w := &auditWorker{
		// a slow audit is skipped rather than stacked
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		service: svc,
		logger:  log.GetChildLogger(),
	}
	w.logger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", "audit")
	})

	if _, err := w.cron.AddFunc(schedule, w.audit); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, schedule, err)
	}

	return w, nil
}

func (w *auditWorker) Run() {
	w.logger.Info().Msg("audit worker started")
	w.cron.Start()
}

func (w *auditWorker) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Info().Msg("audit worker stopped")
}

func (w *auditWorker) audit() {
	ctx, cancel := context.WithTimeout(w.logger.WithContext(context.Background()), auditTimeout)
	defer cancel()

	report, err := w.service.Audit(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*auditWorker.audit").Msg("integrity audit failed")
		return
	}

	event := w.logger.Info()
	if len(report.IntegrityFailures) > 0 {
		event = w.logger.Error().Strs("failed_ids", report.IntegrityFailures)
	}
	event.
		Int("checked", report.Checked).
		Int("valid", report.Valid).
		Int("expired", report.Expired).
		Int("integrity_failures", len(report.IntegrityFailures)).
		Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
		Msg("integrity audit finished")
}
