// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// validate checks the server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.HashKey == "" {
		errs = append(errs, errors.Join(ErrInvalidAppConfigs, errors.New("hash key is required")))
	}
	if cfg.App.TokenSignKey == "" {
		errs = append(errs, errors.Join(ErrInvalidAppConfigs, errors.New("token sign key is required")))
	}
	if cfg.App.ExpiryPolicy != ExpiryPolicyFixed30 && cfg.App.ExpiryPolicy != ExpiryPolicyCalendar {
		errs = append(errs, errors.Join(ErrInvalidAppConfigs, errors.New("unknown expiry policy "+cfg.App.ExpiryPolicy)))
	}
	if _, err := url.ParseRequestURI(cfg.App.VerifyBaseURL); err != nil {
		errs = append(errs, errors.Join(ErrInvalidAppConfigs, err))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Adapter.PDFEnabled && cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.AuditSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Workers.AuditSchedule); err != nil {
			errs = append(errs, errors.Join(ErrInvalidWorkerConfigs, err))
		}
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if !strings.HasPrefix(cfg.ServerAddress, "http://") && !strings.HasPrefix(cfg.ServerAddress, "https://") {
		return errors.Join(ErrInvalidAdapterConfigs, errors.New("server address must be an http(s) URL"))
	}

	return nil
}
