// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

// IssuerTokenConfig holds what cmd/issuer-token needs to mint a token.
type IssuerTokenConfig struct {
	OrganizationID string
	TokenSignKey   string
	TokenIssuer    string
	TokenDuration  time.Duration
}

// GetIssuerTokenConfig reads the signing settings from .env and the
// environment and the organization and overrides from args.
//
// Flags:
//
//	-o / -organization organization the token is issued for (required)
//	-token-sign-key    signing key (defaults to APP_TOKEN_SIGN_KEY)
//	-token-issuer      issuer claim (defaults to APP_TOKEN_ISSUER)
//	-token-duration    lifetime (defaults to APP_TOKEN_DURATION)
func GetIssuerTokenConfig(args []string) (*IssuerTokenConfig, error) {
	base, err := newConfigBuilder().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		build()
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("issuer-token", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	cfg := &IssuerTokenConfig{}
	fs.StringVar(&cfg.OrganizationID, "o", "", "Organization ID")
	fs.StringVar(&cfg.OrganizationID, "organization", "", "Organization ID (alias)")
	fs.StringVar(&cfg.TokenSignKey, "token-sign-key", base.App.TokenSignKey, "Token signing key")
	fs.StringVar(&cfg.TokenIssuer, "token-issuer", base.App.TokenIssuer, "Token issuer")
	fs.DurationVar(&cfg.TokenDuration, "token-duration", base.App.TokenDuration, "Token duration (e.g., 720h)")

	if err = fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, cfg.validate()
}

func (cfg *IssuerTokenConfig) validate() error {
	if cfg.OrganizationID == "" {
		return errors.Join(ErrInvalidAppConfigs, errors.New("organization is required"))
	}
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}
