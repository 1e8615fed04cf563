// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of [StructuredConfig] used by the verifier client.
type ClientConfig struct {
	// ServerAddress is the base URL of the registry API.
	ServerAddress string
	// RequestTimeout bounds each API call.
	RequestTimeout time.Duration
	// VerifyBaseURL is used to print credential URLs.
	VerifyBaseURL string
}

// GetClientConfig builds the client configuration from the same sources as
// [GetStructuredConfig] and validates the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		VerifyBaseURL:  cfg.App.VerifyBaseURL,
	}

	return clientCfg, clientCfg.validate()
}
