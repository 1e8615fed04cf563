// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Expiry policies understood by [App.ExpiryPolicy].
const (
	// ExpiryPolicyFixed30 treats every month as 30 days.
	ExpiryPolicyFixed30 = "fixed30"
	// ExpiryPolicyCalendar adds calendar months.
	ExpiryPolicyCalendar = "calendar"
)

// Default values applied by [configBuilder.build] to fields that no source set.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultGRPCAddress    = "localhost:9090"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "cert-registry"
	DefaultTokenDuration  = 30 * 24 * time.Hour
	DefaultVerifyBaseURL  = "https://zerogtraining.com/verify"
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultDotEnvPath     = ".env"
)

// StructuredConfig is the top-level configuration of the certificate registry.
// It is populated by merging a .env file, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds keys, token parameters and certificate policy.
	App App `envPrefix:"APP_"`

	// Storage holds the persistence backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for outbound integrations: the registry API used
	// by the client and the headless Chrome used for PDF export.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file merged on
	// top of env and flags. Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// TokenSignKey signs and verifies issuer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim required on issuer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by cmd/issuer-token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the passphrase the certificate seal key is derived from.
	// Changing it invalidates the seal of every stored certificate.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// VerifyBaseURL prefixes credential URLs, e.g. "https://example.com/verify".
	// Env: APP_VERIFY_BASE_URL
	VerifyBaseURL string `env:"VERIFY_BASE_URL"`

	// ExpiryPolicy is "fixed30" or "calendar".
	// Env: APP_EXPIRY_POLICY
	ExpiryPolicy string `env:"EXPIRY_POLICY"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the certificate registry.
type DB struct {
	// DSN selects the backend: empty for in-memory, "postgres://..." for
	// PostgreSQL, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds inbound transport settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound integration settings.
type Adapter struct {
	// HTTPAddress is the base URL of the registry API used by the client.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds outbound requests and PDF rendering.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ChromeURL is the DevTools websocket URL of a remote Chrome. When empty a
	// local Chrome process is started for each PDF.
	// Env: ADAPTER_CHROME_URL
	ChromeURL string `env:"CHROME_URL"`

	// PDFEnabled turns on the PDF export endpoint.
	// Env: ADAPTER_PDF_ENABLED
	PDFEnabled bool `env:"PDF_ENABLED"`
}

// Workers holds background job settings.
type Workers struct {
	// AuditSchedule is a cron expression (e.g. "@every 1h", "0 3 * * *") for
	// the integrity audit. Empty disables the audit.
	// Env: WORKERS_AUDIT_SCHEDULE
	AuditSchedule string `env:"AUDIT_SCHEDULE"`
}

// GetStructuredConfig loads and validates the server configuration.
//
// Sources in priority order (later sources override non-zero fields):
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1 to 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(DefaultDotEnvPath).
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
