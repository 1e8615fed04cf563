// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, pattern, body string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = f.WriteString(body)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "env-issuer"}},
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
}

func TestBuild_DefaultsOnlyFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "0.0.0.0:9000"},
		App:    App{ExpiryPolicy: ExpiryPolicyCalendar},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, ExpiryPolicyCalendar, cfg.App.ExpiryPolicy)
	assert.Equal(t, DefaultVerifyBaseURL, cfg.App.VerifyBaseURL)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	t.Setenv("APP_VERIFY_BASE_URL", "")
	require.NoError(t, os.Unsetenv("APP_VERIFY_BASE_URL"))
	path := writeTempFile(t, "*.env", "APP_VERIFY_BASE_URL=https://dotenv.example/verify\n")

	b := newConfigBuilder().withDotEnv(path).withEnv()
	t.Cleanup(func() { _ = os.Unsetenv("APP_VERIFY_BASE_URL") })

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://dotenv.example/verify", b.configs[0].App.VerifyBaseURL)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("APP_VERSION", "from-env")
	path := writeTempFile(t, "*.env", "APP_VERSION=from-file\n")

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "localhost:8181", "-hash-key", "k"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:8181", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "k", b.configs[0].App.HashKey)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempFile(t, "config-*.json", `{"app":{"version":"json-version","token_issuer":"json-issuer"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	path := writeTempFile(t, "config-*.json", `{"app":{"version":"last-wins"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestBuilder_JSONOverridesFlagsAndEnv(t *testing.T) {
	path := writeTempFile(t, "config-*.json", `{"server":{"request_timeout":"5s"}}`)
	t.Setenv("SERVER_REQUEST_TIMEOUT", "1m")
	t.Setenv("APP_HASH_KEY", "env-hash")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-request-timeout", "10s", "-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "env-hash", cfg.App.HashKey)
}

// ── validate ──────────────────────────────────────────────────────────────────

func validServerConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.HashKey = "hash"
	cfg.App.TokenSignKey = "sign"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing hash key", mutate: func(c *StructuredConfig) { c.App.HashKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown expiry policy", mutate: func(c *StructuredConfig) { c.App.ExpiryPolicy = "lunar" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad verify url", mutate: func(c *StructuredConfig) { c.App.VerifyBaseURL = "not a url" }, wantErr: ErrInvalidAppConfigs},
		{name: "no http address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "pdf without timeout", mutate: func(c *StructuredConfig) {
			c.Adapter.PDFEnabled = true
			c.Adapter.RequestTimeout = 0
		}, wantErr: ErrInvalidAdapterConfigs},
		{name: "bad cron", mutate: func(c *StructuredConfig) { c.Workers.AuditSchedule = "every now and then" }, wantErr: ErrInvalidWorkerConfigs},
		{name: "good cron", mutate: func(c *StructuredConfig) { c.Workers.AuditSchedule = "@every 1h" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{ServerAddress: "http://localhost:8080", RequestTimeout: time.Second}).validate())
	assert.ErrorIs(t, (&ClientConfig{ServerAddress: "", RequestTimeout: time.Second}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{ServerAddress: "localhost:8080", RequestTimeout: time.Second}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{ServerAddress: "http://localhost:8080"}).validate(), ErrInvalidAdapterConfigs)
}

// ── issuer token config ───────────────────────────────────────────────────────

func TestGetIssuerTokenConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign")
	t.Setenv("APP_TOKEN_ISSUER", "")

	cfg, err := GetIssuerTokenConfig([]string{"-o", "org-acme", "-token-duration", "2h"})

	require.NoError(t, err)
	assert.Equal(t, "org-acme", cfg.OrganizationID)
	assert.Equal(t, "env-sign", cfg.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.TokenDuration)
}

func TestGetIssuerTokenConfig_RequiresOrganization(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign")

	_, err := GetIssuerTokenConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
