// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line configuration flags from args.
//
// Flags:
//
//	-a                server address in format [host]:[port]
//	-grpc-address     grpc server address in format [host]:[port]
//	-d                database DSN
//	-c/-config        json file path with configs
//	-token-sign-key   issuer token signing key
//	-token-issuer     issuer token "iss" claim
//	-token-duration   issuer token lifetime (e.g., "720h")
//	-request-timeout  inbound request timeout (e.g., "30s")
//	-hash-key         certificate seal key
//	-verify-base-url  base of credential URLs
//	-expiry-policy    fixed30 or calendar
//	-s                registry API base URL used by the client
//	-adapter-timeout  outbound request timeout
//	-chrome-url       remote Chrome DevTools websocket URL
//	-pdf              enable PDF export
//	-audit-schedule   cron expression of the integrity audit
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("cert-registry", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 720h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Certificate seal key")
	fs.StringVar(&cfg.App.VerifyBaseURL, "verify-base-url", "", "Base URL of credential links")
	fs.StringVar(&cfg.App.ExpiryPolicy, "expiry-policy", "", "Expiry policy: fixed30 or calendar")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "Registry API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.StringVar(&cfg.Adapter.ChromeURL, "chrome-url", "", "Remote Chrome DevTools URL")
	fs.BoolVar(&cfg.Adapter.PDFEnabled, "pdf", false, "Enable PDF export")
	fs.StringVar(&cfg.Workers.AuditSchedule, "audit-schedule", "", "Integrity audit cron expression")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns host:port, or "" when neither is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", empty or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Duration is a [time.Duration] that unmarshals from "1h"-style strings or
// nanosecond numbers.
type Duration time.Duration
