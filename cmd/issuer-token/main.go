// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command issuer-token mints a bearer token that authorizes certificate
// issuance for one organization.
//
//	issuer-token -o org-acme -token-duration 720h
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
)

func main() {
	log := logger.NewFileLogger("issuer-token", os.DevNull)

	cfg, err := config.GetIssuerTokenConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	auth := service.NewAuthService(config.App{
		TokenSignKey:  cfg.TokenSignKey,
		TokenIssuer:   cfg.TokenIssuer,
		TokenDuration: cfg.TokenDuration,
	}, log)

	token, err := auth.CreateToken(context.Background(), cfg.OrganizationID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(token.SignedString)
}
