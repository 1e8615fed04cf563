// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server, the client and the
// command-line tools: typed context keys, keyed hashing, JSON and HTML
// response writers, issuer token handling and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by this
// package never collide with string keys set elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OrganizationIDCtxKey stores the organization an authenticated issuer acts for.
//
//	ctx := context.WithValue(ctx, utils.OrganizationIDCtxKey, "org-acme")
var OrganizationIDCtxKey = contextKey("organizationID")

// GetOrganizationIDFromContext returns the organization placed in ctx by the
// issuer authentication middleware. ok is false when the value is missing,
// empty or of an unexpected type.
func GetOrganizationIDFromContext(ctx context.Context) (string, bool) {
	organizationID, ok := ctx.Value(OrganizationIDCtxKey).(string)
	if !ok || organizationID == "" {
		return "", false
	}
	return organizationID, true
}
