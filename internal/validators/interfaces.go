// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound data before it reaches the certificate
// service: issue requests, rendering templates and lookup parameters.
//
// Services and handlers depend on the Validator interface; the
// go-playground/validator backed implementation lives in this package.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
