// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidIssueRequest  = errors.New("invalid issue request")
	ErrInvalidTemplate      = errors.New("invalid certificate template")
	ErrInvalidCertificateID = errors.New("invalid certificate id")
	ErrInvalidUniqueCode    = errors.New("invalid certificate code")
	ErrInvalidUserID        = errors.New("invalid user id")
)

// FieldErrors maps JSON field names to human-readable validation messages.
// It wraps the sentinel error of the validated type so callers can match it
// with errors.Is and still report per-field details.
type FieldErrors struct {
	kind   error
	Fields map[string]string
}

func newFieldErrors(kind error) *FieldErrors {
	return &FieldErrors{kind: kind, Fields: make(map[string]string)}
}

func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return e.kind.Error() + ": " + strings.Join(parts, "; ")
}

func (e *FieldErrors) Unwrap() error {
	return e.kind
}
