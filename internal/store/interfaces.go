// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cert-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CertificateRepository persists issued certificates.
//
// Implementations are safe for concurrent use. Every certificate handed out is
// an independent copy: callers can never mutate stored state through a
// returned value.
type CertificateRepository interface {
	// Store persists a new certificate. It returns ErrCertificateAlreadyExists
	// when the id is taken and ErrUniqueCodeTaken when the unique code is.
	Store(ctx context.Context, certificate models.Certificate) error

	// GetByID returns ErrCertificateNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (models.Certificate, error)

	// GetByCode looks up a certificate by its exact unique code and returns
	// ErrCertificateNotFound when no certificate carries it.
	GetByCode(ctx context.Context, code string) (models.Certificate, error)

	// ListByUser returns the user's certificates, newest issuedAt first. An
	// unknown user yields an empty slice.
	ListByUser(ctx context.Context, userID string) ([]models.Certificate, error)

	// ListAll returns every stored certificate ordered by issuedAt.
	ListAll(ctx context.Context) ([]models.Certificate, error)
}

// ErrorClassificator interprets driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify decides whether a failed call may be retried.
	Classify(err error) ErrorClassification

	// Conflict maps a uniqueness violation to ErrCertificateAlreadyExists or
	// ErrUniqueCodeTaken, and returns nil for anything else.
	Conflict(err error) error
}
