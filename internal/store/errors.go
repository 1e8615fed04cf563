// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repositories. Match with [errors.Is].
var (
	// ErrCertificateNotFound is returned when a lookup matches nothing.
	ErrCertificateNotFound = errors.New("certificate not found")

	// ErrCertificateAlreadyExists is returned when a certificate with the same
	// id is already stored.
	ErrCertificateAlreadyExists = errors.New("certificate already exists")

	// ErrUniqueCodeTaken is returned when another certificate already carries
	// the unique code. Issuance retries with a fresh code.
	ErrUniqueCodeTaken = errors.New("certificate unique code already taken")
)

// Low-level database errors, wrapped together with the driver error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan certificate row")
	ErrScanningRows       = errors.New("failed to scan certificate rows")
	ErrEncodingMetadata   = errors.New("failed to encode certificate metadata")
	ErrDecodingMetadata   = errors.New("failed to decode certificate metadata")
)
