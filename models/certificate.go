// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Certificate is an issued completion certificate.
//
// A Certificate is an immutable attestation: once issued, none of its fields
// change. Corrections are made by issuing a new certificate. The user, organization
// and module names are snapshots taken at issuance time and intentionally do not
// follow later renames of the referenced entities.
type Certificate struct {
	// ID is the process-unique identifier assigned at issuance (UUIDv7).
	ID string `json:"id"`

	// UniqueCode is the short shareable verification code, e.g. "ABCD-EFGH-JKLM".
	UniqueCode string `json:"unique_code"`

	UserID           string `json:"user_id"`
	UserName         string `json:"user_name"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	ModuleID         string `json:"module_id"`
	ModuleTitle      string `json:"module_title"`

	// IssuedAt is the moment the certificate was created.
	IssuedAt time.Time `json:"issued_at"`

	// CompletionDate is the caller-supplied date the work was finished.
	CompletionDate time.Time `json:"completion_date"`

	// ExpiresAt is nil for certificates that never expire.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// Score is the optional result, in percent.
	Score *float64 `json:"score,omitempty"`

	// VerificationHash is the digest over the identifying fields
	// (id, user id, module id, completion date, unique code).
	VerificationHash string `json:"verification_hash"`

	// SealHash is a keyed digest over every attested field. It detects changes
	// to fields that VerificationHash does not cover, such as Score.
	SealHash string `json:"seal_hash"`

	// Metadata is descriptive and takes part in neither digest.
	Metadata CertificateMetadata `json:"metadata"`
}

// CertificateMetadata holds free-form descriptive fields of a certificate.
type CertificateMetadata struct {
	Duration      string   `json:"duration"`
	Credits       *float64 `json:"credits,omitempty"`
	Instructor    string   `json:"instructor,omitempty"`
	Accreditation string   `json:"accreditation,omitempty"`
}

// IsExpired reports whether the certificate has an expiration date strictly
// before now. Certificates without ExpiresAt never expire.
func (c Certificate) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// Clone returns a deep copy of c. Pointer fields are duplicated so the copy
// can be handed out without exposing the original's memory.
func (c Certificate) Clone() Certificate {
	clone := c
	if c.ExpiresAt != nil {
		expiresAt := *c.ExpiresAt
		clone.ExpiresAt = &expiresAt
	}
	if c.Score != nil {
		score := *c.Score
		clone.Score = &score
	}
	if c.Metadata.Credits != nil {
		credits := *c.Metadata.Credits
		clone.Metadata.Credits = &credits
	}
	return clone
}

// CredentialURL returns the public verification URL of the certificate for
// the given base URL (e.g. "https://example.com/verify").
func (c Certificate) CredentialURL(verifyBaseURL string) string {
	return strings.TrimRight(verifyBaseURL, "/") + "/" + c.UniqueCode
}
