// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VerificationReason explains why a verification did not succeed.
type VerificationReason string

const (
	// VerificationReasonNotFound means no certificate carries the code.
	VerificationReasonNotFound VerificationReason = "not_found"

	// VerificationReasonExpired means the certificate is genuine but its
	// expiration date has passed.
	VerificationReasonExpired VerificationReason = "expired"

	// VerificationReasonIntegrityCheckFailed means the stored record no longer
	// matches its digests.
	VerificationReasonIntegrityCheckFailed VerificationReason = "integrity_check_failed"
)

// Message returns a human-readable description of the reason.
func (r VerificationReason) Message() string {
	switch r {
	case VerificationReasonNotFound:
		return "Certificate not found"
	case VerificationReasonExpired:
		return "Certificate has expired"
	case VerificationReasonIntegrityCheckFailed:
		return "Certificate integrity check failed"
	default:
		return ""
	}
}

// VerificationResult is the outcome of verifying a certificate code.
//
// Certificate is set for valid and expired results, and nil when the code is
// unknown or the record failed the integrity check.
type VerificationResult struct {
	Valid       bool               `json:"valid"`
	Certificate *Certificate       `json:"certificate,omitempty"`
	Reason      VerificationReason `json:"reason,omitempty"`
	Message     string             `json:"message,omitempty"`
}

// NewInvalidResult builds a failed [VerificationResult] for reason. certificate
// may be nil.
func NewInvalidResult(reason VerificationReason, certificate *Certificate) VerificationResult {
	return VerificationResult{
		Valid:       false,
		Certificate: certificate,
		Reason:      reason,
		Message:     reason.Message(),
	}
}

// NewValidResult builds a successful [VerificationResult].
func NewValidResult(certificate Certificate) VerificationResult {
	return VerificationResult{
		Valid:       true,
		Certificate: &certificate,
	}
}
