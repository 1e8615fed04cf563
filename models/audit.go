// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditReport summarizes one integrity pass over every stored certificate.
type AuditReport struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Checked int `json:"checked"`
	Valid   int `json:"valid"`
	Expired int `json:"expired"`

	// IntegrityFailures lists the ids of certificates whose digests no longer
	// match their data.
	IntegrityFailures []string `json:"integrity_failures"`
}
