// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

const (
	// hashDateLayout is ISO-8601 in UTC with millisecond precision.
	hashDateLayout         = "2006-01-02T15:04:05.000Z"
	verificationHashLength = 32
)

// VerificationHash returns the public verification digest of certificate:
// the first 32 hex characters of SHA-256 over
// id|userId|moduleId|completionDate|uniqueCode.
func VerificationHash(certificate models.Certificate) string {
	data := strings.Join([]string{
		certificate.ID,
		certificate.UserID,
		certificate.ModuleID,
		certificate.CompletionDate.UTC().Format(hashDateLayout),
		certificate.UniqueCode,
	}, "|")

	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])[:verificationHashLength]
}

// sealPayload is the canonical form of the attested certificate fields.
// Field order is fixed by the struct, so encoding/json output is stable.
type sealPayload struct {
	ID               string `json:"id"`
	UniqueCode       string `json:"unique_code"`
	UserID           string `json:"user_id"`
	UserName         string `json:"user_name"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	ModuleID         string `json:"module_id"`
	ModuleTitle      string `json:"module_title"`
	IssuedAt         string `json:"issued_at"`
	CompletionDate   string `json:"completion_date"`
	ExpiresAt        string `json:"expires_at"`
	Score            string `json:"score"`
	VerificationHash string `json:"verification_hash"`
}

func newSealPayload(c models.Certificate) []byte {
	payload := sealPayload{
		ID:               c.ID,
		UniqueCode:       c.UniqueCode,
		UserID:           c.UserID,
		UserName:         c.UserName,
		OrganizationID:   c.OrganizationID,
		OrganizationName: c.OrganizationName,
		ModuleID:         c.ModuleID,
		ModuleTitle:      c.ModuleTitle,
		IssuedAt:         c.IssuedAt.UTC().Format(time.RFC3339Nano),
		CompletionDate:   c.CompletionDate.UTC().Format(time.RFC3339Nano),
		VerificationHash: c.VerificationHash,
	}
	if c.ExpiresAt != nil {
		payload.ExpiresAt = c.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	if c.Score != nil {
		payload.Score = strconv.FormatFloat(*c.Score, 'g', -1, 64)
	}

	// a struct of strings always marshals
	data, _ := json.Marshal(payload)
	return data
}

// sealer computes and checks the keyed record seal.
type sealer struct {
	hasher *utils.Hasher
}

func (s sealer) seal(certificate models.Certificate) string {
	return s.hasher.HashString(string(newSealPayload(certificate)))
}

// intact reports whether both digests still match the certificate data.
func (s sealer) intact(certificate models.Certificate) bool {
	expected := VerificationHash(certificate)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(certificate.VerificationHash)) != 1 {
		return false
	}

	return s.hasher.Equal(string(newSealPayload(certificate)), certificate.SealHash)
}
