// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-cert-registry/models"

type verifiedMsg struct {
	result models.VerificationResult
	err    error
}

type listLoadedMsg struct {
	list models.CertificateListResponse
	err  error
}

type copiedMsg struct {
	url string
	err error
}

type clearStatusMsg struct{}
