// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CertificateResponse is the transport view of a [Certificate]. It adds the
// public credential URL that verifiers can open to check the certificate.
type CertificateResponse struct {
	Certificate

	// CredentialURL is the verification link for the certificate's code.
	CredentialURL string `json:"credential_url"`
}

// NewCertificateResponse wraps certificate with its credential URL built from
// verifyBaseURL.
func NewCertificateResponse(certificate Certificate, verifyBaseURL string) CertificateResponse {
	return CertificateResponse{
		Certificate:   certificate,
		CredentialURL: certificate.CredentialURL(verifyBaseURL),
	}
}

// CertificateListResponse contains every certificate issued to a user, newest
// first.
type CertificateListResponse struct {
	Certificates []CertificateResponse `json:"certificates"`

	// Length is the number of entries in Certificates.
	Length int `json:"length"`
}
