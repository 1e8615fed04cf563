// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrGeneratingUniqueCode  = errors.New("error generating certificate code")
	ErrUniqueCodesExhausted  = errors.New("could not find a free certificate code")
	ErrStoringCertificate    = errors.New("error storing certificate")
	ErrVerifyingCertificate  = errors.New("error verifying certificate")
	ErrRenderingCertificate  = errors.New("error rendering certificate")
	ErrPDFExportDisabled     = errors.New("pdf export is disabled")
	ErrAuditingCertificates  = errors.New("error auditing certificates")
	ErrUnknownExpiryPolicy   = errors.New("unknown expiry policy")
	ErrHashKeyIsNotSpecified = errors.New("hash key is not specified")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrOrganizationMismatch    = errors.New("token does not allow issuing for this organization")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
