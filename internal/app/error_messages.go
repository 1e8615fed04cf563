// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the public failure messages shared by the HTTP and
// gRPC transports.
//
// Failures on the server side are reported with these fixed strings instead
// of the wrapped error, so storage and driver details never reach callers.
package app

const (
	// MsgInternalServerError replaces any unexpected server-side failure.
	MsgInternalServerError = "internal server error"

	// MsgPDFExportDisabled is returned when the PDF endpoint is called on a
	// registry started without a PDF converter.
	MsgPDFExportDisabled = "pdf export is disabled"

	// MsgCodesExhausted is returned when no free certificate code could be
	// generated. The caller may retry.
	MsgCodesExhausted = "could not allocate a certificate code, retry later"
)
