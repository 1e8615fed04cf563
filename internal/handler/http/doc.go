// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the certificate registry.
//
// It wires chi routes for issuing, fetching, listing, rendering and verifying
// certificates. Request tracing, access logging, response compression and
// issuer authentication are handled here before requests reach the service
// layer.
package http
