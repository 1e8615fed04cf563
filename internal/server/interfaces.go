// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the transport servers in this package.
type Server interface {
	// RunServer starts serving and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees its resources.
	Shutdown()
}
