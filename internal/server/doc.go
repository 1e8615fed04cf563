// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the registry's transport servers.
//
// It starts the HTTP and gRPC servers that are configured, waits for a stop
// signal and shuts every started server down gracefully.
package server
