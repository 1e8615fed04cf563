// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the registry API adapter and the terminal verifier
// into a single runnable application.
package client
