// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal certificate verifier.
//
// It looks certificates up by code or by learner through a
// [adapter.RegistryAdapter] and renders the outcome with bubbletea.
package tui
