// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the registry's scheduled background jobs.
package workers

// Worker is a background job with an explicit lifecycle.
//
// Run starts the worker without blocking. Stop halts it and waits for a job
// that is already running to finish.
type Worker interface {
	Run()
	Stop()
}
