// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/dmatveev/swarm-console/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start is expected to return quickly, spawning goroutines internally;
// Stop blocks until the worker's goroutines have fully exited. Both
// methods must be safe to call more than once.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// HealthChecker is the slice of the health service the prober needs.
type HealthChecker interface {
	CheckNow(ctx context.Context) models.HealthState
}
