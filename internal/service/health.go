// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/dmatveev/swarm-console/internal/adapter"
	"github.com/dmatveev/swarm-console/internal/logger"
	"github.com/dmatveev/swarm-console/models"
)

type healthService struct {
	gateway adapter.ServerGateway
	log     *logger.Logger

	mu    sync.Mutex
	state models.HealthState
}

// NewHealthService creates the health tracker. The state starts as
// "checking" and stays there until the first CheckNow completes.
func NewHealthService(gateway adapter.ServerGateway, log *logger.Logger) HealthService {
	return &healthService{
		gateway: gateway,
		log:     log,
		state:   models.HealthState{Status: models.ServerStatusChecking},
	}
}

func (h *healthService) CheckNow(ctx context.Context) models.HealthState {
	// Status flips back to "checking" for the duration of the probe, as
	// in-flight checks are surfaced to the user.
	h.mu.Lock()
	h.state.Status = models.ServerStatusChecking
	h.mu.Unlock()

	resp, err := h.gateway.Health(ctx)
	now := time.Now()

	status := models.ServerStatusOffline
	switch {
	case err != nil:
		h.log.Debug().Err(err).Msg("health check failed")
	case resp.Status == models.HealthStatusOK:
		status = models.ServerStatusOnline
	default:
		// A reachable server answering anything but "ok" is not online.
		h.log.Debug().Str("status", resp.Status).Msg("health check returned unexpected status")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.Status = status
	h.state.LastCheckedAt = &now

	return h.snapshotLocked()
}

func (h *healthService) Snapshot() models.HealthState {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.snapshotLocked()
}

func (h *healthService) snapshotLocked() models.HealthState {
	snap := h.state
	if h.state.LastCheckedAt != nil {
		checked := *h.state.LastCheckedAt
		snap.LastCheckedAt = &checked
	}

	return snap
}
