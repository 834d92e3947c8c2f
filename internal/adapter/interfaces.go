// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

// Package adapter provides the transport layer for talking to the Swarm
// account service.
//
// The primary abstraction is [ServerGateway], which decouples the service
// layer from the wire protocol. The package ships a single HTTP/REST
// implementation ([NewHTTPServerGateway]) built on resty.
//
// All non-2xx responses are mapped to a single error kind, [*APIError],
// that carries only a human-readable message. The adapter deliberately
// makes no 4xx/5xx distinction: callers classify failures by message
// content (see the session service's revocation handling).
package adapter

import (
	"context"

	"github.com/dmatveev/swarm-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_gateway_mock.go -package=mock

// ServerGateway defines transport-agnostic communication with the Swarm
// account service. Implementations are responsible for serialisation,
// authentication headers, and mapping transport failures to [*APIError].
type ServerGateway interface {
	// Register creates a new account via POST /api/auth/register and
	// returns the issued token together with the account snapshot.
	// The request is sent exactly once; no retries.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates existing credentials via POST /api/auth/login
	// and returns the issued token together with the account snapshot.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Me fetches the account snapshot for the supplied bearer token via
	// GET /api/auth/me. A rejected token surfaces as an [*APIError] whose
	// message the caller inspects for revocation markers.
	Me(ctx context.Context, token string) (models.PublicUser, error)

	// Health performs a single liveness probe via GET /api/health.
	// Any transport or HTTP failure is returned as-is; the health prober
	// treats every failure identically to a non-ok status.
	Health(ctx context.Context) (models.HealthResponse, error)
}
