// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

// Package service holds the client-side application logic of the Swarm
// console: the session controller that owns authentication state and
// the health service that tracks server reachability.
package service

import (
	"context"

	"github.com/dmatveev/swarm-console/internal/i18n"
	"github.com/dmatveev/swarm-console/models"
)

// SessionService is the single owner of authentication state. All reads
// go through Snapshot, all mutations go through the methods below, and
// every mutation is applied atomically. Concurrent operations follow
// last-write-wins semantics: in-flight calls are never cancelled, the
// result that lands last is the one that sticks.
type SessionService interface {
	// Snapshot returns an atomic copy of the current session state. The
	// returned value never shows a user without its token or vice versa.
	Snapshot() models.SessionState

	// Bootstrap adopts the token persisted by a previous run, if any,
	// and validates it with a silent profile refresh. A rejected token
	// is discarded. Safe to call when no token was ever saved.
	Bootstrap(ctx context.Context) error

	// Register submits the current registration form. Nickname and email
	// are trimmed before submission, the password is sent verbatim. On
	// success the returned token is persisted, the login form is seeded
	// with the registered email, and a silent profile refresh follows.
	Register(ctx context.Context) error

	// Login submits the current login form. The email is trimmed before
	// submission. On success the returned token is persisted and a
	// silent profile refresh follows.
	Login(ctx context.Context) error

	// RefreshProfile re-fetches the account profile for the current
	// token. When announce is true a success notice is raised. A server
	// response indicating a revoked token clears the session entirely.
	// With no active token the user is cleared and nothing is fetched.
	RefreshProfile(ctx context.Context, announce bool) error

	// Logout discards the session locally. No server call is made: the
	// token is simply forgotten on this machine.
	Logout(ctx context.Context)

	// SetMode switches the active credential form.
	SetMode(mode models.AuthMode)

	// SetRegisterForm and SetLoginForm replace the in-flight form values.
	SetRegisterForm(form models.RegisterForm)
	SetLoginForm(form models.LoginForm)

	// SetNotice replaces the current notice. Used by the presentation
	// layer for notices that do not originate from a server call.
	SetNotice(notice models.Notice)

	// SetLocale switches the dictionary used for service-raised notices.
	SetLocale(locale i18n.Locale)
}

// HealthService tracks server reachability. It is passive: checks run
// only when CheckNow is called, typically from a background prober.
type HealthService interface {
	// CheckNow probes the server health endpoint once and records the
	// outcome. The status reads "checking" while the probe is in flight.
	// Any transport or decode failure counts as offline. The check
	// timestamp is stamped on success and failure alike.
	CheckNow(ctx context.Context) models.HealthState

	// Snapshot returns the last recorded health state.
	Snapshot() models.HealthState
}
