// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

// Package store implements durable client-side storage for the Swarm
// console: the session token and UI preferences (theme, locale), kept in
// a small local SQLite database under fixed keys.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/preference_repository_mock.go -package=mock

// PreferenceRepository is a durable key-value store scoped to the local
// installation. It is the single source of truth for everything the
// console persists between runs.
type PreferenceRepository interface {
	// Get returns the value stored under name.
	// Returns [ErrPreferenceNotFound] when the key has never been set.
	Get(ctx context.Context, name string) (string, error)

	// Set stores value under name, replacing any previous value.
	Set(ctx context.Context, name string, value string) error

	// Delete removes the value stored under name. Deleting a key that
	// does not exist is a no-op.
	Delete(ctx context.Context, name string) error
}
