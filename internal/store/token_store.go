// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

package store

import (
	"context"
	"errors"
)

// PrefSessionToken is the fixed preference key the session token is
// persisted under.
const PrefSessionToken = "session.token"

// TokenStore persists the single session token. It is the only source of
// truth for "is a session present": no expiry logic lives here, expiry
// is inferred purely from server rejection.
type TokenStore struct {
	prefs PreferenceRepository
}

func NewTokenStore(prefs PreferenceRepository) *TokenStore {
	return &TokenStore{prefs: prefs}
}

// Load returns the persisted token, or an empty string when no session
// has ever been saved.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.prefs.Get(ctx, PrefSessionToken)
	if errors.Is(err, ErrPreferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return token, nil
}

// Save persists token. Saving an empty token is equivalent to Clear.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	return s.prefs.Set(ctx, PrefSessionToken, token)
}

// Clear removes the persisted token.
func (s *TokenStore) Clear(ctx context.Context) error {
	return s.prefs.Delete(ctx, PrefSessionToken)
}
