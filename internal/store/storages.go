package store

import (
	"context"
	"fmt"

	"github.com/dmatveev/swarm-console/internal/config"
	"github.com/dmatveev/swarm-console/internal/logger"
)

// ClientStorages groups all client-side storage components into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Preferences is the raw key-value repository.
	Preferences PreferenceRepository

	// Tokens persists the session token under its fixed key.
	Tokens *TokenStore

	// UI persists the theme and locale choices.
	UI *UIPreferences
}

// NewClientStorages initialises the client storage layer: it opens the
// SQLite database at cfg.DB.DSN (creating the file if needed), runs
// pending schema migrations, and wires the repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	prefs := NewPreferenceRepository(db, logger)

	return &ClientStorages{
		Preferences: prefs,
		Tokens:      NewTokenStore(prefs),
		UI:          NewUIPreferences(prefs),
	}, nil
}
