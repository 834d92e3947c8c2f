// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

// Package tui implements the terminal interface of the Swarm console.
//
// The interface has two screens driven by a single Bubble Tea model:
// the authentication screen with register and login forms, and the
// workspace screen shown once a session is established. All session
// state lives in the service layer; the model only holds widget state
// and re-reads a fresh snapshot on every render.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmatveev/swarm-console/internal/i18n"
	"github.com/dmatveev/swarm-console/internal/logger"
	"github.com/dmatveev/swarm-console/internal/service"
	"github.com/dmatveev/swarm-console/internal/store"
	"github.com/dmatveev/swarm-console/models"
)

var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services *service.ClientServices
	uiPrefs  *store.UIPreferences
	log      *logger.Logger
}

func New(services *service.ClientServices, uiPrefs *store.UIPreferences, log *logger.Logger) *TUI {
	return &TUI{services: services, uiPrefs: uiPrefs, log: log}
}

// Run loads the persisted theme and locale, then blocks inside the
// Bubble Tea event loop until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	theme, err := t.uiPrefs.Theme(ctx)
	if err != nil {
		t.log.Warn().Err(err).Msg("failed to load theme preference")
		theme = models.ThemeLight
	}

	locale := i18n.LocaleEN
	if stored, err := t.uiPrefs.Locale(ctx); err != nil {
		t.log.Warn().Err(err).Msg("failed to load locale preference")
	} else if stored != "" {
		locale = i18n.Locale(stored)
	}

	t.services.Session.SetLocale(locale)

	model := newAppModel(ctx, t.services, t.uiPrefs, theme, locale)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	if result, ok := finalModel.(appModel); ok && result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
