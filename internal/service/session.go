// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmatveev/swarm-console/internal/adapter"
	"github.com/dmatveev/swarm-console/internal/i18n"
	"github.com/dmatveev/swarm-console/internal/logger"
	"github.com/dmatveev/swarm-console/internal/store"
	"github.com/dmatveev/swarm-console/models"
)

type sessionService struct {
	gateway adapter.ServerGateway
	tokens  *store.TokenStore
	log     *logger.Logger

	mu    sync.Mutex
	state models.SessionState
	dict  *i18n.Dictionary
}

// NewSessionService creates the session controller. The initial state is
// anonymous with the registration form active; call Bootstrap to adopt a
// token persisted by a previous run.
func NewSessionService(gateway adapter.ServerGateway, tokens *store.TokenStore, dict *i18n.Dictionary, log *logger.Logger) SessionService {
	return &sessionService{
		gateway: gateway,
		tokens:  tokens,
		log:     log,
		state:   models.SessionState{Mode: models.ModeRegister},
		dict:    dict,
	}
}

func (s *sessionService) Snapshot() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	if s.state.User != nil {
		user := *s.state.User
		snap.User = &user
	}
	if s.state.Notice != nil {
		notice := *s.state.Notice
		snap.Notice = &notice
	}

	return snap
}

func (s *sessionService) Bootstrap(ctx context.Context) error {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load persisted token")
		return err
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.state.Token = token
	s.mu.Unlock()

	s.log.Debug().Msg("adopted persisted token, validating")

	// Validation errors surface through the notice; a revoked token is
	// cleared inside RefreshProfile. Either way the app keeps running.
	_ = s.RefreshProfile(ctx, false)

	return nil
}

func (s *sessionService) Register(ctx context.Context) error {
	s.mu.Lock()
	req := models.RegisterRequest{
		Nickname: strings.TrimSpace(s.state.RegisterForm.Nickname),
		Email:    strings.TrimSpace(s.state.RegisterForm.Email),
		Password: s.state.RegisterForm.Password,
	}
	s.state.Notice = nil
	s.state.Submitting = true
	s.mu.Unlock()

	resp, err := s.gateway.Register(ctx, req)

	s.mu.Lock()
	s.state.Submitting = false
	if err != nil {
		s.state.Notice = &models.Notice{Tone: models.ToneError, Text: s.errorText(err)}
		s.mu.Unlock()
		return err
	}

	s.adoptSessionLocked(ctx, resp)
	s.state.LoginForm = models.LoginForm{Email: req.Email}
	s.state.Notice = &models.Notice{Tone: models.ToneSuccess, Text: s.dict.Notices.Registered}
	s.mu.Unlock()

	s.log.Info().Str("nickname", resp.User.Nickname).Msg("registered new account")

	// Sequenced silent refresh: the profile in the auth response is
	// authoritative enough to render, but /auth/me confirms the token
	// round-trips before the session settles.
	_ = s.RefreshProfile(ctx, false)

	return nil
}

func (s *sessionService) Login(ctx context.Context) error {
	s.mu.Lock()
	req := models.LoginRequest{
		Email:    strings.TrimSpace(s.state.LoginForm.Email),
		Password: s.state.LoginForm.Password,
	}
	s.state.Notice = nil
	s.state.Submitting = true
	s.mu.Unlock()

	resp, err := s.gateway.Login(ctx, req)

	s.mu.Lock()
	s.state.Submitting = false
	if err != nil {
		s.state.Notice = &models.Notice{Tone: models.ToneError, Text: s.errorText(err)}
		s.mu.Unlock()
		return err
	}

	s.adoptSessionLocked(ctx, resp)
	s.state.Notice = &models.Notice{Tone: models.ToneSuccess, Text: s.dict.Notices.LoggedIn}
	s.mu.Unlock()

	s.log.Info().Str("nickname", resp.User.Nickname).Msg("logged in")

	_ = s.RefreshProfile(ctx, false)

	return nil
}

func (s *sessionService) RefreshProfile(ctx context.Context, announce bool) error {
	s.mu.Lock()
	token := s.state.Token
	if token == "" {
		s.state.User = nil
		s.mu.Unlock()
		return nil
	}
	s.state.Refreshing = true
	s.mu.Unlock()

	user, err := s.gateway.Me(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Refreshing = false

	if err != nil {
		message := s.errorText(err)
		if isTokenRevoked(message) {
			s.log.Info().Msg("token rejected by server, clearing session")
			s.clearSessionLocked(ctx)
		}
		s.state.Notice = &models.Notice{Tone: models.ToneError, Text: message}
		return err
	}

	s.state.User = &user
	if announce {
		s.state.Notice = &models.Notice{Tone: models.ToneSuccess, Text: s.dict.Notices.SessionRefreshed}
	}

	return nil
}

func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearSessionLocked(ctx)
	s.state.Notice = &models.Notice{Tone: models.ToneInfo, Text: s.dict.Notices.SignedOut}

	s.log.Info().Msg("signed out")
}

func (s *sessionService) SetMode(mode models.AuthMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Mode = mode
}

func (s *sessionService) SetRegisterForm(form models.RegisterForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.RegisterForm = form
}

func (s *sessionService) SetLoginForm(form models.LoginForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LoginForm = form
}

func (s *sessionService) SetNotice(notice models.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notice = &notice
}

func (s *sessionService) SetLocale(locale i18n.Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dict = i18n.Resolve(locale)
}

// adoptSessionLocked persists and installs the token and user from a
// successful auth response. Must be called with s.mu held.
func (s *sessionService) adoptSessionLocked(ctx context.Context, resp models.AuthResponse) {
	if err := s.tokens.Save(ctx, resp.Token); err != nil {
		// The in-memory session still works, it just won't survive a
		// restart.
		s.log.Warn().Err(err).Msg("failed to persist token")
	}

	user := resp.User
	s.state.Token = resp.Token
	s.state.User = &user
}

// clearSessionLocked forgets the token and user. Must be called with
// s.mu held.
func (s *sessionService) clearSessionLocked(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted token")
	}

	s.state.Token = ""
	s.state.User = nil
}

// errorText maps an error to its user-facing text: server-provided
// messages are shown verbatim, anything else falls back to the generic
// dictionary text.
func (s *sessionService) errorText(err error) string {
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	return s.dict.Notices.UnexpectedError
}

// isTokenRevoked reports whether a user-facing error message indicates
// the server no longer accepts the token. The server does not expose a
// structured error code, so the check matches the known message
// substrings.
func isTokenRevoked(message string) bool {
	normalized := strings.ToLower(message)
	return strings.Contains(normalized, "unauthorized") || strings.Contains(normalized, "invalid token")
}
