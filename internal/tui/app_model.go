// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmatveev/swarm-console/internal/i18n"
	"github.com/dmatveev/swarm-console/internal/service"
	"github.com/dmatveev/swarm-console/internal/store"
	"github.com/dmatveev/swarm-console/internal/validators"
	"github.com/dmatveev/swarm-console/models"
)

// Register form input indices.
const (
	regNickname = iota
	regEmail
	regPassword
)

// Login form input indices.
const (
	loginEmail = iota
	loginPassword
)

// appModel is the single Bubble Tea model of the console. It routes
// between the auth and workspace screens based on the session snapshot
// and owns only widget state; everything else lives in the services.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	uiPrefs   *store.UIPreferences
	validator validators.Validator

	theme  models.Theme
	locale i18n.Locale
	dict   *i18n.Dictionary
	styles styleSet

	registerInputs []textinput.Model
	loginInputs    []textinput.Model
	focus          int

	width      int
	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, uiPrefs *store.UIPreferences, theme models.Theme, locale i18n.Locale) appModel {
	newInput := func(masked bool) textinput.Model {
		in := textinput.New()
		in.CharLimit = 256
		in.Width = 40
		if masked {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		return in
	}

	registerInputs := []textinput.Model{newInput(false), newInput(false), newInput(true)}
	loginInputs := []textinput.Model{newInput(false), newInput(true)}
	registerInputs[regNickname].Focus()

	return appModel{
		ctx:            ctx,
		services:       services,
		uiPrefs:        uiPrefs,
		validator:      validators.NewCredentialsValidator(),
		theme:          theme,
		locale:         locale,
		dict:           i18n.Resolve(locale),
		styles:         newStyles(theme),
		registerInputs: registerInputs,
		loginInputs:    loginInputs,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdBootstrap(), tickRedraw())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case redrawTickMsg:
		// Nothing to do: returning re-renders the view, which re-reads
		// the session and health snapshots.
		return m, tickRedraw()

	case healthCheckedMsg:
		return m, nil

	case bootstrapDoneMsg, authDoneMsg, refreshDoneMsg:
		m.syncFormsFromSession()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.services.Session.SetNotice(models.Notice{Tone: models.ToneError, Text: msg.err.Error()})
		} else {
			m.services.Session.SetNotice(models.Notice{Tone: models.ToneInfo, Text: m.dict.Notices.TokenCopied})
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) View() string {
	snap := m.services.Session.Snapshot()
	health := m.services.Health.Snapshot()

	var body string
	if snap.Authenticated() {
		body = m.viewWorkspace(snap)
	} else {
		body = m.viewAuth(snap)
	}

	return m.styles.app.Render(
		m.viewHeader(health) + "\n\n" + m.viewNotice(snap.Notice) + body,
	)
}

// ── Key handling ─────────────────────────────────────────────────────

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(msg, keys.theme):
		return m.toggleTheme()

	case key.Matches(msg, keys.locale):
		return m.toggleLocale()

	case key.Matches(msg, keys.checkNow):
		return m, m.cmdCheckNow()
	}

	if m.services.Session.Snapshot().Authenticated() {
		return m.handleWorkspaceKey(msg)
	}
	return m.handleAuthKey(msg)
}

func (m appModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.services.Session.Snapshot()

	switch {
	case key.Matches(msg, keys.switchMode):
		next := models.ModeLogin
		if snap.Mode == models.ModeLogin {
			next = models.ModeRegister
		}
		m.services.Session.SetMode(next)
		m.setFocus(0)
		return m, nil

	case key.Matches(msg, keys.tab):
		m.setFocus(m.focus + 1)
		return m, nil

	case key.Matches(msg, keys.backtab):
		m.setFocus(m.focus - 1)
		return m, nil

	case key.Matches(msg, keys.enter):
		if snap.Submitting {
			return m, nil
		}
		return m.submitActiveForm(snap.Mode)
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) handleWorkspaceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.refresh):
		if m.services.Session.Snapshot().Refreshing {
			return m, nil
		}
		return m, m.cmdRefresh()

	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyToken(m.services.Session.Snapshot().Token)

	case key.Matches(msg, keys.logout):
		m.services.Session.Logout(m.ctx)
		m.syncFormsFromSession()
		m.setFocus(0)
		return m, nil
	}

	return m, nil
}

// ── Form plumbing ────────────────────────────────────────────────────

// activeInputs returns the input slice of the active credential form.
func (m *appModel) activeInputs() []textinput.Model {
	if m.services.Session.Snapshot().Mode == models.ModeLogin {
		return m.loginInputs
	}
	return m.registerInputs
}

func (m *appModel) setFocus(focus int) {
	inputs := m.activeInputs()

	for i := range inputs {
		inputs[i].Blur()
	}

	m.focus = (focus + len(inputs)) % len(inputs)
	inputs[m.focus].Focus()
}

// updateFocusedInput forwards a message to the focused widget and
// mirrors the resulting form values into the session state, so the
// service always submits what is on screen.
func (m appModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	inputs := m.activeInputs()
	if m.focus >= len(inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)

	if m.services.Session.Snapshot().Mode == models.ModeLogin {
		m.services.Session.SetLoginForm(models.LoginForm{
			Email:    m.loginInputs[loginEmail].Value(),
			Password: m.loginInputs[loginPassword].Value(),
		})
	} else {
		m.services.Session.SetRegisterForm(models.RegisterForm{
			Nickname: m.registerInputs[regNickname].Value(),
			Email:    m.registerInputs[regEmail].Value(),
			Password: m.registerInputs[regPassword].Value(),
		})
	}

	return m, cmd
}

func (m appModel) submitActiveForm(mode models.AuthMode) (tea.Model, tea.Cmd) {
	if mode == models.ModeLogin {
		form := models.LoginForm{
			Email:    m.loginInputs[loginEmail].Value(),
			Password: m.loginInputs[loginPassword].Value(),
		}
		m.services.Session.SetLoginForm(form)
		if err := m.validator.Validate(m.ctx, form); err != nil {
			m.services.Session.SetNotice(models.Notice{Tone: models.ToneError, Text: err.Error()})
			return m, nil
		}
		return m, m.cmdSubmitLogin()
	}

	form := models.RegisterForm{
		Nickname: m.registerInputs[regNickname].Value(),
		Email:    m.registerInputs[regEmail].Value(),
		Password: m.registerInputs[regPassword].Value(),
	}
	m.services.Session.SetRegisterForm(form)
	if err := m.validator.Validate(m.ctx, form); err != nil {
		m.services.Session.SetNotice(models.Notice{Tone: models.ToneError, Text: err.Error()})
		return m, nil
	}
	return m, m.cmdSubmitRegister()
}

// syncFormsFromSession pulls form values owned by the service back into
// the widgets, e.g. the login email seeded after registration.
func (m *appModel) syncFormsFromSession() {
	snap := m.services.Session.Snapshot()

	m.registerInputs[regNickname].SetValue(snap.RegisterForm.Nickname)
	m.registerInputs[regEmail].SetValue(snap.RegisterForm.Email)
	m.registerInputs[regPassword].SetValue(snap.RegisterForm.Password)

	m.loginInputs[loginEmail].SetValue(snap.LoginForm.Email)
	m.loginInputs[loginPassword].SetValue(snap.LoginForm.Password)
}

// ── Preferences ──────────────────────────────────────────────────────

func (m appModel) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme == models.ThemeDark {
		m.theme = models.ThemeLight
	} else {
		m.theme = models.ThemeDark
	}
	m.styles = newStyles(m.theme)

	return m, m.cmdSaveTheme(m.theme)
}

func (m appModel) toggleLocale() (tea.Model, tea.Cmd) {
	m.locale = i18n.Toggle(m.locale)
	m.dict = i18n.Resolve(m.locale)
	m.services.Session.SetLocale(m.locale)

	return m, m.cmdSaveLocale(m.locale)
}

// ── Commands ─────────────────────────────────────────────────────────

func (m appModel) cmdBootstrap() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		_ = session.Bootstrap(ctx)
		return bootstrapDoneMsg{}
	}
}

func (m appModel) cmdSubmitRegister() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		_ = session.Register(ctx)
		return authDoneMsg{}
	}
}

func (m appModel) cmdSubmitLogin() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		_ = session.Login(ctx)
		return authDoneMsg{}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		_ = session.RefreshProfile(ctx, true)
		return refreshDoneMsg{}
	}
}

func (m appModel) cmdCheckNow() tea.Cmd {
	ctx, health := m.ctx, m.services.Health
	return func() tea.Msg {
		health.CheckNow(ctx)
		return healthCheckedMsg{}
	}
}

func (m appModel) cmdCopyToken(token string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(token)}
	}
}

func (m appModel) cmdSaveTheme(theme models.Theme) tea.Cmd {
	ctx, prefs := m.ctx, m.uiPrefs
	return func() tea.Msg {
		_ = prefs.SetTheme(ctx, theme)
		return nil
	}
}

func (m appModel) cmdSaveLocale(locale i18n.Locale) tea.Cmd {
	ctx, prefs := m.ctx, m.uiPrefs
	return func() tea.Msg {
		_ = prefs.SetLocale(ctx, string(locale))
		return nil
	}
}

func tickRedraw() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return redrawTickMsg{}
	})
}
