package models

import "time"

// AuthMode selects which credential form is active. It is a pure UI
// selector and is never persisted.
type AuthMode string

const (
	ModeRegister AuthMode = "register"
	ModeLogin    AuthMode = "login"
)

// NoticeTone classifies a user-facing notice.
type NoticeTone string

const (
	ToneInfo    NoticeTone = "info"
	ToneSuccess NoticeTone = "success"
	ToneError   NoticeTone = "error"
)

// Notice is an ephemeral user-facing message. Each new operation
// replaces the previous notice; notices are never queued.
type Notice struct {
	Tone NoticeTone
	Text string
}

// ServerStatus is the tri-state result of the health prober.
type ServerStatus string

const (
	ServerStatusChecking ServerStatus = "checking"
	ServerStatusOnline   ServerStatus = "online"
	ServerStatusOffline  ServerStatus = "offline"
)

// HealthState is a passive snapshot of the health prober.
// LastCheckedAt is nil until the first check completes, in either
// outcome.
type HealthState struct {
	Status        ServerStatus
	LastCheckedAt *time.Time
}

// Theme is the persisted UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// RegisterForm holds the in-flight registration credentials. Fields are
// mutated one at a time as the user types and validated only with basic
// hints that mirror, but never replace, server-side validation.
type RegisterForm struct {
	Nickname string
	Email    string
	Password string
}

// LoginForm holds the in-flight login credentials.
type LoginForm struct {
	Email    string
	Password string
}
