// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Matveev

// Package i18n holds the interface dictionaries of the Swarm console.
// Every user-visible string lives in a Dictionary so the whole
// interface can be switched between locales at runtime.
package i18n

// Locale identifies one of the supported interface languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

// Dictionary groups every translated string of the console.
// Fields are grouped the way the interface consumes them: static
// chrome (Header, Server), the authentication screen (Auth), the
// authenticated workspace (Session) and transient notices (Notices).
type Dictionary struct {
	Header  HeaderStrings
	Server  ServerStrings
	Auth    AuthStrings
	Session SessionStrings
	Notices NoticeStrings
}

// HeaderStrings labels the top bar of the console.
type HeaderStrings struct {
	Title    string
	Subtitle string
}

// ServerStrings labels the server health indicator.
type ServerStrings struct {
	Label       string
	Checking    string
	Online      string
	Offline     string
	LastChecked string
	Never       string
}

// AuthStrings labels the registration and login forms.
type AuthStrings struct {
	RegisterTab    string
	LoginTab       string
	Nickname       string
	Email          string
	Password       string
	RegisterSubmit string
	LoginSubmit    string
	Submitting     string
}

// SessionStrings labels the authenticated workspace panel.
type SessionStrings struct {
	Title      string
	Nickname   string
	Email      string
	UserID     string
	Role       string
	RoleAdmin  string
	RoleMember string
	CreatedAt  string
	Refreshing string
	Refresh    string
	CopyToken  string
	SignOut    string
}

// NoticeStrings holds the texts of transient notices raised by the
// session service. Server-side error messages are shown verbatim and
// are not part of the dictionary.
type NoticeStrings struct {
	Registered       string
	LoggedIn         string
	SignedOut        string
	SessionRefreshed string
	TokenCopied      string
	UnexpectedError  string
}

// Resolve returns the dictionary for the given locale, falling back
// to English for unknown values.
func Resolve(locale Locale) *Dictionary {
	switch locale {
	case LocaleRU:
		return &RU
	default:
		return &EN
	}
}

// Toggle returns the other supported locale.
func Toggle(locale Locale) Locale {
	if locale == LocaleRU {
		return LocaleEN
	}
	return LocaleRU
}
