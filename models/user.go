package models

// PublicUser is the public account snapshot returned by the Swarm API.
// It is replaced wholesale on every successful fetch and never merged
// field by field.
type PublicUser struct {
	// ID is the server-assigned account identifier.
	ID string `json:"id"`

	// Nickname is the display name chosen at registration.
	Nickname string `json:"nickname"`

	// Email is the normalized (lower-cased, trimmed) account email.
	Email string `json:"email"`

	// IsAdmin reports whether the account has administrator rights.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the account creation timestamp as the server
	// formatted it. Kept as a string: the client only displays it.
	CreatedAt string `json:"created_at"`
}
