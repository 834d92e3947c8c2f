package models

// SessionState is an atomic snapshot of the session controller. All
// fields are copied under the controller's lock, so a snapshot can never
// show a stale user next to a cleared token or vice versa.
type SessionState struct {
	// Token is the current bearer token, empty when anonymous.
	Token string

	// User is the account snapshot, nil whenever Token is empty.
	User *PublicUser

	// Notice is the latest user-facing message, nil when none is shown.
	Notice *Notice

	// Mode selects the active credential form.
	Mode AuthMode

	// RegisterForm and LoginForm are the current form field values.
	RegisterForm RegisterForm
	LoginForm    LoginForm

	// Submitting is true while a register/login call is in flight. It is
	// advisory: the presentation layer uses it to disable controls, but
	// nothing prevents overlapping submissions.
	Submitting bool

	// Refreshing is true while a profile refresh is in flight.
	Refreshing bool
}

// Authenticated reports whether the snapshot holds a confirmed session.
func (s SessionState) Authenticated() bool {
	return s.Token != "" && s.User != nil
}
