package tui

// authDoneMsg signals that a register or login command has finished.
// The outcome (session, notice) is read from the session snapshot.
type authDoneMsg struct{}

// refreshDoneMsg signals that a manual profile refresh has finished.
type refreshDoneMsg struct{}

// bootstrapDoneMsg signals that the persisted-token adoption attempt
// has finished.
type bootstrapDoneMsg struct{}

// copiedMsg signals that a clipboard write has finished.
type copiedMsg struct {
	err error
}

// healthCheckedMsg signals that a manual health check has finished.
type healthCheckedMsg struct{}

// redrawTickMsg fires once a second so the view picks up background
// health prober updates without any push channel.
type redrawTickMsg struct{}
