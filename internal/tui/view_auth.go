package tui

import (
	"strings"

	"github.com/dmatveev/swarm-console/models"
)

func (m appModel) viewAuth(snap models.SessionState) string {
	var b strings.Builder

	registerTab := m.styles.tabOff.Render(m.dict.Auth.RegisterTab)
	loginTab := m.styles.tabOff.Render(m.dict.Auth.LoginTab)
	if snap.Mode == models.ModeLogin {
		loginTab = m.styles.tabOn.Render(m.dict.Auth.LoginTab)
	} else {
		registerTab = m.styles.tabOn.Render(m.dict.Auth.RegisterTab)
	}
	b.WriteString(registerTab + "   " + loginTab + "\n\n")

	if snap.Mode == models.ModeLogin {
		b.WriteString(m.viewField(m.dict.Auth.Email, m.loginInputs[loginEmail].View()))
		b.WriteString(m.viewField(m.dict.Auth.Password, m.loginInputs[loginPassword].View()))
		b.WriteString(m.viewSubmit(m.dict.Auth.LoginSubmit, snap.Submitting))
	} else {
		b.WriteString(m.viewField(m.dict.Auth.Nickname, m.registerInputs[regNickname].View()))
		b.WriteString(m.viewField(m.dict.Auth.Email, m.registerInputs[regEmail].View()))
		b.WriteString(m.viewField(m.dict.Auth.Password, m.registerInputs[regPassword].View()))
		b.WriteString(m.viewSubmit(m.dict.Auth.RegisterSubmit, snap.Submitting))
	}

	b.WriteString("\n")
	b.WriteString(m.viewHelp(
		"tab", "enter",
		"ctrl+a: "+m.dict.Auth.RegisterTab+"/"+m.dict.Auth.LoginTab,
		"f2/f3/f5", "ctrl+c",
	))

	return b.String()
}

func (m appModel) viewField(label, input string) string {
	return m.styles.label.Render(padLabel(label)) + " " + input + "\n"
}

func (m appModel) viewSubmit(label string, submitting bool) string {
	if submitting {
		return "\n" + m.styles.subtitle.Render("["+m.dict.Auth.Submitting+"]") + "\n"
	}
	return "\n" + m.styles.value.Render("[ "+label+" ]") + "\n"
}

// padLabel right-pads labels so the inputs line up across locales.
func padLabel(label string) string {
	const width = 12

	runes := len([]rune(label))
	if runes >= width {
		return label
	}
	return label + strings.Repeat(" ", width-runes)
}
