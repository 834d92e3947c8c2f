package tui

import (
	"strings"

	"github.com/dmatveev/swarm-console/models"
)

func (m appModel) viewWorkspace(snap models.SessionState) string {
	var b strings.Builder

	title := m.dict.Session.Title
	if snap.Refreshing {
		title += "  " + m.styles.subtitle.Render(m.dict.Session.Refreshing)
	}
	b.WriteString(m.styles.title.Render(title))
	b.WriteString("\n")

	user := snap.User
	role := m.dict.Session.RoleMember
	if user.IsAdmin {
		role = m.dict.Session.RoleAdmin
	}

	var rows strings.Builder
	rows.WriteString(m.viewField(m.dict.Session.Nickname, m.styles.value.Render(user.Nickname)))
	rows.WriteString(m.viewField(m.dict.Session.Email, m.styles.value.Render(user.Email)))
	rows.WriteString(m.viewField(m.dict.Session.UserID, m.styles.value.Render(user.ID)))
	rows.WriteString(m.viewField(m.dict.Session.Role, m.styles.value.Render(role)))
	rows.WriteString(m.viewField(m.dict.Session.CreatedAt, m.styles.value.Render(user.CreatedAt)))

	b.WriteString(m.styles.panel.Render(strings.TrimRight(rows.String(), "\n")))
	b.WriteString("\n\n")

	b.WriteString(m.viewHelp(
		"r: "+m.dict.Session.Refresh,
		"c: "+m.dict.Session.CopyToken,
		"l: "+m.dict.Session.SignOut,
		"f2/f3/f5", "ctrl+c",
	))

	return b.String()
}
