package tui

import (
	"strings"

	"github.com/dmatveev/swarm-console/models"
)

func (m appModel) viewHeader(health models.HealthState) string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(m.dict.Header.Title))
	b.WriteString("  ")
	b.WriteString(m.styles.subtitle.Render(m.dict.Header.Subtitle))
	b.WriteString("\n")
	b.WriteString(m.viewHealth(health))

	return b.String()
}

func (m appModel) viewHealth(health models.HealthState) string {
	var status string
	switch health.Status {
	case models.ServerStatusOnline:
		status = m.styles.online.Render(m.dict.Server.Online)
	case models.ServerStatusOffline:
		status = m.styles.offline.Render(m.dict.Server.Offline)
	default:
		status = m.styles.checking.Render(m.dict.Server.Checking)
	}

	checked := m.dict.Server.Never
	if health.LastCheckedAt != nil {
		checked = health.LastCheckedAt.Format("15:04:05")
	}

	return m.styles.label.Render(m.dict.Server.Label+": ") + status +
		m.styles.help.Render("  ("+m.dict.Server.LastChecked+": "+checked+")")
}

func (m appModel) viewNotice(notice *models.Notice) string {
	if notice == nil {
		return ""
	}

	var rendered string
	switch notice.Tone {
	case models.ToneSuccess:
		rendered = m.styles.noticeSuccess.Render(notice.Text)
	case models.ToneError:
		rendered = m.styles.noticeError.Render(notice.Text)
	default:
		rendered = m.styles.noticeInfo.Render(notice.Text)
	}

	return rendered + "\n\n"
}

func (m appModel) viewHelp(entries ...string) string {
	return m.styles.help.Render(strings.Join(entries, " │ "))
}
