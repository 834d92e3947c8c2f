package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmatveev/swarm-console/models"
)

// styleSet holds every lipgloss style the views use, resolved for the
// active theme.
type styleSet struct {
	app      lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	help     lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	tabOn    lipgloss.Style
	tabOff   lipgloss.Style
	panel    lipgloss.Style

	online   lipgloss.Style
	offline  lipgloss.Style
	checking lipgloss.Style

	noticeInfo    lipgloss.Style
	noticeSuccess lipgloss.Style
	noticeError   lipgloss.Style
}

func newStyles(theme models.Theme) styleSet {
	var (
		accent  = lipgloss.Color("62")  // violet
		muted   = lipgloss.Color("243") // grey
		good    = lipgloss.Color("35")  // green
		bad     = lipgloss.Color("160") // red
		caution = lipgloss.Color("214") // amber
		text    = lipgloss.Color("235") // near-black
	)
	if theme == models.ThemeDark {
		accent = lipgloss.Color("105")
		muted = lipgloss.Color("245")
		good = lipgloss.Color("42")
		bad = lipgloss.Color("203")
		caution = lipgloss.Color("220")
		text = lipgloss.Color("252")
	}

	return styleSet{
		app:      lipgloss.NewStyle().Padding(1, 2),
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		subtitle: lipgloss.NewStyle().Faint(true).Foreground(muted),
		help:     lipgloss.NewStyle().Faint(true).Foreground(muted),
		label:    lipgloss.NewStyle().Foreground(muted),
		value:    lipgloss.NewStyle().Foreground(text),
		tabOn:    lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true),
		tabOff:   lipgloss.NewStyle().Foreground(muted),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(1, 2),

		online:   lipgloss.NewStyle().Foreground(good),
		offline:  lipgloss.NewStyle().Foreground(bad),
		checking: lipgloss.NewStyle().Foreground(caution),

		noticeInfo:    lipgloss.NewStyle().Foreground(muted),
		noticeSuccess: lipgloss.NewStyle().Foreground(good),
		noticeError:   lipgloss.NewStyle().Bold(true).Foreground(bad),
	}
}
