package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderTitleBar renders the top chrome line: app name, dataset size
// (or the degraded-mode note), and the active theme on the right.
func (m Model) renderTitleBar() string {
	styles := m.theme.Styles()

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Background(lipgloss.Color(m.theme.Surface)).
		Bold(true).
		Render("Plugin Viewer")

	var detail string
	if m.degraded {
		detail = lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Danger)).
			Background(lipgloss.Color(m.theme.Surface)).
			Bold(true).
			Render("error loading data")
	} else {
		detail = lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(m.theme.Surface)).
			Render(fmt.Sprintf("%d plugins", m.controller.Total()))
	}

	left := title + "  " + detail

	right := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Faint)).
		Background(lipgloss.Color(m.theme.Surface)).
		Render(m.theme.Name)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	filler := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Render(fmt.Sprintf("%*s", gap, ""))

	return styles.Header.Width(m.width).Render(left + filler + right)
}

// renderSearchBar renders the search input line.
func (m Model) renderSearchBar() string {
	return m.search.View()
}
