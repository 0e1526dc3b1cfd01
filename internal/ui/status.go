package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusText returns the canonical counter line.
func statusText(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d plugins", shown, total)
}

// renderStatusLine renders the counter plus the active query and any
// transient notice.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	state := m.controller.State()

	parts := []string{
		styles.MutedText.Render(statusText(m.controller.Shown(), m.controller.Total())),
	}

	direction := "▲"
	if state.Descending {
		direction = "▼"
	}
	parts = append(parts, styles.FaintText.Render(fmt.Sprintf("sort: %s %s", state.SortField.Title(), direction)))

	if query := strings.TrimSpace(state.Query); query != "" {
		parts = append(parts, styles.AccentText.Render("/"+truncate(query, 24)))
	}

	if m.notice != "" {
		parts = append(parts, styles.DangerText.Render(truncate(m.notice, 60)))
	}

	line := strings.Join(parts, styles.FaintText.Render("  •  "))
	return lipgloss.NewStyle().Width(m.width).Render(" " + line)
}

// renderFooter renders the short key help bar.
func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Width(m.width).Render(m.helpBar.View(m.keys))
}
