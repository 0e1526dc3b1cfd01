package ui

import (
	"strings"

	"github.com/plugview/plugview/internal/catalog"
)

// column describes one table column: which record field it shows, its
// share of the terminal width, and the narrowest it may get before
// truncation stops helping.
type column struct {
	field  catalog.Field
	weight int
	min    int
}

// columns lists the table columns in display order.
var columns = []column{
	{catalog.FieldType, 12, 7},
	{catalog.FieldName, 22, 10},
	{catalog.FieldManufacturer, 18, 9},
	{catalog.FieldDescription, 36, 12},
	{catalog.FieldInvestigate, 12, 13},
}

// columnGap is the number of spaces between adjacent columns.
const columnGap = 2

// columnWidths distributes the available width across the columns by
// weight, respecting minimums. Leftover cells go to the Description
// column, which benefits most from extra room.
func columnWidths(total int) []int {
	widths := make([]int, len(columns))

	usable := total - columnGap*(len(columns)-1)
	weightSum := 0
	for _, c := range columns {
		weightSum += c.weight
	}

	used := 0
	for i, c := range columns {
		w := usable * c.weight / weightSum
		if w < c.min {
			w = c.min
		}
		widths[i] = w
		used += w
	}

	if leftover := usable - used; leftover > 0 {
		for i, c := range columns {
			if c.field == catalog.FieldDescription {
				widths[i] += leftover
				break
			}
		}
	}

	return widths
}

// columnAt maps an x coordinate on the header row to the column under
// it. Clicks on the gaps between columns miss.
func columnAt(x int, widths []int) (catalog.Field, bool) {
	start := 0
	for i, w := range widths {
		if x >= start && x < start+w {
			return columns[i].field, true
		}
		start += w + columnGap
	}
	return 0, false
}

// renderColumnHeader renders the bold header row with an ascending or
// descending indicator on the active sort column.
func (m Model) renderColumnHeader(widths []int) string {
	state := m.controller.State()

	cells := make([]string, len(columns))
	for i, c := range columns {
		title := c.field.Title()
		if c.field == state.SortField {
			if state.Descending {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		cells[i] = padRight(truncate(title, widths[i]), widths[i])
	}

	line := strings.Join(cells, strings.Repeat(" ", columnGap))
	return m.theme.Styles().ColumnHeader.Width(m.width).Render(line)
}

// renderTable renders the visible rows, zebra-striped, with the cursor
// row highlighted and the scroll window positioned by m.offset.
func (m Model) renderTable(widths []int, rows int) string {
	styles := m.theme.Styles()
	visible := m.controller.State().Visible

	if len(visible) == 0 {
		msg := "No plugins match"
		if m.controller.Total() == 0 {
			msg = "No plugin data loaded"
		}
		lines := make([]string, rows)
		if rows > 0 {
			lines[0] = styles.MutedText.Render("  " + msg)
		}
		return strings.Join(lines, "\n")
	}

	end := m.offset + rows
	if end > len(visible) {
		end = len(visible)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		line := formatRow(visible[i], widths)

		style := styles.Row
		switch {
		case i == m.cursor:
			style = styles.SelectedRow
		case i%2 == 1:
			style = styles.StripedRow
		}
		b.WriteString(style.Width(m.width).Render(line))
		b.WriteString("\n")
	}

	// Pad short pages so the status line stays anchored.
	for i := end - m.offset; i < rows; i++ {
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// formatRow lays one record out across the columns.
func formatRow(r catalog.Record, widths []int) string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = padRight(truncate(c.field.Value(r), widths[i]), widths[i])
	}
	return strings.Join(cells, strings.Repeat(" ", columnGap))
}
