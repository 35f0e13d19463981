package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableColGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Column widths are computed on visible width, so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	// Header row.
	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < len(headers)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+tableColGap))
		}
	}
	b.WriteString("\n")

	// Separator.
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", tableColGap))
		}
	}
	b.WriteString("\n")

	// Data rows.
	for _, row := range rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+tableColGap))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
