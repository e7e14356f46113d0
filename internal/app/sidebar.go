package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/droplist/droplist/internal/ui/styles"
)

// sidebarView renders the demo list. The cursor row carries the
// selection indicator; the loaded demo's name picks up the accent
// color so switching focus never hides which demo is live.
func (m Model) sidebarView(width int) string {
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.SelectionIndicatorColor)
	loadedStyle := lipgloss.NewStyle().Foreground(styles.AccentColor)
	normalStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	var sb strings.Builder
	for i, demo := range m.demos {
		style := normalStyle
		prefix := "  "
		if i == m.loadedIdx {
			style = loadedStyle
		}
		if i == m.selected {
			style = selectedStyle
			prefix = styles.SelectionIndicatorStyle.Render("●") + " "
		}
		sb.WriteString(" " + prefix + style.Render(styles.TruncateString(demo.Name, width-4)))
		sb.WriteString("\n")
	}

	wrapped := wordwrap.String(m.demos[m.selected].Description, max(width-2, 10))
	sb.WriteString("\n")
	sb.WriteString(" " + descStyle.Render(strings.ReplaceAll(wrapped, "\n", "\n ")))
	return sb.String()
}
