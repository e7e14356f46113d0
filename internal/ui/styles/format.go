// Package styles contains Lip Gloss style definitions.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TruncateString truncates a plain string to fit within maxWidth cells,
// adding an ellipsis if needed. Iterates grapheme clusters so wide runes
// and combining marks are never split.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	// Need to truncate - leave room for ellipsis
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		cw := runewidth.StringWidth(cluster)
		if width+cw > maxWidth-3 {
			break
		}
		b.WriteString(cluster)
		width += cw
	}

	return b.String() + "..."
}

// PadToWidth pads s with trailing spaces to exactly width cells.
// Strings at or beyond width are returned unchanged. ANSI-styled input
// is measured correctly.
func PadToWidth(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// WidestString returns the widest display width among the given strings.
func WidestString(ss []string) int {
	widest := 0
	for _, s := range ss {
		if w := runewidth.StringWidth(s); w > widest {
			widest = w
		}
	}
	return widest
}
