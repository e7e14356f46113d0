package selectpicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/droplist/droplist/internal/ui/styles"
)

var (
	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.BorderFocusColor).
			Padding(0, 1)

	groupTitleStyle  = lipgloss.NewStyle().Foreground(styles.PickerGroupColor).Bold(true)
	groupCountStyle  = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	focusedRowStyle  = lipgloss.NewStyle().Bold(true)
	disabledRowStyle = lipgloss.NewStyle().Foreground(styles.TextDisabledColor)
	checkmarkStyle   = lipgloss.NewStyle().Foreground(styles.PickerCheckmarkColor)
	noResultsStyle   = lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true)
	moreHintStyle    = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	dividerStyle     = lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
)

// menuView renders the open dropdown panel: the search bar for
// searchable pickers, the windowed option rows, and the optional extra
// footer, boxed in the focus border.
func (m Model[T]) menuView() string {
	width := m.menuWidth()
	inner := width - 4
	rows := m.rows()

	var sections []string
	if m.cfg.Searchable {
		sections = append(sections, m.search.View(), divider(inner))
	}

	var body string
	switch {
	case len(rows) == 0:
		body = noResultsStyle.Render(m.cfg.resolveLocale().NoResults)
	case m.cfg.Virtualized:
		body = m.renderVirtualRows(rows, inner)
	default:
		body = m.renderWindowedRows(rows, inner)
	}
	if m.cfg.RenderMenu != nil {
		body = m.cfg.RenderMenu(body)
	}
	sections = append(sections, body)

	if m.cfg.RenderExtraFooter != nil {
		sections = append(sections, divider(inner), m.cfg.RenderExtraFooter())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return menuBoxStyle.Width(width - 2).Render(content)
}

func divider(width int) string {
	return dividerStyle.Render(strings.Repeat("─", max(width, 1)))
}

// renderWindowedRows renders the rows inside the scroll window, plus a
// hint when more rows sit below it.
func (m Model[T]) renderWindowedRows(rows []row[T], inner int) string {
	start, end := m.rowWindow(len(rows))
	value := m.value.get()
	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		b.WriteString(m.markedRow(rows, i, inner, value))
	}
	if remaining := len(rows) - end; remaining > 0 {
		b.WriteByte('\n')
		b.WriteString(moreHintStyle.Render(fmt.Sprintf("  ↓ %d more", remaining)))
	}
	return b.String()
}

// markedRow renders rows[i] and wraps it in its mouse zone.
func (m Model[T]) markedRow(rows []row[T], i, inner int, value string) string {
	r := rows[i]
	if r.kind == groupRow {
		return zone.Mark(m.groupZoneID(i), m.renderGroupRow(r, inner))
	}
	focused := r.value != "" && r.value == m.focusedValue
	checked := r.value != "" && r.value == value
	return zone.Mark(m.optionZoneID(i), m.renderOptionRow(r, inner, focused, checked))
}

// renderGroupRow renders a group header: the title and its member
// count, or whatever the custom group renderer returns.
func (m Model[T]) renderGroupRow(r row[T], inner int) string {
	if m.cfg.RenderMenuGroup != nil {
		return ansi.Truncate(m.cfg.RenderMenuGroup(r.group, r.count), inner, "...")
	}
	count := groupCountStyle.Render(fmt.Sprintf(" %d", r.count))
	title := styles.TruncateString(r.group, max(inner-lipgloss.Width(count), 1))
	return groupTitleStyle.Render(title) + count
}

// renderOptionRow renders one option line: focus indicator, label, and
// the checkmark column for the committed selection.
func (m Model[T]) renderOptionRow(r row[T], inner int, focused, checked bool) string {
	// Two indicator cells, a gap, and the checkmark column.
	labelWidth := max(inner-4, 1)

	var label string
	if m.cfg.RenderMenuItem != nil {
		label = ansi.Truncate(m.cfg.RenderMenuItem(r.label, r.item), labelWidth, "...")
	} else {
		label = styles.TruncateString(r.label, labelWidth)
	}
	label = styles.PadToWidth(label, labelWidth)

	check := " "
	if checked {
		check = checkmarkStyle.Render("✓")
	}

	switch {
	case focused:
		return focusedRowStyle.Render("> "+label) + " " + check
	case r.disabled:
		return disabledRowStyle.Render("  "+label) + " " + check
	default:
		return "  " + label + " " + check
	}
}

// rowWindow returns the [start, end) slice of rows currently visible,
// clamping the scroll offset against the row count.
func (m Model[T]) rowWindow(total int) (int, int) {
	maxVisible := m.maxVisibleRows()
	start := min(m.scrollOffset, total-maxVisible)
	start = max(start, 0)
	end := min(start+maxVisible, total)
	return start, end
}

// maxVisibleRows is the menu height in rows, shrunk when the host
// viewport cannot fit the configured height.
func (m Model[T]) maxVisibleRows() int {
	target := m.cfg.MenuMaxHeight
	if target <= 0 {
		target = defaultMenuMaxHeight
	}
	if m.height > 0 {
		// Panel border, padding, search bar, divider, and the toggle
		// itself all take vertical space.
		available := m.height - 7
		if available < target {
			return max(available, 2)
		}
	}
	return target
}
