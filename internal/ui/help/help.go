// Package help provides the keybinding overlay for the showcase. The
// copy is written as markdown and rendered through glamour so headings
// and key names pick up the terminal style.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/droplist/droplist/internal/ui/markdown"
	"github.com/droplist/droplist/internal/ui/overlay"
	"github.com/droplist/droplist/internal/ui/styles"
)

const (
	boxMaxWidth       = 76 // Maximum box width in characters
	boxMinWidth       = 44 // Minimum box width for very small screens
	viewportMaxHeight = 30 // Fixed viewport height in lines
	viewportMinHeight = 6  // Minimum viewport height
)

// usage is the overlay copy. Key names here must track the bindings in
// internal/keys and the picker keymap.
const usage = `# Droplist Showcase

Each demo hosts a live select picker. Focus the demo pane, then drive
the picker directly.

## Picker

- ` + "`enter`" + ` or ` + "`space`" + ` opens the menu on a focused toggle
- ` + "`↑`/`↓`" + ` or ` + "`ctrl+p`/`ctrl+n`" + ` move the highlight
- typing filters the options when search is enabled
- ` + "`enter`" + ` commits the highlighted option
- ` + "`esc`" + ` closes the menu without changing the selection
- ` + "`backspace`" + ` or ` + "`delete`" + ` clears the current selection
- the toggle and every menu row are clickable

## Demos

- ` + "`tab`" + ` / ` + "`shift+tab`" + ` cycle through demos
- ` + "`j`/`k`" + ` or ` + "`↑`/`↓`" + ` move the sidebar cursor
- ` + "`h`" + ` focuses the sidebar, ` + "`l`" + ` focuses the demo
- ` + "`enter`" + ` activates the highlighted demo

## General

- ` + "`?`" + ` toggles this help
- ` + "`ctrl+e`" + ` opens the event log
- ` + "`ctrl+x`" + ` clears the event feed
- ` + "`q`" + ` or ` + "`ctrl+c`" + ` quits
`

// CloseMsg is sent when the overlay should be closed.
type CloseMsg struct{}

// Model is the help overlay component state.
type Model struct {
	visible  bool
	width    int
	height   int
	viewport viewport.Model
	renderer *markdown.Renderer
	rendered string
}

// New creates a new help overlay model.
func New() Model {
	return Model{visible: false}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.viewport.ScrollDown(1)
			return m, nil

		case "k", "up":
			m.viewport.ScrollUp(1)
			return m, nil

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil

		case "ctrl+c":
			return m, tea.Quit

		case "?", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshViewport()
	}

	return m, nil
}

// View renders the help overlay content.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.boxWidth()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)

	dividerStyle := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor)
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	footerStyle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		PaddingLeft(1)

	var result strings.Builder
	result.WriteString(titleStyle.Render("Help"))
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(m.viewport.View())
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(footerStyle.Render("Press ? or Esc to close"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth)

	return boxStyle.Render(result.String())
}

// Overlay renders the help overlay centered on the given background.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	fg := m.View()
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, fg, bg)
}

// Visible returns whether the overlay is currently visible.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle toggles the overlay visibility.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refreshViewport()
	}
}

// Show makes the overlay visible.
func (m *Model) Show() {
	m.visible = true
	m.refreshViewport()
}

// Hide makes the overlay invisible.
func (m *Model) Hide() {
	m.visible = false
}

// SetSize updates the overlay's knowledge of the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refreshViewport()
}

// refreshViewport rebuilds the viewport with the usage copy rendered at
// the current content width.
func (m *Model) refreshViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}

	contentWidth := m.contentWidth()
	if m.renderer == nil || m.renderer.Width() != contentWidth {
		if r, err := markdown.New(contentWidth); err == nil {
			m.renderer = r
			m.rendered = ""
		}
	}
	if m.rendered == "" && m.renderer != nil {
		if out, err := m.renderer.Render(usage); err == nil {
			m.rendered = out
		}
	}

	// Fall back to the raw markdown when rendering is unavailable.
	content := m.rendered
	if content == "" {
		content = strings.TrimRight(usage, "\n")
	}

	// Header (2 lines), footer (2 lines), and borders (2 lines) take 6
	// lines of the screen.
	maxAllowed := m.height - 6
	viewportHeight := min(viewportMaxHeight, maxAllowed)
	if n := lipgloss.Height(content); n < viewportHeight {
		viewportHeight = n
	}
	viewportHeight = max(viewportHeight, viewportMinHeight)

	m.viewport = viewport.New(contentWidth, viewportHeight)
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// boxWidth returns the calculated box width based on screen size.
func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

// contentWidth returns the content width (box width minus borders).
func (m Model) contentWidth() int {
	return m.boxWidth() - 2
}
