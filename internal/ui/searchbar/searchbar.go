// Package searchbar provides the search input row shown at the top of
// searchable dropdown menus.
package searchbar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/droplist/droplist/internal/keys"
	"github.com/droplist/droplist/internal/ui/styles"
)

// Model wraps a textinput with the menu's search affordance.
type Model struct {
	input textinput.Model
	width int
}

// New creates a search bar with the given placeholder text.
func New(placeholder string) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 256
	return Model{input: ti}
}

// Init returns the initial command (starts cursor blink).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the search bar. Keys only reach the
// underlying input while the bar is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.Component.Clear) {
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the search icon and input on one line.
func (m Model) View() string {
	icon := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(" > ")
	m.input.Width = max(m.width-4, 1)
	return icon + m.input.View()
}

// Focus gives the underlying input keyboard focus.
func (m Model) Focus() Model {
	m.input.Focus()
	return m
}

// Blur removes keyboard focus from the underlying input.
func (m Model) Blur() Model {
	m.input.Blur()
	return m
}

// Focused reports whether the input has keyboard focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current search text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the current search text.
func (m Model) SetValue(v string) Model {
	m.input.SetValue(v)
	return m
}

// Reset clears the search text.
func (m Model) Reset() Model {
	m.input.SetValue("")
	return m
}

// SetWidth sets the render width of the bar, icon included.
func (m Model) SetWidth(w int) Model {
	m.width = w
	return m
}

// SetPlaceholder replaces the placeholder text.
func (m Model) SetPlaceholder(p string) Model {
	m.input.Placeholder = p
	return m
}
