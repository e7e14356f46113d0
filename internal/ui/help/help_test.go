package help

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisible(width, height int) Model {
	m := New()
	m.Show()
	m.SetSize(width, height)
	return m
}

func TestHelp_New(t *testing.T) {
	m := New()

	assert.False(t, m.Visible(), "expected overlay to start hidden")
	assert.Empty(t, m.View(), "expected hidden overlay to render nothing")
}

func TestHelp_Toggle(t *testing.T) {
	m := New()
	m.SetSize(80, 24)

	m.Toggle()
	assert.True(t, m.Visible(), "expected toggle to show the overlay")

	m.Toggle()
	assert.False(t, m.Visible(), "expected second toggle to hide the overlay")
}

func TestHelp_View_ContainsSections(t *testing.T) {
	m := newVisible(80, 24)
	view := m.View()

	assert.Contains(t, view, "Droplist Showcase", "expected view to contain the intro heading")
	assert.Contains(t, view, "Picker", "expected view to contain Picker section")
	assert.Contains(t, view, "Demos", "expected view to contain Demos section")
	assert.Contains(t, view, "General", "expected view to contain General section")
}

func TestHelp_View_ContainsKeybindings(t *testing.T) {
	m := newVisible(80, 40)
	view := m.View()

	// Picker keys
	assert.Contains(t, view, "enter", "expected view to contain enter key")
	assert.Contains(t, view, "esc", "expected view to contain esc key")
	assert.Contains(t, view, "ctrl+n", "expected view to contain ctrl+n key")
	assert.Contains(t, view, "backspace", "expected view to contain backspace key")

	// Demo navigation keys
	assert.Contains(t, view, "tab", "expected view to contain tab key")

	// General keys
	assert.Contains(t, view, "ctrl+e", "expected view to contain event log key")
}

func TestHelp_View_ContainsTitle(t *testing.T) {
	m := newVisible(80, 24)
	view := m.View()

	assert.Contains(t, view, "Help", "expected view to contain title")
}

func TestHelp_View_ContainsFooter(t *testing.T) {
	m := newVisible(80, 24)
	view := m.View()

	assert.Contains(t, view, "Press ? or Esc to close", "expected view to contain footer")
}

func TestHelp_View_VariousSizes(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"standard 80x24", 80, 24},
		{"large 120x40", 120, 40},
		{"narrow 60x20", 60, 20},
		{"wide 200x30", 200, 30},
		{"tall 80x50", 80, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newVisible(tt.width, tt.height)
			view := m.View()

			assert.Contains(t, view, "Picker", "expected Picker section")
			assert.Contains(t, view, "General", "expected General section")
			assert.Contains(t, view, "Help", "expected title")
			assert.Contains(t, view, "Press ? or Esc to close", "expected footer")
		})
	}
}

func TestHelp_View_Stability(t *testing.T) {
	m := newVisible(80, 24)
	view1 := m.View()
	view2 := m.View()

	assert.Equal(t, view1, view2, "expected stable output from same model")
	assert.Greater(t, len(view1), 100, "expected substantial output")
}

func TestHelp_Update_CloseKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"question mark", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newVisible(80, 24)

			m, cmd := m.Update(tt.msg)

			assert.False(t, m.Visible(), "expected key to hide the overlay")
			require.NotNil(t, cmd, "expected a close command")
			assert.IsType(t, CloseMsg{}, cmd(), "expected CloseMsg")
		})
	}
}

func TestHelp_Update_Scrolling(t *testing.T) {
	// A short terminal forces the usage copy to overflow the viewport.
	m := newVisible(80, 16)
	require.True(t, m.viewport.Height < lineCount(m.rendered), "expected content taller than viewport")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.True(t, m.viewport.AtBottom(), "expected G to scroll to bottom")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.True(t, m.viewport.AtTop(), "expected g to scroll to top")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, m.viewport.YOffset, "expected j to scroll down one line")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, m.viewport.YOffset, "expected k to scroll back up")
}

func TestHelp_Update_IgnoredWhenHidden(t *testing.T) {
	m := New()
	m.SetSize(80, 24)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Nil(t, cmd, "expected no command while hidden")
	assert.False(t, m.Visible())
}

func TestHelp_Overlay(t *testing.T) {
	m := newVisible(80, 24)

	background := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	result := m.Overlay(background)

	assert.Contains(t, result, "Help", "expected overlay to contain title")
	assert.Contains(t, result, "Picker", "expected overlay to contain help content")

	// The overlay is centered, so the first line keeps background content.
	lines := strings.Split(result, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], ".", "expected first line to contain background")
}

func TestHelp_Overlay_HiddenReturnsBackground(t *testing.T) {
	m := New()
	m.SetSize(80, 24)

	background := "plain background"
	assert.Equal(t, background, m.Overlay(background), "expected hidden overlay to pass the background through")
}

func TestHelp_Overlay_BackgroundPreservation(t *testing.T) {
	m := newVisible(80, 24)

	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	result := m.Overlay(bg)

	dotCount := strings.Count(result, ".")
	assert.Greater(t, dotCount, 100, "expected background dots to be preserved around help")
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
