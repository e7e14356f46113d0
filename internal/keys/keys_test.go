package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Assignments(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{
			name:     "Up uses k and up arrow",
			binding:  k.Up,
			expected: []string{"k", "up"},
		},
		{
			name:     "Down uses j and down arrow",
			binding:  k.Down,
			expected: []string{"j", "down"},
		},
		{
			name:     "NextDemo uses tab and ctrl+n",
			binding:  k.NextDemo,
			expected: []string{"tab", "ctrl+n"},
		},
		{
			name:     "PrevDemo uses shift+tab and ctrl+p",
			binding:  k.PrevDemo,
			expected: []string{"shift+tab", "ctrl+p"},
		},
		{
			name:     "EventLog uses ctrl+e",
			binding:  k.EventLog,
			expected: []string{"ctrl+e"},
		},
		{
			name:     "Quit uses q and ctrl+c",
			binding:  k.Quit,
			expected: []string{"q", "ctrl+c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_HelpTextDefined(t *testing.T) {
	k := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", k.Up},
		{"Down", k.Down},
		{"Left", k.Left},
		{"Right", k.Right},
		{"NextDemo", k.NextDemo},
		{"PrevDemo", k.PrevDemo},
		{"Enter", k.Enter},
		{"Help", k.Help},
		{"EventLog", k.EventLog},
		{"ClearFeed", k.ClearFeed},
		{"Escape", k.Escape},
		{"Quit", k.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			help := b.binding.Help()
			require.NotEmpty(t, help.Key, "key help should not be empty")
			require.NotEmpty(t, help.Desc, "description help should not be empty")
		})
	}
}

func TestShortHelp(t *testing.T) {
	k := DefaultKeyMap()
	help := k.ShortHelp()
	require.Len(t, help, 2, "short help should contain 2 bindings")
	require.Equal(t, k.Help, help[0])
	require.Equal(t, k.Quit, help[1])
}

func TestFullHelp(t *testing.T) {
	k := DefaultKeyMap()
	help := k.FullHelp()
	require.Len(t, help, 4, "full help should contain 4 rows")

	// First row: navigation
	require.Contains(t, help[0], k.Up)
	require.Contains(t, help[0], k.Down)

	// Second row: demos
	require.Contains(t, help[1], k.NextDemo)
	require.Contains(t, help[1], k.PrevDemo)

	// Third row: overlays
	require.Contains(t, help[2], k.Help)
	require.Contains(t, help[2], k.EventLog)

	// Fourth row: general
	require.Contains(t, help[3], k.Quit)
}

func TestComponent_AvoidsPrintableKeys(t *testing.T) {
	// Component bindings route around focused text inputs, so they must not
	// claim printable characters like j/k.
	require.Equal(t, []string{"down", "ctrl+n"}, Component.Next.Keys())
	require.Equal(t, []string{"up", "ctrl+p"}, Component.Prev.Keys())
	require.Equal(t, []string{"ctrl+u"}, Component.Clear.Keys())
}

func TestCommon_Bindings(t *testing.T) {
	require.Equal(t, []string{"enter"}, Common.Enter.Keys())
	require.Equal(t, []string{"esc"}, Common.Escape.Keys())
}
