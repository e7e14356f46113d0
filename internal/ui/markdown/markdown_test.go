package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SetsWidth(t *testing.T) {
	r, err := New(72)
	require.NoError(t, err)

	assert.Equal(t, 72, r.Width(), "expected renderer to report its wrap width")
}

func TestRender_KeepsContentWords(t *testing.T) {
	r, err := New(80)
	require.NoError(t, err)

	out, err := r.Render("# Droplist\n\n- first option\n- second option\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Droplist", "expected heading text to survive rendering")
	assert.Contains(t, out, "first option", "expected list items to survive rendering")
	assert.Contains(t, out, "second option", "expected list items to survive rendering")
}

func TestRender_TrimsTrailingNewlines(t *testing.T) {
	r, err := New(80)
	require.NoError(t, err)

	out, err := r.Render("plain paragraph\n")
	require.NoError(t, err)

	assert.NotEmpty(t, out)
	assert.False(t, strings.HasSuffix(out, "\n"), "expected trailing newlines to be trimmed")
}

func TestRender_WrapsAtWidth(t *testing.T) {
	r, err := New(20)
	require.NoError(t, err)

	out, err := r.Render("one two three four five six seven eight nine ten")
	require.NoError(t, err)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20, "expected lines to wrap at the configured width")
	}
}
