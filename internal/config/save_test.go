package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTheme_CreatesNewFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	theme := ThemeConfig{
		Preset: "dracula",
		Colors: map[string]any{"text.primary": "#FF0000"},
	}

	err := SaveTheme(configPath, theme)
	require.NoError(t, err)

	// Verify file exists
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	// Verify content
	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "preset: dracula")
	assert.Contains(t, string(data), "text.primary: '#FF0000'")
}

func TestSaveTheme_PreservesOtherConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// Create initial config with various settings and a comment
	initial := `debug: true
# keep this comment
picker:
  width: 24
  menu_max_height: 5
`
	err := os.WriteFile(configPath, []byte(initial), 0o644)
	require.NoError(t, err)

	// Save a new theme
	err = SaveTheme(configPath, ThemeConfig{Preset: "nord"})
	require.NoError(t, err)

	// Verify other settings preserved
	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "debug: true")
	assert.Contains(t, content, "# keep this comment")
	assert.Contains(t, content, "width: 24")
	assert.Contains(t, content, "menu_max_height: 5")
	// And the theme is there
	assert.Contains(t, content, "preset: nord")
}

func TestSaveTheme_ReplacesExistingTheme(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	initial := `theme:
  preset: dracula
  colors:
    text.primary: '#111111'
picker:
  width: 40
`
	err := os.WriteFile(configPath, []byte(initial), 0o644)
	require.NoError(t, err)

	err = SaveTheme(configPath, ThemeConfig{Preset: "catppuccin-mocha"})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "preset: catppuccin-mocha")
	assert.NotContains(t, content, "dracula")
	assert.NotContains(t, content, "#111111", "replaced theme should not keep stale overrides")
	assert.Contains(t, content, "width: 40")
}

func TestSaveTheme_Roundtrip(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	original := ThemeConfig{
		Preset: "high-contrast",
		Colors: map[string]any{
			"text.primary":     "#FFFFFF",
			"picker.checkmark": "#73F59F",
		},
	}

	// Save
	err := SaveTheme(configPath, original)
	require.NoError(t, err)

	// Load back using Viper with the "::" delimiter so dotted color keys
	// survive as map keys
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(configPath)
	err = v.ReadInConfig()
	require.NoError(t, err)

	var loaded Config
	err = v.Unmarshal(&loaded)
	require.NoError(t, err)

	// Verify roundtrip
	assert.Equal(t, original.Preset, loaded.Theme.Preset)
	flat := loaded.Theme.FlattenedColors()
	assert.Equal(t, "#FFFFFF", flat["text.primary"])
	assert.Equal(t, "#73F59F", flat["picker.checkmark"])
}

func TestSaveTheme_SortsColorKeys(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	theme := ThemeConfig{
		Colors: map[string]any{
			"text.primary": "#AAAAAA",
			"accent":       "#BBBBBB",
			"border.focus": "#CCCCCC",
			"status.error": "#DDDDDD",
			"picker.group": "#EEEEEE",
		},
	}

	err := SaveTheme(configPath, theme)
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	// Keys come out in sorted order so repeated saves diff cleanly
	accent := strings.Index(content, "accent:")
	border := strings.Index(content, "border.focus:")
	picker := strings.Index(content, "picker.group:")
	status := strings.Index(content, "status.error:")
	text := strings.Index(content, "text.primary:")
	require.GreaterOrEqual(t, accent, 0)
	require.GreaterOrEqual(t, text, 0)
	assert.True(t, accent < border && border < picker && picker < status && status < text,
		"color keys should be sorted:\n%s", content)
}

func TestSaveTheme_EmptyDirCreated(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nested", "deeper", "config.yaml")

	err := SaveTheme(configPath, ThemeConfig{Preset: "nord"})
	require.NoError(t, err)

	_, err = os.Stat(configPath)
	require.NoError(t, err)
}

func TestSaveTheme_NoTempFileLeftBehind(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	err := SaveTheme(configPath, ThemeConfig{Preset: "dracula"})
	require.NoError(t, err)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yaml", entries[0].Name())
}
