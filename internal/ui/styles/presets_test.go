package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetsRegistered(t *testing.T) {
	expected := []string{
		"default",
		"catppuccin-mocha",
		"catppuccin-latte",
		"dracula",
		"nord",
		"high-contrast",
	}
	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			preset, ok := Presets[name]
			require.True(t, ok, "preset %s should be registered", name)
			require.Equal(t, name, preset.Name, "map key should match preset name")
			require.NotEmpty(t, preset.Description)
		})
	}
	require.Len(t, Presets, len(expected))
}

func TestPresetsDefineAllTokens(t *testing.T) {
	// Every preset must assign every token so switching presets never leaves
	// a stale color from the previous theme.
	for name, preset := range Presets {
		t.Run(name, func(t *testing.T) {
			for _, token := range AllTokens() {
				_, ok := preset.Colors[token]
				require.True(t, ok, "preset %s missing token %s", name, token)
			}
			require.Len(t, preset.Colors, len(AllTokens()), "preset %s has unknown extra tokens", name)
		})
	}
}

func TestPresetColorsAreValidHex(t *testing.T) {
	for name, preset := range Presets {
		t.Run(name, func(t *testing.T) {
			for token, color := range preset.Colors {
				require.True(t, isValidHexColor(color), "preset %s token %s has invalid color %q", name, token, color)
			}
		})
	}
}

func TestApplyEveryPreset(t *testing.T) {
	for name := range Presets {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, ApplyTheme(ThemeConfig{Preset: name}))
		})
	}

	// Restore defaults for any tests that follow.
	require.NoError(t, ApplyTheme(ThemeConfig{}))
}
