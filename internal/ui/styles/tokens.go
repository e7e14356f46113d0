// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"
	TokenTextDisabled    ColorToken = "text.disabled"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator ColorToken = "selection.indicator"

	// Accent
	TokenAccent ColorToken = "accent"

	// Picker
	TokenPickerFocusBg   ColorToken = "picker.focus.bg"
	TokenPickerGroup     ColorToken = "picker.group"
	TokenPickerClear     ColorToken = "picker.clear"
	TokenPickerCheckmark ColorToken = "picker.checkmark"

	// Overlays/Modals
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		// Text hierarchy
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextPlaceholder,
		TokenTextDisabled,

		// Borders
		TokenBorderDefault,
		TokenBorderFocus,

		// Status indicators
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		// Selection
		TokenSelectionIndicator,

		// Accent
		TokenAccent,

		// Picker
		TokenPickerFocusBg,
		TokenPickerGroup,
		TokenPickerClear,
		TokenPickerCheckmark,

		// Overlays/Modals
		TokenOverlayTitle,
		TokenOverlayBorder,
	}
}
