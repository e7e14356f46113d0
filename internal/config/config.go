// Package config provides configuration types, defaults, and persistence for droplist.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/droplist/droplist/internal/log"
)

// Config is the top-level configuration loaded from the YAML config file.
type Config struct {
	Debug   bool          `mapstructure:"debug"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Picker  PickerConfig  `mapstructure:"picker"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// PickerConfig holds default picker geometry applied to every showcase demo.
// A demo may still override any of these per scenario.
type PickerConfig struct {
	// Width is the toggle width in cells. 0 uses the widget default.
	Width int `mapstructure:"width"`

	// MenuMaxHeight caps visible option rows before the menu scrolls.
	// 0 uses the widget default.
	MenuMaxHeight int `mapstructure:"menu_max_height"`

	// Placement selects which side of the toggle the menu opens on.
	// Valid values: "bottom" (default), "top"
	Placement string `mapstructure:"placement"`

	// Locale overrides the built-in picker strings.
	Locale LocaleConfig `mapstructure:"locale"`
}

// LocaleConfig overrides the built-in picker strings. Empty fields keep
// the English defaults.
type LocaleConfig struct {
	Placeholder       string `mapstructure:"placeholder"`
	SearchPlaceholder string `mapstructure:"search_placeholder"`
	NoResults         string `mapstructure:"no_results"`
}

// TracingConfig holds interaction tracing configuration for the showcase.
type TracingConfig struct {
	// Enabled controls whether interaction tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/droplist/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// 1.0 = all traces, 0.1 = 10% of traces
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultConfigDir returns the per-user config directory.
// Returns ~/.config/droplist or empty string if home dir unavailable.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "droplist")
}

// DefaultConfigPath returns the per-user config file path.
// Returns ~/.config/droplist/config.yaml or empty string if home dir unavailable.
func DefaultConfigPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/droplist/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// DefaultLogFilePath returns the default path for the debug log.
// Returns ~/.config/droplist/droplist.log or empty string if home dir unavailable.
func DefaultLogFilePath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "droplist.log")
}

// ValidatePicker checks picker configuration for errors.
// Returns nil if the configuration is valid (zero values use defaults).
func ValidatePicker(picker PickerConfig) error {
	if picker.Width < 0 {
		return fmt.Errorf("picker.width must be >= 0, got %d", picker.Width)
	}
	if picker.MenuMaxHeight < 0 {
		return fmt.Errorf("picker.menu_max_height must be >= 0, got %d", picker.MenuMaxHeight)
	}
	if picker.Placement != "" {
		switch picker.Placement {
		case "bottom", "top":
			// Valid
		default:
			return fmt.Errorf("picker.placement must be \"bottom\" or \"top\", got %q", picker.Placement)
		}
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	// Validate SampleRate is in range [0.0, 1.0]
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	// Validate Exporter is a valid option
	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		// FilePath is required when Exporter is "file"
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}

		// OTLPEndpoint is required when Exporter is "otlp"
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// Validate checks the whole configuration for errors.
func (c Config) Validate() error {
	if err := ValidatePicker(c.Picker); err != nil {
		return err
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return err
	}
	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Debug: false,
		Theme: ThemeConfig{
			// Default theme uses the "default" preset
			Preset: "",
		},
		Picker: PickerConfig{
			Width:         30,
			MenuMaxHeight: 8,
			Placement:     "bottom",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Droplist Configuration

# Write debug logs to ~/.config/droplist/droplist.log
debug: false

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset:
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default droplist theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   border.focus: "#8BE9FD"
  #   picker.checkmark: "#73F59F"

# Default picker geometry for the showcase demos
picker:
  width: 30            # Toggle width in cells
  menu_max_height: 8   # Visible option rows before the menu scrolls
  placement: bottom    # Menu side: bottom or top

  # Override the built-in picker strings:
  # locale:
  #   placeholder: Select
  #   search_placeholder: Search
  #   no_results: No results found

# Interaction tracing configuration
# Emits a span per picker interaction (open, search, select, clean)
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/droplist/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
#
# Example: Send traces to Jaeger via OTLP
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: jaeger.internal:4317
#   sample_rate: 0.1  # Sample 10% of traces
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
