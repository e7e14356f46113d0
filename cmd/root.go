// Package cmd wires the droplist showcase binary: config loading,
// logging, tracing, the config-file watcher, and the Bubble Tea
// program itself.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/droplist/droplist/internal/app"
	"github.com/droplist/droplist/internal/config"
	"github.com/droplist/droplist/internal/log"
	"github.com/droplist/droplist/internal/tracing"
	"github.com/droplist/droplist/internal/ui/styles"
	"github.com/droplist/droplist/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color
	// BEFORE any Bubble Tea program starts. This prevents the
	// terminal's OSC 11 response from racing with Bubble Tea's input
	// loop and appearing as garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "droplist",
	Short:   "A select-picker widget showcase for the terminal",
	Long: `droplist is a single-select dropdown widget for Bubble Tea applications.
This binary runs its showcase: a gallery of live demos covering grouping,
sorting, searching, virtualized lists, controlled selection, and custom
rendering.`,
	Version: version,
	RunE:    runShowcase,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/droplist/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"write debug logs to the droplist log file")
	rootCmd.Flags().Bool("no-watch", false,
		"disable live config reload")

	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("picker.width", defaults.Picker.Width)
	viper.SetDefault("picker.menu_max_height", defaults.Picker.MenuMaxHeight)
	viper.SetDefault("picker.placement", defaults.Picker.Placement)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .droplist/config.yaml (current directory)
		// 2. ~/.config/droplist/config.yaml (user config)
		if _, err := os.Stat(filepath.Join(".droplist", "config.yaml")); err == nil {
			viper.SetConfigFile(filepath.Join(".droplist", "config.yaml"))
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "droplist"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a commented default.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := filepath.Join(".droplist", "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If the write fails, continue with defaults in memory.
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// reloadConfig re-reads and validates the config file. Handed to the
// app so watcher signals can apply edits without a restart.
func reloadConfig() (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("re-reading config: %w", err)
	}
	var next config.Config
	if err := viper.Unmarshal(&next); err != nil {
		return config.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := next.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return next, nil
}

func runShowcase(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if os.Getenv("DROPLIST_DEBUG") != "" {
		cfg.Debug = true
	}
	if cfg.Debug {
		logPath := config.DefaultLogFilePath()
		if logPath != "" {
			cleanup, err := log.Init(logPath)
			if err != nil {
				return fmt.Errorf("initializing log: %w", err)
			}
			defer cleanup()
		}
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	tracesPath := cfg.Tracing.FilePath
	if tracesPath == "" {
		tracesPath = config.DefaultTracesFilePath()
	}
	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     tracesPath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  "droplist",
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := provider.Shutdown(ctx); shutdownErr != nil {
			log.ErrorErr(log.CatTrace, "trace provider shutdown failed", shutdownErr)
		}
	}()

	var reloadCh <-chan struct{}
	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if configPath := viper.ConfigFileUsed(); configPath != "" && !noWatch {
		w, watchErr := watcher.New(watcher.DefaultConfig(configPath))
		if watchErr != nil {
			log.ErrorErr(log.CatWatcher, "config watcher unavailable", watchErr)
		} else if ch, startErr := w.Start(); startErr != nil {
			log.ErrorErr(log.CatWatcher, "config watcher failed to start", startErr)
		} else {
			reloadCh = ch
			defer func() { _ = w.Stop() }()
		}
	}

	zone.NewGlobal()

	model := app.New(app.Options{
		Config:   cfg,
		Reload:   reloadConfig,
		ReloadCh: reloadCh,
		Recorder: tracing.NewRecorder(provider.Tracer()),
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
