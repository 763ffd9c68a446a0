// Package config provides configuration types and defaults for quill.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/styles"
)

// Config holds all configuration options for quill.
type Config struct {
	Editor     EditorConfig    `mapstructure:"editor"`
	Theme      ThemeConfig     `mapstructure:"theme"`
	Language   string          `mapstructure:"language"`    // force a language tag, empty = detect from extension
	SessionsDB string          `mapstructure:"sessions_db"` // sqlite path, empty = default under config dir
	Flags      map[string]bool `mapstructure:"flags"`
}

// EditorConfig holds buffer and rendering options.
type EditorConfig struct {
	TabWidth        int  `mapstructure:"tab_width"`
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`

	// AutoReload re-reads the open file when it changes on disk and the
	// buffer has no unsaved edits.
	AutoReload bool `mapstructure:"auto_reload"`

	// AutoReloadDebounce coalesces bursts of filesystem events before a
	// reload is attempted.
	AutoReloadDebounce time.Duration `mapstructure:"auto_reload_debounce"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "light", "catppuccin-mocha"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode when no preset is named.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens by dot-notation key.
	// Example YAML (the config loader uses "::" as the key delimiter so the
	// dots survive):
	//   colors:
	//     syntax.keyword: "#FF0000"
	Colors map[string]string `mapstructure:"colors"`
}

// Styles converts the config section into the styles package's form.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: t.Preset,
		Mode:   t.Mode,
		Colors: t.Colors,
	}
}

// DefaultSessionsDBPath returns the default path for the session database.
// Returns ~/.config/quill/sessions.db or empty string if home dir unavailable.
func DefaultSessionsDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "quill", "sessions.db")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:           4,
			ShowLineNumbers:    true,
			AutoReload:         true,
			AutoReloadDebounce: 100 * time.Millisecond,
		},
		Theme: ThemeConfig{
			Preset: "",
		},
		SessionsDB: DefaultSessionsDBPath(),
	}
}

// Validate checks the configuration for errors. Empty values use defaults.
func Validate(cfg Config) error {
	if cfg.Editor.TabWidth < 0 || cfg.Editor.TabWidth > 16 {
		return fmt.Errorf("editor.tab_width must be between 0 and 16, got %d", cfg.Editor.TabWidth)
	}
	if cfg.Editor.AutoReloadDebounce < 0 {
		return fmt.Errorf("editor.auto_reload_debounce must not be negative, got %v", cfg.Editor.AutoReloadDebounce)
	}
	switch cfg.Theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", cfg.Theme.Mode)
	}
	if cfg.SessionsDB != "" && !filepath.IsAbs(cfg.SessionsDB) {
		return fmt.Errorf("sessions_db must be an absolute path, got %q", cfg.SessionsDB)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Quill Configuration

# Editor settings
editor:
  tab_width: 4             # Spaces a tab advances to in the viewport
  show_line_numbers: true  # Show the line number gutter
  auto_reload: true        # Reload the file when it changes on disk (unsaved edits win)
  # auto_reload_debounce: 100ms

# Force a highlight language instead of detecting from the file extension
# Valid values: rust, javascript, go, plain
# language: rust

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset (run 'quill themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - One Dark inspired palette
  #   light             - One Light inspired palette
  #   catppuccin-mocha  - Warm, cozy dark theme
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   syntax.keyword: "#FF0000"
  #   syntax.comment: "#777777"
  #   cursor: "#FFFFFF"

# Where cursor positions are remembered between runs
# sessions_db: /home/you/.config/quill/sessions.db
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
