// Package cmd contains the quill command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/quill/internal/app"
	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/infrastructure/sqlite"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/sessions/domain"
	"github.com/zjrosen/quill/internal/tracing"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the buffer.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	traceFlag bool
	cfg       config.Config
)

// vp is the config loader. Color-token override keys contain dots
// ("syntax.keyword"), so the key delimiter is "::" to keep them as flat
// map keys instead of nested paths.
var vp = viper.NewWithOptions(viper.KeyDelimiter("::"))

var rootCmd = &cobra.Command{
	Use:     "quill [file]",
	Short:   "A terminal code editor",
	Long:    `A terminal code editor built on a persistent copy-on-write buffer, with per-line syntax highlighting, themes, and per-file session restore.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/quill/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log to quill.log")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false,
		"write OpenTelemetry spans to quill-traces.jsonl")
	rootCmd.Flags().StringP("language", "l", "",
		"force a highlight language (rust, javascript, go, plain)")

	_ = vp.BindPFlag("language", rootCmd.Flags().Lookup("language"))
}

func initConfig() {
	defaults := config.Defaults()
	vp.SetDefault("editor::tab_width", defaults.Editor.TabWidth)
	vp.SetDefault("editor::show_line_numbers", defaults.Editor.ShowLineNumbers)
	vp.SetDefault("editor::auto_reload", defaults.Editor.AutoReload)
	vp.SetDefault("editor::auto_reload_debounce", defaults.Editor.AutoReloadDebounce)
	vp.SetDefault("sessions_db", defaults.SessionsDB)

	if cfgFile != "" {
		vp.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .quill/config.yaml (current directory)
		// 2. ~/.config/quill/config.yaml (user config)
		if _, err := os.Stat(".quill/config.yaml"); err == nil {
			vp.SetConfigFile(".quill/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			vp.AddConfigPath(filepath.Join(home, ".config", "quill"))
			vp.SetConfigName("config")
			vp.SetConfigType("yaml")
		}
	}

	if err := vp.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default user config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if home, homeErr := os.UserHomeDir(); homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "quill", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					vp.SetConfigFile(defaultPath)
					_ = vp.ReadInConfig()
				}
				// If write fails, just continue with defaults (no config file)
			}
		}
	}

	cfg = config.Defaults()
	_ = vp.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debugFlag || os.Getenv("QUILL_DEBUG") != "" {
		if cleanup, err := log.Init("quill.log"); err == nil {
			defer cleanup()
		}
	}

	tracer, err := tracing.NewProvider(tracing.Config{
		Enabled:     traceFlag,
		Exporter:    "file",
		FilePath:    "quill-traces.jsonl",
		ServiceName: "quill",
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = tracer.Shutdown(ctx)
		cancel()
	}()

	// Session persistence is best-effort: the editor works without it.
	var sessions domain.EditSessionRepository
	dbPath := cfg.SessionsDB
	if dbPath == "" {
		dbPath = config.DefaultSessionsDBPath()
	}
	if dbPath != "" {
		db, dbErr := sqlite.NewDB(dbPath)
		if dbErr != nil {
			log.Warn(log.CatSession, "Session store unavailable", "path", dbPath, "error", dbErr)
		} else {
			sessions = db.EditSessionRepository()
			defer func() { _ = db.Close() }()
		}
	}

	model, err := app.New(app.Config{
		Path:       args[0],
		ConfigPath: vp.ConfigFileUsed(),
		UserConfig: cfg,
		Sessions:   sessions,
		Tracer:     tracer,
	})
	if err != nil {
		return err
	}

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

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
