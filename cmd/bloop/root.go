package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bloopai/bloop-tui/internal/app"
	"github.com/bloopai/bloop-tui/internal/config"
	"github.com/bloopai/bloop-tui/internal/logging"
	"github.com/bloopai/bloop-tui/internal/platform"
)

// flags override the config file
type flags struct {
	configPath string
	theme      string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "bloop",
		Short:         "Search your code from the terminal",
		Long:          `bloop is a terminal client for code search. Press ? inside the app for every shortcut.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(f)
			if err != nil {
				return err
			}
			return run(cfg, path)
		},
	}

	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/bloop/config.yaml)")
	cmd.PersistentFlags().StringVar(&f.theme, "theme", "", "theme to use (light, dark, black, system)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")

	cmd.AddCommand(newKeysCmd(&f))
	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(f flags) (*config.Config, string, error) {
	path := f.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, "", err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}

	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func run(cfg *config.Config, configPath string) error {
	if err := logging.Init(logging.Config{
		FilePath:   cfg.Log.File,
		Level:      logging.ParseLevel(cfg.Log.Level),
		Format:     logging.ParseFormat(cfg.Log.Format),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		var err error
		if sessionPath, err = platform.DefaultSessionPath(); err != nil {
			return err
		}
	}
	reportDir, err := platform.DefaultBugReportDir()
	if err != nil {
		reportDir = filepath.Join(filepath.Dir(configPath), "bug-reports")
	}

	model, err := app.Build(app.Options{
		Config:     cfg,
		ConfigPath: configPath,
		Links:      platform.NewBrowser(),
		Auth:       platform.NewSessionAuth(sessionPath),
		Reporter:   platform.NewBugReporter(reportDir),
	})
	if err != nil {
		return err
	}
	defer model.Close()

	logging.Info("Starting bloop", "version", version, "config", configPath, "theme", cfg.Theme)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
