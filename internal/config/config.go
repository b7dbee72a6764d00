// Package config loads the bloop configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/shortcuts"
	"github.com/bloopai/bloop-tui/internal/state"
)

// LogConfig configures the file logger.
type LogConfig struct {
	File       string `json:"file,omitempty"`
	Level      string `json:"level,omitempty"`
	Format     string `json:"format,omitempty"`
	MaxSizeMB  int    `json:"maxSizeMB,omitempty"`
	MaxBackups int    `json:"maxBackups,omitempty"`
}

// Config is the on-disk configuration.
//
//	theme: dark
//	repeatWindow: 700ms
//	keybindings:
//	  open-public-repos: option+shift+p
type Config struct {
	Theme        string            `json:"theme,omitempty"`
	DocsURL      string            `json:"docsURL,omitempty"`
	RepeatWindow string            `json:"repeatWindow,omitempty"`
	SessionFile  string            `json:"sessionFile,omitempty"`
	Log          LogConfig         `json:"log,omitempty"`
	Keybindings  map[string]string `json:"keybindings,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:        string(state.ThemeSystem),
		DocsURL:      actions.DefaultDocsURL,
		RepeatWindow: shortcuts.DefaultRepeatWindow.String(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/bloop/config.yaml or the OS
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "bloop", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ThemeValue returns the configured theme.
func (c *Config) ThemeValue() (state.Theme, error) {
	if c.Theme == "" {
		return state.ThemeSystem, nil
	}
	theme, ok := state.ParseTheme(c.Theme)
	if !ok {
		return "", fmt.Errorf("unknown theme %q", c.Theme)
	}
	return theme, nil
}

// RepeatWindowValue returns the parsed repeat window.
func (c *Config) RepeatWindowValue() (time.Duration, error) {
	if c.RepeatWindow == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RepeatWindow)
	if err != nil {
		return 0, fmt.Errorf("invalid repeatWindow: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid repeatWindow: %s is negative", d)
	}
	return d, nil
}

// Overrides parses the keybindings section.
func (c *Config) Overrides() (map[actions.Name]keyboard.Chord, error) {
	overrides := make(map[actions.Name]keyboard.Chord, len(c.Keybindings))
	var errs []error
	for name, spec := range c.Keybindings {
		chord, err := keyboard.Parse(spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("keybinding %s: %w", name, err))
			continue
		}
		overrides[actions.Name(name)] = chord
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return overrides, nil
}

// Validate checks every field that does not need the action catalog.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.ThemeValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.RepeatWindowValue(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Overrides(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
