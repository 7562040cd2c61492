// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultTitle             = "Untitled.ipynb"
	DefaultThemeName         = "default"
	DefaultMirrorAppName     = "statui"
	DefaultMirrorMinInterval = 5 * time.Second
	DefaultScript            = "demo"
	DefaultSpeed             = 1.0
)

// Config represents the statui configuration.
type Config struct {
	UI        UIConfig        `toml:"ui"`
	Theme     ThemeConfig     `toml:"theme"`
	Mirror    MirrorConfig    `toml:"mirror"`
	Replay    ReplayConfig    `toml:"replay"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// UIConfig holds status area settings.
type UIConfig struct {
	Title        string `toml:"title"`          // document name shown in the title bar
	ShowEventLog bool   `toml:"show_event_log"` // event log pane below the status bar
	ShowHelp     bool   `toml:"show_help"`
	BellOnDanger bool   `toml:"bell_on_danger"` // ring the terminal bell on danger messages
}

// ThemeConfig selects the active theme.
type ThemeConfig struct {
	Name string `toml:"name"`
}

// MirrorConfig controls forwarding of sticky alerts to the desktop
// notification service.
type MirrorConfig struct {
	Enabled     bool     `toml:"enabled"`
	AppName     string   `toml:"app_name"`
	MinInterval Duration `toml:"min_interval"` // per-widget resend floor
}

// ReplayConfig holds script playback settings.
type ReplayConfig struct {
	Script string  `toml:"script"` // bundled name or file path
	Speed  float64 `toml:"speed"`  // delay divisor, 2.0 plays twice as fast
	Loop   bool    `toml:"loop"`
}

// ClipboardConfig holds clipboard settings (TUI only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Title:        DefaultTitle,
			ShowEventLog: true,
			ShowHelp:     true,
			BellOnDanger: true,
		},
		Theme: ThemeConfig{
			Name: DefaultThemeName,
		},
		Mirror: MirrorConfig{
			Enabled:     false,
			AppName:     DefaultMirrorAppName,
			MinInterval: Duration(DefaultMirrorMinInterval),
		},
		Replay: ReplayConfig{
			Script: DefaultScript,
			Speed:  DefaultSpeed,
			Loop:   false,
		},
		Clipboard: ClipboardConfig{
			Command: "", // Auto-detect
		},
	}
}

// ConfigDir returns the statui configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "statui")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	if c.Replay.Speed <= 0 {
		return fmt.Errorf("replay speed must be positive, got %v", c.Replay.Speed)
	}
	if c.Mirror.MinInterval < 0 {
		return fmt.Errorf("mirror min_interval must not be negative, got %v", c.Mirror.MinInterval.Duration())
	}
	if c.Theme.Name == "" {
		return errors.New("theme name must not be empty")
	}
	if c.Mirror.AppName == "" {
		c.Mirror.AppName = DefaultMirrorAppName
	}
	return nil
}

// Save writes the configuration atomically to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
