// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Default configuration values.
const (
	DefaultMenuWidth     = 16
	DefaultThemeName     = "default"
	DefaultStatusTimeout = 3 * time.Second
	DefaultTriggerWidth  = 24
	DefaultTriggerHeight = 8
)

// Config represents the ctxmenu configuration.
type Config struct {
	Menu     MenuConfig      `toml:"menu"`
	Theme    ThemeConfig     `toml:"theme"`
	TUI      TUIConfig       `toml:"tui"`
	Triggers []TriggerConfig `toml:"triggers"`
}

// MenuConfig holds popup settings shared by every trigger.
type MenuConfig struct {
	Width      int  `toml:"width"`        // Popup column width in cells
	KeepInView bool `toml:"keep_in_view"` // Shift popups that would overflow the terminal
}

// ThemeConfig selects the palette.
type ThemeConfig struct {
	Name  string `toml:"name"`
	Watch bool   `toml:"watch"` // Hot reload the theme file
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	ShowHelp      bool     `toml:"show_help"`
	AltScreen     bool     `toml:"alt_screen"`
	Explain       bool     `toml:"explain"`        // Outline containers on start
	StatusTimeout Duration `toml:"status_timeout"` // 0 keeps the status line forever
}

// TriggerConfig describes one right-clickable area and its menu.
type TriggerConfig struct {
	ID     string   `toml:"id"`
	Label  string   `toml:"label"`
	Items  []string `toml:"items"`
	Width  int      `toml:"width"`
	Height int      `toml:"height"`
}

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Bare integers are milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if ms, err := strconv.Atoi(s); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns a Config with default values and the two demo
// triggers.
func DefaultConfig() *Config {
	return &Config{
		Menu: MenuConfig{
			Width:      DefaultMenuWidth,
			KeepInView: true,
		},
		Theme: ThemeConfig{
			Name:  DefaultThemeName,
			Watch: true,
		},
		TUI: TUIConfig{
			ShowHelp:      true,
			AltScreen:     true,
			StatusTimeout: Duration(DefaultStatusTimeout),
		},
		Triggers: []TriggerConfig{
			{
				ID:     "context_menu_1",
				Label:  "Right Click Me",
				Items:  []string{"Foo", "Bar"},
				Width:  DefaultTriggerWidth,
				Height: DefaultTriggerHeight,
			},
			{
				ID:     "context_menu_2",
				Label:  "Or Right Click Me",
				Items:  []string{"Car", "Dar"},
				Width:  DefaultTriggerWidth,
				Height: DefaultTriggerHeight,
			},
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// ConfigDir returns the ctxmenu configuration directory.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ctxmenu")
}

// ThemesDir returns the directory user themes are read from.
func ThemesDir() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "themes")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	// A file that lists triggers replaces the demo set rather than
	// appending to it.
	cfg.Triggers = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Triggers) == 0 {
		cfg.Triggers = DefaultConfig().Triggers
	}
	cfg.applyTriggerDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyTriggerDefaults fills sizes omitted from a trigger table.
func (c *Config) applyTriggerDefaults() {
	for i := range c.Triggers {
		if c.Triggers[i].Width == 0 {
			c.Triggers[i].Width = DefaultTriggerWidth
		}
		if c.Triggers[i].Height == 0 {
			c.Triggers[i].Height = DefaultTriggerHeight
		}
		if c.Triggers[i].Label == "" {
			c.Triggers[i].Label = c.Triggers[i].ID
		}
	}
}

// Validate checks the configuration for values the TUI cannot render.
func (c *Config) Validate() error {
	var errs []error
	if c.Menu.Width <= 0 {
		errs = append(errs, fmt.Errorf("menu.width must be positive, got %d", c.Menu.Width))
	}
	if c.TUI.StatusTimeout < 0 {
		errs = append(errs, errors.New("tui.status_timeout must not be negative"))
	}

	seen := make(map[string]int, len(c.Triggers))
	for i, t := range c.Triggers {
		switch {
		case t.ID == "":
			errs = append(errs, fmt.Errorf("triggers[%d]: id is required", i))
		case seen[t.ID] > 0:
			errs = append(errs, fmt.Errorf("triggers[%d]: duplicate id %q (also triggers[%d])", i, t.ID, seen[t.ID]-1))
		default:
			seen[t.ID] = i + 1
		}
		if t.Width <= 0 || t.Height <= 0 {
			errs = append(errs, fmt.Errorf("triggers[%d]: size %dx%d must be positive", i, t.Width, t.Height))
		}
		if len(t.Items) == 0 {
			errs = append(errs, fmt.Errorf("triggers[%d]: items must not be empty", i))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.MarshalTOML()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// MarshalTOML renders the configuration as TOML.
func (c *Config) MarshalTOML() ([]byte, error) {
	return toml.Marshal(c)
}

// Trigger returns the trigger with the given id.
func (c *Config) Trigger(id string) (TriggerConfig, bool) {
	for _, t := range c.Triggers {
		if t.ID == id {
			return t, true
		}
	}
	return TriggerConfig{}, false
}
