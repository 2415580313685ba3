package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 16, cfg.Menu.Width)
	assert.True(t, cfg.Menu.KeepInView)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.True(t, cfg.Theme.Watch)
	assert.True(t, cfg.TUI.ShowHelp)
	assert.True(t, cfg.TUI.AltScreen)
	assert.False(t, cfg.TUI.Explain)
	assert.Equal(t, 3*time.Second, cfg.TUI.StatusTimeout.Std())
	require.Len(t, cfg.Triggers, 2)
	assert.Equal(t, "context_menu_1", cfg.Triggers[0].ID)
	assert.Equal(t, []string{"Car", "Dar"}, cfg.Triggers[1].Items)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[menu]
width = 20
keep_in_view = false

[theme]
name = "catppuccin"
watch = false

[tui]
show_help = false
alt_screen = false
explain = true
status_timeout = "500ms"

[[triggers]]
id = "files"
label = "Files"
items = ["Open", "Rename", "Delete"]
width = 30
height = 4

[[triggers]]
id = "edit"
items = ["Cut"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Menu.Width)
	assert.False(t, cfg.Menu.KeepInView)
	assert.Equal(t, "catppuccin", cfg.Theme.Name)
	assert.False(t, cfg.Theme.Watch)
	assert.False(t, cfg.TUI.ShowHelp)
	assert.False(t, cfg.TUI.AltScreen)
	assert.True(t, cfg.TUI.Explain)
	assert.Equal(t, 500*time.Millisecond, cfg.TUI.StatusTimeout.Std())

	require.Len(t, cfg.Triggers, 2, "file triggers replace the demo set")
	assert.Equal(t, TriggerConfig{ID: "files", Label: "Files", Items: []string{"Open", "Rename", "Delete"}, Width: 30, Height: 4}, cfg.Triggers[0])

	edit, ok := cfg.Trigger("edit")
	require.True(t, ok)
	assert.Equal(t, "edit", edit.Label, "label defaults to id")
	assert.Equal(t, DefaultTriggerWidth, edit.Width)
	assert.Equal(t, DefaultTriggerHeight, edit.Height)

	_, ok = cfg.Trigger("missing")
	assert.False(t, ok)
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[theme]\nname = \"minimal\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Theme.Name)
	assert.Equal(t, DefaultConfig().Triggers, cfg.Triggers)
	assert.Equal(t, DefaultMenuWidth, cfg.Menu.Width)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("invalid toml [[["), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[[triggers]]
id = "a"
items = ["x"]

[[triggers]]
id = "a"
items = ["y"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, `duplicate id "a"`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"menu_width", func(c *Config) { c.Menu.Width = 0 }, "menu.width"},
		{"negative_timeout", func(c *Config) { c.TUI.StatusTimeout = Duration(-time.Second) }, "status_timeout"},
		{"missing_id", func(c *Config) { c.Triggers[0].ID = "" }, "id is required"},
		{"duplicate_id", func(c *Config) { c.Triggers[1].ID = c.Triggers[0].ID }, "duplicate id"},
		{"zero_size", func(c *Config) { c.Triggers[0].Height = 0 }, "must be positive"},
		{"negative_size", func(c *Config) { c.Triggers[1].Width = -3 }, "must be positive"},
		{"no_items", func(c *Config) { c.Triggers[0].Items = nil }, "items must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"250", 250 * time.Millisecond},
		{"2s", 2 * time.Second},
		{" 1m30s ", 90 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalText([]byte(tt.in)))
			assert.Equal(t, tt.want, d.Std())
		})
	}

	var d Duration
	assert.Error(t, d.UnmarshalText([]byte("soon")))

	out, err := Duration(1500 * time.Millisecond).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", string(out))
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Theme.Name = "catppuccin"
	cfg.Triggers = cfg.Triggers[:1]
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/ctxmenu/config.toml", ConfigPath())
	assert.Equal(t, "/tmp/xdg/ctxmenu/themes", ThemesDir())
}
