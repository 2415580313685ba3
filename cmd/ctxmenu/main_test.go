package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configOpts.write = false
		globalOpts.configPath = ""
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestConfigCommand_PrintsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out := runCLI(t, "config")
	assert.Contains(t, out, "[menu]")
	assert.Contains(t, out, "keep_in_view = true")
	assert.Contains(t, out, "context_menu_1")
}

func TestConfigCommand_Write(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	out := runCLI(t, "config", "--write")
	path := filepath.Join(home, "ctxmenu", "config.toml")
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
}

func TestThemesCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "ctxmenu", "themes")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.yaml"), []byte("colors: {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minimal.yaml"), []byte("colors: {}\n"), 0o644))

	out := runCLI(t, "themes")
	assert.Contains(t, out, "* default      bundled")
	assert.Contains(t, out, "mine         user, modified")
	assert.Contains(t, out, "overrides bundled")
	assert.Contains(t, out, "catppuccin")
}
