package theme

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Loader resolves themes by name and remembers the current one.
type Loader struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	themesDir string
	theme     *Theme
}

// NewLoader creates a theme loader reading user themes from themesDir.
// An empty themesDir means only bundled themes are available.
func NewLoader(logger *slog.Logger, themesDir string) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:    logger,
		themesDir: themesDir,
	}
}

// ThemesDir returns the path to the user's themes directory.
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "ctxmenu", "themes"), nil
}

// Dir returns the directory user themes are read from.
func (l *Loader) Dir() string {
	return l.themesDir
}

// Resolve loads a theme by name without falling back.
// Theme resolution order:
//  1. User themes directory (~/.config/ctxmenu/themes/)
//  2. Embedded/bundled themes
//
// A user file with the same name as a bundled theme overrides it.
func (l *Loader) Resolve(name string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}

	if l.themesDir != "" {
		path := filepath.Join(l.themesDir, name+".yaml")
		if _, err := os.Stat(path); err == nil {
			t, err := NewTheme(name, path)
			if err == nil {
				return t, nil
			}
			l.logger.Warn("failed to load user theme, trying bundled", "theme", name, "error", err)
		}
	}

	t, err := Embedded(name)
	if err != nil {
		return nil, fmt.Errorf("load theme %q: %w", name, err)
	}
	return t, nil
}

// Load resolves name and makes it the current theme. Unknown or broken
// themes fall back to the bundled default.
func (l *Loader) Load(name string) (*Theme, error) {
	t, err := l.Resolve(name)
	if err != nil {
		if errors.Is(err, ErrThemeNotFound) {
			l.logger.Warn("theme not found, using default", "theme", name)
		} else {
			l.logger.Warn("theme failed to load, using default", "theme", name, "error", err)
		}
		t, err = Embedded(DefaultThemeName)
		if err != nil {
			return nil, err
		}
	}

	l.mu.Lock()
	l.theme = t
	l.mu.Unlock()

	if t.Path != "" {
		l.logger.Info("loaded user theme", "name", t.Name, "path", t.Path)
	} else {
		l.logger.Info("loaded bundled theme", "name", t.Name)
	}
	return t, nil
}

// Current returns the currently loaded theme, or nil before the first Load.
func (l *Loader) Current() *Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.theme
}

// Reload loads the current theme again by name, picking up new or edited
// user files.
func (l *Loader) Reload() (*Theme, error) {
	name := DefaultThemeName
	if cur := l.Current(); cur != nil {
		name = cur.Name
	}
	return l.Load(name)
}
