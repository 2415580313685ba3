// Package theme provides YAML palettes for the ctxmenu terminal UI.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ErrThemeNotFound is returned when a theme is neither in the user's themes
// directory nor bundled.
var ErrThemeNotFound = errors.New("theme not found")

// Palette keys understood by Styles.
const (
	KeyText          = "text"
	KeyMuted         = "muted"
	KeyTriggerFg     = "trigger_fg"
	KeyTriggerBg     = "trigger_bg"
	KeyTriggerBorder = "trigger_border"
	KeyMenuFg        = "menu_fg"
	KeyMenuBg        = "menu_bg"
	KeyMenuBorder    = "menu_border"
	KeyItemHoverFg   = "item_hover_fg"
	KeyItemHoverBg   = "item_hover_bg"
	KeyStatus        = "status"
	KeyKey           = "key"
	KeyOutline       = "outline"
)

// Theme is a named palette with metadata.
type Theme struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description,omitempty"`
	Extends      string            `yaml:"extends,omitempty"`
	Colors       map[string]string `yaml:"colors"`
	ReverseHover bool              `yaml:"reverse_hover,omitempty"`

	Path      string    `yaml:"-"` // empty for bundled themes
	ModTime   time.Time `yaml:"-"`
	IsDefault bool      `yaml:"-"` // true if this is the embedded fallback
}

// resolver looks up the raw YAML of a theme by name, used for "extends".
type resolver func(name string) ([]byte, string, error)

// Parse decodes a theme document. The name defaults to fallbackName when
// the document does not set one.
func Parse(data []byte, fallbackName string) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse theme %q: %w", fallbackName, err)
	}
	if t.Name == "" {
		t.Name = fallbackName
	}
	if t.Colors == nil {
		t.Colors = map[string]string{}
	}
	return &t, nil
}

// NewTheme loads a theme file from disk. A parent named by "extends" is
// looked up next to the file first, then among the bundled themes.
func NewTheme(name, path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	t, err := Parse(data, name)
	if err != nil {
		return nil, err
	}
	t.Path = path
	t.ModTime = info.ModTime()

	if err := t.resolveExtends(dirResolver(filepath.Dir(path)), map[string]bool{name: true}); err != nil {
		return nil, err
	}
	return t, nil
}

// resolveExtends merges parent palettes into t. Keys present in the child,
// even with an empty value, win over the parent. The seen map prevents
// circular inheritance.
func (t *Theme) resolveExtends(lookup resolver, seen map[string]bool) error {
	if t.Extends == "" {
		return nil
	}
	if seen[t.Extends] {
		return fmt.Errorf("theme %q: circular extends of %q", t.Name, t.Extends)
	}
	seen[t.Extends] = true

	data, _, err := lookup(t.Extends)
	if err != nil {
		return fmt.Errorf("theme %q extends %q: %w", t.Name, t.Extends, err)
	}
	parent, err := Parse(data, t.Extends)
	if err != nil {
		return err
	}
	if err := parent.resolveExtends(lookup, seen); err != nil {
		return err
	}
	for k, v := range parent.Colors {
		if _, ok := t.Colors[k]; !ok {
			t.Colors[k] = v
		}
	}
	return nil
}

// dirResolver resolves theme names against dir, then the bundled themes.
func dirResolver(dir string) resolver {
	return func(name string) ([]byte, string, error) {
		if dir != "" {
			path := filepath.Join(dir, name+".yaml")
			if data, err := os.ReadFile(path); err == nil {
				return data, path, nil
			}
		}
		if data, ok := GetEmbeddedTheme(name); ok {
			return data, "", nil
		}
		return nil, "", fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
}

// Color returns the palette entry for key as a lipgloss color. Missing or
// empty entries yield the terminal default.
func (t *Theme) Color(key string) lipgloss.TerminalColor {
	if v := strings.TrimSpace(t.Colors[key]); v != "" {
		return lipgloss.Color(v)
	}
	return lipgloss.NoColor{}
}

// Reload reloads the theme from disk. Bundled themes are left untouched.
func (t *Theme) Reload() error {
	if t.Path == "" {
		return nil
	}
	fresh, err := NewTheme(t.Name, t.Path)
	if err != nil {
		return err
	}
	*t = *fresh
	return nil
}

// NeedsReload reports whether the file changed since it was loaded.
func (t *Theme) NeedsReload() bool {
	if t.Path == "" {
		return false
	}
	info, err := os.Stat(t.Path)
	if err != nil {
		return false
	}
	return info.ModTime().After(t.ModTime)
}

// ListAvailableThemes returns the sorted union of user and bundled themes.
func ListAvailableThemes(themesDir string) ([]string, error) {
	names := make(map[string]bool)
	for _, n := range ListEmbeddedThemes() {
		names[n] = true
	}

	if themesDir != "" {
		entries, err := os.ReadDir(themesDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
				names[name] = true
			}
		}
	}

	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}
