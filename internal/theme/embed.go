package theme

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed themes/*.yaml
var bundledThemes embed.FS

// DefaultThemeName is the theme used when none is configured or the
// configured one cannot be loaded.
const DefaultThemeName = "default"

// GetEmbeddedTheme returns the raw YAML of a bundled theme.
func GetEmbeddedTheme(name string) ([]byte, bool) {
	data, err := bundledThemes.ReadFile(path.Join("themes", name+".yaml"))
	if err != nil {
		return nil, false
	}
	return data, true
}

// ListEmbeddedThemes returns the names of all bundled themes, sorted.
func ListEmbeddedThemes() []string {
	entries, err := bundledThemes.ReadDir("themes")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// IsEmbeddedTheme reports whether name is bundled.
func IsEmbeddedTheme(name string) bool {
	_, ok := GetEmbeddedTheme(name)
	return ok
}

// Embedded parses a bundled theme with its "extends" chain resolved.
func Embedded(name string) (*Theme, error) {
	data, ok := GetEmbeddedTheme(name)
	if !ok {
		return nil, ErrThemeNotFound
	}
	t, err := Parse(data, name)
	if err != nil {
		return nil, err
	}
	if err := t.resolveExtends(dirResolver(""), map[string]bool{name: true}); err != nil {
		return nil, err
	}
	t.IsDefault = name == DefaultThemeName
	return t, nil
}
