package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

// EmbeddedThemes contains all bundled theme files.
//
//go:embed themes/*.toml
var EmbeddedThemes embed.FS

// DefaultThemeName is the name of the built-in default theme.
const DefaultThemeName = "default"

// loadEmbedded parses a bundled theme by name.
func loadEmbedded(name string) (*Theme, bool) {
	data, err := EmbeddedThemes.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return nil, false
	}
	t, err := Parse(name, data)
	if err != nil {
		// A bundled theme that fails to parse is a packaging bug.
		return nil, false
	}
	return t, true
}

// ListEmbedded returns the names of all bundled themes.
func ListEmbedded() []string {
	var names []string
	entries, err := fs.ReadDir(EmbeddedThemes, "themes")
	if err != nil {
		return names
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ext := filepath.Ext(entry.Name()); ext == ".toml" {
			names = append(names, strings.TrimSuffix(entry.Name(), ext))
		}
	}
	return names
}

// IsEmbedded checks whether a theme name is bundled.
func IsEmbedded(name string) bool {
	_, ok := loadEmbedded(name)
	return ok
}
