package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmylchreest/statui/internal/config"
)

// ThemesDir returns the user theme directory.
func ThemesDir() string {
	return filepath.Join(config.ConfigDir(), "themes")
}

// Load resolves a theme by name. A user theme file overrides a bundled
// theme of the same name. Unknown names are an error; callers decide
// whether to fall back to the default theme.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}

	path := filepath.Join(ThemesDir(), name+".toml")
	if data, err := os.ReadFile(path); err == nil {
		t, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		t.Path = path
		if info, err := os.Stat(path); err == nil {
			t.ModTime = info.ModTime()
		}
		return t, nil
	}

	if t, ok := loadEmbedded(name); ok {
		return t, nil
	}

	return nil, fmt.Errorf("theme %q not found", name)
}

// Info describes an available theme.
type Info struct {
	Name    string
	Bundled bool
	Path    string    // empty for bundled themes
	ModTime time.Time // zero for bundled themes
}

// List returns the available themes sorted by name. A user theme shadows
// a bundled theme with the same name.
func List() []Info {
	byName := make(map[string]Info)
	for _, name := range ListEmbedded() {
		byName[name] = Info{Name: name, Bundled: true}
	}

	entries, err := os.ReadDir(ThemesDir())
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := filepath.Ext(entry.Name())
			if ext != ".toml" {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), ext)
			info := Info{Name: name, Path: filepath.Join(ThemesDir(), entry.Name())}
			if fi, err := entry.Info(); err == nil {
				info.ModTime = fi.ModTime()
			}
			byName[name] = info
		}
	}

	out := make([]Info, 0, len(byName))
	for _, info := range byName {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
