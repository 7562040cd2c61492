package script

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed scripts/*.yaml
var embeddedScripts embed.FS

// DefaultScript is played when no script is named.
const DefaultScript = "demo"

// LoadBundled loads a script compiled into the binary.
func LoadBundled(name string) (*Script, error) {
	data, err := embeddedScripts.ReadFile("scripts/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("bundled script %q not found", name)
	}
	return Parse(data)
}

// ListBundled returns the names of the bundled scripts, sorted.
func ListBundled() []string {
	entries, err := embeddedScripts.ReadDir("scripts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// IsBundled reports whether name is a bundled script.
func IsBundled(name string) bool {
	_, err := embeddedScripts.ReadFile("scripts/" + name + ".yaml")
	return err == nil
}

// Resolve loads a script by bundled name, file path, or "-" for stdin.
// Bundled names win over files of the same name in the working
// directory.
func Resolve(ref string) (*Script, error) {
	if ref == "" {
		ref = DefaultScript
	}
	if ref != "-" && IsBundled(ref) {
		return LoadBundled(ref)
	}
	return LoadFile(ref)
}
