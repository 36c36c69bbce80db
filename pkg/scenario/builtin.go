package scenario

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

const builtinDir = "builtin"

// BuiltinNames lists the embedded scenarios.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir(builtinDir)
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

// Builtin returns the embedded scenario called name.
func Builtin(name string) (File, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	data, err := builtinFS.ReadFile(path.Join(builtinDir, normalized+".yaml"))
	if err != nil {
		return File{}, fmt.Errorf("unknown builtin scenario %q (available: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return ParseFile(data)
}

// Load returns the builtin scenario called nameOrPath, or reads the file at
// that path when no builtin matches.
func Load(nameOrPath string) (File, error) {
	for _, name := range BuiltinNames() {
		if strings.EqualFold(name, strings.TrimSpace(nameOrPath)) {
			return Builtin(name)
		}
	}
	return LoadFile(nameOrPath)
}
