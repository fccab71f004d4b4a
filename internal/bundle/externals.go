package bundle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// builtinExternals are module specifiers that are always excluded from
// library bundles regardless of declared dependencies.
var builtinExternals = []string{
	"assert",
	"buffer",
	"crypto",
	"events",
	"fs",
	"http",
	"https",
	"os",
	"path",
	"stream",
	"url",
	"util",
	"zlib",
}

// packageManifest is the slice of package.json this package reads.
type packageManifest struct {
	Dependencies map[string]string `json:"dependencies"`
}

// Externals computes the external-module list for library builds: every
// declared runtime dependency that resolves to an installed location,
// the fixed builtin set, and any configured extras. Dependencies that
// cannot be resolved under node_modules are dropped silently; a missing
// or malformed package.json contributes no dependencies.
func Externals(projectDir string, extras []string) []string {
	var externals []string

	if deps := runtimeDependencies(projectDir); len(deps) > 0 {
		externals = append(externals, deps...)
	}
	externals = append(externals, builtinExternals...)
	externals = append(externals, extras...)

	return externals
}

// runtimeDependencies returns the resolvable declared dependencies of
// the project, sorted for deterministic descriptor construction.
func runtimeDependencies(projectDir string) []string {
	data, err := os.ReadFile(filepath.Join(projectDir, "package.json"))
	if err != nil {
		return nil
	}

	var pkg packageManifest
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil
	}

	var deps []string
	for name := range pkg.Dependencies {
		if resolvesInstalled(projectDir, name) {
			deps = append(deps, name)
		}
	}
	sort.Strings(deps)
	return deps
}

// resolvesInstalled reports whether the dependency has an installed
// location under node_modules.
func resolvesInstalled(projectDir, name string) bool {
	_, err := os.Stat(filepath.Join(projectDir, "node_modules", name))
	return err == nil
}
