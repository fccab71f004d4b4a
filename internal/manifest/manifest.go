// Package manifest produces the distribution package manifest and the
// auxiliary files shipped alongside it.
package manifest

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/catalyst/elements-build/internal/errors"
)

// buildOnlyFields are manifest keys that have no meaning in the
// published package and are stripped from the generated manifest.
var buildOnlyFields = []string{"scripts", "devDependencies"}

// auxFiles are copied verbatim into the distribution directory when
// present; missing ones are skipped.
var auxFiles = []string{"LICENSE", "README.md"}

// Generate derives dist/package.json from the project's own manifest:
// build-only fields are removed and the remaining keys are written in
// canonical sorted order. It returns the path of the written file.
func Generate(projectDir, distDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(projectDir, "package.json"))
	if err != nil {
		return "", errors.Wrap(err, "read project package.json")
	}

	var pkg map[string]interface{}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", errors.Wrap(err, "parse project package.json")
	}

	for _, field := range buildOnlyFields {
		delete(pkg, field)
	}

	// json.Marshal writes map keys in sorted order, which is the
	// canonical form required for the generated manifest.
	out, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode dist package.json")
	}
	out = append(out, '\n')

	target := filepath.Join(distDir, "package.json")
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return "", errors.Wrap(err, "create dist directory")
	}
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return "", errors.Wrap(err, "write dist package.json")
	}
	return target, nil
}

// CopyAux copies the fixed auxiliary files (license, readme) verbatim
// into the distribution directory. Files the project does not have are
// skipped. It returns the paths of the copied files.
func CopyAux(projectDir, distDir string) ([]string, error) {
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create dist directory")
	}

	var copied []string
	for _, name := range auxFiles {
		src := filepath.Join(projectDir, name)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		dst := filepath.Join(distDir, name)
		if err := copyFile(src, dst); err != nil {
			return nil, errors.Wrap(err, "copy "+name)
		}
		copied = append(copied, dst)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
