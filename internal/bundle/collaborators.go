package bundle

import (
	"context"
	"path/filepath"
	"sort"
)

// Bundler is the external bundling tool. Given one descriptor it either
// returns the names of the artifacts it produced or fails.
type Bundler interface {
	Bundle(ctx context.Context, d Descriptor) ([]string, error)
}

// BundlerFunc adapts a function to the Bundler interface.
type BundlerFunc func(ctx context.Context, d Descriptor) ([]string, error)

func (f BundlerFunc) Bundle(ctx context.Context, d Descriptor) ([]string, error) {
	return f(ctx, d)
}

// Globber expands a file pattern into the finite list of matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}

// FileGlobber is the file-system backed Globber.
type FileGlobber struct{}

// Glob expands the pattern with filepath.Glob semantics. Matches are
// sorted and de-duplicated; a pattern matching nothing yields an empty
// list, not an error.
func (FileGlobber) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}
