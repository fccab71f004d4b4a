// Package project provides project root discovery.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

// MarkerFileName is the file that marks an element project root.
const MarkerFileName = "package.json"

// ErrNoProjectRoot is returned when package.json is not found.
var ErrNoProjectRoot = errors.New("package.json not found: not an element project (or any parent up to the root)")

// FindRoot walks up from the current working directory until it finds
// package.json.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds
// package.json.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		markerPath := filepath.Join(dir, MarkerFileName)
		if _, err := os.Stat(markerPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}
