// Package bundle defines build descriptors and the contracts of the
// bundler and glob collaborators.
package bundle

import (
	"path/filepath"
	"strings"
)

// Format identifies the module format of a bundle.
type Format string

const (
	FormatESM Format = "esm"
	FormatCJS Format = "cjs"
)

// Extension returns the output file extension for the format.
func (f Format) Extension() string {
	if f == FormatESM {
		return "mjs"
	}
	return "js"
}

// Descriptor is one self-contained unit of bundler work: a single input
// file bundled into a single output format. Descriptors are immutable
// once constructed and owned by the orchestration run that created them.
type Descriptor struct {
	// Entry is the input file path.
	Entry string

	// OutDir is the directory the bundler writes into.
	OutDir string

	// OutPattern is the output file naming pattern, e.g. "[basename].mjs".
	OutPattern string

	// ChunkPattern is the shared-chunk naming pattern. Chunks are
	// content-addressed so code shared across entries is deduplicated by
	// the bundler, e.g. "common/[hash].mjs".
	ChunkPattern string

	// Format is the module format to produce.
	Format Format

	// Externals lists module specifiers excluded from the bundle.
	Externals []string

	// ToolOptions is the opaque tool-specific option bag from the
	// resolved configuration.
	ToolOptions map[string]interface{}
}

// OutName resolves the descriptor's output file name for its entry.
func (d Descriptor) OutName() string {
	base := strings.TrimSuffix(filepath.Base(d.Entry), filepath.Ext(d.Entry))
	return strings.ReplaceAll(d.OutPattern, "[basename]", base)
}
