package bundle

import (
	"fmt"

	"github.com/catalyst/elements-build/internal/config"
	"github.com/catalyst/elements-build/internal/errors"
)

// chunkDir is where content-addressed shared chunks are written,
// relative to the output directory.
const chunkDir = "common"

// Expander turns a resolved configuration plus matched entry paths into
// independent build descriptors.
type Expander struct {
	// ProjectDir is the project root, used to resolve declared runtime
	// dependencies for the external-module list.
	ProjectDir string
}

// Expand produces one descriptor per entry path for the given format,
// writing into the configured dist directory. An empty entry list
// expands to an empty descriptor list; a zero-descriptor build is valid
// and yields an empty artifact list.
//
// The caller must have run the required-field checks for its operation;
// a missing dist path here is an invariant violation, not a config error.
func (e Expander) Expand(cfg *config.Config, entryPaths []string, format Format) ([]Descriptor, error) {
	if cfg.Dist == nil || cfg.Dist.Path == "" {
		return nil, errors.New("dist path not resolved before descriptor expansion")
	}
	return e.ExpandInto(cfg, cfg.Dist.Path, entryPaths, format)
}

// ExpandInto is Expand with an explicit output directory, used by the
// documentation build which writes bundles into the docs tree instead
// of dist.
func (e Expander) ExpandInto(cfg *config.Config, outDir string, entryPaths []string, format Format) ([]Descriptor, error) {
	if outDir == "" {
		return nil, errors.New("output directory not resolved before descriptor expansion")
	}
	if len(entryPaths) == 0 {
		return []Descriptor{}, nil
	}

	var toolOptions map[string]interface{}
	var extras []string
	if cfg.Build != nil {
		toolOptions = cfg.Build.Tools
		extras = cfg.Build.Externals
	}
	externals := Externals(e.ProjectDir, extras)

	descriptors := make([]Descriptor, 0, len(entryPaths))
	for _, entry := range entryPaths {
		descriptors = append(descriptors, Descriptor{
			Entry:        entry,
			OutDir:       outDir,
			OutPattern:   fmt.Sprintf("[basename].%s", format.Extension()),
			ChunkPattern: fmt.Sprintf("%s/[hash].%s", chunkDir, format.Extension()),
			Format:       format,
			Externals:    externals,
			ToolOptions:  toolOptions,
		})
	}
	return descriptors, nil
}
