package builder

import (
	"context"
	"path/filepath"

	"github.com/catalyst/elements-build/internal/bundle"
	"github.com/catalyst/elements-build/internal/config"
	"github.com/catalyst/elements-build/internal/manifest"
	"github.com/catalyst/elements-build/internal/output"
	"github.com/catalyst/elements-build/internal/task"
)

// Builder runs the build pipelines against a resolved configuration.
// The configuration is shared read-only across all concurrently running
// tasks; descriptors are owned by the single task that consumes them.
type Builder struct {
	Config     *config.Config
	ProjectDir string
	Bundler    bundle.Bundler
	Globber    bundle.Globber
	Out        *output.Writer
}

// libRequiredFields are the configuration fields the library build reads.
var libRequiredFields = []config.FieldPath{
	{"src", "path"},
	{"src", "entrypoint"},
	{"dist", "path"},
	{"src", "config_files", "tsconfig"},
}

// docsRequiredFields are the configuration fields the docs build reads.
var docsRequiredFields = []config.FieldPath{
	{"docs", "path"},
	{"demos", "path"},
	{"demos", "entrypoint"},
}

// BuildLib bundles the library entrypoints in every enabled module
// format, then runs the independent post-build steps (dist manifest
// generation, auxiliary file copies) concurrently with each other. The
// post-build stage only starts after the bundling stage has fully
// succeeded.
func (b *Builder) BuildLib(ctx context.Context) ([]string, error) {
	cfg := b.Config
	if err := config.Require(cfg, libRequiredFields...); err != nil {
		return nil, err
	}

	entries, err := b.Globber.Glob(filepath.Join(b.ProjectDir, cfg.Src.Path, cfg.Src.Entrypoint))
	if err != nil {
		return nil, err
	}

	expander := bundle.Expander{ProjectDir: b.ProjectDir}

	var descriptors []bundle.Descriptor
	for _, format := range b.enabledFormats() {
		ds, err := expander.Expand(cfg, entries, format)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, ds...)
	}

	b.stepStart("bundle")
	artifacts, err := Build(ctx, descriptors, b.Bundler)
	if err != nil {
		return nil, err
	}
	b.stepDone("bundle")

	if err := b.postBuild(ctx); err != nil {
		return nil, err
	}

	return artifacts, nil
}

// BuildDocs bundles the demo entrypoints into the documentation tree.
func (b *Builder) BuildDocs(ctx context.Context) ([]string, error) {
	cfg := b.Config
	if err := config.Require(cfg, docsRequiredFields...); err != nil {
		return nil, err
	}

	entries, err := b.Globber.Glob(filepath.Join(b.ProjectDir, cfg.Demos.Path, cfg.Demos.Entrypoint))
	if err != nil {
		return nil, err
	}

	expander := bundle.Expander{ProjectDir: b.ProjectDir}
	descriptors, err := expander.ExpandInto(cfg, cfg.Docs.Path, entries, bundle.FormatESM)
	if err != nil {
		return nil, err
	}

	b.stepStart("bundle docs")
	artifacts, err := Build(ctx, descriptors, b.Bundler)
	if err != nil {
		return nil, err
	}
	b.stepDone("bundle docs")

	return artifacts, nil
}

// postBuild runs the post-build steps. The steps are independent of each
// other and only depend on a successful bundle stage, so they run as one
// concurrent batch.
func (b *Builder) postBuild(ctx context.Context) error {
	distDir := filepath.Join(b.ProjectDir, b.Config.Dist.Path)

	steps := []task.Task[[]string]{
		func(context.Context) ([]string, error) {
			path, err := manifest.Generate(b.ProjectDir, distDir)
			if err != nil {
				return nil, err
			}
			return []string{path}, nil
		},
		func(context.Context) ([]string, error) {
			return manifest.CopyAux(b.ProjectDir, distDir)
		},
	}

	b.stepStart("finalize dist")
	if _, err := task.RunAll(ctx, steps); err != nil {
		return err
	}
	b.stepDone("finalize dist")
	return nil
}

// enabledFormats returns the module formats the library build produces,
// in fixed esm-then-cjs order.
func (b *Builder) enabledFormats() []bundle.Format {
	buildCfg := b.Config.Build

	enabled := func(flag *bool) bool {
		// Formats default to enabled when the section or flag is absent.
		return flag == nil || *flag
	}

	var formats []bundle.Format
	if buildCfg == nil {
		return []bundle.Format{bundle.FormatESM, bundle.FormatCJS}
	}
	if enabled(buildCfg.ESM) {
		formats = append(formats, bundle.FormatESM)
	}
	if enabled(buildCfg.CJS) {
		formats = append(formats, bundle.FormatCJS)
	}
	return formats
}

func (b *Builder) stepStart(step string) {
	if b.Out != nil {
		b.Out.StepStart(step)
	}
}

func (b *Builder) stepDone(step string) {
	if b.Out != nil {
		b.Out.StepSuccess(step)
	}
}
