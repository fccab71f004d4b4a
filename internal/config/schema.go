// Package config provides configuration loading, merging, and validation
// for the elements build process.
package config

// Config represents the complete build-process configuration. Every
// section and every leaf is optional; a field becomes required only in
// the context of a specific operation (see Require).
type Config struct {
	Build   *BuildConfig   `json:"build,omitempty" yaml:"build,omitempty"`
	Demos   *DemosConfig   `json:"demos,omitempty" yaml:"demos,omitempty"`
	Dist    *DistConfig    `json:"dist,omitempty" yaml:"dist,omitempty"`
	Docs    *DocsConfig    `json:"docs,omitempty" yaml:"docs,omitempty"`
	Publish *PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`
	Src     *SrcConfig     `json:"src,omitempty" yaml:"src,omitempty"`
	Temp    *TempConfig    `json:"temp,omitempty" yaml:"temp,omitempty"`
	Tests   *TestsConfig   `json:"tests,omitempty" yaml:"tests,omitempty"`
}

// BuildConfig configures the library bundling stage.
type BuildConfig struct {
	// ESM and CJS toggle the module formats produced for library builds.
	ESM *bool `json:"esm,omitempty" yaml:"esm,omitempty"`
	CJS *bool `json:"cjs,omitempty" yaml:"cjs,omitempty"`

	// Externals lists extra module specifiers that are always excluded
	// from bundles, in addition to declared runtime dependencies.
	Externals []string `json:"externals,omitempty" yaml:"externals,omitempty"`

	Lint     *LintConfig     `json:"lint,omitempty" yaml:"lint,omitempty"`
	Analysis *AnalysisConfig `json:"analysis,omitempty" yaml:"analysis,omitempty"`

	// Tools holds tool-specific option bags passed through to the
	// bundler, keyed by tool name. Opaque to the orchestration core.
	Tools map[string]interface{} `json:"tools,omitempty" yaml:"tools,omitempty"`
}

// LintConfig configures the lint tool invocations.
type LintConfig struct {
	ScriptCommand string `json:"script_command,omitempty" yaml:"script_command,omitempty"`
	StyleCommand  string `json:"style_command,omitempty" yaml:"style_command,omitempty"`
}

// AnalysisConfig configures auto-analysis generation.
type AnalysisConfig struct {
	Command        string `json:"command,omitempty" yaml:"command,omitempty"`
	OutputFilename string `json:"output_filename,omitempty" yaml:"output_filename,omitempty"`
}

// DemosConfig configures the demo pages used by the documentation build.
type DemosConfig struct {
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	Entrypoint string `json:"entrypoint,omitempty" yaml:"entrypoint,omitempty"`
}

// DistConfig configures the distribution output.
type DistConfig struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// DocsConfig configures the documentation-site build.
type DocsConfig struct {
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	IndexPage string `json:"index_page,omitempty" yaml:"index_page,omitempty"`
}

// PublishConfig is a data bag consumed by the external publishing
// tooling; the orchestration core only resolves and carries it.
type PublishConfig struct {
	Branch   string   `json:"branch,omitempty" yaml:"branch,omitempty"`
	Archives []string `json:"archives,omitempty" yaml:"archives,omitempty"`
	CheckTag *bool    `json:"check_tag,omitempty" yaml:"check_tag,omitempty"`
}

// SrcConfig configures the source tree.
type SrcConfig struct {
	Path        string       `json:"path,omitempty" yaml:"path,omitempty"`
	Entrypoint  string       `json:"entrypoint,omitempty" yaml:"entrypoint,omitempty"`
	ConfigFiles *ConfigFiles `json:"config_files,omitempty" yaml:"config_files,omitempty"`
}

// ConfigFiles names tool configuration files relative to the project root.
type ConfigFiles struct {
	TSConfig string `json:"tsconfig,omitempty" yaml:"tsconfig,omitempty"`
}

// TempConfig configures the intermediate build directory.
type TempConfig struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// TestsConfig configures the test tool invocation.
type TestsConfig struct {
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Command  string   `json:"command,omitempty" yaml:"command,omitempty"`
	Browsers []string `json:"browsers,omitempty" yaml:"browsers,omitempty"`
}
