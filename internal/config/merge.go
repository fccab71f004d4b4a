package config

// Merge resolves a user-supplied partial configuration against defaults.
// It is a recursive key-wise deep merge: nested sections present on both
// sides are merged recursively; leaf values present in overrides replace
// the default wholesale (slices and option bags are replaced, never
// concatenated). Merge never mutates either input and returns a fresh
// tree; Merge(defaults, nil) is a deep clone of defaults.
func Merge(defaults, overrides *Config) *Config {
	if defaults == nil {
		defaults = &Config{}
	}
	if overrides == nil {
		overrides = &Config{}
	}
	return &Config{
		Build:   mergeBuild(defaults.Build, overrides.Build),
		Demos:   mergeDemos(defaults.Demos, overrides.Demos),
		Dist:    mergeDist(defaults.Dist, overrides.Dist),
		Docs:    mergeDocs(defaults.Docs, overrides.Docs),
		Publish: mergePublish(defaults.Publish, overrides.Publish),
		Src:     mergeSrc(defaults.Src, overrides.Src),
		Temp:    mergeTemp(defaults.Temp, overrides.Temp),
		Tests:   mergeTests(defaults.Tests, overrides.Tests),
	}
}

func mergeBuild(d, o *BuildConfig) *BuildConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &BuildConfig{}
	}
	if o == nil {
		o = &BuildConfig{}
	}
	return &BuildConfig{
		ESM:       mergeBool(d.ESM, o.ESM),
		CJS:       mergeBool(d.CJS, o.CJS),
		Externals: mergeSlice(d.Externals, o.Externals),
		Lint:      mergeLint(d.Lint, o.Lint),
		Analysis:  mergeAnalysis(d.Analysis, o.Analysis),
		Tools:     mergeBag(d.Tools, o.Tools),
	}
}

func mergeLint(d, o *LintConfig) *LintConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &LintConfig{}
	}
	if o == nil {
		o = &LintConfig{}
	}
	return &LintConfig{
		ScriptCommand: mergeString(d.ScriptCommand, o.ScriptCommand),
		StyleCommand:  mergeString(d.StyleCommand, o.StyleCommand),
	}
}

func mergeAnalysis(d, o *AnalysisConfig) *AnalysisConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &AnalysisConfig{}
	}
	if o == nil {
		o = &AnalysisConfig{}
	}
	return &AnalysisConfig{
		Command:        mergeString(d.Command, o.Command),
		OutputFilename: mergeString(d.OutputFilename, o.OutputFilename),
	}
}

func mergeDemos(d, o *DemosConfig) *DemosConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &DemosConfig{}
	}
	if o == nil {
		o = &DemosConfig{}
	}
	return &DemosConfig{
		Path:       mergeString(d.Path, o.Path),
		Entrypoint: mergeString(d.Entrypoint, o.Entrypoint),
	}
}

func mergeDist(d, o *DistConfig) *DistConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &DistConfig{}
	}
	if o == nil {
		o = &DistConfig{}
	}
	return &DistConfig{Path: mergeString(d.Path, o.Path)}
}

func mergeDocs(d, o *DocsConfig) *DocsConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &DocsConfig{}
	}
	if o == nil {
		o = &DocsConfig{}
	}
	return &DocsConfig{
		Path:      mergeString(d.Path, o.Path),
		IndexPage: mergeString(d.IndexPage, o.IndexPage),
	}
}

func mergePublish(d, o *PublishConfig) *PublishConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &PublishConfig{}
	}
	if o == nil {
		o = &PublishConfig{}
	}
	return &PublishConfig{
		Branch:   mergeString(d.Branch, o.Branch),
		Archives: mergeSlice(d.Archives, o.Archives),
		CheckTag: mergeBool(d.CheckTag, o.CheckTag),
	}
}

func mergeSrc(d, o *SrcConfig) *SrcConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &SrcConfig{}
	}
	if o == nil {
		o = &SrcConfig{}
	}
	return &SrcConfig{
		Path:        mergeString(d.Path, o.Path),
		Entrypoint:  mergeString(d.Entrypoint, o.Entrypoint),
		ConfigFiles: mergeConfigFiles(d.ConfigFiles, o.ConfigFiles),
	}
}

func mergeConfigFiles(d, o *ConfigFiles) *ConfigFiles {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &ConfigFiles{}
	}
	if o == nil {
		o = &ConfigFiles{}
	}
	return &ConfigFiles{TSConfig: mergeString(d.TSConfig, o.TSConfig)}
}

func mergeTemp(d, o *TempConfig) *TempConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &TempConfig{}
	}
	if o == nil {
		o = &TempConfig{}
	}
	return &TempConfig{Path: mergeString(d.Path, o.Path)}
}

func mergeTests(d, o *TestsConfig) *TestsConfig {
	if d == nil && o == nil {
		return nil
	}
	if d == nil {
		d = &TestsConfig{}
	}
	if o == nil {
		o = &TestsConfig{}
	}
	return &TestsConfig{
		Path:     mergeString(d.Path, o.Path),
		Command:  mergeString(d.Command, o.Command),
		Browsers: mergeSlice(d.Browsers, o.Browsers),
	}
}

// mergeString treats the empty string as absent.
func mergeString(d, o string) string {
	if o != "" {
		return o
	}
	return d
}

// mergeBool treats nil as absent; a set override always wins, including
// an explicit false.
func mergeBool(d, o *bool) *bool {
	switch {
	case o != nil:
		v := *o
		return &v
	case d != nil:
		v := *d
		return &v
	default:
		return nil
	}
}

// mergeSlice replaces the default wholesale when the override slice is
// present (non-nil), even when empty.
func mergeSlice(d, o []string) []string {
	src := d
	if o != nil {
		src = o
	}
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// mergeBag replaces a tool option bag wholesale; option bags are opaque
// leaves, not merged trees.
func mergeBag(d, o map[string]interface{}) map[string]interface{} {
	src := d
	if o != nil {
		src = o
	}
	if src == nil {
		return nil
	}
	out := make(map[string]interface{}, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
