package config

// Default configuration values.
const (
	DefaultSrcPath          = "src"
	DefaultSrcEntrypoint    = "element.ts"
	DefaultTSConfig         = "tsconfig.json"
	DefaultDistPath         = "dist"
	DefaultTempPath         = ".tmp"
	DefaultDemosPath        = "demos"
	DefaultDemosEntrypoint  = "*.html"
	DefaultDocsPath         = "docs"
	DefaultDocsIndexPage    = "index.html"
	DefaultTestsPath        = "test"
	DefaultTestsCommand     = "karma start"
	DefaultAnalysisCommand  = "polymer analyze"
	DefaultAnalysisFilename = "analysis.json"
	DefaultLintScript       = "eslint --ext .ts ${src}"
	DefaultLintStyle        = "stylelint ${src}/**/*.scss"
	DefaultPublishBranch    = "master"
)

// Test browser targets. The secondary target is only included for local
// runs (CI unset or "false"); CI environments provide their own browsers.
const (
	PrimaryTestBrowser   = "ChromeHeadless"
	SecondaryTestBrowser = "FirefoxHeadless"
)

func boolPtr(b bool) *bool { return &b }

// Defaults returns the default configuration tree for the given
// environment. The CI branch in the tests section is the only
// environment-driven value.
func Defaults(env Env) *Config {
	browsers := []string{PrimaryTestBrowser}
	if !env.IsCI() {
		browsers = append(browsers, SecondaryTestBrowser)
	}

	return &Config{
		Build: &BuildConfig{
			ESM: boolPtr(true),
			CJS: boolPtr(true),
			Lint: &LintConfig{
				ScriptCommand: DefaultLintScript,
				StyleCommand:  DefaultLintStyle,
			},
			Analysis: &AnalysisConfig{
				Command:        DefaultAnalysisCommand,
				OutputFilename: DefaultAnalysisFilename,
			},
		},
		Demos: &DemosConfig{
			Path:       DefaultDemosPath,
			Entrypoint: DefaultDemosEntrypoint,
		},
		Dist: &DistConfig{
			Path: DefaultDistPath,
		},
		Docs: &DocsConfig{
			Path:      DefaultDocsPath,
			IndexPage: DefaultDocsIndexPage,
		},
		Publish: &PublishConfig{
			Branch:   DefaultPublishBranch,
			CheckTag: boolPtr(true),
		},
		Src: &SrcConfig{
			Path:       DefaultSrcPath,
			Entrypoint: DefaultSrcEntrypoint,
			ConfigFiles: &ConfigFiles{
				TSConfig: DefaultTSConfig,
			},
		},
		Temp: &TempConfig{
			Path: DefaultTempPath,
		},
		Tests: &TestsConfig{
			Path:     DefaultTestsPath,
			Command:  DefaultTestsCommand,
			Browsers: browsers,
		},
	}
}
