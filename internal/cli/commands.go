package cli

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/catalyst/elements-build/internal/builder"
	"github.com/catalyst/elements-build/internal/bundle"
	"github.com/catalyst/elements-build/internal/config"
	"github.com/catalyst/elements-build/internal/output"
	"github.com/catalyst/elements-build/internal/runner"
	"github.com/catalyst/elements-build/internal/task"
)

// newBuilder wires the orchestrator with the real collaborators.
func newBuilder(s *session) *builder.Builder {
	return &builder.Builder{
		Config:     s.Config,
		ProjectDir: s.ProjectDir,
		Bundler:    bundle.RollupBundler{ProjectDir: s.ProjectDir},
		Globber:    bundle.FileGlobber{},
		Out:        out,
	}
}

// newRunner wires the tool runner with the resolved path variables.
func newRunner(s *session) runner.Runner {
	vars := map[string]string{}
	if s.Config.Src != nil {
		vars["src"] = s.Config.Src.Path
	}
	if s.Config.Dist != nil {
		vars["dist"] = s.Config.Dist.Path
	}
	if s.Config.Build != nil && s.Config.Build.Analysis != nil {
		vars["analysis"] = s.Config.Build.Analysis.OutputFilename
	}
	return runner.Runner{
		ProjectDir: s.ProjectDir,
		Vars:       vars,
	}
}

// cmdBuild runs the library build pipeline.
func cmdBuild(s *session) error {
	artifacts, err := newBuilder(s).BuildLib(context.Background())
	if err != nil {
		return err
	}
	out.Success("build succeeded")
	out.List(artifacts)
	return nil
}

// cmdDocs runs the documentation-site build pipeline.
func cmdDocs(s *session) error {
	artifacts, err := newBuilder(s).BuildDocs(context.Background())
	if err != nil {
		return err
	}
	out.Success("docs build succeeded")
	out.List(artifacts)
	return nil
}

// cmdLint runs the script and style linters as one concurrent batch so
// a run reports every failing linter, not just the first.
func cmdLint(s *session) error {
	if err := config.Require(s.Config, config.FieldPath{"build", "lint"}); err != nil {
		return err
	}
	lint := s.Config.Build.Lint
	r := newRunner(s)

	type step struct {
		name    string
		command string
	}
	steps := []step{
		{"lint:scripts", lint.ScriptCommand},
		{"lint:styles", lint.StyleCommand},
	}

	tasks := make([]task.Task[struct{}], 0, len(steps))
	for _, st := range steps {
		st := st
		if st.command == "" {
			continue
		}
		tasks = append(tasks, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, r.Run(ctx, st.name, st.command)
		})
	}

	out.StepStart("lint")
	if _, err := task.RunAll(context.Background(), tasks); err != nil {
		return err
	}
	out.StepSuccess("lint")
	return nil
}

// cmdAnalyze generates the element analysis document.
func cmdAnalyze(s *session) error {
	if err := config.Require(s.Config,
		config.FieldPath{"build", "analysis", "command"},
	); err != nil {
		return err
	}

	out.StepStart("analyze")
	if err := newRunner(s).Run(context.Background(), "analyze", s.Config.Build.Analysis.Command); err != nil {
		return err
	}
	out.StepSuccess("analyze")
	return nil
}

// cmdTest runs the configured test tool. The resolved browser targets
// (environment-dependent, see config.Defaults) are handed to the tool
// through BROWSERS.
func cmdTest(s *session) error {
	if err := config.Require(s.Config,
		config.FieldPath{"tests", "command"},
		config.FieldPath{"tests", "browsers"},
	); err != nil {
		return err
	}

	r := newRunner(s)
	r.Env = map[string]string{
		"BROWSERS": strings.Join(s.Config.Tests.Browsers, ","),
	}

	out.StepStart("test")
	if err := r.Run(context.Background(), "test", s.Config.Tests.Command); err != nil {
		return err
	}
	out.StepSuccess("test")
	return nil
}

// Help layout widths.
const (
	helpCommandWidth = 24
	helpFlagWidth    = 18
)

// printUsage prints the top-level help text.
func printUsage() {
	w := output.New()

	w.HelpTitle("elements-build - build process for catalyst element libraries")
	w.Println("")
	w.Println("Usage: elements-build [flags] <command>")

	w.HelpSection("Commands:")
	w.HelpCommand("build", "Bundle the library in every enabled module format", helpCommandWidth)
	w.HelpCommand("docs, build-docs", "Build the documentation site from the demos", helpCommandWidth)
	w.HelpCommand("lint", "Run the script and style linters", helpCommandWidth)
	w.HelpCommand("analyze", "Generate the element auto-analysis document", helpCommandWidth)
	w.HelpCommand("test", "Run the test tool against the resolved browsers", helpCommandWidth)
	w.HelpCommand("help", "Show this help", helpCommandWidth)
	w.HelpCommand("version", "Show the tool version", helpCommandWidth)

	w.HelpSection("Flags:")
	w.HelpFlag("--config <path>", "Use an explicit configuration file", helpFlagWidth)
	w.HelpFlag("--quiet, -q", "Suppress informational output", helpFlagWidth)
	w.HelpFlag("--no-color", "Disable ANSI colors", helpFlagWidth)

	w.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	for _, cmd := range []string{cmdNameBuild, cmdNameDocs, cmdNameTest} {
		w.HelpExample("elements-build "+cmd, titleCase.String(cmd)+" the current project")
	}
	w.Println("")
}
