// Package cli provides the command-line front-end for the elements
// build process.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/catalyst/elements-build/internal/config"
	"github.com/catalyst/elements-build/internal/errors"
	"github.com/catalyst/elements-build/internal/output"
	"github.com/catalyst/elements-build/internal/project"
)

// Version is set at build time.
var Version = "dev"

var out = output.New()

// globalOptions holds flags recognized before the command arguments.
type globalOptions struct {
	Quiet      bool
	NoColor    bool
	ConfigPath string
}

// Command names after alias normalization.
const (
	cmdNameBuild   = "build"
	cmdNameDocs    = "docs"
	cmdNameLint    = "lint"
	cmdNameAnalyze = "analyze"
	cmdNameTest    = "test"
	cmdNameHelp    = "help"
	cmdNameVersion = "version"
)

// commandAliases maps every recognized command spelling to its canonical
// name. The camelCase spellings exist for parity with the npm script
// vocabulary this tool is driven by.
var commandAliases = map[string]string{
	"build":                  cmdNameBuild,
	"build-docs":             cmdNameDocs,
	"buildDocs":              cmdNameDocs,
	"docs":                   cmdNameDocs,
	"lint":                   cmdNameLint,
	"generate-auto-analysis": cmdNameAnalyze,
	"generateAutoAnalysis":   cmdNameAnalyze,
	"analyze":                cmdNameAnalyze,
	"test":                   cmdNameTest,
	"help":                   cmdNameHelp,
	"--help":                 cmdNameHelp,
	"-h":                     cmdNameHelp,
	"-?":                     cmdNameHelp,
	"version":                cmdNameVersion,
	"--version":              cmdNameVersion,
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return errors.ExitSuccess
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	out.SetQuiet(opts.Quiet)
	if opts.NoColor {
		out.SetColor(false)
	}

	if len(remaining) == 0 {
		printUsage()
		return errors.ExitSuccess
	}

	cmd, ok := commandAliases[remaining[0]]
	if !ok {
		out.ErrorPrefix("unknown command %q", remaining[0])
		printUsage()
		return errors.ExitConfigError
	}

	switch cmd {
	case cmdNameHelp:
		printUsage()
		return errors.ExitSuccess
	case cmdNameVersion:
		fmt.Printf("elements-build %s\n", Version)
		return errors.ExitSuccess
	case cmdNameBuild:
		return run(opts, cmdBuild)
	case cmdNameDocs:
		return run(opts, cmdDocs)
	case cmdNameLint:
		return run(opts, cmdLint)
	case cmdNameAnalyze:
		return run(opts, cmdAnalyze)
	case cmdNameTest:
		return run(opts, cmdTest)
	default:
		// Unreachable: the alias table only maps to handled commands.
		out.ErrorPrefix("unhandled command %q", cmd)
		return errors.ExitRuntimeError
	}
}

// session carries everything a command handler needs: the project root
// and the resolved configuration.
type session struct {
	ProjectDir string
	Config     *config.Config
	Env        config.Env
}

// run prepares the session and maps the handler's error to an exit code.
func run(opts globalOptions, handler func(s *session) error) int {
	s, err := newSession(opts)
	if err == nil {
		err = handler(s)
	}
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

// newSession discovers the project, captures the environment, and
// resolves the configuration (defaults merged with any override file).
func newSession(opts globalOptions) (*session, error) {
	// A .env file is optional; when present it is loaded before the
	// environment is captured so CI and friends can be set from it.
	_ = godotenv.Load()
	env := config.EnvFromOS()

	root, err := project.FindRoot()
	if err != nil {
		return nil, errors.Config(err.Error())
	}

	var overrides *config.Config
	path := opts.ConfigPath
	if path == "" {
		path = config.Discover(root)
	}
	if path != "" {
		overrides, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	return &session{
		ProjectDir: root,
		Config:     config.Resolve(env, overrides),
		Env:        env,
	}, nil
}

// parseGlobalFlags splits global flags from the command and its
// arguments. Flags after "--" are passed through untouched.
func parseGlobalFlags(args []string) (globalOptions, []string, error) {
	var opts globalOptions
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--quiet", "-q":
			opts.Quiet = true
		case "--no-color":
			opts.NoColor = true
		case "--config":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--config requires a path argument")
			}
			i++
			opts.ConfigPath = args[i]
		case "--":
			remaining = append(remaining, args[i+1:]...)
			return opts, remaining, nil
		default:
			remaining = append(remaining, arg)
		}
	}
	return opts, remaining, nil
}
