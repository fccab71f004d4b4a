package bundle

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/catalyst/elements-build/internal/errors"
)

// RollupBundler shells out to the rollup CLI, one invocation per
// descriptor. It is the default Bundler; the orchestration core only
// sees the Bundler contract and tests substitute their own.
type RollupBundler struct {
	// ProjectDir is the working directory for bundler invocations.
	ProjectDir string

	// Command overrides the bundler executable, default "rollup".
	Command string
}

// Bundle invokes rollup for the descriptor and reports the produced
// artifact name on success.
func (r RollupBundler) Bundle(ctx context.Context, d Descriptor) ([]string, error) {
	command := r.Command
	if command == "" {
		command = "rollup"
	}

	args := []string{
		"--input", d.Entry,
		"--dir", d.OutDir,
		"--format", string(d.Format),
		"--entryFileNames", d.OutPattern,
		"--chunkFileNames", d.ChunkPattern,
	}
	if len(d.Externals) > 0 {
		args = append(args, "--external", strings.Join(d.Externals, ","))
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = r.ProjectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(err, "bundle "+d.Entry)
	}
	return []string{d.OutName()}, nil
}
