// Package runner executes configured external tool commands (lint,
// test, analysis) in the project directory.
package runner

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/catalyst/elements-build/internal/errors"
)

// Runner executes tool command strings via the shell.
type Runner struct {
	// ProjectDir is the working directory for every command.
	ProjectDir string

	// Vars maps placeholder names to values interpolated into command
	// strings as ${name}. Only paths the orchestration core owns are
	// interpolated (src, dist, analysis); anything else is passed to
	// the shell untouched.
	Vars map[string]string

	// Env holds additional environment variables, appended after the
	// inherited process environment so they take precedence.
	Env map[string]string
}

// Run executes one command string. A non-zero exit is wrapped in a
// runtime error naming the step; there are no retries.
func (r Runner) Run(ctx context.Context, step, cmdStr string) error {
	cmdStr = strings.TrimSpace(r.interpolate(cmdStr))
	if cmdStr == "" {
		return errors.StepError(step, "no command configured")
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", cmdStr)
	cmd.Dir = r.ProjectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	for k, v := range r.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	if err := cmd.Run(); err != nil {
		return &errors.BuildError{
			Kind:    errors.KindRuntime,
			Step:    step,
			Message: "command failed: " + cmdStr,
			Cause:   err,
		}
	}
	return nil
}

// interpolate substitutes the known ${var} placeholders.
func (r Runner) interpolate(cmdStr string) string {
	for k, v := range r.Vars {
		cmdStr = strings.ReplaceAll(cmdStr, "${"+k+"}", v)
	}
	return cmdStr
}
