// Package errors provides structured error types and exit codes for the
// elements build process.
package errors

import (
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (a build task or tool failed)
	ExitConfigError      = 2 // Configuration error (missing or invalid config)
	ExitEnvironmentError = 3 // Environment error (unexpected runtime environment)
)

// Kind represents the type of error.
type Kind int

const (
	KindRuntime Kind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
)

// BuildError is the base error type for the build process. Every failure
// surfaced to the CLI is either a BuildError or an AggregateError.
type BuildError struct {
	Kind    Kind
	Message string
	Step    string // Pipeline step name if applicable
	Cause   error  // Underlying error
}

func (e *BuildError) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("[%s] %s", e.Step, e.Message)
	}
	return e.Message
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *BuildError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *BuildError {
	return &BuildError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *BuildError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *BuildError {
	return &BuildError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *BuildError {
	return Config(fmt.Sprintf(format, args...))
}

// Validation creates a new validation error.
func Validation(message string) *BuildError {
	return &BuildError{
		Kind:    KindValidation,
		Message: message,
	}
}

// Environment creates an error for an unexpected runtime environment value.
// The offending value and the context in which it was read become part of
// the message so the user can see what was actually set.
func Environment(variable, value, expected string) *BuildError {
	return &BuildError{
		Kind:    KindEnvironment,
		Message: fmt.Sprintf("unexpected value %q for %s: %s", value, variable, expected),
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *BuildError {
	return &BuildError{
		Kind:    KindEnvironment,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *BuildError {
	return &BuildError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *BuildError {
	return &BuildError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// StepError creates an error for a specific pipeline step.
func StepError(step, message string) *BuildError {
	return &BuildError{
		Kind:    KindRuntime,
		Step:    step,
		Message: message,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if be, ok := err.(*BuildError); ok {
		return be.ExitCode()
	}
	return ExitRuntimeError
}
