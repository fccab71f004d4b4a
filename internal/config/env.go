package config

import "os"

// Env captures the environment values configuration resolution depends
// on. It is passed explicitly into Defaults so that resolution stays a
// pure function of its arguments.
type Env struct {
	// CI is the raw value of the CI environment variable, empty when
	// unset.
	CI string
}

// EnvFromOS captures the current process environment.
func EnvFromOS() Env {
	return Env{CI: os.Getenv("CI")}
}

// IsCI reports whether the environment is a CI run. Unset and the
// literal string "false" both count as a local run.
func (e Env) IsCI() bool {
	return e.CI != "" && e.CI != "false"
}
