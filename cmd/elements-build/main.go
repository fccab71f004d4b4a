// Package main is the entry point for the elements-build CLI.
package main

import (
	"os"

	"github.com/catalyst/elements-build/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
