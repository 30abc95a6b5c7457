// Package main is the entry point for the booklint CLI.
package main

import (
	"os"

	"github.com/booklint/booklint/internal/cli"
	"github.com/booklint/booklint/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // ldflags injection requires package-level vars
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := rootCmd.Execute(); err != nil {
		// Findings already went through the reporter; those errors only
		// carry the exit code.
		if !cli.Silent(err) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}
	return 0
}
