// Package cli provides the Cobra command structure for booklint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/booklint/booklint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root booklint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "booklint",
		Short: "A pluggable, self-fixing Markdown linter for books and docs",
		Long: `booklint lints Markdown documents against a configurable catalogue of
checks, with first-class support for mdBook projects. Many findings carry a
precise auto-fix; fixes are applied conflict-free with dry-run previews,
atomic writes, and optional backups.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newPreprocessCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
