package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/booklint/booklint/internal/logging"
	"github.com/booklint/booklint/pkg/config"
)

// configFilePermissions is the file mode for generated config files.
const configFilePermissions = 0644

func newInitCommand() *cobra.Command {
	var force bool
	var output string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Long: `Create a .booklint.yml configuration file in the current directory with
commented defaults. Edit it to switch policies, toggle checks or whole
categories, adjust severities, and set per-check options.

Examples:
  booklint init                     Create .booklint.yml
  booklint init --output book.yml   Write to a custom path
  booklint init --force             Overwrite an existing file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(force, output)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&output, "output", "o", ".booklint.yml", "output file path")
	return cmd
}

func runInit(force bool, output string) error {
	logger := logging.NewInteractive()

	absPath, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, output)
	}

	if err := os.WriteFile(absPath, []byte(config.Template), configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, output)
	logger.Info("run 'booklint rules' to see all available checks")
	return nil
}
