package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/booklint/booklint/internal/preprocessor"
)

// newPreprocessCommand wires booklint into an mdBook build. book.toml refers
// to it as:
//
//	[preprocessor.booklint]
//	command = "booklint preprocess"
func newPreprocessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "preprocess [supports RENDERER]",
		Short:  "Run as an mdBook preprocessor",
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// mdBook probes renderer support before the real invocation.
			if len(args) == 2 && args[0] == "supports" {
				if !preprocessor.Supports(args[1]) {
					os.Exit(1)
				}
				return nil
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			cfg, err := loadConfig(cmd, workDir)
			if err != nil {
				return err
			}
			// Chapters are linted in memory; cross-file checks that need
			// real paths stay out of build output.
			cfg.Disable = append(cfg.Disable, "MDBOOK002")

			registry, err := newRegistry()
			if err != nil {
				return err
			}
			eng, err := registry.NewEngine(cfg)
			if err != nil {
				return fmt.Errorf("build engine: %w", err)
			}

			return preprocessor.Run(cmd.Context(), eng, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	return cmd
}
