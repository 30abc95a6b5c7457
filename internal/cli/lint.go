package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/booklint/booklint/internal/logging"
	"github.com/booklint/booklint/pkg/config"
	"github.com/booklint/booklint/pkg/reporter"
	"github.com/booklint/booklint/pkg/runner"
)

type lintFlags struct {
	format    string
	ignore    []string
	enable    []string
	disable   []string
	strict    bool
	noContext bool
}

func newLintCommand() *cobra.Command {
	cfg := config.New()
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Markdown files",
		Long: `Lint Markdown files for style, structure, and mdBook issues.

By default, lints all .md and .markdown files in the current directory
and subdirectories. Specify paths to lint specific files or directories.

Examples:
  booklint lint                    # Lint current directory
  booklint lint src/               # Lint a book's src directory
  booklint lint README.md          # Lint a single file
  booklint lint --fix              # Lint and auto-fix issues
  booklint lint --fix --dry-run    # Show fixes without applying
  booklint lint --fix --unsafe     # Include edits flagged unsafe
  booklint lint --format json      # Output as JSON for CI
  booklint lint --strict           # Treat warnings as errors`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, cfg, flags)
		},
	}

	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().BoolVar(&cfg.Unsafe, "unsafe", false, "include fixes flagged unsafe")
	cmd.Flags().BoolVar(&cfg.NoBackup, "no-backup", false, "disable backup creation when fixing")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, diff")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "check ids to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "check ids to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(cmd, workDir)
	if err != nil {
		return err
	}

	// CLI flags layer on top of the file config.
	cfg.Fix = cliCfg.Fix
	cfg.DryRun = cliCfg.DryRun
	cfg.Unsafe = cliCfg.Unsafe
	cfg.NoBackup = cliCfg.NoBackup
	cfg.Jobs = cliCfg.Jobs
	cfg.Enable = append(cfg.Enable, flags.enable...)
	cfg.Disable = append(cfg.Disable, flags.disable...)
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	format := reporter.Format(flags.format)
	if !format.IsValid() {
		return &ExitCodeError{
			Code: ExitInvalidUsage,
			Err:  fmt.Errorf("unsupported format %q: expected one of %v", flags.format, reporter.Formats()),
		}
	}
	if format == reporter.FormatDiff && !(cfg.Fix && cfg.DryRun) {
		return &ExitCodeError{
			Code: ExitInvalidUsage,
			Err:  errors.New("--format diff requires --fix --dry-run"),
		}
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	eng, err := registry.NewEngine(cfg)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	logger.Debug("configuration resolved",
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldUnsafe, cfg.Unsafe,
		logging.FieldJobs, cfg.Jobs,
	)

	result, err := runner.New(eng).Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: cfg.Ignore,
		Config:       cfg,
	})
	if err != nil {
		return fmt.Errorf("lint run: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		DryRun:      cfg.Fix && cfg.DryRun,
		WorkingDir:  workDir,
	})
	if err != nil {
		return err
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return &ExitCodeError{Code: code}
	}
	return nil
}

// loadConfig resolves the effective file configuration: an explicit --config
// path, or discovery walking up from the working directory.
func loadConfig(cmd *cobra.Command, workDir string) (*config.Config, error) {
	logger := logging.Default()

	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if explicit != "" {
		cfg, err := config.Load(explicit)
		if err != nil {
			return nil, &ExitCodeError{Code: ExitConfigError, Err: fmt.Errorf("load config: %w", err)}
		}
		logger.Debug("loaded configuration", logging.FieldConfig, explicit)
		return cfg, nil
	}

	cfg, source, err := config.Discover(workDir)
	if err != nil {
		return nil, &ExitCodeError{Code: ExitConfigError, Err: fmt.Errorf("discover config: %w", err)}
	}
	if cfg == nil {
		return config.New(), nil
	}
	logger.Debug("loaded configuration", logging.FieldConfig, source)
	return cfg, nil
}
