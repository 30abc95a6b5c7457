// Package reporter formats lint results for humans and machines: styled
// text, JSON, SARIF, and fix-preview diffs.
package reporter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/booklint/booklint/pkg/runner"
)

// bufWriterSize is the buffer size for output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Reporter formats and writes a run result.
type Reporter interface {
	// Report writes formatted output and returns the number of findings
	// reported.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Options configures reporting.
type Options struct {
	// Writer receives the report, typically os.Stdout.
	Writer io.Writer

	// Format selects the output representation.
	Format Format

	// Color is "auto", "always", or "never".
	Color string

	// ShowContext includes the offending source line under each finding.
	ShowContext bool

	// ShowSummary appends aggregate statistics after the findings.
	ShowSummary bool

	// DryRun marks the run as a fix preview: nothing was written, so the
	// summary says what would be fixed.
	DryRun bool

	// WorkingDir makes reported paths relative when set.
	WorkingDir string
}

// DefaultOptions returns text output to stdout with auto color.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
	}
}

// New creates a Reporter for the options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
