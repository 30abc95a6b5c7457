package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/booklint/booklint/internal/ui/pretty"
	"github.com/booklint/booklint/pkg/runner"
)

// DiffReporter renders the preview diffs produced by a dry-run fix pass.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter, counting files with pending changes.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var changed int
	for _, file := range result.Files {
		if file.Diff == nil || file.Diff.Empty() {
			continue
		}
		changed++
		r.writeStyled(file.Diff.String())
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.styles.Dim.Render(
			fmt.Sprintf("%d file(s) would be modified.", changed)))
	}
	return changed, nil
}

// writeStyled colorizes unified diff lines.
func (r *DiffReporter) writeStyled(diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			fmt.Fprintln(r.bw, r.styles.DiffHeader.Render(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(r.bw, r.styles.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(r.bw, r.styles.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(r.bw, r.styles.DiffRemove.Render(line))
		default:
			fmt.Fprintln(r.bw, line)
		}
	}
}
