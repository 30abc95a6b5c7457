package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/booklint/booklint/internal/ui/pretty"
	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/runner"
)

// TextReporter writes styled, file-grouped terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
	width  int
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
		width:  pretty.TerminalWidth(opts.Writer),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		path := r.displayPath(file.Path)

		if file.Err != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Err)))
			continue
		}
		if len(file.Findings) == 0 {
			continue
		}

		fmt.Fprintf(r.bw, "%s %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Dim.Render(fmt.Sprintf("(%d)", len(file.Findings))))

		var lines []string
		if r.opts.ShowContext {
			lines = readLines(file.Path)
		}
		for _, f := range file.Findings {
			r.writeFinding(f, lines)
			total++
		}
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		r.writeSummary(result)
	}
	return total, nil
}

func (r *TextReporter) writeFinding(f check.Finding, lines []string) {
	sev := r.styles.SeverityStyle(string(f.Severity)).Render(string(f.Severity))
	loc := r.styles.Location.Render(fmt.Sprintf("%d:%d", f.Line, f.Column))
	id := r.styles.CheckID.Render(f.CheckID)

	fixable := ""
	if f.Edit != nil {
		fixable = " " + r.styles.Fixable.Render("[fixable]")
	}

	fmt.Fprintf(r.bw, "  %s  %s  %s  %s%s\n", loc, sev, f.Message, id, fixable)

	if r.opts.ShowContext && f.Line >= 1 && f.Line <= len(lines) {
		// Context lines are clipped to the terminal so one long source line
		// cannot wrap the report into noise.
		line := truncate(lines[f.Line-1], r.width-contextIndent)
		fmt.Fprintf(r.bw, "    %s\n", r.styles.SourceLine.Render(line))
	}
}

// contextIndent is the prefix width of a source-context line.
const contextIndent = 4

// truncate clips a line to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max < 4 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

func (r *TextReporter) writeSummary(result *runner.Result) {
	s := result.Stats
	fixVerb := "fixed"
	if r.opts.DryRun {
		fixVerb = "would be fixed"
	}

	if s.FindingsTotal == 0 && s.FilesErrored == 0 {
		msg := fmt.Sprintf("%d file(s) checked, no issues found.", s.FilesProcessed)
		if s.FindingsFixed > 0 {
			msg = fmt.Sprintf("%d file(s) checked, %d issue(s) %s.", s.FilesProcessed, s.FindingsFixed, fixVerb)
		}
		fmt.Fprintln(r.bw, r.styles.Success.Render(msg))
		return
	}

	parts := []string{
		fmt.Sprintf("%d file(s) checked", s.FilesProcessed),
		fmt.Sprintf("%d issue(s) in %d file(s)", s.FindingsTotal, s.FilesWithIssues),
	}
	if s.FindingsFixed > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", s.FindingsFixed, fixVerb))
	}
	if s.FilesErrored > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", s.FilesErrored))
	}
	fmt.Fprintln(r.bw, r.styles.Failure.Render(strings.Join(parts, ", ")))
}

func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// readLines loads a file for source-line context. Context is cosmetic, so
// read errors just disable it.
func readLines(path string) []string {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}
