package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
	"github.com/booklint/booklint/pkg/fix"
	"github.com/booklint/booklint/pkg/runner"
)

func sampleResult() *runner.Result {
	edit := check.Insert(document.Position{Line: 1, Column: 9}, "\n", "Add newline")
	findings := []check.Finding{
		check.NewFinding("MD009", document.Position{Line: 2, Column: 8}, "Trailing whitespace").
			WithSeverity(check.SeverityWarning).
			WithEdit(edit).
			Build(),
		check.NewFinding("MD042", document.Position{Line: 4, Column: 1}, "Link has no destination").
			WithSeverity(check.SeverityError).
			Build(),
	}

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "docs/intro.md", Findings: findings},
			{Path: "docs/clean.md"},
		},
		Stats: runner.Stats{
			FilesDiscovered: 2,
			FilesProcessed:  2,
			FilesWithIssues: 1,
			FindingsTotal:   2,
			FindingsBySeverity: map[string]int{
				"warning": 1,
				"error":   1,
			},
		},
	}
	return result
}

func TestFormatIsValid(t *testing.T) {
	for _, name := range Formats() {
		assert.True(t, Format(name).IsValid(), name)
	}
	assert.False(t, Format("xml").IsValid())
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(Options{Format: Format("xml")})
	assert.Error(t, err)
}

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	total, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	out := buf.String()
	assert.Contains(t, out, "docs/intro.md")
	assert.Contains(t, out, "2:8")
	assert.Contains(t, out, "Trailing whitespace")
	assert.Contains(t, out, "[fixable]")
	assert.Contains(t, out, "MD042")
	assert.Contains(t, out, "2 issue(s) in 1 file(s)")
	// Clean files are not listed.
	assert.NotContains(t, out, "clean.md")
}

func TestTextReportNoIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(Options{Writer: &buf, Color: "never", ShowSummary: true})

	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "a.md"}},
		Stats: runner.Stats{FilesProcessed: 1, FindingsBySeverity: map[string]int{}},
	}

	total, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Contains(t, buf.String(), "no issues found")
}

func TestTextReportDryRunSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		DryRun:      true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "doc.md", Fixed: 2}},
		Stats: runner.Stats{
			FilesProcessed:     1,
			FilesWithIssues:    1,
			FindingsFixed:      2,
			FindingsBySeverity: map[string]int{},
		},
	}

	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)

	// A preview run reports what would change, never that it changed.
	assert.Contains(t, buf.String(), "2 issue(s) would be fixed.")
	assert.NotContains(t, buf.String(), "issue(s) fixed.")
}

func TestTextReportFixSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "doc.md", Fixed: 2, Written: true}},
		Stats: runner.Stats{
			FilesProcessed:     1,
			FilesWithIssues:    1,
			FilesFixed:         1,
			FindingsFixed:      2,
			FindingsBySeverity: map[string]int{},
		},
	}

	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2 issue(s) fixed.")
}

func TestTextReportTruncatesLongContextLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "long.md")
	longLine := strings.Repeat("x", 400)
	require.NoError(t, os.WriteFile(path, []byte(longLine+"\n"), 0o644))

	var buf bytes.Buffer
	r := NewTextReporter(Options{
		Writer:      &buf,
		Color:       "never",
		ShowContext: true,
	})

	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path: path,
			Findings: []check.Finding{
				check.NewFinding("MD013", document.Position{Line: 1, Column: 81}, "Line too long").
					WithSeverity(check.SeverityInfo).
					Build(),
			},
		}},
		Stats: runner.Stats{FilesProcessed: 1, FindingsTotal: 1, FindingsBySeverity: map[string]int{}},
	}

	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)

	// A buffer has no terminal size, so the default width applies and the
	// 400-column source line is clipped with an ellipsis.
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), longLine)
}

func TestTextReportFileError(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(Options{Writer: &buf, Color: "never"})

	result := &runner.Result{
		Files: []runner.FileOutcome{{Path: "broken.md", Err: errors.New("boom")}},
		Stats: runner.Stats{FilesErrored: 1, FindingsBySeverity: map[string]int{}},
	}

	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "broken.md")
	assert.Contains(t, buf.String(), "boom")
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(Options{Writer: &buf})

	total, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	var decoded struct {
		Files []struct {
			Path     string `json:"path"`
			Findings []struct {
				Check    string `json:"check"`
				Severity string `json:"severity"`
				Line     int    `json:"line"`
				Column   int    `json:"column"`
				Fixable  bool   `json:"fixable"`
			} `json:"findings"`
		} `json:"files"`
		Stats struct {
			FindingsTotal int `json:"findings_total"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Files, 2)
	require.Len(t, decoded.Files[0].Findings, 2)
	assert.Equal(t, "MD009", decoded.Files[0].Findings[0].Check)
	assert.Equal(t, "warning", decoded.Files[0].Findings[0].Severity)
	assert.Equal(t, 2, decoded.Files[0].Findings[0].Line)
	assert.True(t, decoded.Files[0].Findings[0].Fixable)
	assert.Equal(t, 2, decoded.Stats.FindingsTotal)
}

func TestSARIFReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewSARIFReporter(Options{Writer: &buf})

	total, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	var decoded struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name string `json:"name"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "2.1.0", decoded.Version)
	require.Len(t, decoded.Runs, 1)
	assert.Equal(t, "booklint", decoded.Runs[0].Tool.Driver.Name)
	require.Len(t, decoded.Runs[0].Results, 2)
	assert.Equal(t, "MD009", decoded.Runs[0].Results[0].RuleID)
}

func TestDiffReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewDiffReporter(Options{Writer: &buf, Color: "never", ShowSummary: true})

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:  "doc.md",
				Fixed: 1,
				Diff:  fix.GenerateDiff("doc.md", []byte("a \n"), []byte("a\n")),
			},
		},
		Stats: runner.Stats{FilesProcessed: 1, FindingsBySeverity: map[string]int{}},
	}

	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "--- doc.md")
	assert.Contains(t, out, "-a ")
	assert.Contains(t, out, "+a")
	assert.Contains(t, out, "1 file(s) would be modified.")
}
