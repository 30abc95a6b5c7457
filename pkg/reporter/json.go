package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/booklint/booklint/pkg/runner"
)

// JSONReporter writes machine-readable results.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

type jsonFinding struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
	Fixable  bool   `json:"fixable"`
}

type jsonFile struct {
	Path     string        `json:"path"`
	Findings []jsonFinding `json:"findings"`
	Fixed    int           `json:"fixed,omitempty"`
	Written  bool          `json:"written,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type jsonStats struct {
	FilesDiscovered int            `json:"files_discovered"`
	FilesProcessed  int            `json:"files_processed"`
	FilesErrored    int            `json:"files_errored"`
	FilesWithIssues int            `json:"files_with_issues"`
	FilesFixed      int            `json:"files_fixed"`
	FindingsTotal   int            `json:"findings_total"`
	FindingsFixed   int            `json:"findings_fixed"`
	BySeverity      map[string]int `json:"by_severity"`
}

type jsonReport struct {
	Files []jsonFile `json:"files"`
	Stats jsonStats  `json:"stats"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	report := jsonReport{Files: []jsonFile{}}

	var total int
	if result != nil {
		for _, file := range result.Files {
			jf := jsonFile{Path: file.Path, Findings: []jsonFinding{}, Fixed: file.Fixed, Written: file.Written}
			if file.Err != nil {
				jf.Error = file.Err.Error()
			}
			for _, f := range file.Findings {
				jf.Findings = append(jf.Findings, jsonFinding{
					Check:    f.CheckID,
					Severity: string(f.Severity),
					Line:     f.Line,
					Column:   f.Column,
					Message:  f.Message,
					Fixable:  f.Edit != nil,
				})
				total++
			}
			report.Files = append(report.Files, jf)
		}
		report.Stats = jsonStats{
			FilesDiscovered: result.Stats.FilesDiscovered,
			FilesProcessed:  result.Stats.FilesProcessed,
			FilesErrored:    result.Stats.FilesErrored,
			FilesWithIssues: result.Stats.FilesWithIssues,
			FilesFixed:      result.Stats.FilesFixed,
			FindingsTotal:   result.Stats.FindingsTotal,
			FindingsFixed:   result.Stats.FindingsFixed,
			BySeverity:      result.Stats.FindingsBySeverity,
		}
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return 0, fmt.Errorf("encode json report: %w", err)
	}
	return total, nil
}
