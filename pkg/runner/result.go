package runner

import (
	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/fix"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Findings are the findings reported for the file. After a fix pass
	// this holds the remaining (unfixed) findings.
	Findings []check.Finding

	// Fixed is the number of edits applied, or that would be applied in a
	// dry run.
	Fixed int

	// Written is true when the file was rewritten on disk.
	Written bool

	// BackedUp is true when a sidecar backup was created.
	BackedUp bool

	// Diff is the preview diff for a dry-run fix pass, nil otherwise.
	Diff *fix.Diff

	// Err is set when the file could not be processed. The rest of the
	// batch continues.
	Err error
}

// Stats aggregates a whole run.
type Stats struct {
	FilesDiscovered    int
	FilesProcessed     int
	FilesErrored       int
	FilesWithIssues    int
	FilesFixed         int
	FindingsTotal      int
	FindingsFixed      int
	FindingsBySeverity map[string]int
}

// Result is the outcome of a multi-file run, with Files in path order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasErrors reports whether any error-severity findings remain or any file
// failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity[string(check.SeverityError)] > 0 || r.Stats.FilesErrored > 0
}

// HasFindings reports whether the run produced any findings.
func (r *Result) HasFindings() bool {
	return r != nil && r.Stats.FindingsTotal > 0
}

func newStats() Stats {
	return Stats{FindingsBySeverity: make(map[string]int)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.FindingsFixed += outcome.Fixed
	if outcome.Written {
		r.Stats.FilesFixed++
	}
	if len(outcome.Findings) > 0 || outcome.Fixed > 0 {
		r.Stats.FilesWithIssues++
	}

	r.Stats.FindingsTotal += len(outcome.Findings)
	for _, f := range outcome.Findings {
		r.Stats.FindingsBySeverity[string(f.Severity)]++
	}
}
