// Package fix turns findings that carry edits into rewritten document text.
// The pipeline is a pure text transform: it performs no I/O, and the caller
// owns writing results, creating backups, and constructing a fresh Document
// from the rewritten bytes.
package fix

import (
	"bytes"
	"sort"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
)

// Policy selects which edits are eligible for application.
type Policy int

const (
	// SafeOnly applies only edits not flagged unsafe.
	SafeOnly Policy = iota

	// IncludeUnsafe applies unsafe edits as well.
	IncludeUnsafe
)

// Mode selects whether the rewritten text is meant to be persisted.
type Mode int

const (
	// Apply computes the rewritten text for the caller to write out.
	Apply Mode = iota

	// Preview computes the rewritten text for reporting only; the caller
	// must not write it anywhere.
	Preview
)

// Outcome is the result of one pipeline run.
type Outcome struct {
	// Text is the rewritten document content. Equal to the original when
	// Applied is zero.
	Text []byte

	// Applied is the number of edits applied to Text. In Preview mode it is
	// the number that would be applied.
	Applied int

	// Preview is true when the run was a preview: Text must be reported,
	// never written.
	Preview bool

	// Remaining contains every finding that was not fixed: findings with no
	// edit, findings excluded by policy, and findings demoted because their
	// edit overlapped an earlier one. Downstream "Found N violation(s)"
	// reporting stays accurate after a fix pass.
	Remaining []check.Finding
}

// byteEdit is an edit resolved to byte offsets against the original buffer.
type byteEdit struct {
	start   int
	end     int
	newText string
	finding check.Finding
}

// Run applies the eligible edits among findings to the document text.
//
// Overlapping edits are never merged or guessed at: when two eligible edits'
// spans overlap, the first in (line, column, check id) order is kept and the
// other finding is demoted to Remaining with its original message. Accepted
// edits are applied in reverse document order against the original buffer, so
// no position ever needs recomputation.
//
// Re-running the pipeline on its own output with the same checks and policy
// applies zero edits.
func Run(doc *document.Document, findings []check.Finding, policy Policy, mode Mode) *Outcome {
	ordered := make([]check.Finding, len(findings))
	copy(ordered, findings)
	check.Sort(ordered)

	outcome := &Outcome{Preview: mode == Preview}

	// Partition into eligible edits and everything else.
	var eligible []byteEdit
	for _, f := range ordered {
		e := f.Edit
		if e == nil || (e.Unsafe && policy != IncludeUnsafe) {
			outcome.Remaining = append(outcome.Remaining, f)
			continue
		}

		start, okStart := doc.Offset(e.Span.Start.Line, e.Span.Start.Column)
		end, okEnd := doc.Offset(e.Span.End.Line, e.Span.End.Column)
		if !okStart || !okEnd || end < start {
			// A span that does not resolve against this document cannot be
			// applied safely; keep the finding reportable.
			outcome.Remaining = append(outcome.Remaining, f)
			continue
		}

		eligible = append(eligible, byteEdit{start: start, end: end, newText: e.Replacement, finding: f})
	}

	// Demote overlaps in finding order: the first edit to claim a region
	// wins, later claimants keep their original finding. An edit's span may
	// start before its finding position, so each candidate is checked
	// against every accepted interval rather than just the previous one.
	var accepted []byteEdit
	for _, be := range eligible {
		conflict := false
		for _, a := range accepted {
			if be.start < a.end && be.end > a.start {
				conflict = true
				break
			}
		}
		if conflict {
			outcome.Remaining = append(outcome.Remaining, be.finding)
			continue
		}
		accepted = append(accepted, be)
	}

	check.Sort(outcome.Remaining)

	if len(accepted) == 0 {
		outcome.Text = doc.Content()
		return outcome
	}

	outcome.Text = applyReverse(doc.Content(), accepted)
	outcome.Applied = len(accepted)

	return outcome
}

// applyReverse applies byte edits bottom-most first against the original
// buffer. Earlier edits' offsets stay valid because every splice happens at
// or after the remaining edits' positions.
func applyReverse(content []byte, edits []byteEdit) []byte {
	// Ordered by (start, end): a zero-width insert can share its offset with
	// the start of another edit's span without overlapping it, and the wider
	// edit must splice first so the inserted text lands ahead of the
	// replacement.
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].start != edits[j].start {
			return edits[i].start < edits[j].start
		}
		return edits[i].end < edits[j].end
	})

	out := content
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		var buf bytes.Buffer
		buf.Grow(len(out) + len(e.newText) - (e.end - e.start))
		buf.Write(out[:e.start])
		buf.WriteString(e.newText)
		buf.Write(out[e.end:])
		out = buf.Bytes()
	}
	return out
}
