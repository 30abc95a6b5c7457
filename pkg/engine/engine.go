package engine

import (
	"context"
	"fmt"

	"github.com/booklint/booklint/internal/logging"
	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/config"
	"github.com/booklint/booklint/pkg/document"
)

// Engine is an immutable (registry + resolved configuration) pair capable of
// running lint passes. Engines hold no per-document state: every Lint call is
// independent and side-effect free, so one engine may serve many documents
// from many goroutines concurrently.
type Engine struct {
	registry *Registry
	cfg      *config.Config
	resolved []resolvedCheck
}

// Registry returns the registry this engine was built from.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// EnabledCheckIDs returns the ids of checks this engine will run, in
// registration order.
func (e *Engine) EnabledCheckIDs() []string {
	out := make([]string, len(e.resolved))
	for i, rc := range e.resolved {
		out[i] = rc.chk.ID()
	}
	return out
}

// CheckByID returns the registered check with the given id, enabled or not.
func (e *Engine) CheckByID(id string) (check.Check, bool) {
	return e.registry.CheckByID(id)
}

// Lint runs every enabled check against the document and returns findings
// ordered by (line, column, check id).
func (e *Engine) Lint(ctx context.Context, doc *document.Document) ([]check.Finding, error) {
	return e.run(ctx, doc, e.resolved)
}

// LintWith runs a pass with a configuration that overrides the engine's
// baked-in one for this call only. It is used by tests and multi-config
// tooling; configuration errors surface here, before the document is linted.
func (e *Engine) LintWith(ctx context.Context, doc *document.Document, cfg *config.Config) ([]check.Finding, error) {
	e.registry.mu.RLock()
	instances := e.registry.freshInstances()
	e.registry.mu.RUnlock()

	resolved, err := resolveChecks(instances, cfg)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, doc, resolved)
}

// run is the dispatch loop shared by Lint and LintWith.
//
// The tree is built at most once per pass, and only when the enabled set
// contains a tree-oriented check; line-oriented checks receive the tree
// opportunistically if it was built anyway. Checks execute in registration
// order and never observe each other's findings.
func (e *Engine) run(ctx context.Context, doc *document.Document, resolved []resolvedCheck) ([]check.Finding, error) {
	var tree *document.Tree
	for _, rc := range resolved {
		if _, ok := rc.chk.(check.TreeRunner); ok {
			t, err := doc.Tree()
			if err != nil {
				return nil, fmt.Errorf("build syntax tree: %w", err)
			}
			tree = t
			break
		}
	}

	var findings []check.Finding

	for _, rc := range resolved {
		cctx := &check.Context{
			Ctx:      ctx,
			Doc:      doc,
			Tree:     tree,
			Settings: rc.settings,
		}

		var (
			results []check.Finding
			err     error
		)
		switch runner := rc.chk.(type) {
		case check.TreeRunner:
			results, err = runner.CheckTree(cctx)
		case check.LineRunner:
			results, err = runner.CheckLines(cctx)
		default:
			// A check that implements neither variant cannot run.
			continue
		}

		if err != nil {
			// Internal check failure: keep whatever the check managed to
			// report and continue the pass. Partial results always beat
			// aborting the run.
			// The context logger carries the document path when a caller
			// attached one; fall back to naming it here otherwise.
			logger := logging.FromContext(ctx)
			if logger == logging.Default() {
				logger = logger.With(logging.FieldPath, doc.Path())
			}
			logger.Warn("check failed",
				logging.FieldCheck, rc.chk.ID(),
				logging.FieldError, err)
		}

		for i := range results {
			results[i].Severity = rc.severity
			if results[i].CheckID == "" {
				results[i].CheckID = rc.chk.ID()
			}
		}
		findings = append(findings, results...)
	}

	check.Sort(findings)
	return findings, nil
}
