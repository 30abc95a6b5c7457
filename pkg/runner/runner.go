package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/booklint/booklint/internal/logging"
	"github.com/booklint/booklint/pkg/config"
	"github.com/booklint/booklint/pkg/document"
	"github.com/booklint/booklint/pkg/engine"
	"github.com/booklint/booklint/pkg/fix"
	"github.com/booklint/booklint/pkg/fsutil"
)

// Runner processes discovered files through lint and fix with a bounded
// worker pool. The engine is shared across workers; check instances carry
// their own synchronization for any per-run caches.
type Runner struct {
	engine *engine.Engine
}

// New creates a Runner around a constructed engine.
func New(eng *engine.Engine) *Runner {
	return &Runner{engine: eng}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Per-file failures are recorded on the outcome and do not abort the batch;
// only context cancellation stops the run early.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files)), Stats: newStats()}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	logging.Default().Debug("starting run",
		logging.FieldFilesDiscovered, len(files),
		logging.FieldJobs, jobs,
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
	)

	outcomes := make([]FileOutcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.processFile(gctx, path, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	// Files are already in sorted discovery order.
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result, nil
}

// processFile runs the per-file pipeline: read, lint, and when fixing is
// enabled, apply edits, back up the pre-fix buffer, and write atomically.
func (r *Runner) processFile(ctx context.Context, path string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{Path: path}

	// Everything below the runner logs through the context, so per-file
	// diagnostics carry the path without re-threading it.
	logger := logging.FromContext(ctx).With(logging.FieldPath, path)
	ctx = logging.WithLogger(ctx, logger)

	content, snap, err := fsutil.Read(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	doc, err := document.New(content, path)
	if err != nil {
		outcome.Err = fmt.Errorf("decode %s: %w", path, err)
		return outcome
	}

	findings, err := r.engine.Lint(ctx, doc)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	if !cfg.Fix {
		outcome.Findings = findings
		return outcome
	}

	policy := fix.SafeOnly
	if cfg.Unsafe {
		policy = fix.IncludeUnsafe
	}
	mode := fix.Apply
	if cfg.DryRun {
		mode = fix.Preview
	}

	fixed := fix.Run(doc, findings, policy, mode)
	outcome.Findings = fixed.Remaining
	outcome.Fixed = fixed.Applied

	if fixed.Applied == 0 {
		return outcome
	}

	if cfg.DryRun {
		outcome.Diff = fix.GenerateDiff(path, content, fixed.Text)
		return outcome
	}

	if !cfg.NoBackup {
		created, err := fsutil.WriteBackup(ctx, path, content, snap.Mode)
		if err != nil {
			outcome.Err = fmt.Errorf("backup %s: %w", path, err)
			return outcome
		}
		outcome.BackedUp = created
	}

	if err := fsutil.WriteBack(ctx, snap, fixed.Text); err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Written = true

	logger.Debug("fixed file", logging.FieldFix, fixed.Applied)
	return outcome
}
