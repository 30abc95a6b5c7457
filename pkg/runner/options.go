// Package runner orchestrates linting and fixing across many files: path
// discovery, a bounded worker pool, the per-file safety pipeline, and
// aggregate statistics.
package runner

import "github.com/booklint/booklint/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty uses the process directory.
	WorkingDir string

	// Extensions are the file extensions treated as Markdown, lowercase
	// with leading dot. Empty defaults to DefaultExtensions.
	Extensions []string

	// IncludeGlobs restrict discovery to matching paths when non-empty.
	IncludeGlobs []string

	// ExcludeGlobs skip matching files and directories. Config ignore
	// patterns and CLI --ignore flags merge into this list.
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks during discovery.
	FollowSymlinks bool

	// Config is the resolved configuration for the run.
	Config *config.Config
}

// DefaultExtensions returns the extensions discovered by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
