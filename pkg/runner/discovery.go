package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// matcher holds the compiled include and exclude patterns for a run.
type matcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

func compileMatcher(opts Options) (*matcher, error) {
	m := &matcher{}
	for _, pattern := range opts.IncludeGlobs {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		m.include = append(m.include, g)
	}
	for _, pattern := range opts.ExcludeGlobs {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		m.exclude = append(m.exclude, g)
	}
	return m, nil
}

// excluded matches against both the relative path and its base name, so
// "*.gen.md" excludes generated files anywhere in the tree.
func (m *matcher) excluded(relPath string) bool {
	for _, g := range m.exclude {
		if g.Match(relPath) || g.Match(filepath.Base(relPath)) {
			return true
		}
	}
	return false
}

func (m *matcher) included(relPath string) bool {
	if len(m.include) == 0 {
		return true
	}
	for _, g := range m.include {
		if g.Match(relPath) || g.Match(filepath.Base(relPath)) {
			return true
		}
	}
	return false
}

// Discover resolves opts.Paths to a deduplicated, sorted list of Markdown
// files. Directories are walked recursively; hidden files and directories
// are skipped.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	m, err := compileMatcher(opts)
	if err != nil {
		return nil, err
	}

	extensions := opts.effectiveExtensions()
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Explicitly named files bypass the include filter but still
			// honor extension and exclude rules.
			if hasExtension(absPath, extensions) && !m.excluded(relTo(workDir, absPath)) {
				add(absPath)
			}
			continue
		}

		walked, err := walkDir(ctx, absPath, workDir, extensions, m, opts.FollowSymlinks)
		if err != nil {
			return nil, err
		}
		for _, f := range walked {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return abs, nil
}

func walkDir(ctx context.Context, root, workDir string, extensions []string, m *matcher, followSymlinks bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		rel := relTo(workDir, path)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if m.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(path)
			if err != nil {
				// Broken symlink.
				return nil
			}
			info, err := os.Stat(target)
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if !followSymlinks {
					return nil
				}
				// Walk the target so WalkDir's Lstat-based traversal
				// cannot recurse through the link itself.
				sub, err := walkDir(ctx, target, workDir, extensions, m, followSymlinks)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if hasExtension(path, extensions) && !m.excluded(rel) && m.included(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

func relTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
