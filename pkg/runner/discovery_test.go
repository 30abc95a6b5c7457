package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscoverWalksDirectories(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":           "# Readme\n",
		"docs/intro.md":       "# Intro\n",
		"docs/notes.txt":      "not markdown\n",
		"docs/guide.markdown": "# Guide\n",
		"src/main.go":         "package main\n",
	})

	files, err := Discover(context.Background(), Options{Paths: []string{root}, WorkingDir: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "docs/guide.markdown", "docs/intro.md"}, relPaths(t, root, files))
}

func TestDiscoverSkipsHiddenEntries(t *testing.T) {
	root := writeTree(t, map[string]string{
		"visible.md":        "# V\n",
		".hidden.md":        "# H\n",
		".git/objects/a.md": "# G\n",
		"docs/.draft.md":    "# D\n",
	})

	files, err := Discover(context.Background(), Options{Paths: []string{root}, WorkingDir: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.md"}, relPaths(t, root, files))
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep.md":              "# K\n",
		"skip.gen.md":          "# S\n",
		"vendor/dep/readme.md": "# V\n",
	})

	files, err := Discover(context.Background(), Options{
		Paths:        []string{root},
		WorkingDir:   root,
		ExcludeGlobs: []string{"*.gen.md", "vendor/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.md"}, relPaths(t, root, files))
}

func TestDiscoverIncludeGlobs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"docs/a.md":  "# A\n",
		"other/b.md": "# B\n",
	})

	files, err := Discover(context.Background(), Options{
		Paths:        []string{root},
		WorkingDir:   root,
		IncludeGlobs: []string{"docs/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/a.md"}, relPaths(t, root, files))
}

func TestDiscoverExplicitFileBypassesIncludeFilter(t *testing.T) {
	root := writeTree(t, map[string]string{
		"other/b.md": "# B\n",
	})

	files, err := Discover(context.Background(), Options{
		Paths:        []string{filepath.Join(root, "other", "b.md")},
		WorkingDir:   root,
		IncludeGlobs: []string{"docs/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"other/b.md"}, relPaths(t, root, files))
}

func TestDiscoverDeduplicates(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.md": "# A\n",
	})

	files, err := Discover(context.Background(), Options{
		Paths:      []string{root, filepath.Join(root, "a.md")},
		WorkingDir: root,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, relPaths(t, root, files))
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		Paths:      []string{"no-such-path"},
		WorkingDir: t.TempDir(),
	})
	assert.Error(t, err)
}

func TestDiscoverBadPattern(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		Paths:        []string{t.TempDir()},
		ExcludeGlobs: []string{"[unclosed"},
	})
	assert.Error(t, err)
}
