package mdbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yuin/goldmark/ast"

	"github.com/booklint/booklint/pkg/check"
)

// fileCache memoizes existence checks so a document with many links to the
// same chapter stats it once. Each check instance owns its own cache, so the
// lifetime is one engine build.
type fileCache struct {
	mu    sync.RWMutex
	known map[string]bool
}

func newFileCache() *fileCache {
	return &fileCache{known: make(map[string]bool)}
}

// exists reports whether path exists, with ok false when the stat itself
// failed for a reason other than absence.
func (c *fileCache) exists(path string) (found, ok bool) {
	c.mu.RLock()
	found, hit := c.known[path]
	c.mu.RUnlock()
	if hit {
		return found, true
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		found = true
	case os.IsNotExist(err):
		found = false
	default:
		return false, false
	}

	c.mu.Lock()
	c.known[path] = found
	c.mu.Unlock()
	return found, true
}

// ValidInternalLinks checks that relative links to Markdown chapters resolve
// to files that exist.
type ValidInternalLinks struct {
	check.Base
	cache *fileCache
}

// NewValidInternalLinks creates the MDBOOK002 check.
func NewValidInternalLinks() *ValidInternalLinks {
	return &ValidInternalLinks{
		Base: check.NewBase(
			"MDBOOK002",
			"valid-internal-links",
			"Internal links should point to chapters that exist",
			check.Metadata{
				Category:     check.CategoryMdBook,
				Stability:    check.StabilityStable,
				IntroducedIn: "v0.2.0",
			},
			check.SeverityError,
			false,
		),
		cache: newFileCache(),
	}
}

// CheckTree resolves every relative .md link against the document's
// directory. Documents without a filesystem path are skipped, and a failed
// stat yields no finding for that link.
func (c *ValidInternalLinks) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	dir := filepath.Dir(ctx.Doc.Path())
	if ctx.Doc.Path() == "" {
		return nil, nil
	}

	var findings []check.Finding
	for _, n := range ctx.Tree.FindAll(ast.KindLink) {
		link, ok := n.(*ast.Link)
		if !ok {
			continue
		}
		target := internalTarget(string(link.Destination))
		if target == "" {
			continue
		}

		resolved := filepath.Join(dir, filepath.FromSlash(target))
		found, ok := c.cache.exists(resolved)
		if !ok || found {
			continue
		}

		span := ctx.Tree.PositionOf(n)
		if !span.IsValid() {
			continue
		}
		findings = append(findings, check.NewFinding(
			c.ID(),
			span.Start,
			fmt.Sprintf("Link target %q does not exist", target),
		).Build())
	}

	return findings, nil
}

// internalTarget extracts the relative .md path from a link destination, or
// returns empty for links this check does not cover.
func internalTarget(dest string) string {
	if dest == "" || strings.HasPrefix(dest, "#") {
		return ""
	}
	if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		return ""
	}
	if strings.HasPrefix(dest, "/") {
		// Absolute paths are MDBOOK007's concern.
		return ""
	}

	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		dest = dest[:i]
	}
	if !strings.HasSuffix(dest, ".md") {
		return ""
	}
	return dest
}
