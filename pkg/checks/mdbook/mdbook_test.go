package mdbook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
)

func runTreeAt(t *testing.T, chk check.TreeRunner, input, path string) []check.Finding {
	t.Helper()

	doc, err := document.New([]byte(input), path)
	require.NoError(t, err)
	tree, err := doc.Tree()
	require.NoError(t, err)

	findings, err := chk.CheckTree(&check.Context{
		Ctx:      context.Background(),
		Doc:      doc,
		Tree:     tree,
		Settings: check.NewSettings(nil),
	})
	require.NoError(t, err)
	return findings
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestValidInternalLinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "intro.md"), "# Intro\n")
	writeFile(t, filepath.Join(dir, "nested", "deep.md"), "# Deep\n")

	tests := []struct {
		name         string
		input        string
		wantFindings int
		wantMessage  string
	}{
		{
			name:         "existing chapter",
			input:        "[intro](intro.md)\n",
			wantFindings: 0,
		},
		{
			name:         "existing nested chapter",
			input:        "[deep](nested/deep.md)\n",
			wantFindings: 0,
		},
		{
			name:         "missing chapter",
			input:        "[gone](missing.md)\n",
			wantFindings: 1,
			wantMessage:  `Link target "missing.md" does not exist`,
		},
		{
			name:         "fragment suffix is stripped before resolving",
			input:        "[intro](intro.md#setup)\n",
			wantFindings: 0,
		},
		{
			name:         "external links are ignored",
			input:        "[site](https://example.com/missing.md)\n",
			wantFindings: 0,
		},
		{
			name:         "non markdown targets are ignored",
			input:        "[img](missing.png)\n",
			wantFindings: 0,
		},
		{
			name:         "absolute paths are another check's concern",
			input:        "[abs](/missing.md)\n",
			wantFindings: 0,
		},
		{
			name:         "pure fragments are ignored",
			input:        "[anchor](#setup)\n",
			wantFindings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runTreeAt(t, NewValidInternalLinks(), tt.input, filepath.Join(dir, "chapter.md"))
			assert.Len(t, findings, tt.wantFindings)
			if tt.wantMessage != "" && len(findings) > 0 {
				assert.Equal(t, tt.wantMessage, findings[0].Message)
			}
		})
	}
}

func TestValidInternalLinksSkipsPathlessDocuments(t *testing.T) {
	findings := runTreeAt(t, NewValidInternalLinks(), "[gone](missing.md)\n", "")
	assert.Empty(t, findings)
}

func TestValidInternalLinksCachesStatResults(t *testing.T) {
	dir := t.TempDir()
	chk := NewValidInternalLinks()

	input := "[a](gone.md)\n\n[b](gone.md)\n"
	findings := runTreeAt(t, chk, input, filepath.Join(dir, "chapter.md"))
	assert.Len(t, findings, 2)

	// Creating the file after the first run does not flip the cached
	// answer; the cache lives for the engine build.
	writeFile(t, filepath.Join(dir, "gone.md"), "# Here now\n")
	findings = runTreeAt(t, chk, input, filepath.Join(dir, "chapter.md"))
	assert.Len(t, findings, 2)
}

func TestSummaryStructure(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantFindings int
		wantMessage  string
	}{
		{
			name:         "well formed summary",
			input:        "# Summary\n\n- [Intro](intro.md)\n- [Setup](setup/index.md)\n",
			wantFindings: 0,
		},
		{
			name:         "entry without a link",
			input:        "# Summary\n\n- Intro\n",
			wantFindings: 1,
			wantMessage:  "Summary entry is not a link",
		},
		{
			name:         "entry linking outside markdown",
			input:        "# Summary\n\n- [Site](https://example.com)\n",
			wantFindings: 1,
			wantMessage:  `Summary entry links to "https://example.com", expected a .md chapter`,
		},
		{
			name:         "draft chapter with empty destination",
			input:        "# Summary\n\n- [Draft]()\n",
			wantFindings: 0,
		},
		{
			name:         "nested entries are checked",
			input:        "# Summary\n\n- [Intro](intro.md)\n  - Nested plain text\n",
			wantFindings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runTreeAt(t, NewSummaryStructure(), tt.input, "book/src/SUMMARY.md")
			assert.Len(t, findings, tt.wantFindings)
			if tt.wantMessage != "" && len(findings) > 0 {
				assert.Equal(t, tt.wantMessage, findings[0].Message)
			}
		})
	}
}

func TestSummaryStructureIgnoresOtherFiles(t *testing.T) {
	input := "- Not a link\n"
	findings := runTreeAt(t, NewSummaryStructure(), input, "book/src/chapter.md")
	assert.Empty(t, findings)
}

func TestNoAbsolutePaths(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantFindings int
		wantMessage  string
	}{
		{
			name:         "relative link",
			input:        "[intro](intro.md)\n",
			wantFindings: 0,
		},
		{
			name:         "absolute link",
			input:        "[intro](/src/intro.md)\n",
			wantFindings: 1,
			wantMessage:  `Link destination "/src/intro.md" is an absolute path`,
		},
		{
			name:         "absolute image",
			input:        "![logo](/img/logo.png)\n",
			wantFindings: 1,
			wantMessage:  `Image destination "/img/logo.png" is an absolute path`,
		},
		{
			name:         "external url",
			input:        "[site](https://example.com/page)\n",
			wantFindings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runTreeAt(t, NewNoAbsolutePaths(), tt.input, "chapter.md")
			assert.Len(t, findings, tt.wantFindings)
			if tt.wantMessage != "" && len(findings) > 0 {
				assert.Equal(t, tt.wantMessage, findings[0].Message)
			}
		})
	}
}
