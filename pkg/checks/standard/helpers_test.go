package standard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
	"github.com/booklint/booklint/pkg/fix"
)

// runLines executes a line-oriented check against raw input.
func runLines(t *testing.T, chk check.LineRunner, input string, options map[string]any) []check.Finding {
	t.Helper()

	doc, err := document.New([]byte(input), "test.md")
	require.NoError(t, err)

	findings, err := chk.CheckLines(&check.Context{
		Ctx:      context.Background(),
		Doc:      doc,
		Settings: check.NewSettings(options),
	})
	require.NoError(t, err)
	return findings
}

// runTree executes a tree-oriented check against raw input.
func runTree(t *testing.T, chk check.TreeRunner, input string, options map[string]any) []check.Finding {
	t.Helper()
	return runTreeAt(t, chk, input, "test.md", options)
}

func runTreeAt(t *testing.T, chk check.TreeRunner, input, path string, options map[string]any) []check.Finding {
	t.Helper()

	doc, err := document.New([]byte(input), path)
	require.NoError(t, err)
	tree, err := doc.Tree()
	require.NoError(t, err)

	findings, err := chk.CheckTree(&check.Context{
		Ctx:      context.Background(),
		Doc:      doc,
		Tree:     tree,
		Settings: check.NewSettings(options),
	})
	require.NoError(t, err)
	return findings
}

// applyFixes runs the fix pipeline over the findings and returns the
// rewritten text.
func applyFixes(t *testing.T, input string, findings []check.Finding, policy fix.Policy) string {
	t.Helper()

	doc, err := document.New([]byte(input), "test.md")
	require.NoError(t, err)

	outcome := fix.Run(doc, findings, policy, fix.Apply)
	return string(outcome.Text)
}
