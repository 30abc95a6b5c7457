package standard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklint/booklint/pkg/fix"
)

func TestSpacesInEmphasis(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantFindings int
	}{
		{
			name:         "emphasis without padding",
			input:        "this is *fine* and **also fine**\n",
			wantFindings: 0,
		},
		{
			name:         "space after strong opener",
			input:        "this is ** bold** text\n",
			wantFindings: 1,
		},
		{
			name:         "space before strong closer",
			input:        "this is **bold ** text\n",
			wantFindings: 1,
		},
		{
			name:         "strong padded on both sides",
			input:        "this is ** bold ** text\n",
			wantFindings: 1,
		},
		{
			name:         "underscore emphasis padded",
			input:        "this is _italic _ text\n",
			wantFindings: 1,
		},
		{
			name:         "lone asterisks around a word read as prose",
			input:        "a * b * c\n",
			wantFindings: 0,
		},
		{
			name:         "list marker is not emphasis",
			input:        "* item one\n* item two\n",
			wantFindings: 0,
		},
		{
			name:         "inline code span",
			input:        "multiply with `** x **` here\n",
			wantFindings: 0,
		},
		{
			name:         "fenced code block",
			input:        "```\na ** b **\n```\n",
			wantFindings: 0,
		},
		{
			name:         "snake_case identifiers",
			input:        "use snake_case_names here\n",
			wantFindings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runLines(t, NewSpacesInEmphasis(), tt.input, nil)
			assert.Len(t, findings, tt.wantFindings)
		})
	}
}

func TestSpacesInEmphasisFix(t *testing.T) {
	input := "this is ** bold ** text\n"

	findings := runLines(t, NewSpacesInEmphasis(), input, nil)
	require.Len(t, findings, 1)
	assert.Equal(t, 1, findings[0].Line)
	assert.Equal(t, 9, findings[0].Column)
	assert.Equal(t, "Spaces inside emphasis markers", findings[0].Message)

	fixed := applyFixes(t, input, findings, fix.SafeOnly)
	assert.Equal(t, "this is **bold** text\n", fixed)
}

func TestSpacesInEmphasisTrailingOnly(t *testing.T) {
	input := "start *one * and *two* end\n"

	findings := runLines(t, NewSpacesInEmphasis(), input, nil)
	require.Len(t, findings, 1)

	fixed := applyFixes(t, input, findings, fix.SafeOnly)
	assert.Equal(t, "start *one* and *two* end\n", fixed)
}
