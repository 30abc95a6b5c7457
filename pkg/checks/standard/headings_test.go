package standard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/booklint/booklint/pkg/fix"
)

func TestHeadingIncrement(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantFindings int
		wantMessage  string
	}{
		{
			name:         "sequential levels",
			input:        "# One\n\n## Two\n\n### Three\n",
			wantFindings: 0,
		},
		{
			name:         "skip from h1 to h3",
			input:        "# One\n\n### Three\n",
			wantFindings: 1,
			wantMessage:  "Heading level jumped from H1 to H3",
		},
		{
			name:         "descending is allowed",
			input:        "# One\n\n### Three\n", // established below
			wantFindings: 1,
		},
		{
			name:         "no headings",
			input:        "just text\n",
			wantFindings: 0,
		},
		{
			name:         "back down then jump again",
			input:        "# A\n\n## B\n\n# C\n\n### D\n",
			wantFindings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runTree(t, NewHeadingIncrement(), tt.input, nil)
			assert.Len(t, findings, tt.wantFindings)
			if tt.wantMessage != "" && len(findings) > 0 {
				assert.Equal(t, tt.wantMessage, findings[0].Message)
			}
		})
	}
}

func TestFirstHeadingLevel(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		options      map[string]any
		wantFindings int
		wantMessage  string
	}{
		{
			name:         "document starts with h1",
			input:        "# Title\n\ntext\n",
			wantFindings: 0,
		},
		{
			name:         "document starts with h2",
			input:        "## Section\n\ntext\n",
			wantFindings: 1,
			wantMessage:  "First heading should be level 1, got level 2",
		},
		{
			name:         "configured level accepts h2",
			input:        "## Section\n\ntext\n",
			options:      map[string]any{"level": 2},
			wantFindings: 0,
		},
		{
			name:         "configured level rejects h1",
			input:        "# Title\n",
			options:      map[string]any{"level": 2},
			wantFindings: 1,
			wantMessage:  "First heading should be level 2, got level 1",
		},
		{
			name:         "no headings at all",
			input:        "text only\n",
			wantFindings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runTree(t, NewFirstHeadingLevel(), tt.input, tt.options)
			assert.Len(t, findings, tt.wantFindings)
			if tt.wantMessage != "" && len(findings) > 0 {
				assert.Equal(t, tt.wantMessage, findings[0].Message)
			}
		})
	}
}

func TestSingleTitle(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantFindings int
	}{
		{
			name:         "one h1",
			input:        "# Title\n\n## Section\n",
			wantFindings: 0,
		},
		{
			name:         "two h1s",
			input:        "# First\n\n# Second\n",
			wantFindings: 1,
		},
		{
			name:         "three h1s flag all but the first",
			input:        "# A\n\n# B\n\n# C\n",
			wantFindings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := runTree(t, NewSingleTitle(), tt.input, nil)
			assert.Len(t, findings, tt.wantFindings)
		})
	}
}

func TestTrailingPunctuation(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		options      map[string]any
		wantFindings int
		wantFix      string
	}{
		{
			name:         "clean heading",
			input:        "# Title\n",
			wantFindings: 0,
		},
		{
			name:         "trailing period",
			input:        "# Title.\n",
			wantFindings: 1,
			wantFix:      "# Title\n",
		},
		{
			name:         "trailing colon",
			input:        "## Setup:\n",
			wantFindings: 1,
			wantFix:      "## Setup\n",
		},
		{
			name:         "question mark allowed by default",
			input:        "# Why?\n",
			wantFindings: 0,
		},
		{
			name:         "custom punctuation set",
			input:        "# Why?\n",
			options:      map[string]any{"punctuation": "?"},
			wantFindings: 1,
			wantFix:      "# Why\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chk := NewTrailingPunctuation()
			findings := runTree(t, chk, tt.input, tt.options)
			assert.Len(t, findings, tt.wantFindings)

			if tt.wantFindings == 0 {
				return
			}
			assert.NotNil(t, findings[0].Edit)
			fixed := applyFixes(t, tt.input, findings, fix.SafeOnly)
			assert.Equal(t, tt.wantFix, fixed)
		})
	}
}
