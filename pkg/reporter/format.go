package reporter

// Format selects the output representation.
type Format string

const (
	// FormatText is styled, file-grouped terminal output.
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON.
	FormatJSON Format = "json"

	// FormatSARIF is SARIF 2.1.0 for code scanning integrations.
	FormatSARIF Format = "sarif"

	// FormatDiff renders only the preview diffs from a dry-run fix pass.
	FormatDiff Format = "diff"
)

// IsValid reports whether f names a supported format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSARIF, FormatDiff:
		return true
	}
	return false
}

// Formats lists the supported format names for help output.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatSARIF), string(FormatDiff)}
}
