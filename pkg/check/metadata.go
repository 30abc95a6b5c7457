package check

// Category groups checks by the aspect of a document they analyse.
type Category string

const (
	CategoryStructural Category = "structural"
	CategoryFormatting Category = "formatting"
	CategoryContent    Category = "content"
	CategoryMdBook     Category = "mdbook"
)

// Stability describes the maturity of a check.
type Stability string

const (
	StabilityStable       Stability = "stable"
	StabilityExperimental Stability = "experimental"
	StabilityDeprecated   Stability = "deprecated"
)

// Metadata describes a check for the resolver and introspection tooling.
// It is attached at registration time and never mutated afterwards.
type Metadata struct {
	// Category is the broad grouping used by category-level configuration.
	Category Category

	// Stability is the maturity of the check.
	Stability Stability

	// ReplacedBy names the successor check id for deprecated checks.
	ReplacedBy string

	// IntroducedIn is the release tag the check first shipped in.
	IntroducedIn string
}

// Deprecated reports whether the check has been superseded.
func (m Metadata) Deprecated() bool {
	return m.Stability == StabilityDeprecated
}
