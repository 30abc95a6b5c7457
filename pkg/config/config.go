// Package config defines the configuration model for booklint. The types here
// are plain data: decoding from YAML, TOML, or JSON happens in load.go, and
// interpretation (which checks run, with what options) happens in pkg/engine.
package config

// Policy is the global default enablement policy.
type Policy string

const (
	// PolicyEnableAll runs every registered check unless excluded.
	PolicyEnableAll Policy = "enable-all"

	// PolicyEnableNone runs only explicitly included checks.
	PolicyEnableNone Policy = "enable-none"
)

// IsValid reports whether the policy is one of the known values.
func (p Policy) IsValid() bool {
	switch p {
	case PolicyEnableAll, PolicyEnableNone:
		return true
	default:
		return false
	}
}

// CheckConfig is the per-check configuration block.
type CheckConfig struct {
	// Enabled explicitly enables or disables the check. It has the highest
	// precedence, above category lists and the global policy.
	Enabled *bool `yaml:"enabled" toml:"enabled" json:"enabled,omitempty"`

	// Severity overrides the check's default severity
	// ("error", "warning", or "info").
	Severity *string `yaml:"severity" toml:"severity" json:"severity,omitempty"`

	// Options is the opaque option block handed to the check. Both
	// hyphen-case and snake_case key spellings are accepted; unknown keys
	// are ignored.
	Options map[string]any `yaml:"options" toml:"options" json:"options,omitempty"`
}

// Config is the root configuration. It is built once per invocation and
// passed by reference into every lint call; it is never mutated during a
// pass, so one Config may serve many engines and many documents.
type Config struct {
	// Policy selects the default enablement for checks not otherwise named.
	Policy Policy `yaml:"policy" toml:"policy" json:"policy,omitempty"`

	// EnableCategories includes whole categories on top of the policy.
	EnableCategories []string `yaml:"enable-categories" toml:"enable-categories" json:"enable-categories,omitempty"`

	// DisableCategories excludes whole categories (e.g. "mdbook").
	DisableCategories []string `yaml:"disable-categories" toml:"disable-categories" json:"disable-categories,omitempty"`

	// Enable lists check ids enabled explicitly; it overrides category
	// exclusion.
	Enable []string `yaml:"enable" toml:"enable" json:"enable,omitempty"`

	// Disable lists check ids disabled explicitly; it overrides category
	// inclusion. When a check appears in both Enable and Disable, the
	// last-applied list wins: Disable is applied after Enable.
	Disable []string `yaml:"disable" toml:"disable" json:"disable,omitempty"`

	// Checks holds per-check blocks keyed by check id.
	Checks map[string]CheckConfig `yaml:"checks" toml:"checks" json:"checks,omitempty"`

	// Ignore lists glob patterns for files the runner skips.
	Ignore []string `yaml:"ignore" toml:"ignore" json:"ignore,omitempty"`

	// Invocation-level options, set from CLI flags and never persisted.

	// Fix enables edit application for findings that carry one.
	Fix bool `yaml:"-" toml:"-" json:"-"`

	// DryRun previews fixes without touching the filesystem.
	DryRun bool `yaml:"-" toml:"-" json:"-"`

	// Unsafe includes edits flagged unsafe in fix application.
	Unsafe bool `yaml:"-" toml:"-" json:"-"`

	// NoBackup disables the pre-fix backup file.
	NoBackup bool `yaml:"-" toml:"-" json:"-"`

	// Jobs is the number of parallel workers; 0 means GOMAXPROCS.
	Jobs int `yaml:"-" toml:"-" json:"-"`
}

// New returns a Config with defaults: enable-all policy and no overrides.
func New() *Config {
	return &Config{
		Policy: PolicyEnableAll,
		Checks: make(map[string]CheckConfig),
	}
}

// CheckBlock returns the configuration block for a check id, if present.
func (c *Config) CheckBlock(id string) (CheckConfig, bool) {
	if c == nil || c.Checks == nil {
		return CheckConfig{}, false
	}
	cc, ok := c.Checks[id]
	return cc, ok
}
