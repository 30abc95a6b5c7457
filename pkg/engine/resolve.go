package engine

import (
	"fmt"
	"slices"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/config"
)

// ConfigError reports a malformed configuration value. It is fatal and always
// surfaces before any document is processed.
type ConfigError struct {
	CheckID string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error for check %s: %v", e.CheckID, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// resolvedCheck pairs an enabled check instance with its effective severity
// and settings for one engine build.
type resolvedCheck struct {
	chk      check.Check
	severity check.Severity
	settings check.Settings
}

// resolveChecks determines the enabled-check set and per-check configuration.
// Resolution order, later overrides earlier:
//
//  1. global policy (enable-all / enable-none)
//  2. category include/exclude lists
//  3. explicit per-id include/exclude lists
//  4. the per-check block's own enabled field
//
// Option blocks are validated here for checks that declare typed options, so
// a malformed value fails engine construction instead of a lint pass.
func resolveChecks(instances []check.Check, cfg *config.Config) ([]resolvedCheck, error) {
	resolved := make([]resolvedCheck, 0, len(instances))

	for _, c := range instances {
		if !checkEnabled(c, cfg) {
			continue
		}

		rc := resolvedCheck{
			chk:      c,
			severity: c.DefaultSeverity(),
			settings: check.Settings{},
		}

		if cfg != nil {
			if block, ok := cfg.CheckBlock(c.ID()); ok {
				if block.Severity != nil {
					rc.severity = check.Severity(*block.Severity)
				}
				rc.settings = check.NewSettings(block.Options)
			}
		}

		if configurable, ok := c.(check.Configurable); ok && len(rc.settings) > 0 {
			if err := configurable.ValidateSettings(rc.settings); err != nil {
				return nil, &ConfigError{CheckID: c.ID(), Err: err}
			}
		}

		resolved = append(resolved, rc)
	}

	return resolved, nil
}

// checkEnabled applies the enablement precedence for one check.
func checkEnabled(c check.Check, cfg *config.Config) bool {
	if cfg == nil {
		return true
	}

	enabled := cfg.Policy != config.PolicyEnableNone

	// Category lists.
	cat := string(c.Metadata().Category)
	if slices.Contains(cfg.EnableCategories, cat) {
		enabled = true
	}
	if slices.Contains(cfg.DisableCategories, cat) {
		enabled = false
	}

	// Explicit id lists override categories; disable is applied last.
	if slices.Contains(cfg.Enable, c.ID()) {
		enabled = true
	}
	if slices.Contains(cfg.Disable, c.ID()) {
		enabled = false
	}

	// The per-check block is the most explicit signal of all.
	if block, ok := cfg.CheckBlock(c.ID()); ok && block.Enabled != nil {
		enabled = *block.Enabled
	}

	return enabled
}
