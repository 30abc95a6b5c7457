// Package engine composes providers of checks into a registry and runs lint
// passes over documents. A Registry is an explicit value constructed by the
// caller and threaded through; there is no ambient global registry.
package engine

import "github.com/booklint/booklint/pkg/check"

// Provider is a named, versioned bundle of checks registered together.
//
// Checks must return fresh check instances on every call, so per-run check
// state (such as a cross-file lookup cache) is never shared across unrelated
// engine builds.
type Provider interface {
	// ID is the unique provider identifier (e.g. "standard").
	ID() string

	// Version is the provider's semantic version.
	Version() string

	// Description summarizes what the provider's checks cover.
	Description() string

	// CheckIDs lists the check ids this provider contributes, in the order
	// they are registered.
	CheckIDs() []string

	// Checks instantiates the provider's checks. The returned instances
	// must correspond one-to-one, in order, with CheckIDs.
	Checks() []check.Check
}

// StaticProvider is a Provider built from a list of check constructors.
// It is the common way concrete check packages package themselves.
type StaticProvider struct {
	id          string
	version     string
	description string
	factories   []func() check.Check
	ids         []string
}

// NewStaticProvider builds a provider from constructors. The id list is
// derived by instantiating each constructor once.
func NewStaticProvider(id, version, description string, factories ...func() check.Check) *StaticProvider {
	ids := make([]string, len(factories))
	for i, f := range factories {
		ids[i] = f().ID()
	}
	return &StaticProvider{
		id:          id,
		version:     version,
		description: description,
		factories:   factories,
		ids:         ids,
	}
}

// ID returns the provider identifier.
func (p *StaticProvider) ID() string { return p.id }

// Version returns the provider's semantic version.
func (p *StaticProvider) Version() string { return p.version }

// Description summarizes the provider.
func (p *StaticProvider) Description() string { return p.description }

// CheckIDs lists the contributed check ids in registration order.
func (p *StaticProvider) CheckIDs() []string {
	out := make([]string, len(p.ids))
	copy(out, p.ids)
	return out
}

// Checks instantiates fresh check instances.
func (p *StaticProvider) Checks() []check.Check {
	out := make([]check.Check, len(p.factories))
	for i, f := range p.factories {
		out[i] = f()
	}
	return out
}
