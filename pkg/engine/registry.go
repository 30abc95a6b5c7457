package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/config"
)

// Construction errors. Both are fatal and surface before any linting.
var (
	// ErrDuplicateProvider indicates a provider id was registered twice.
	ErrDuplicateProvider = errors.New("duplicate provider id")

	// ErrDuplicateCheck indicates two providers contribute the same check id.
	ErrDuplicateCheck = errors.New("duplicate check id")
)

// Registry composes an arbitrary set of providers into one check catalogue.
// Registration order is preserved for stable default check ordering, and a
// registry may build many engines with different configurations without
// re-registering checks.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
	byCheck   map[string]Provider // check id -> contributing provider
	order     []string            // check ids in registration order
	catalogue map[string]check.Check
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byCheck:   make(map[string]Provider),
		catalogue: make(map[string]check.Check),
	}
}

// RegisterProvider adds a provider and its checks to the catalogue.
//
// Registration is all-or-nothing: on ErrDuplicateProvider or
// ErrDuplicateCheck the registry is left unchanged, with no partial
// registration of the provider's other checks.
func (r *Registry) RegisterProvider(p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.providers {
		if existing.ID() == p.ID() {
			return fmt.Errorf("%w: %q", ErrDuplicateProvider, p.ID())
		}
	}

	instances := p.Checks()

	// Validate every contributed id before mutating anything.
	seen := make(map[string]bool, len(instances))
	for _, c := range instances {
		id := c.ID()
		if seen[id] {
			return fmt.Errorf("%w: %q contributed twice by provider %q",
				ErrDuplicateCheck, id, p.ID())
		}
		seen[id] = true
		if owner, ok := r.byCheck[id]; ok {
			return fmt.Errorf("%w: %q already registered by provider %q",
				ErrDuplicateCheck, id, owner.ID())
		}
	}

	r.providers = append(r.providers, p)
	for _, c := range instances {
		r.byCheck[c.ID()] = p
		r.order = append(r.order, c.ID())
		r.catalogue[c.ID()] = c
	}

	return nil
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// CheckIDs returns every registered check id in registration order.
func (r *Registry) CheckIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// CheckByID returns the catalogue instance for introspection (metadata,
// descriptions). Catalogue instances are never used to run passes; engines
// get fresh instances from the contributing provider.
func (r *Registry) CheckByID(id string) (check.Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.catalogue[id]
	return c, ok
}

// ProviderOf returns the provider that contributed a check id.
func (r *Registry) ProviderOf(id string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byCheck[id]
	return p, ok
}

// NewEngine builds an immutable engine from this registry and a resolved
// configuration. A nil cfg means "all checks enabled, defaults only".
// Malformed option values for known keys are reported here, before any
// document is linted.
func (r *Registry) NewEngine(cfg *config.Config) (*Engine, error) {
	r.mu.RLock()
	instances := r.freshInstances()
	r.mu.RUnlock()

	resolved, err := resolveChecks(instances, cfg)
	if err != nil {
		return nil, err
	}

	return &Engine{
		registry: r,
		cfg:      cfg,
		resolved: resolved,
	}, nil
}

// freshInstances instantiates every registered check from its provider,
// preserving registration order. Callers must hold at least a read lock.
func (r *Registry) freshInstances() []check.Check {
	instances := make([]check.Check, 0, len(r.order))
	for _, p := range r.providers {
		instances = append(instances, p.Checks()...)
	}
	return instances
}
