package cli

import (
	"fmt"

	"github.com/booklint/booklint/pkg/checks/mdbook"
	"github.com/booklint/booklint/pkg/checks/standard"
	"github.com/booklint/booklint/pkg/engine"
)

// newRegistry builds a registry with the built-in providers registered.
func newRegistry() (*engine.Registry, error) {
	registry := engine.NewRegistry()
	if err := registry.RegisterProvider(standard.Provider()); err != nil {
		return nil, fmt.Errorf("register standard provider: %w", err)
	}
	if err := registry.RegisterProvider(mdbook.Provider()); err != nil {
		return nil, fmt.Errorf("register mdbook provider: %w", err)
	}
	return registry, nil
}
