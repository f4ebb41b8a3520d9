// Package registry provides the public API for activating content types.
// This package exposes the constructor while keeping the activation
// pipeline internal.
package registry

import (
	"github.com/mesh-intelligence/contenttypes/internal/registry"
	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// AvailableFeatures returns every feature the host knows, in the order
// unsupported ones are removed. The slice is a fresh copy.
func AvailableFeatures() []string {
	return registry.AvailableFeatures()
}

// New creates a registry that defers activations to scheduler and
// registers into host.
//
// Example:
//
//	reg := registry.New(runtime, scheduler)
//	reg.Register(NewArticle())
//	// ... the host reaches types.PhaseInit ...
//	activated := reg.All()
func New(h types.Host, scheduler types.Scheduler) types.Registry {
	return registry.New(h, scheduler)
}
