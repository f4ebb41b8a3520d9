// Package registry activates content types against a host runtime. It
// defers each registration to the host's init phase, then registers the
// content type, withdraws the features it does not declare, and
// registers its taxonomies.
package registry

import (
	"slices"
	"sync"

	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// Registry implements types.Registry.
type Registry struct {
	host      types.Host
	scheduler types.Scheduler

	mu           sync.RWMutex
	contentTypes []types.ContentType
}

// New returns a Registry that schedules activations on scheduler and
// registers into host.
func New(host types.Host, scheduler types.Scheduler) *Registry {
	return &Registry{
		host:      host,
		scheduler: scheduler,
	}
}

// Register schedules ct for activation at types.PhaseInit. Registering
// the same content type twice activates it twice.
func (r *Registry) Register(ct types.ContentType) {
	r.scheduler.ScheduleOnce(types.PhaseInit, func() error {
		return r.activate(ct)
	})
}

// All returns the content types activated so far, in activation order.
func (r *Registry) All() []types.ContentType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.contentTypes)
}

// activate registers ct and its taxonomies. The first host error stops
// activation and ct is not recorded.
func (r *Registry) activate(ct types.ContentType) error {
	key := ct.Key()

	payload := ContentTypePayload(ct, AttachmentTask(r.host, ct))
	if err := r.host.RegisterContentType(key, payload); err != nil {
		return err
	}

	for _, feature := range UnsupportedFeatures(ct.Features()) {
		if err := r.host.RemoveContentTypeFeature(key, feature); err != nil {
			return err
		}
	}

	for tx := range ct.Taxonomies().All() {
		if err := r.host.RegisterTaxonomy(tx.Key(), key, TaxonomyPayload(tx)); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.contentTypes = append(r.contentTypes, ct)
	r.mu.Unlock()

	return nil
}
