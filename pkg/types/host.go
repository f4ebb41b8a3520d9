package types

import (
	"encoding/json"
	"io"
)

// Phase names a point in the host's lifecycle.
type Phase string

// PhaseInit is the phase at which content types are activated.
const PhaseInit Phase = "init"

// Task is a deferred unit of work. Its error is returned to whatever
// fires the phase.
type Task func() error

// Scheduler defers tasks to a later lifecycle phase.
type Scheduler interface {
	// ScheduleOnce queues task to run exactly once when phase is reached.
	// Tasks queued for the same phase run in the order they were queued.
	ScheduleOnce(phase Phase, task Task)
}

// Payload is a configuration map keyed by the host's field names.
type Payload map[string]any

// MarshalJSON encodes the payload without its callback fields.
func (p Payload) MarshalJSON() ([]byte, error) {
	static := make(map[string]any, len(p))
	for k, v := range p {
		if _, ok := v.(AttachFunc); ok {
			continue
		}
		static[k] = v
	}
	return json.Marshal(static)
}

// Trampoline writes a panel body to the host's output stream.
type Trampoline func(w io.Writer) error

// AttachFunc adds panels to the edit screen of one item. The host calls
// it once per item being edited.
type AttachFunc func(item Item) error

// PanelRegistration is one panel handed to the host for a single item.
// An empty Screen means the current screen.
type PanelRegistration struct {
	ID       string
	Title    string
	Render   Trampoline
	Screen   string
	Context  string
	Priority string
}

// Host is the runtime content types are registered into.
type Host interface {
	// RegisterContentType registers a content type under key.
	RegisterContentType(key string, payload Payload) error

	// RemoveContentTypeFeature withdraws feature from the content type key.
	RemoveContentTypeFeature(key, feature string) error

	// RegisterTaxonomy registers a taxonomy under key for the content type
	// contentTypeKey.
	RegisterTaxonomy(key, contentTypeKey string, payload Payload) error

	// AddPanel adds a panel to the item currently being edited.
	AddPanel(panel PanelRegistration) error
}

// Registry collects content types and activates them when the host
// reaches PhaseInit.
type Registry interface {
	// Register schedules activation of ct. It never fails; activation
	// errors surface from the scheduler.
	Register(ct ContentType)

	// All returns the content types activated so far, in activation order.
	All() []ContentType
}
