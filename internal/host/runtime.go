package host

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// Payload fields the runtime reads back.
const (
	fieldSupports      = "supports"
	fieldPanelCallback = "register_meta_box_cb"
)

// Runtime errors.
var (
	ErrInvalidKey          = errors.New("invalid key")
	ErrContentTypeNotFound = errors.New("content type not registered")
	ErrNotEditing          = errors.New("no item is being edited")
	ErrNoPanelCallback     = errors.New("content type has no panel callback")
)

// validKey matches the characters the runtime accepts in a key.
var validKey = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Panel display order within an edit screen.
var (
	contextOrder  = []string{"normal", "advanced", "side"}
	priorityOrder = []string{"high", "core", "default", "low"}
)

// Journal records accepted registrations outside the runtime. It is
// called with the runtime locked and must not call back into it.
type Journal interface {
	SaveContentType(key string, payload types.Payload) error
	SaveFeatureRemoval(key, feature string) error
	SaveTaxonomy(key, contentTypeKey string, payload types.Payload) error
}

// Options configures a Runtime.
type Options struct {
	// DefaultFeatures are supported by every content type before its own
	// supports list is applied. Nil means every feature the host knows.
	DefaultFeatures []string

	// Journal, when set, receives every accepted registration.
	Journal Journal

	// Registerer, when set, receives the runtime's counters.
	Registerer prometheus.Registerer

	Logger *slog.Logger
}

// ContentTypeRecord is a registered content type as the runtime sees it.
type ContentTypeRecord struct {
	Key      string
	Payload  types.Payload
	Features []string
}

// TaxonomyRecord is a registered taxonomy and the content types it is
// attached to.
type TaxonomyRecord struct {
	Key          string
	ContentTypes []string
	Payload      types.Payload
}

// Runtime is an in-memory types.Host.
type Runtime struct {
	mu sync.Mutex

	// editMu serializes edit screens; one item is edited at a time.
	editMu sync.Mutex

	defaultFeatures []string
	journal         Journal
	metrics         *metrics
	logger          *slog.Logger

	contentTypes  map[string]*ContentTypeRecord
	contentOrder  []string
	taxonomies    map[string]*TaxonomyRecord
	taxonomyOrder []string
	editing       bool
	editingPanels []types.PanelRegistration
}

// defaultHostFeatures is what a content type supports before removals.
var defaultHostFeatures = []string{
	"title",
	"editor",
	"excerpt",
	"author",
	"trackbacks",
	"thumbnail",
	"custom-fields",
	"comments",
	"revisions",
	"page-attributes",
	"post-formats",
}

// NewRuntime creates an empty runtime.
func NewRuntime(opts Options) (*Runtime, error) {
	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	features := opts.DefaultFeatures
	if features == nil {
		features = defaultHostFeatures
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runtime{
		defaultFeatures: slices.Clone(features),
		journal:         opts.Journal,
		metrics:         m,
		logger:          logger,
		contentTypes:    make(map[string]*ContentTypeRecord),
		taxonomies:      make(map[string]*TaxonomyRecord),
	}, nil
}

// RegisterContentType records a content type. Registering an existing key
// replaces the earlier record. The record is kept only once the journal,
// if any, has accepted it.
func (r *Runtime) RegisterContentType(key string, payload types.Payload) error {
	if err := checkKey(key, types.MaxContentTypeKeyLength); err != nil {
		r.metrics.reject(kindContentType)
		return fmt.Errorf("content type: %w", err)
	}

	features := slices.Clone(r.defaultFeatures)
	if supports, ok := payload[fieldSupports].([]string); ok {
		for _, f := range supports {
			if !slices.Contains(features, f) {
				features = append(features, f)
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.journal != nil {
		if err := r.journal.SaveContentType(key, payload); err != nil {
			r.metrics.reject(kindContentType)
			return fmt.Errorf("journal content type %q: %w", key, err)
		}
	}

	if _, exists := r.contentTypes[key]; !exists {
		r.contentOrder = append(r.contentOrder, key)
	}
	r.contentTypes[key] = &ContentTypeRecord{Key: key, Payload: payload, Features: features}

	r.metrics.accept(kindContentType)
	r.logger.Debug("content type registered", "key", key)
	return nil
}

// RemoveContentTypeFeature withdraws feature from a registered content
// type. Removing a feature that is not supported is a no-op.
func (r *Runtime) RemoveContentTypeFeature(key, feature string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.contentTypes[key]
	if !ok {
		r.metrics.reject(kindFeatureRemoval)
		return fmt.Errorf("%w: %q", ErrContentTypeNotFound, key)
	}

	if r.journal != nil {
		if err := r.journal.SaveFeatureRemoval(key, feature); err != nil {
			r.metrics.reject(kindFeatureRemoval)
			return fmt.Errorf("journal feature removal %q/%q: %w", key, feature, err)
		}
	}

	rec.Features = slices.DeleteFunc(rec.Features, func(f string) bool { return f == feature })

	r.metrics.accept(kindFeatureRemoval)
	r.logger.Debug("feature removed", "key", key, "feature", feature)
	return nil
}

// RegisterTaxonomy records a taxonomy for contentTypeKey. Registering the
// same taxonomy for another content type extends its associations; the
// latest payload wins.
func (r *Runtime) RegisterTaxonomy(key, contentTypeKey string, payload types.Payload) error {
	if err := checkKey(key, types.MaxTaxonomyKeyLength); err != nil {
		r.metrics.reject(kindTaxonomy)
		return fmt.Errorf("taxonomy: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.journal != nil {
		if err := r.journal.SaveTaxonomy(key, contentTypeKey, payload); err != nil {
			r.metrics.reject(kindTaxonomy)
			return fmt.Errorf("journal taxonomy %q: %w", key, err)
		}
	}

	rec, ok := r.taxonomies[key]
	if !ok {
		rec = &TaxonomyRecord{Key: key}
		r.taxonomies[key] = rec
		r.taxonomyOrder = append(r.taxonomyOrder, key)
	}
	if !slices.Contains(rec.ContentTypes, contentTypeKey) {
		rec.ContentTypes = append(rec.ContentTypes, contentTypeKey)
	}
	rec.Payload = payload

	r.metrics.accept(kindTaxonomy)
	r.logger.Debug("taxonomy registered", "key", key, "content_type", contentTypeKey)
	return nil
}

// AddPanel adds a panel to the item being edited. It fails outside
// EditItem.
func (r *Runtime) AddPanel(panel types.PanelRegistration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.editing {
		r.metrics.reject(kindPanel)
		return ErrNotEditing
	}
	r.editingPanels = append(r.editingPanels, panel)
	r.metrics.accept(kindPanel)
	return nil
}

// EditItem opens the edit screen of item: it calls the panel callback of
// the item's content type and returns the panels it added in display
// order (by context, then priority, then insertion). Concurrent calls
// wait for each other, so every call sees only its own panels. The
// callback must not call EditItem.
func (r *Runtime) EditItem(item types.Item) ([]types.PanelRegistration, error) {
	r.editMu.Lock()
	defer r.editMu.Unlock()

	r.mu.Lock()
	rec, ok := r.contentTypes[item.ContentType]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %q", ErrContentTypeNotFound, item.ContentType)
	}
	attach, ok := rec.Payload[fieldPanelCallback].(types.AttachFunc)
	if !ok || attach == nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %q", ErrNoPanelCallback, item.ContentType)
	}
	r.editing = true
	r.editingPanels = nil
	r.mu.Unlock()

	err := attach(item)

	r.mu.Lock()
	panels := r.editingPanels
	r.editing = false
	r.editingPanels = nil
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(panels, func(a, b types.PanelRegistration) int {
		if c := cmp.Compare(rank(contextOrder, a.Context), rank(contextOrder, b.Context)); c != 0 {
			return c
		}
		return cmp.Compare(rank(priorityOrder, a.Priority), rank(priorityOrder, b.Priority))
	})

	r.logger.Debug("item edited", "item", item.ID, "content_type", item.ContentType, "panels", len(panels))
	return panels, nil
}

// RenderPanels writes each panel's title line followed by its body.
func RenderPanels(w io.Writer, panels []types.PanelRegistration) error {
	for _, p := range panels {
		if _, err := fmt.Fprintf(w, "== %s [%s/%s] ==\n", p.Title, p.Context, p.Priority); err != nil {
			return err
		}
		if err := p.Render(w); err != nil {
			return fmt.Errorf("render panel %q: %w", p.ID, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// ContentType returns the record for key.
func (r *Runtime) ContentType(key string) (ContentTypeRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.contentTypes[key]
	if !ok {
		return ContentTypeRecord{}, false
	}
	return copyContentType(rec), true
}

// ContentTypes returns every registered content type in first
// registration order.
func (r *Runtime) ContentTypes() []ContentTypeRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ContentTypeRecord, 0, len(r.contentOrder))
	for _, key := range r.contentOrder {
		out = append(out, copyContentType(r.contentTypes[key]))
	}
	return out
}

// Supports reports whether the content type key supports feature.
func (r *Runtime) Supports(key, feature string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.contentTypes[key]
	return ok && slices.Contains(rec.Features, feature)
}

// Taxonomy returns the record for key.
func (r *Runtime) Taxonomy(key string) (TaxonomyRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.taxonomies[key]
	if !ok {
		return TaxonomyRecord{}, false
	}
	return copyTaxonomy(rec), true
}

// Taxonomies returns every registered taxonomy in first registration
// order.
func (r *Runtime) Taxonomies() []TaxonomyRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]TaxonomyRecord, 0, len(r.taxonomyOrder))
	for _, key := range r.taxonomyOrder {
		out = append(out, copyTaxonomy(r.taxonomies[key]))
	}
	return out
}

func checkKey(key string, maxLen int) error {
	if key == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	if len(key) > maxLen {
		return fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidKey, key, maxLen)
	}
	if !validKey.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func rank(order []string, v string) int {
	if i := slices.Index(order, v); i >= 0 {
		return i
	}
	return len(order)
}

func copyContentType(rec *ContentTypeRecord) ContentTypeRecord {
	out := *rec
	out.Features = slices.Clone(rec.Features)
	return out
}

func copyTaxonomy(rec *TaxonomyRecord) TaxonomyRecord {
	out := *rec
	out.ContentTypes = slices.Clone(rec.ContentTypes)
	return out
}
