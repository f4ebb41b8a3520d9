// Package manifest builds content types, taxonomies and panels from a
// YAML declaration. Options are decoded on top of the package defaults,
// so a manifest only states what it changes.
//
// A manifest looks like:
//
//	taxonomies:
//	  - key: genre
//	    labels: {name: Genres}
//	    options: {hierarchical: true}
//	panels:
//	  - id: summary
//	    title: Summary
//	    context: side
//	    template: "<p>{{.Title}}</p>"
//	content_types:
//	  - key: article
//	    options: {public: true, has_archive: articles}
//	    taxonomies: [genre]
//	    panels: [summary]
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// Manifest errors.
var (
	ErrUnknownTaxonomy = errors.New("unknown taxonomy")
	ErrUnknownPanel    = errors.New("unknown panel")
	ErrDuplicate       = errors.New("duplicate declaration")
)

// ContentType is a content type declared in a manifest.
type ContentType struct {
	*types.ContentTypeBase
	description string
	labels      map[string]string
}

func (c *ContentType) Description() string       { return c.description }
func (c *ContentType) Labels() map[string]string { return c.labels }

// Taxonomy is a taxonomy declared in a manifest.
type Taxonomy struct {
	*types.TaxonomyBase
	description string
	labels      map[string]string
}

func (t *Taxonomy) Description() string       { return t.description }
func (t *Taxonomy) Labels() map[string]string { return t.labels }

// Panel is a panel whose body is a text/template executed with the item
// being edited.
type Panel struct {
	*types.PanelBase
	tmpl *template.Template
}

// Render executes the panel template for item. Output is not escaped;
// templates use the html function where they need it. A template that
// fails for item renders as an HTML comment naming the error.
func (p *Panel) Render(item types.Item) string {
	var b strings.Builder
	if err := p.tmpl.Execute(&b, item); err != nil {
		return fmt.Sprintf("<!-- panel %q: %s -->", p.ID(), strings.ReplaceAll(err.Error(), "--", "- -"))
	}
	return b.String()
}

// Manifest holds the declarations of one manifest, in file order.
type Manifest struct {
	ContentTypes []*ContentType
	Taxonomies   []*Taxonomy
	Panels       []*Panel
}

// RegisterAll registers every content type with r.
func (m *Manifest) RegisterAll(r types.Registry) {
	for _, ct := range m.ContentTypes {
		r.Register(ct)
	}
}

// ContentType returns the first content type declared with key.
func (m *Manifest) ContentType(key string) (*ContentType, bool) {
	for _, ct := range m.ContentTypes {
		if ct.Key() == key {
			return ct, true
		}
	}
	return nil, false
}

type document struct {
	ContentTypes []contentTypeDecl `yaml:"content_types"`
	Taxonomies   []taxonomyDecl    `yaml:"taxonomies"`
	Panels       []panelDecl       `yaml:"panels"`
}

type contentTypeDecl struct {
	Key         string            `yaml:"key"`
	Description string            `yaml:"description"`
	Labels      map[string]string `yaml:"labels"`
	Options     yaml.Node         `yaml:"options"`
	Taxonomies  []string          `yaml:"taxonomies"`
	Panels      []string          `yaml:"panels"`
}

type taxonomyDecl struct {
	Key         string            `yaml:"key"`
	Description string            `yaml:"description"`
	Labels      map[string]string `yaml:"labels"`
	Options     yaml.Node         `yaml:"options"`
}

type panelDecl struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Context  string `yaml:"context"`
	Priority string `yaml:"priority"`
	Template string `yaml:"template"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse builds the declarations in data. Content types that name the same
// taxonomy or panel share one instance of it.
func Parse(data []byte) (*Manifest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	m := &Manifest{}
	taxonomies := make(map[string]*Taxonomy)
	panels := make(map[string]*Panel)

	for _, d := range doc.Taxonomies {
		if _, ok := taxonomies[d.Key]; ok {
			return nil, fmt.Errorf("%w: taxonomy %q", ErrDuplicate, d.Key)
		}
		tx, err := buildTaxonomy(d)
		if err != nil {
			return nil, err
		}
		taxonomies[d.Key] = tx
		m.Taxonomies = append(m.Taxonomies, tx)
	}

	for _, d := range doc.Panels {
		if _, ok := panels[d.ID]; ok {
			return nil, fmt.Errorf("%w: panel %q", ErrDuplicate, d.ID)
		}
		p, err := buildPanel(d)
		if err != nil {
			return nil, err
		}
		panels[d.ID] = p
		m.Panels = append(m.Panels, p)
	}

	for _, d := range doc.ContentTypes {
		ct, err := buildContentType(d, taxonomies, panels)
		if err != nil {
			return nil, err
		}
		m.ContentTypes = append(m.ContentTypes, ct)
	}

	return m, nil
}

func buildTaxonomy(d taxonomyDecl) (*Taxonomy, error) {
	opts := types.DefaultTaxonomyOptions()
	if err := decodeOptions(&d.Options, &opts); err != nil {
		return nil, fmt.Errorf("taxonomy %q options: %w", d.Key, err)
	}
	return &Taxonomy{
		TaxonomyBase: types.NewTaxonomyBase(d.Key, opts),
		description:  d.Description,
		labels:       labelsOrEmpty(d.Labels),
	}, nil
}

func buildPanel(d panelDecl) (*Panel, error) {
	tmpl, err := template.New(d.ID).Parse(d.Template)
	if err != nil {
		return nil, fmt.Errorf("panel %q template: %w", d.ID, err)
	}
	// Executing against an empty item catches references to fields the
	// item does not have.
	if err := tmpl.Execute(io.Discard, types.Item{}); err != nil {
		return nil, fmt.Errorf("panel %q template: %w", d.ID, err)
	}

	opts := types.DefaultPanelOptions()
	if d.Context != "" {
		opts.Context = d.Context
	}
	if d.Priority != "" {
		opts.Priority = d.Priority
	}

	return &Panel{
		PanelBase: types.NewPanelBase(d.ID, d.Title, opts),
		tmpl:      tmpl,
	}, nil
}

func buildContentType(d contentTypeDecl, taxonomies map[string]*Taxonomy, panels map[string]*Panel) (*ContentType, error) {
	opts := types.DefaultContentTypeOptions()
	if err := decodeOptions(&d.Options, &opts); err != nil {
		return nil, fmt.Errorf("content type %q options: %w", d.Key, err)
	}

	ct := &ContentType{
		ContentTypeBase: types.NewContentTypeBase(d.Key, opts),
		description:     d.Description,
		labels:          labelsOrEmpty(d.Labels),
	}

	for _, key := range d.Taxonomies {
		tx, ok := taxonomies[key]
		if !ok {
			return nil, fmt.Errorf("content type %q: %w %q", d.Key, ErrUnknownTaxonomy, key)
		}
		ct.Taxonomies().Add(tx)
	}
	for _, id := range d.Panels {
		p, ok := panels[id]
		if !ok {
			return nil, fmt.Errorf("content type %q: %w %q", d.Key, ErrUnknownPanel, id)
		}
		ct.Panels().Add(p)
	}

	return ct, nil
}

// decodeOptions decodes node over out. An absent node leaves out as is.
func decodeOptions(node *yaml.Node, out any) error {
	if node.Kind == 0 {
		return nil
	}
	return node.Decode(out)
}

func labelsOrEmpty(labels map[string]string) map[string]string {
	if labels == nil {
		return map[string]string{}
	}
	return labels
}
