package registry

import (
	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

type fakeContentType struct {
	*types.ContentTypeBase
}

func newFakeContentType(key string, opts types.ContentTypeOptions) *fakeContentType {
	return &fakeContentType{types.NewContentTypeBase(key, opts)}
}

func (*fakeContentType) Description() string { return "Custom content" }
func (*fakeContentType) Labels() map[string]string {
	return map[string]string{"name": "Customs"}
}

type fakeTaxonomy struct {
	*types.TaxonomyBase
}

func newFakeTaxonomy(key string) *fakeTaxonomy {
	return &fakeTaxonomy{types.NewTaxonomyBase(key, types.DefaultTaxonomyOptions())}
}

func (*fakeTaxonomy) Description() string       { return "Classification" }
func (*fakeTaxonomy) Labels() map[string]string { return map[string]string{"name": "Groups"} }

type fakePanel struct {
	*types.PanelBase
	rendered []types.Item
}

func newFakePanel(id, title, context, priority string) *fakePanel {
	return &fakePanel{PanelBase: types.NewPanelBase(id, title, types.PanelOptions{Context: context, Priority: priority})}
}

func (p *fakePanel) Render(item types.Item) string {
	p.rendered = append(p.rendered, item)
	return "<p>" + p.ID() + ":" + item.ID + "</p>"
}

type contentTypeCall struct {
	key     string
	payload types.Payload
}

type featureCall struct {
	key     string
	feature string
}

type taxonomyCall struct {
	key            string
	contentTypeKey string
	payload        types.Payload
}

// spyHost records every call made to it. Errors set on it are returned
// from the matching method.
type spyHost struct {
	order        []string
	contentTypes []contentTypeCall
	removals     []featureCall
	taxonomies   []taxonomyCall
	panels       []types.PanelRegistration

	contentTypeErr error
	removalErr     error
	taxonomyErr    error
	panelErr       error
}

func (h *spyHost) RegisterContentType(key string, payload types.Payload) error {
	h.order = append(h.order, "content_type:"+key)
	h.contentTypes = append(h.contentTypes, contentTypeCall{key, payload})
	return h.contentTypeErr
}

func (h *spyHost) RemoveContentTypeFeature(key, feature string) error {
	h.order = append(h.order, "remove:"+feature)
	h.removals = append(h.removals, featureCall{key, feature})
	return h.removalErr
}

func (h *spyHost) RegisterTaxonomy(key, contentTypeKey string, payload types.Payload) error {
	h.order = append(h.order, "taxonomy:"+key)
	h.taxonomies = append(h.taxonomies, taxonomyCall{key, contentTypeKey, payload})
	return h.taxonomyErr
}

func (h *spyHost) AddPanel(panel types.PanelRegistration) error {
	h.panels = append(h.panels, panel)
	return h.panelErr
}
