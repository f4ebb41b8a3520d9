package registry

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contenttypes/internal/host"
	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

func newTestRegistry() (*Registry, *spyHost, *host.Hooks) {
	h := &spyHost{}
	hooks := host.NewHooks(nil)
	return New(h, hooks), h, hooks
}

func fireInit(t *testing.T, hooks *host.Hooks) {
	t.Helper()
	require.NoError(t, hooks.Fire(context.Background(), types.PhaseInit))
}

func TestRegistry_EmptyByDefault(t *testing.T) {
	r, _, _ := newTestRegistry()
	assert.Empty(t, r.All())
}

func TestRegistry_RegisterDefersToInit(t *testing.T) {
	r, h, hooks := newTestRegistry()

	r.Register(newFakeContentType("custom", types.DefaultContentTypeOptions()))

	assert.Equal(t, 1, hooks.Pending(types.PhaseInit))
	assert.Empty(t, r.All(), "nothing is activated before init")
	assert.Empty(t, h.contentTypes, "the host is not called before init")
}

func TestRegistry_ActivatesExactlyOnce(t *testing.T) {
	r, h, hooks := newTestRegistry()
	ct := newFakeContentType("custom", types.DefaultContentTypeOptions())

	r.Register(ct)
	fireInit(t, hooks)
	fireInit(t, hooks)

	require.Len(t, r.All(), 1)
	assert.Same(t, ct, r.All()[0])
	assert.Len(t, h.contentTypes, 1)
	assert.Equal(t, "custom", h.contentTypes[0].key)
}

func TestRegistry_RegisterTwiceActivatesTwice(t *testing.T) {
	r, h, hooks := newTestRegistry()
	ct := newFakeContentType("custom", types.DefaultContentTypeOptions())

	r.Register(ct)
	r.Register(ct)
	fireInit(t, hooks)

	assert.Len(t, r.All(), 2)
	assert.Len(t, h.contentTypes, 2)
}

func TestRegistry_ActivatesInRegistrationOrder(t *testing.T) {
	r, h, hooks := newTestRegistry()
	first := newFakeContentType("first", types.DefaultContentTypeOptions())
	second := newFakeContentType("second", types.DefaultContentTypeOptions())

	r.Register(first)
	r.Register(second)
	fireInit(t, hooks)

	require.Len(t, h.contentTypes, 2)
	assert.Equal(t, "first", h.contentTypes[0].key)
	assert.Equal(t, "second", h.contentTypes[1].key)
	assert.Equal(t, []types.ContentType{first, second}, r.All())
}

func TestRegistry_AllReturnsSnapshot(t *testing.T) {
	r, _, hooks := newTestRegistry()
	r.Register(newFakeContentType("custom", types.DefaultContentTypeOptions()))
	fireInit(t, hooks)

	all := r.All()
	all[0] = nil

	assert.NotNil(t, r.All()[0])
}

func TestRegistry_PayloadHasEveryField(t *testing.T) {
	r, h, hooks := newTestRegistry()
	r.Register(newFakeContentType("custom", types.DefaultContentTypeOptions()))
	fireInit(t, hooks)

	require.Len(t, h.contentTypes, 1)
	payload := h.contentTypes[0].payload

	fields := []string{
		"description", "labels", "public", "hierarchical", "exclude_from_search",
		"publicly_queryable", "show_ui", "show_in_nav_menus", "show_in_admin_bar",
		"show_in_rest", "map_meta_cap", "can_export", "delete_with_user",
		"has_archive", "show_in_menu", "rest_base", "rest_controller_class",
		"menu_position", "menu_icon", "capability_type", "capabilities",
		"supports", "taxonomies", "rewrite", "query_var", "template",
		"template_lock", "register_meta_box_cb",
	}
	for _, field := range fields {
		assert.Contains(t, payload, field)
	}
	assert.Len(t, payload, len(fields))
	assert.IsType(t, types.AttachFunc(nil), payload[FieldRegisterMetaBoxCB])
}

func TestRegistry_RemovesUndeclaredFeatures(t *testing.T) {
	r, h, hooks := newTestRegistry()

	opts := types.DefaultContentTypeOptions()
	opts.Supports = []string{
		"title", "editor", "excerpt", "author", "trackbacks",
		"thumbnail", "custom-fields", "comments", "revisions",
	}
	r.Register(newFakeContentType("custom", opts))
	fireInit(t, hooks)

	assert.Equal(t, []featureCall{
		{"custom", "page-attributes"},
		{"custom", "post-formats"},
	}, h.removals)
}

func TestRegistry_UnknownFeatureIsKept(t *testing.T) {
	r, h, hooks := newTestRegistry()

	opts := types.DefaultContentTypeOptions()
	opts.Supports = append(AvailableFeatures(), "custom-feature")
	r.Register(newFakeContentType("custom", opts))
	fireInit(t, hooks)

	assert.Empty(t, h.removals)
	assert.Contains(t, h.contentTypes[0].payload[FieldSupports], "custom-feature")
}

func TestRegistry_RegistersTaxonomies(t *testing.T) {
	r, h, hooks := newTestRegistry()

	a := newFakeTaxonomy("genre")
	b := newFakeTaxonomy("mood")
	ct := newFakeContentType("custom", types.DefaultContentTypeOptions())
	ct.Taxonomies().Add(a).Add(b)

	r.Register(ct)
	fireInit(t, hooks)

	require.Len(t, h.contentTypes, 1)
	assert.Equal(t, []string{"genre", "mood"}, h.contentTypes[0].payload[FieldTaxonomies])

	require.Len(t, h.taxonomies, 2)
	assert.Equal(t, "genre", h.taxonomies[0].key)
	assert.Equal(t, "mood", h.taxonomies[1].key)
	for _, call := range h.taxonomies {
		assert.Equal(t, "custom", call.contentTypeKey)
	}
}

func TestRegistry_ActivationStepOrder(t *testing.T) {
	r, h, hooks := newTestRegistry()

	opts := types.DefaultContentTypeOptions()
	opts.Supports = AvailableFeatures()[:10]
	ct := newFakeContentType("custom", opts)
	ct.Taxonomies().Add(newFakeTaxonomy("genre"))

	r.Register(ct)
	fireInit(t, hooks)

	assert.Equal(t, []string{
		"content_type:custom",
		"remove:post-formats",
		"taxonomy:genre",
	}, h.order)
}

func TestRegistry_EmptyCollectionsAreValid(t *testing.T) {
	r, h, hooks := newTestRegistry()
	ct := newFakeContentType("custom", types.DefaultContentTypeOptions())

	r.Register(ct)
	fireInit(t, hooks)

	assert.Empty(t, h.taxonomies)
	assert.Equal(t, []string{}, h.contentTypes[0].payload[FieldTaxonomies])

	attach := h.contentTypes[0].payload[FieldRegisterMetaBoxCB].(types.AttachFunc)
	require.NoError(t, attach(types.Item{ID: "1"}))
	assert.Empty(t, h.panels)
}

func TestRegistry_PanelCallbackAddsPanels(t *testing.T) {
	r, h, hooks := newTestRegistry()

	p1 := newFakePanel("summary", "Summary", "side", "high")
	p2 := newFakePanel("notes", "Notes", "advanced", "default")
	ct := newFakeContentType("custom", types.DefaultContentTypeOptions())
	ct.Panels().Add(p1).Add(p2)

	r.Register(ct)
	fireInit(t, hooks)
	assert.Empty(t, h.panels, "panels are added per item, not at activation")

	attach := h.contentTypes[0].payload[FieldRegisterMetaBoxCB].(types.AttachFunc)
	item := types.Item{ID: "42", ContentType: "custom"}
	require.NoError(t, attach(item))

	require.Len(t, h.panels, 2)
	assert.Equal(t, "summary", h.panels[0].ID)
	assert.Equal(t, "Summary", h.panels[0].Title)
	assert.Empty(t, h.panels[0].Screen)
	assert.Equal(t, "side", h.panels[0].Context)
	assert.Equal(t, "high", h.panels[0].Priority)
	assert.Equal(t, "notes", h.panels[1].ID)
	assert.Equal(t, "advanced", h.panels[1].Context)
	assert.Equal(t, "default", h.panels[1].Priority)

	assert.Empty(t, p1.rendered, "rendering waits for the trampoline")

	var buf bytes.Buffer
	require.NoError(t, h.panels[0].Render(&buf))
	assert.Equal(t, "<p>summary:42</p>", buf.String())
	assert.Equal(t, []types.Item{item}, p1.rendered)
}

func TestRegistry_PanelCallbackRunsPerItem(t *testing.T) {
	r, h, hooks := newTestRegistry()
	ct := newFakeContentType("custom", types.DefaultContentTypeOptions())
	ct.Panels().Add(newFakePanel("summary", "Summary", "side", "high"))

	r.Register(ct)
	fireInit(t, hooks)

	attach := h.contentTypes[0].payload[FieldRegisterMetaBoxCB].(types.AttachFunc)
	require.NoError(t, attach(types.Item{ID: "1"}))
	require.NoError(t, attach(types.Item{ID: "2"}))

	require.Len(t, h.panels, 2)

	var first, second bytes.Buffer
	require.NoError(t, h.panels[0].Render(&first))
	require.NoError(t, h.panels[1].Render(&second))
	assert.Equal(t, "<p>summary:1</p>", first.String())
	assert.Equal(t, "<p>summary:2</p>", second.String())
}

func TestRegistry_HostErrorsPropagate(t *testing.T) {
	errRejected := errors.New("rejected")

	tests := []struct {
		name      string
		configure func(h *spyHost)
		wantOrder []string
	}{
		{
			name:      "content type registration",
			configure: func(h *spyHost) { h.contentTypeErr = errRejected },
			wantOrder: []string{"content_type:custom"},
		},
		{
			name:      "feature removal",
			configure: func(h *spyHost) { h.removalErr = errRejected },
			wantOrder: []string{"content_type:custom", "remove:excerpt"},
		},
		{
			name:      "taxonomy registration",
			configure: func(h *spyHost) { h.taxonomyErr = errRejected },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, h, hooks := newTestRegistry()
			tt.configure(h)

			ct := newFakeContentType("custom", types.DefaultContentTypeOptions())
			ct.Taxonomies().Add(newFakeTaxonomy("genre")).Add(newFakeTaxonomy("mood"))
			r.Register(ct)

			err := hooks.Fire(context.Background(), types.PhaseInit)
			assert.Same(t, errRejected, err, "host errors are returned unchanged")
			assert.Empty(t, r.All(), "a failed activation is not recorded")
			if tt.wantOrder != nil {
				assert.Equal(t, tt.wantOrder, h.order)
			} else {
				assert.Len(t, h.taxonomies, 1, "activation stops at the first failure")
			}
		})
	}
}

func TestRegistry_PanelErrorPropagates(t *testing.T) {
	errRejected := errors.New("rejected")
	r, h, hooks := newTestRegistry()
	h.panelErr = errRejected

	ct := newFakeContentType("custom", types.DefaultContentTypeOptions())
	ct.Panels().Add(newFakePanel("a", "A", "side", "high")).Add(newFakePanel("b", "B", "side", "high"))
	r.Register(ct)
	fireInit(t, hooks)

	attach := h.contentTypes[0].payload[FieldRegisterMetaBoxCB].(types.AttachFunc)
	assert.ErrorIs(t, attach(types.Item{}), errRejected)
	assert.Len(t, h.panels, 1)
}

func TestRegistry_ActivatesAgainstRuntime(t *testing.T) {
	rt, err := host.NewRuntime(host.Options{})
	require.NoError(t, err)
	hooks := host.NewHooks(nil)
	r := New(rt, hooks)

	genre := newFakeTaxonomy("genre")
	article := newFakeContentType("article", types.DefaultContentTypeOptions())
	article.Taxonomies().Add(genre)
	article.Panels().Add(newFakePanel("summary", "Summary", "side", "high"))
	review := newFakeContentType("review", types.DefaultContentTypeOptions())
	review.Taxonomies().Add(genre)

	r.Register(article)
	r.Register(review)
	fireInit(t, hooks)

	assert.True(t, rt.Supports("article", "title"))
	assert.True(t, rt.Supports("article", "editor"))
	assert.False(t, rt.Supports("article", "thumbnail"))

	tx, ok := rt.Taxonomy("genre")
	require.True(t, ok)
	assert.Equal(t, []string{"article", "review"}, tx.ContentTypes)

	panels, err := rt.EditItem(types.Item{ID: "7", ContentType: "article"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, host.RenderPanels(&buf, panels))
	assert.Contains(t, buf.String(), "<p>summary:7</p>")
}

func TestRegistry_InvalidKeySurfacesFromHost(t *testing.T) {
	rt, err := host.NewRuntime(host.Options{})
	require.NoError(t, err)
	hooks := host.NewHooks(nil)
	r := New(rt, hooks)

	r.Register(newFakeContentType("", types.DefaultContentTypeOptions()))

	err = hooks.Fire(context.Background(), types.PhaseInit)
	assert.ErrorIs(t, err, host.ErrInvalidKey)
	assert.Empty(t, r.All())
}
