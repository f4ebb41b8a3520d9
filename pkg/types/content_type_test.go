package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeDefaults(t *testing.T) {
	ct := newTestContentType("post-type", DefaultContentTypeOptions())

	assert.Equal(t, "post-type", ct.Key())
	assert.False(t, ct.IsPublic())
	assert.False(t, ct.IsHierarchical())
	assert.False(t, ct.IsIncludedInSearch())
	assert.False(t, ct.IsPubliclyQueryable())
	assert.False(t, ct.IsShowingUI())
	assert.False(t, ct.IsVisibleInNavMenus())
	assert.False(t, ct.IsVisibleInAdminBar())
	assert.False(t, ct.IsIncludedInREST())
	assert.False(t, ct.UsesDefaultMetaCapabilities())
	assert.False(t, ct.CanBeExported())

	_, set := ct.DeleteWithUser()
	assert.False(t, set, "delete_with_user defers to the host by default")

	assert.True(t, ct.Archive().IsBool())
	assert.False(t, ct.Archive().Bool())
	assert.True(t, ct.MenuLocation().IsBool())
	assert.False(t, ct.MenuLocation().Bool())

	_, ok := ct.RESTBase()
	assert.False(t, ok)
	_, ok = ct.RESTControllerClass()
	assert.False(t, ok)
	_, ok = ct.MenuPosition()
	assert.False(t, ok)

	assert.Equal(t, "none", ct.MenuIcon())
	assert.Equal(t, [2]string{"post", "posts"}, ct.CapabilityNouns())
	assert.Empty(t, ct.Capabilities())
	assert.Equal(t, []string{"title", "editor"}, ct.Features())

	assert.True(t, ct.Rewrite().Bool())
	assert.True(t, ct.QueryVar().Bool())
	assert.Empty(t, ct.TemplateBlocks())
	assert.False(t, ct.TemplateLock().Bool())

	assert.NotNil(t, ct.Panels())
	assert.NotNil(t, ct.Taxonomies())
	assert.Zero(t, ct.Panels().Len())
	assert.Zero(t, ct.Taxonomies().Len())
}

func TestContentTypeOverrides(t *testing.T) {
	position := 5
	deleteWithUser := true

	opts := DefaultContentTypeOptions()
	opts.Public = true
	opts.ExcludeFromSearch = false
	opts.DeleteWithUser = &deleteWithUser
	opts.HasArchive = Value("articles")
	opts.ShowInMenu = Value("tools.php")
	opts.RESTBase = "articles"
	opts.RESTControllerClass = "Article_Controller"
	opts.MenuPosition = &position
	opts.MenuIcon = "dashicons-media-document"
	opts.CapabilityType = [2]string{"article", "articles"}
	opts.Supports = []string{"title", "thumbnail"}
	opts.Rewrite = Value(Rewrite{Slug: "news"})
	opts.QueryVar = Bool[string](false)
	opts.TemplateLock = Value("all")

	ct := newTestContentType("article", opts)

	assert.True(t, ct.IsPublic())
	assert.True(t, ct.IsIncludedInSearch())

	v, set := ct.DeleteWithUser()
	assert.True(t, set)
	assert.True(t, v)

	slug, ok := ct.Archive().Value()
	assert.True(t, ok)
	assert.Equal(t, "articles", slug)

	menu, ok := ct.MenuLocation().Value()
	assert.True(t, ok)
	assert.Equal(t, "tools.php", menu)

	base, ok := ct.RESTBase()
	assert.True(t, ok)
	assert.Equal(t, "articles", base)

	class, ok := ct.RESTControllerClass()
	assert.True(t, ok)
	assert.Equal(t, "Article_Controller", class)

	pos, ok := ct.MenuPosition()
	assert.True(t, ok)
	assert.Equal(t, 5, pos)

	assert.Equal(t, [2]string{"article", "articles"}, ct.CapabilityNouns())
	assert.Equal(t, []string{"title", "thumbnail"}, ct.Features())

	rw, ok := ct.Rewrite().Value()
	assert.True(t, ok)
	assert.Equal(t, "news", rw.Slug)

	assert.True(t, ct.QueryVar().IsBool())
	assert.False(t, ct.QueryVar().Bool())

	lock, ok := ct.TemplateLock().Value()
	assert.True(t, ok)
	assert.Equal(t, "all", lock)
}

func TestContentTypeNilSlicesReadAsEmpty(t *testing.T) {
	ct := newTestContentType("bare", ContentTypeOptions{})

	assert.NotNil(t, ct.Features())
	assert.Empty(t, ct.Features())
	assert.NotNil(t, ct.Capabilities())
	assert.NotNil(t, ct.TemplateBlocks())
}

func TestDefaultContentTypeOptionsAreIndependent(t *testing.T) {
	a := DefaultContentTypeOptions()
	a.Supports[0] = "changed"

	b := DefaultContentTypeOptions()
	assert.Equal(t, []string{"title", "editor"}, b.Supports)
	assert.Equal(t, []string{"title", "editor"}, DefaultFeatures)
}
