package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomyDefaults(t *testing.T) {
	tx := newTestTaxonomy("genre")

	assert.Equal(t, "genre", tx.Key())
	assert.False(t, tx.IsPublic())
	assert.False(t, tx.IsHierarchical())
	assert.False(t, tx.IsPubliclyQueryable())
	assert.False(t, tx.IsShowingUI())
	assert.False(t, tx.IsShowingInMenu())
	assert.False(t, tx.IsVisibleInNavMenus())
	assert.False(t, tx.IsIncludedInREST())
	assert.False(t, tx.IsShowingTagCloud())
	assert.False(t, tx.IsShowingInQuickEdit())
	assert.False(t, tx.IsShowingAdminColumn())
	assert.False(t, tx.IsSorted())
	assert.Empty(t, tx.Capabilities())
	assert.True(t, tx.Rewrite().Bool())
	assert.True(t, tx.QueryVar().Bool())

	for name, get := range map[string]func() (string, bool){
		"rest_base":             tx.RESTBase,
		"rest_namespace":        tx.RESTNamespace,
		"rest_controller_class": tx.RESTControllerClass,
	} {
		_, ok := get()
		assert.False(t, ok, name)
	}

	_, ok := tx.DefaultTerm()
	assert.False(t, ok)
}

func TestTaxonomyOverrides(t *testing.T) {
	opts := DefaultTaxonomyOptions()
	opts.Hierarchical = true
	opts.RESTNamespace = "shop/v1"
	opts.DefaultTerm = &DefaultTerm{Name: "Uncategorized", Slug: "uncategorized"}
	opts.Rewrite = Bool[Rewrite](false)
	opts.QueryVar = Value("genre_q")
	opts.Sort = true

	tx := NewTaxonomyBase("genre", opts)

	assert.True(t, tx.IsHierarchical())
	assert.True(t, tx.IsSorted())

	ns, ok := tx.RESTNamespace()
	assert.True(t, ok)
	assert.Equal(t, "shop/v1", ns)

	term, ok := tx.DefaultTerm()
	assert.True(t, ok)
	assert.Equal(t, "Uncategorized", term.Name)

	assert.True(t, tx.Rewrite().IsBool())
	assert.False(t, tx.Rewrite().Bool())

	qv, ok := tx.QueryVar().Value()
	assert.True(t, ok)
	assert.Equal(t, "genre_q", qv)
}
