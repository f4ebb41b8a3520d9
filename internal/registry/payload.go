package registry

import (
	"maps"
	"slices"

	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// Content type payload field names, as the host expects them.
const (
	FieldDescription         = "description"
	FieldLabels              = "labels"
	FieldPublic              = "public"
	FieldHierarchical        = "hierarchical"
	FieldExcludeFromSearch   = "exclude_from_search"
	FieldPubliclyQueryable   = "publicly_queryable"
	FieldShowUI              = "show_ui"
	FieldShowInNavMenus      = "show_in_nav_menus"
	FieldShowInAdminBar      = "show_in_admin_bar"
	FieldShowInREST          = "show_in_rest"
	FieldMapMetaCap          = "map_meta_cap"
	FieldCanExport           = "can_export"
	FieldDeleteWithUser      = "delete_with_user"
	FieldHasArchive          = "has_archive"
	FieldShowInMenu          = "show_in_menu"
	FieldRESTBase            = "rest_base"
	FieldRESTControllerClass = "rest_controller_class"
	FieldMenuPosition        = "menu_position"
	FieldMenuIcon            = "menu_icon"
	FieldCapabilityType      = "capability_type"
	FieldCapabilities        = "capabilities"
	FieldSupports            = "supports"
	FieldTaxonomies          = "taxonomies"
	FieldRewrite             = "rewrite"
	FieldQueryVar            = "query_var"
	FieldTemplate            = "template"
	FieldTemplateLock        = "template_lock"
	FieldRegisterMetaBoxCB   = "register_meta_box_cb"
)

// Taxonomy payload field names that the content type payload does not use.
const (
	FieldRESTNamespace   = "rest_namespace"
	FieldShowTagCloud    = "show_tag_cloud"
	FieldShowInQuickEdit = "show_in_quick_edit"
	FieldShowAdminColumn = "show_admin_column"
	FieldDefaultTerm     = "default_term"
	FieldSort            = "sort"
)

// ContentTypePayload builds the registration payload for ct. attach is
// stored under register_meta_box_cb for the host to call per item. Maps
// and slices are copies; the host may modify them without touching ct.
func ContentTypePayload(ct types.ContentType, attach types.AttachFunc) types.Payload {
	taxonomies := make([]string, 0, ct.Taxonomies().Len())
	for tx := range ct.Taxonomies().All() {
		taxonomies = append(taxonomies, tx.Key())
	}

	nouns := ct.CapabilityNouns()

	return types.Payload{
		FieldDescription:         ct.Description(),
		FieldLabels:              maps.Clone(ct.Labels()),
		FieldPublic:              ct.IsPublic(),
		FieldHierarchical:        ct.IsHierarchical(),
		FieldExcludeFromSearch:   !ct.IsIncludedInSearch(),
		FieldPubliclyQueryable:   ct.IsPubliclyQueryable(),
		FieldShowUI:              ct.IsShowingUI(),
		FieldShowInNavMenus:      ct.IsVisibleInNavMenus(),
		FieldShowInAdminBar:      ct.IsVisibleInAdminBar(),
		FieldShowInREST:          ct.IsIncludedInREST(),
		FieldMapMetaCap:          ct.UsesDefaultMetaCapabilities(),
		FieldCanExport:           ct.CanBeExported(),
		FieldDeleteWithUser:      nullableBool(ct.DeleteWithUser()),
		FieldHasArchive:          ct.Archive().Any(),
		FieldShowInMenu:          ct.MenuLocation().Any(),
		FieldRESTBase:            stringOrFalse(ct.RESTBase()),
		FieldRESTControllerClass: stringOrFalse(ct.RESTControllerClass()),
		FieldMenuPosition:        nullableInt(ct.MenuPosition()),
		FieldMenuIcon:            ct.MenuIcon(),
		FieldCapabilityType:      []string{nouns[0], nouns[1]},
		FieldCapabilities:        maps.Clone(ct.Capabilities()),
		FieldSupports:            slices.Clone(ct.Features()),
		FieldTaxonomies:          taxonomies,
		FieldRewrite:             rewriteArg(ct.Rewrite()),
		FieldQueryVar:            ct.QueryVar().Any(),
		FieldTemplate:            templateArg(ct.TemplateBlocks()),
		FieldTemplateLock:        ct.TemplateLock().Any(),
		FieldRegisterMetaBoxCB:   attach,
	}
}

// TaxonomyPayload builds the registration payload for tx. Like
// ContentTypePayload, it shares no maps with tx.
func TaxonomyPayload(tx types.Taxonomy) types.Payload {
	var defaultTerm any = false
	if term, ok := tx.DefaultTerm(); ok {
		defaultTerm = term.Args()
	}

	return types.Payload{
		FieldLabels:              maps.Clone(tx.Labels()),
		FieldDescription:         tx.Description(),
		FieldPublic:              tx.IsPublic(),
		FieldPubliclyQueryable:   tx.IsPubliclyQueryable(),
		FieldHierarchical:        tx.IsHierarchical(),
		FieldShowUI:              tx.IsShowingUI(),
		FieldShowInMenu:          tx.IsShowingInMenu(),
		FieldShowInNavMenus:      tx.IsVisibleInNavMenus(),
		FieldShowInREST:          tx.IsIncludedInREST(),
		FieldRESTBase:            stringOrFalse(tx.RESTBase()),
		FieldRESTNamespace:       stringOrFalse(tx.RESTNamespace()),
		FieldRESTControllerClass: stringOrFalse(tx.RESTControllerClass()),
		FieldShowTagCloud:        tx.IsShowingTagCloud(),
		FieldShowInQuickEdit:     tx.IsShowingInQuickEdit(),
		FieldShowAdminColumn:     tx.IsShowingAdminColumn(),
		FieldCapabilities:        maps.Clone(tx.Capabilities()),
		FieldRewrite:             rewriteArg(tx.Rewrite()),
		FieldQueryVar:            tx.QueryVar().Any(),
		FieldDefaultTerm:         defaultTerm,
		FieldSort:                tx.IsSorted(),
	}
}

// stringOrFalse maps an unset optional string to the host's false.
func stringOrFalse(s string, ok bool) any {
	if !ok {
		return false
	}
	return s
}

// nullableBool maps an unset tri-state to nil so the host default applies.
func nullableBool(v, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func nullableInt(v int, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func rewriteArg(rw types.RewriteSetting) any {
	if r, ok := rw.Value(); ok {
		return r.Args()
	}
	return rw.Bool()
}

func templateArg(blocks []types.Block) []any {
	out := make([]any, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Args())
	}
	return out
}
