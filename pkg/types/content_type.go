package types

// MaxContentTypeKeyLength is the longest content type key the host accepts.
const MaxContentTypeKeyLength = 20

// Default content type values that differ from the Go zero value.
const (
	DefaultMenuIcon = "none"
)

// Default features and capability nouns of a content type.
var (
	DefaultFeatures        = []string{"title", "editor"}
	DefaultCapabilityNouns = [2]string{"post", "posts"}
)

// ContentType describes a structured kind of content item. Concrete
// content types embed *ContentTypeBase and implement Description and
// Labels.
type ContentType interface {
	// Key identifies the content type to the host: at most 20 characters
	// of lowercase letters, digits, dashes and underscores. Every concrete
	// content type must set it; the host, not this package, rejects a
	// missing or malformed key.
	Key() string

	Description() string
	Labels() map[string]string

	IsPublic() bool
	IsHierarchical() bool
	IsIncludedInSearch() bool
	IsPubliclyQueryable() bool
	IsShowingUI() bool
	IsVisibleInNavMenus() bool
	IsVisibleInAdminBar() bool
	IsIncludedInREST() bool

	// UsesDefaultMetaCapabilities reports whether the host maps meta
	// capabilities itself.
	UsesDefaultMetaCapabilities() bool

	CanBeExported() bool

	// DeleteWithUser returns the setting and true, or false when the
	// host default applies.
	DeleteWithUser() (bool, bool)

	// Archive is false, true, or the archive slug.
	Archive() Toggle

	// MenuLocation is false, true, or the parent menu path.
	MenuLocation() Toggle

	RESTBase() (string, bool)
	RESTControllerClass() (string, bool)
	MenuPosition() (int, bool)
	MenuIcon() string

	// CapabilityNouns are the singular and plural nouns capabilities are
	// built from.
	CapabilityNouns() [2]string

	Capabilities() map[string]string
	Features() []string
	Rewrite() RewriteSetting
	QueryVar() Toggle
	TemplateBlocks() []Block
	TemplateLock() Toggle

	Panels() *PanelCollection
	Taxonomies() *TaxonomyCollection
}

// ContentTypeOptions holds every configurable content type option. Start
// from DefaultContentTypeOptions; an empty string means the option is
// unset.
type ContentTypeOptions struct {
	Public              bool              `json:"public" yaml:"public"`
	Hierarchical        bool              `json:"hierarchical" yaml:"hierarchical"`
	ExcludeFromSearch   bool              `json:"exclude_from_search" yaml:"exclude_from_search"`
	PubliclyQueryable   bool              `json:"publicly_queryable" yaml:"publicly_queryable"`
	ShowUI              bool              `json:"show_ui" yaml:"show_ui"`
	ShowInNavMenus      bool              `json:"show_in_nav_menus" yaml:"show_in_nav_menus"`
	ShowInAdminBar      bool              `json:"show_in_admin_bar" yaml:"show_in_admin_bar"`
	ShowInREST          bool              `json:"show_in_rest" yaml:"show_in_rest"`
	MapMetaCap          bool              `json:"map_meta_cap" yaml:"map_meta_cap"`
	CanExport           bool              `json:"can_export" yaml:"can_export"`
	DeleteWithUser      *bool             `json:"delete_with_user,omitempty" yaml:"delete_with_user"`
	HasArchive          Toggle            `json:"has_archive" yaml:"has_archive"`
	ShowInMenu          Toggle            `json:"show_in_menu" yaml:"show_in_menu"`
	RESTBase            string            `json:"rest_base,omitempty" yaml:"rest_base"`
	RESTControllerClass string            `json:"rest_controller_class,omitempty" yaml:"rest_controller_class"`
	MenuPosition        *int              `json:"menu_position,omitempty" yaml:"menu_position"`
	MenuIcon            string            `json:"menu_icon" yaml:"menu_icon"`
	CapabilityType      [2]string         `json:"capability_type" yaml:"capability_type"`
	Capabilities        map[string]string `json:"capabilities,omitempty" yaml:"capabilities"`
	Supports            []string          `json:"supports" yaml:"supports"`
	Rewrite             RewriteSetting    `json:"rewrite" yaml:"rewrite"`
	QueryVar            Toggle            `json:"query_var" yaml:"query_var"`
	Template            []Block           `json:"template,omitempty" yaml:"template"`
	TemplateLock        Toggle            `json:"template_lock" yaml:"template_lock"`
}

// DefaultContentTypeOptions returns the options a content type has unless
// it overrides them. Every flag is off and the type is excluded from
// search; rewrite rules and the query variable are on.
func DefaultContentTypeOptions() ContentTypeOptions {
	return ContentTypeOptions{
		ExcludeFromSearch: true,
		MenuIcon:          DefaultMenuIcon,
		CapabilityType:    DefaultCapabilityNouns,
		Capabilities:      map[string]string{},
		Supports:          append([]string(nil), DefaultFeatures...),
		Rewrite:           Bool[Rewrite](true),
		QueryVar:          Bool[string](true),
	}
}

// ContentTypeBase implements every ContentType accessor except
// Description and Labels. It owns the panel and taxonomy collections.
type ContentTypeBase struct {
	key        string
	opts       ContentTypeOptions
	panels     *PanelCollection
	taxonomies *TaxonomyCollection
}

// NewContentTypeBase returns a ContentTypeBase for key with empty
// collections. The options are fixed after construction.
func NewContentTypeBase(key string, opts ContentTypeOptions) *ContentTypeBase {
	return &ContentTypeBase{
		key:        key,
		opts:       opts,
		panels:     NewPanelCollection(),
		taxonomies: NewTaxonomyCollection(),
	}
}

func (c *ContentTypeBase) Key() string                       { return c.key }
func (c *ContentTypeBase) IsPublic() bool                    { return c.opts.Public }
func (c *ContentTypeBase) IsHierarchical() bool              { return c.opts.Hierarchical }
func (c *ContentTypeBase) IsIncludedInSearch() bool          { return !c.opts.ExcludeFromSearch }
func (c *ContentTypeBase) IsPubliclyQueryable() bool         { return c.opts.PubliclyQueryable }
func (c *ContentTypeBase) IsShowingUI() bool                 { return c.opts.ShowUI }
func (c *ContentTypeBase) IsVisibleInNavMenus() bool         { return c.opts.ShowInNavMenus }
func (c *ContentTypeBase) IsVisibleInAdminBar() bool         { return c.opts.ShowInAdminBar }
func (c *ContentTypeBase) IsIncludedInREST() bool            { return c.opts.ShowInREST }
func (c *ContentTypeBase) UsesDefaultMetaCapabilities() bool { return c.opts.MapMetaCap }
func (c *ContentTypeBase) CanBeExported() bool               { return c.opts.CanExport }
func (c *ContentTypeBase) Archive() Toggle                   { return c.opts.HasArchive }
func (c *ContentTypeBase) MenuLocation() Toggle              { return c.opts.ShowInMenu }
func (c *ContentTypeBase) MenuIcon() string                  { return c.opts.MenuIcon }
func (c *ContentTypeBase) CapabilityNouns() [2]string        { return c.opts.CapabilityType }
func (c *ContentTypeBase) Rewrite() RewriteSetting           { return c.opts.Rewrite }
func (c *ContentTypeBase) QueryVar() Toggle                  { return c.opts.QueryVar }
func (c *ContentTypeBase) TemplateLock() Toggle              { return c.opts.TemplateLock }
func (c *ContentTypeBase) Panels() *PanelCollection          { return c.panels }
func (c *ContentTypeBase) Taxonomies() *TaxonomyCollection   { return c.taxonomies }

func (c *ContentTypeBase) DeleteWithUser() (bool, bool) {
	if c.opts.DeleteWithUser == nil {
		return false, false
	}
	return *c.opts.DeleteWithUser, true
}

func (c *ContentTypeBase) RESTBase() (string, bool) {
	return optional(c.opts.RESTBase)
}

func (c *ContentTypeBase) RESTControllerClass() (string, bool) {
	return optional(c.opts.RESTControllerClass)
}

func (c *ContentTypeBase) MenuPosition() (int, bool) {
	if c.opts.MenuPosition == nil {
		return 0, false
	}
	return *c.opts.MenuPosition, true
}

// Capabilities returns the capability mapping. It is never nil.
func (c *ContentTypeBase) Capabilities() map[string]string {
	if c.opts.Capabilities == nil {
		return map[string]string{}
	}
	return c.opts.Capabilities
}

// Features returns the declared feature tags. A nil list is reported as
// empty, not as the default.
func (c *ContentTypeBase) Features() []string {
	if c.opts.Supports == nil {
		return []string{}
	}
	return c.opts.Supports
}

// TemplateBlocks returns the editor template. It is never nil.
func (c *ContentTypeBase) TemplateBlocks() []Block {
	if c.opts.Template == nil {
		return []Block{}
	}
	return c.opts.Template
}
