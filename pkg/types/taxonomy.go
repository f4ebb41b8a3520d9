package types

// MaxTaxonomyKeyLength is the longest taxonomy key the host accepts.
const MaxTaxonomyKeyLength = 32

// Taxonomy describes a classification scheme that content types attach
// to their items. Concrete taxonomies embed *TaxonomyBase and implement
// Description and Labels.
type Taxonomy interface {
	// Key identifies the taxonomy to the host: at most 32 characters of
	// lowercase letters, digits, dashes and underscores. The host, not
	// this package, enforces the format.
	Key() string

	Description() string
	Labels() map[string]string

	IsPublic() bool
	IsHierarchical() bool
	IsPubliclyQueryable() bool
	IsShowingUI() bool
	IsShowingInMenu() bool
	IsVisibleInNavMenus() bool
	IsIncludedInREST() bool
	RESTBase() (string, bool)
	RESTNamespace() (string, bool)
	RESTControllerClass() (string, bool)
	IsShowingTagCloud() bool
	IsShowingInQuickEdit() bool
	IsShowingAdminColumn() bool
	Capabilities() map[string]string
	Rewrite() RewriteSetting
	QueryVar() Toggle
	DefaultTerm() (DefaultTerm, bool)
	IsSorted() bool
}

// TaxonomyOptions holds every configurable taxonomy option. Start from
// DefaultTaxonomyOptions; an empty string means the option is unset.
type TaxonomyOptions struct {
	Public              bool              `json:"public" yaml:"public"`
	Hierarchical        bool              `json:"hierarchical" yaml:"hierarchical"`
	PubliclyQueryable   bool              `json:"publicly_queryable" yaml:"publicly_queryable"`
	ShowUI              bool              `json:"show_ui" yaml:"show_ui"`
	ShowInMenu          bool              `json:"show_in_menu" yaml:"show_in_menu"`
	ShowInNavMenus      bool              `json:"show_in_nav_menus" yaml:"show_in_nav_menus"`
	ShowInREST          bool              `json:"show_in_rest" yaml:"show_in_rest"`
	RESTBase            string            `json:"rest_base,omitempty" yaml:"rest_base"`
	RESTNamespace       string            `json:"rest_namespace,omitempty" yaml:"rest_namespace"`
	RESTControllerClass string            `json:"rest_controller_class,omitempty" yaml:"rest_controller_class"`
	ShowTagCloud        bool              `json:"show_tag_cloud" yaml:"show_tag_cloud"`
	ShowInQuickEdit     bool              `json:"show_in_quick_edit" yaml:"show_in_quick_edit"`
	ShowAdminColumn     bool              `json:"show_admin_column" yaml:"show_admin_column"`
	Capabilities        map[string]string `json:"capabilities,omitempty" yaml:"capabilities"`
	Rewrite             RewriteSetting    `json:"rewrite" yaml:"rewrite"`
	QueryVar            Toggle            `json:"query_var" yaml:"query_var"`
	DefaultTerm         *DefaultTerm      `json:"default_term,omitempty" yaml:"default_term"`
	Sort                bool              `json:"sort" yaml:"sort"`
}

// DefaultTaxonomyOptions returns the options a taxonomy has unless it
// overrides them: everything off except rewrite rules and the query
// variable.
func DefaultTaxonomyOptions() TaxonomyOptions {
	return TaxonomyOptions{
		Capabilities: map[string]string{},
		Rewrite:      Bool[Rewrite](true),
		QueryVar:     Bool[string](true),
	}
}

// TaxonomyBase implements every Taxonomy accessor except Description and
// Labels.
type TaxonomyBase struct {
	key  string
	opts TaxonomyOptions
}

// NewTaxonomyBase returns a TaxonomyBase for key. The options are fixed
// after construction.
func NewTaxonomyBase(key string, opts TaxonomyOptions) *TaxonomyBase {
	return &TaxonomyBase{key: key, opts: opts}
}

func (t *TaxonomyBase) Key() string                { return t.key }
func (t *TaxonomyBase) IsPublic() bool             { return t.opts.Public }
func (t *TaxonomyBase) IsHierarchical() bool       { return t.opts.Hierarchical }
func (t *TaxonomyBase) IsPubliclyQueryable() bool  { return t.opts.PubliclyQueryable }
func (t *TaxonomyBase) IsShowingUI() bool          { return t.opts.ShowUI }
func (t *TaxonomyBase) IsShowingInMenu() bool      { return t.opts.ShowInMenu }
func (t *TaxonomyBase) IsVisibleInNavMenus() bool  { return t.opts.ShowInNavMenus }
func (t *TaxonomyBase) IsIncludedInREST() bool     { return t.opts.ShowInREST }
func (t *TaxonomyBase) IsShowingTagCloud() bool    { return t.opts.ShowTagCloud }
func (t *TaxonomyBase) IsShowingInQuickEdit() bool { return t.opts.ShowInQuickEdit }
func (t *TaxonomyBase) IsShowingAdminColumn() bool { return t.opts.ShowAdminColumn }
func (t *TaxonomyBase) Rewrite() RewriteSetting    { return t.opts.Rewrite }
func (t *TaxonomyBase) QueryVar() Toggle           { return t.opts.QueryVar }
func (t *TaxonomyBase) IsSorted() bool             { return t.opts.Sort }

func (t *TaxonomyBase) RESTBase() (string, bool) {
	return optional(t.opts.RESTBase)
}

func (t *TaxonomyBase) RESTNamespace() (string, bool) {
	return optional(t.opts.RESTNamespace)
}

func (t *TaxonomyBase) RESTControllerClass() (string, bool) {
	return optional(t.opts.RESTControllerClass)
}

// Capabilities returns the capability mapping. It is never nil.
func (t *TaxonomyBase) Capabilities() map[string]string {
	if t.opts.Capabilities == nil {
		return map[string]string{}
	}
	return t.opts.Capabilities
}

// DefaultTerm returns the default term and true, or false when the
// taxonomy has none.
func (t *TaxonomyBase) DefaultTerm() (DefaultTerm, bool) {
	if t.opts.DefaultTerm == nil {
		return DefaultTerm{}, false
	}
	return *t.opts.DefaultTerm, true
}

func optional(s string) (string, bool) {
	return s, s != ""
}
