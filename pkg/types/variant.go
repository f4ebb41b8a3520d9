package types

import (
	"encoding/json"
	"maps"

	"gopkg.in/yaml.v3"
)

// BoolOr holds either a plain boolean or a value of type T. Several host
// options accept both shapes: has_archive takes true or an archive slug,
// rewrite takes false or a rule override. The zero value is the boolean
// false.
type BoolOr[T any] struct {
	value   T
	isValue bool
	flag    bool
}

// Toggle is an option that is either a boolean or a string, such as an
// archive slug, a menu path, a query variable name, or a template lock
// strategy.
type Toggle = BoolOr[string]

// RewriteSetting is either a boolean or a rewrite rule override.
type RewriteSetting = BoolOr[Rewrite]

// Bool returns a BoolOr holding the boolean b.
func Bool[T any](b bool) BoolOr[T] {
	return BoolOr[T]{flag: b}
}

// Value returns a BoolOr holding v.
func Value[T any](v T) BoolOr[T] {
	return BoolOr[T]{value: v, isValue: true}
}

// IsBool reports whether the option holds a plain boolean.
func (o BoolOr[T]) IsBool() bool {
	return !o.isValue
}

// Bool returns the boolean held by the option. It returns false when the
// option holds a value.
func (o BoolOr[T]) Bool() bool {
	return !o.isValue && o.flag
}

// Value returns the value held by the option and true, or the zero value
// and false when the option holds a boolean.
func (o BoolOr[T]) Value() (T, bool) {
	return o.value, o.isValue
}

// Any returns the boolean or the value, whichever the option holds.
func (o BoolOr[T]) Any() any {
	if o.isValue {
		return o.value
	}
	return o.flag
}

// MarshalJSON encodes the option as either a JSON boolean or the value.
func (o BoolOr[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Any())
}

// UnmarshalYAML accepts a YAML boolean or anything that decodes into T.
func (o *BoolOr[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*o = Bool[T](b)
		return nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Value(v)
	return nil
}

// Rewrite overrides the host's permalink rules for a content type or a
// taxonomy. Nil pointer fields are left to the host default.
type Rewrite struct {
	Slug         string `json:"slug,omitempty" yaml:"slug"`
	WithFront    *bool  `json:"with_front,omitempty" yaml:"with_front"`
	Feeds        *bool  `json:"feeds,omitempty" yaml:"feeds"`
	Pages        *bool  `json:"pages,omitempty" yaml:"pages"`
	Hierarchical *bool  `json:"hierarchical,omitempty" yaml:"hierarchical"`
	EPMask       int    `json:"ep_mask,omitempty" yaml:"ep_mask"`
}

// Args returns the rule override under the host's field names. Only the
// fields that were set are present.
func (r Rewrite) Args() map[string]any {
	args := make(map[string]any)
	if r.Slug != "" {
		args["slug"] = r.Slug
	}
	if r.WithFront != nil {
		args["with_front"] = *r.WithFront
	}
	if r.Feeds != nil {
		args["feeds"] = *r.Feeds
	}
	if r.Pages != nil {
		args["pages"] = *r.Pages
	}
	if r.Hierarchical != nil {
		args["hierarchical"] = *r.Hierarchical
	}
	if r.EPMask != 0 {
		args["ep_mask"] = r.EPMask
	}
	return args
}

// DefaultTerm is the term assigned to items that have none in a taxonomy.
type DefaultTerm struct {
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug,omitempty" yaml:"slug"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// Args returns the default term under the host's field names.
func (d DefaultTerm) Args() map[string]any {
	args := map[string]any{"name": d.Name}
	if d.Slug != "" {
		args["slug"] = d.Slug
	}
	if d.Description != "" {
		args["description"] = d.Description
	}
	return args
}

// Block is one entry of a content type's editor template: a block name,
// its attributes, and nested blocks.
type Block struct {
	Name        string         `json:"name" yaml:"name"`
	Attributes  map[string]any `json:"attributes,omitempty" yaml:"attributes"`
	InnerBlocks []Block        `json:"inner_blocks,omitempty" yaml:"inner_blocks"`
}

// Args returns the block in the host's positional form:
// [name, attributes, [inner blocks...]]. The attributes map is a copy.
func (b Block) Args() []any {
	attrs := maps.Clone(b.Attributes)
	if attrs == nil {
		attrs = map[string]any{}
	}
	inner := make([]any, 0, len(b.InnerBlocks))
	for _, child := range b.InnerBlocks {
		inner = append(inner, child.Args())
	}
	return []any{b.Name, attrs, inner}
}
