package types

import "iter"

// Collection is an append-only sequence that preserves insertion order.
// Duplicates are kept and nothing is ever removed.
type Collection[T any] struct {
	items []T
}

// PanelCollection holds the panels a content type attaches to its items.
type PanelCollection = Collection[Panel]

// TaxonomyCollection holds the taxonomies associated with a content type.
type TaxonomyCollection = Collection[Taxonomy]

// NewPanelCollection returns an empty panel collection.
func NewPanelCollection() *PanelCollection {
	return &Collection[Panel]{}
}

// NewTaxonomyCollection returns an empty taxonomy collection.
func NewTaxonomyCollection() *TaxonomyCollection {
	return &Collection[Taxonomy]{}
}

// Add appends v and returns the collection so calls can be chained.
func (c *Collection[T]) Add(v T) *Collection[T] {
	c.items = append(c.items, v)
	return c
}

// All returns an iterator over the stored values in insertion order.
// Every call starts a fresh traversal.
func (c *Collection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of stored values.
func (c *Collection[T]) Len() int {
	return len(c.items)
}
