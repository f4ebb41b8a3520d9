// Package types defines the descriptor contracts for content types,
// taxonomies and editorial panels, the ordered collections a content
// type owns, and the host interfaces a registry activates them against.
//
// Concrete descriptors embed the matching base, which supplies every
// option accessor with its default, and add Description and Labels
// (plus Render for panels):
//
//	type Article struct{ *types.ContentTypeBase }
//
//	func NewArticle() *Article {
//		opts := types.DefaultContentTypeOptions()
//		opts.Public = true
//		return &Article{types.NewContentTypeBase("article", opts)}
//	}
//
//	func (*Article) Description() string       { return "Long-form articles" }
//	func (*Article) Labels() map[string]string { return map[string]string{"name": "Articles"} }
package types
