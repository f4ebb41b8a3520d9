package registry

import "slices"

// availableFeatures is every feature the host knows, in the order
// removals are issued.
var availableFeatures = []string{
	"title",
	"editor",
	"excerpt",
	"author",
	"trackbacks",
	"thumbnail",
	"custom-fields",
	"comments",
	"revisions",
	"page-attributes",
	"post-formats",
}

// AvailableFeatures returns a copy of every feature the host knows, in
// the order removals are issued.
func AvailableFeatures() []string {
	return slices.Clone(availableFeatures)
}

// UnsupportedFeatures returns the available features missing from
// declared, in AvailableFeatures order. Declared features the host does
// not know are ignored.
func UnsupportedFeatures(declared []string) []string {
	var missing []string
	for _, feature := range availableFeatures {
		if !slices.Contains(declared, feature) {
			missing = append(missing, feature)
		}
	}
	return missing
}
