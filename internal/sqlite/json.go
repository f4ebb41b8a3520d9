package sqlite

import "encoding/json"

// JSONL file names in the data directory, one per table.
const (
	runsJSONL                 = "runs.jsonl"
	contentTypesJSONL         = "content_types.jsonl"
	featureRemovalsJSONL      = "feature_removals.jsonl"
	taxonomiesJSONL           = "taxonomies.jsonl"
	taxonomyContentTypesJSONL = "taxonomy_content_types.jsonl"
)

// runJSON is a line of runs.jsonl.
type runJSON struct {
	RunID     string `json:"run_id"`
	StartedAt string `json:"started_at"`
}

// contentTypeJSON is a line of content_types.jsonl. The payload is kept
// as the JSON the host received, minus callbacks.
type contentTypeJSON struct {
	ContentTypeKey string          `json:"content_type_key"`
	Payload        json.RawMessage `json:"payload"`
	RunID          string          `json:"run_id"`
	RegisteredAt   string          `json:"registered_at"`
}

// featureRemovalJSON is a line of feature_removals.jsonl.
type featureRemovalJSON struct {
	ContentTypeKey string `json:"content_type_key"`
	Feature        string `json:"feature"`
	RunID          string `json:"run_id"`
	RemovedAt      string `json:"removed_at"`
}

// taxonomyJSON is a line of taxonomies.jsonl.
type taxonomyJSON struct {
	TaxonomyKey  string          `json:"taxonomy_key"`
	Payload      json.RawMessage `json:"payload"`
	RunID        string          `json:"run_id"`
	RegisteredAt string          `json:"registered_at"`
}

// taxonomyContentTypeJSON is a line of taxonomy_content_types.jsonl.
type taxonomyContentTypeJSON struct {
	TaxonomyKey    string `json:"taxonomy_key"`
	ContentTypeKey string `json:"content_type_key"`
}
