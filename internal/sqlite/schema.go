package sqlite

// Schema DDL for the journal tables. Row order is registration order.
const (
	createRuns = `CREATE TABLE runs (
    run_id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL
);`

	createContentTypes = `CREATE TABLE content_types (
    content_type_key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    run_id TEXT NOT NULL,
    registered_at TEXT NOT NULL
);`

	createFeatureRemovals = `CREATE TABLE feature_removals (
    content_type_key TEXT NOT NULL,
    feature TEXT NOT NULL,
    run_id TEXT NOT NULL,
    removed_at TEXT NOT NULL,
    PRIMARY KEY (content_type_key, feature),
    FOREIGN KEY (content_type_key) REFERENCES content_types(content_type_key) ON DELETE CASCADE
);`

	createTaxonomies = `CREATE TABLE taxonomies (
    taxonomy_key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    run_id TEXT NOT NULL,
    registered_at TEXT NOT NULL
);`

	createTaxonomyContentTypes = `CREATE TABLE taxonomy_content_types (
    taxonomy_key TEXT NOT NULL,
    content_type_key TEXT NOT NULL,
    PRIMARY KEY (taxonomy_key, content_type_key),
    FOREIGN KEY (taxonomy_key) REFERENCES taxonomies(taxonomy_key) ON DELETE CASCADE
);`
)

// Index DDL.
const (
	idxContentTypesRun          = `CREATE INDEX idx_content_types_run ON content_types(run_id);`
	idxFeatureRemovalsKey       = `CREATE INDEX idx_feature_removals_key ON feature_removals(content_type_key);`
	idxTaxonomyContentTypesType = `CREATE INDEX idx_taxonomy_content_types_type ON taxonomy_content_types(content_type_key);`
)

// schemaDDL lists the CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createRuns,
	createContentTypes,
	createFeatureRemovals,
	createTaxonomies,
	createTaxonomyContentTypes,
}

var indexDDL = []string{
	idxContentTypesRun,
	idxFeatureRemovalsKey,
	idxTaxonomyContentTypesType,
}
