package sqlite

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// SaveContentType records a content type registration. Registering a key
// again replaces its payload and clears its feature removals.
func (s *Store) SaveContentType(key string, payload types.Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO content_types (content_type_key, payload, run_id, registered_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (content_type_key) DO UPDATE SET
    payload = excluded.payload,
    run_id = excluded.run_id,
    registered_at = excluded.registered_at`,
		key, string(data), s.runID, s.timestamp())
	if err != nil {
		return fmt.Errorf("save content type %q: %w", key, err)
	}
	if _, err := tx.Exec(`DELETE FROM feature_removals WHERE content_type_key = ?`, key); err != nil {
		return fmt.Errorf("reset feature removals %q: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	return s.persist(contentTypesJSONL, featureRemovalsJSONL)
}

// SaveFeatureRemoval records that feature was withdrawn from the content
// type key. Recording the same removal twice keeps the first.
func (s *Store) SaveFeatureRemoval(key, feature string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrDetached
	}

	_, err := s.db.Exec(`INSERT OR IGNORE INTO feature_removals (content_type_key, feature, run_id, removed_at)
VALUES (?, ?, ?, ?)`, key, feature, s.runID, s.timestamp())
	if err != nil {
		return fmt.Errorf("save feature removal %q/%q: %w", key, feature, err)
	}

	return s.persist(featureRemovalsJSONL)
}

// SaveTaxonomy records a taxonomy registration for contentTypeKey. The
// latest payload replaces the stored one; associations accumulate.
func (s *Store) SaveTaxonomy(key, contentTypeKey string, payload types.Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO taxonomies (taxonomy_key, payload, run_id, registered_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (taxonomy_key) DO UPDATE SET
    payload = excluded.payload,
    run_id = excluded.run_id,
    registered_at = excluded.registered_at`,
		key, string(data), s.runID, s.timestamp())
	if err != nil {
		return fmt.Errorf("save taxonomy %q: %w", key, err)
	}
	_, err = tx.Exec(`INSERT OR IGNORE INTO taxonomy_content_types (taxonomy_key, content_type_key)
VALUES (?, ?)`, key, contentTypeKey)
	if err != nil {
		return fmt.Errorf("save taxonomy association %q/%q: %w", key, contentTypeKey, err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	return s.persist(taxonomiesJSONL, taxonomyContentTypesJSONL)
}

// persist rewrites the named JSONL files from the database. The caller
// must hold s.mu.
func (s *Store) persist(files ...string) error {
	for _, file := range files {
		records, err := s.dump(file)
		if err != nil {
			return fmt.Errorf("dump %s: %w", file, err)
		}
		if err := writeJSONL(filepath.Join(s.config.DataDir, file), records); err != nil {
			return fmt.Errorf("persist %s: %w", file, err)
		}
	}
	return nil
}

// dump returns the JSONL lines of the table behind file.
func (s *Store) dump(file string) ([]json.RawMessage, error) {
	switch file {
	case runsJSONL:
		rows, err := s.runs()
		if err != nil {
			return nil, err
		}
		return marshalRecords(rows)
	case contentTypesJSONL:
		rows, err := s.contentTypeRows()
		if err != nil {
			return nil, err
		}
		return marshalRecords(rows)
	case featureRemovalsJSONL:
		rows, err := s.featureRemovalRows()
		if err != nil {
			return nil, err
		}
		return marshalRecords(rows)
	case taxonomiesJSONL:
		rows, err := s.taxonomyRows()
		if err != nil {
			return nil, err
		}
		return marshalRecords(rows)
	case taxonomyContentTypesJSONL:
		rows, err := s.taxonomyContentTypeRows()
		if err != nil {
			return nil, err
		}
		return marshalRecords(rows)
	}
	return nil, fmt.Errorf("unknown journal file %q", file)
}
