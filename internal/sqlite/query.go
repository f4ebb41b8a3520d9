package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Run is one attachment of the store.
type Run struct {
	ID        string
	StartedAt time.Time
}

// ContentTypeEntry is a journaled content type.
type ContentTypeEntry struct {
	Key             string
	Payload         map[string]any
	RemovedFeatures []string
	RunID           string
	RegisteredAt    time.Time
}

// TaxonomyEntry is a journaled taxonomy and the content types it was
// registered for.
type TaxonomyEntry struct {
	Key          string
	ContentTypes []string
	Payload      map[string]any
	RunID        string
	RegisteredAt time.Time
}

// Runs returns every run in start order, the current one last.
func (s *Store) Runs() ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrDetached
	}

	rows, err := s.runs()
	if err != nil {
		return nil, err
	}
	out := make([]Run, 0, len(rows))
	for _, r := range rows {
		started, err := time.Parse(time.RFC3339, r.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", r.RunID, err)
		}
		out = append(out, Run{ID: r.RunID, StartedAt: started})
	}
	return out, nil
}

// ContentTypes returns every journaled content type in first
// registration order.
func (s *Store) ContentTypes() ([]ContentTypeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrDetached
	}

	rows, err := s.contentTypeRows()
	if err != nil {
		return nil, err
	}
	removals, err := s.featureRemovalRows()
	if err != nil {
		return nil, err
	}

	removed := make(map[string][]string)
	for _, r := range removals {
		removed[r.ContentTypeKey] = append(removed[r.ContentTypeKey], r.Feature)
	}

	out := make([]ContentTypeEntry, 0, len(rows))
	for _, r := range rows {
		entry := ContentTypeEntry{
			Key:             r.ContentTypeKey,
			RemovedFeatures: removed[r.ContentTypeKey],
			RunID:           r.RunID,
		}
		if err := json.Unmarshal(r.Payload, &entry.Payload); err != nil {
			return nil, fmt.Errorf("content type %q payload: %w", r.ContentTypeKey, err)
		}
		if entry.RegisteredAt, err = time.Parse(time.RFC3339, r.RegisteredAt); err != nil {
			return nil, fmt.Errorf("content type %q: %w", r.ContentTypeKey, err)
		}
		if entry.RemovedFeatures == nil {
			entry.RemovedFeatures = []string{}
		}
		out = append(out, entry)
	}
	return out, nil
}

// Taxonomies returns every journaled taxonomy in first registration
// order.
func (s *Store) Taxonomies() ([]TaxonomyEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrDetached
	}

	rows, err := s.taxonomyRows()
	if err != nil {
		return nil, err
	}
	links, err := s.taxonomyContentTypeRows()
	if err != nil {
		return nil, err
	}

	associated := make(map[string][]string)
	for _, l := range links {
		associated[l.TaxonomyKey] = append(associated[l.TaxonomyKey], l.ContentTypeKey)
	}

	out := make([]TaxonomyEntry, 0, len(rows))
	for _, r := range rows {
		entry := TaxonomyEntry{
			Key:          r.TaxonomyKey,
			ContentTypes: associated[r.TaxonomyKey],
			RunID:        r.RunID,
		}
		if err := json.Unmarshal(r.Payload, &entry.Payload); err != nil {
			return nil, fmt.Errorf("taxonomy %q payload: %w", r.TaxonomyKey, err)
		}
		if entry.RegisteredAt, err = time.Parse(time.RFC3339, r.RegisteredAt); err != nil {
			return nil, fmt.Errorf("taxonomy %q: %w", r.TaxonomyKey, err)
		}
		out = append(out, entry)
	}
	return out, nil
}

// Export writes every journal table to dir as JSONL files, creating dir
// if needed.
func (s *Store) Export(dir string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return ErrDetached
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, m := range jsonlTableMapping {
		records, err := s.dump(m.file)
		if err != nil {
			return fmt.Errorf("dump %s: %w", m.file, err)
		}
		if err := writeJSONL(filepath.Join(dir, m.file), records); err != nil {
			return fmt.Errorf("export %s: %w", m.file, err)
		}
	}
	return nil
}

func (s *Store) runs() ([]runJSON, error) {
	return queryRows(s.db, `SELECT run_id, started_at FROM runs ORDER BY rowid`,
		func(rows *sql.Rows, r *runJSON) error {
			return rows.Scan(&r.RunID, &r.StartedAt)
		})
}

func (s *Store) contentTypeRows() ([]contentTypeJSON, error) {
	return queryRows(s.db, `SELECT content_type_key, payload, run_id, registered_at FROM content_types ORDER BY rowid`,
		func(rows *sql.Rows, r *contentTypeJSON) error {
			var payload string
			if err := rows.Scan(&r.ContentTypeKey, &payload, &r.RunID, &r.RegisteredAt); err != nil {
				return err
			}
			r.Payload = json.RawMessage(payload)
			return nil
		})
}

func (s *Store) featureRemovalRows() ([]featureRemovalJSON, error) {
	return queryRows(s.db, `SELECT content_type_key, feature, run_id, removed_at FROM feature_removals ORDER BY rowid`,
		func(rows *sql.Rows, r *featureRemovalJSON) error {
			return rows.Scan(&r.ContentTypeKey, &r.Feature, &r.RunID, &r.RemovedAt)
		})
}

func (s *Store) taxonomyRows() ([]taxonomyJSON, error) {
	return queryRows(s.db, `SELECT taxonomy_key, payload, run_id, registered_at FROM taxonomies ORDER BY rowid`,
		func(rows *sql.Rows, r *taxonomyJSON) error {
			var payload string
			if err := rows.Scan(&r.TaxonomyKey, &payload, &r.RunID, &r.RegisteredAt); err != nil {
				return err
			}
			r.Payload = json.RawMessage(payload)
			return nil
		})
}

func (s *Store) taxonomyContentTypeRows() ([]taxonomyContentTypeJSON, error) {
	return queryRows(s.db, `SELECT taxonomy_key, content_type_key FROM taxonomy_content_types ORDER BY rowid`,
		func(rows *sql.Rows, r *taxonomyContentTypeJSON) error {
			return rows.Scan(&r.TaxonomyKey, &r.ContentTypeKey)
		})
}

// queryRows runs query and scans every row into a T.
func queryRows[T any](db *sql.DB, query string, scan func(*sql.Rows, *T) error) ([]T, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var r T
		if err := scan(rows, &r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
