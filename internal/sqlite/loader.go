package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// jsonlTableMapping maps each JSONL file to its table and columns, in
// load order.
var jsonlTableMapping = []struct {
	file    string
	table   string
	columns []string
}{
	{runsJSONL, "runs", []string{"run_id", "started_at"}},
	{contentTypesJSONL, "content_types", []string{"content_type_key", "payload", "run_id", "registered_at"}},
	{featureRemovalsJSONL, "feature_removals", []string{"content_type_key", "feature", "run_id", "removed_at"}},
	{taxonomiesJSONL, "taxonomies", []string{"taxonomy_key", "payload", "run_id", "registered_at"}},
	{taxonomyContentTypesJSONL, "taxonomy_content_types", []string{"taxonomy_key", "content_type_key"}},
}

// initJSONLFiles creates every missing JSONL file in dataDir as an empty
// file.
func initJSONLFiles(dataDir string) error {
	for _, m := range jsonlTableMapping {
		path := filepath.Join(dataDir, m.file)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", m.file, err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("create %s: %w", m.file, err)
		}
	}
	return nil
}

// loadAllJSONL inserts the records of every JSONL file in dataDir into
// its table. Either every file loads or none does.
func loadAllJSONL(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	for _, m := range jsonlTableMapping {
		records, err := readJSONL(filepath.Join(dataDir, m.file))
		if err != nil {
			return err
		}
		if len(records) == 0 {
			continue
		}
		if err := insertRecords(tx, m.table, m.columns, records); err != nil {
			return fmt.Errorf("load %s into %s: %w", m.file, m.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}

// insertRecords inserts records into table. Fields outside columns are
// ignored, nested JSON values are stored as JSON text, and records that
// do not decode or violate a constraint are skipped.
func insertRecords(tx *sql.Tx, table string, columns []string, records []json.RawMessage) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var obj map[string]any
		if err := json.Unmarshal(rec, &obj); err != nil {
			continue
		}

		args := make([]any, len(columns))
		for i, col := range columns {
			switch v := obj[col].(type) {
			case map[string]any, []any:
				b, err := json.Marshal(v)
				if err != nil {
					continue
				}
				args[i] = string(b)
			default:
				args[i] = v
			}
		}

		if _, err := stmt.Exec(args...); err != nil {
			continue
		}
	}
	return nil
}
