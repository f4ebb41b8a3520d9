// Package sqlite journals host registrations. JSONL files in the data
// directory are the source of truth; SQLite is rebuilt from them on
// Attach and serves queries.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// dbFile is the SQLite file created in the data directory.
const dbFile = "typereg.db"

// Store errors.
var (
	ErrDetached        = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Store is a registration journal backed by SQLite and JSONL files.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	runID    string

	now func() time.Time
}

// NewStore returns a detached store. Call Attach before use.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Attach opens the journal in config.DataDir. It rebuilds the database
// from the JSONL files there and starts a new run.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return err
	}
	if err := initJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}
	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	s.db = db
	s.config = config
	s.config.DataDir = dataDir
	s.runID = generateUUID()

	if _, err := db.Exec(`INSERT INTO runs (run_id, started_at) VALUES (?, ?)`, s.runID, s.timestamp()); err != nil {
		db.Close()
		s.db = nil
		return fmt.Errorf("record run: %w", err)
	}
	if err := s.persist(runsJSONL); err != nil {
		db.Close()
		s.db = nil
		return err
	}

	s.attached = true
	return nil
}

// Detach closes the database. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	s.attached = false
	return nil
}

// RunID identifies the current run. It is empty while detached.
func (s *Store) RunID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return ""
	}
	return s.runID
}

func createSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// generateUUID returns a UUID v7, falling back to v4.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
