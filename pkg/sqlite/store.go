// Package sqlite exposes the SQLite registration journal.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".typereg-db",
//	})
//	defer store.Detach()
package sqlite

import "github.com/mesh-intelligence/contenttypes/internal/sqlite"

// Store journals content type, feature and taxonomy registrations.
type Store = sqlite.Store

// NewStore returns a detached store.
func NewStore() *Store {
	return sqlite.NewStore()
}
