package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contenttypes/internal/host"
	"github.com/mesh-intelligence/contenttypes/pkg/sqlite"
	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

var _ host.Journal = (*sqlite.Store)(nil)

func TestStoreAttachDetach(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := sqlite.NewStore()

	require.NoError(t, store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	assert.NotEmpty(t, store.RunID())
	assert.FileExists(t, filepath.Join(dir, "runs.jsonl"))

	require.NoError(t, store.Detach())
}
