package cli

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/contenttypes/internal/host"
	"github.com/mesh-intelligence/contenttypes/internal/manifest"
	"github.com/mesh-intelligence/contenttypes/internal/sqlite"
	"github.com/mesh-intelligence/contenttypes/pkg/registry"
	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// session wires a host runtime, its scheduler and a registry, journaling
// into the SQLite store when the sqlite backend is configured.
type session struct {
	store    *sqlite.Store
	runtime  *host.Runtime
	hooks    *host.Hooks
	registry types.Registry
}

func (a *app) openSession() (*session, error) {
	s := &session{}

	opts := host.Options{
		Registerer: a.metrics,
		Logger:     a.logger,
	}

	if a.backend() == types.BackendSQLite {
		store, err := a.attachStore()
		if err != nil {
			return nil, err
		}
		s.store = store
		opts.Journal = store
	}

	rt, err := host.NewRuntime(opts)
	if err != nil {
		s.close()
		return nil, sysError(fmt.Errorf("create runtime: %w", err))
	}

	s.runtime = rt
	s.hooks = host.NewHooks(a.logger)
	s.registry = registry.New(rt, s.hooks)
	return s, nil
}

// activate registers every content type of m and fires the init phase.
func (s *session) activate(ctx context.Context, m *manifest.Manifest) error {
	m.RegisterAll(s.registry)
	if err := s.hooks.Fire(ctx, types.PhaseInit); err != nil {
		return fmt.Errorf("activate: %w", err)
	}
	return nil
}

func (s *session) close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Detach()
}

// attachStore opens the journal in the resolved data directory. The
// caller must Detach it.
func (a *app) attachStore() (*sqlite.Store, error) {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	store := sqlite.NewStore()
	if err := store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return nil, sysError(fmt.Errorf("attach journal: %w", err))
	}
	a.logger.Debug("journal attached", "data_dir", dataDir, "run", store.RunID())
	return store, nil
}
