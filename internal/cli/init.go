package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contenttypes/internal/paths"
	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and data directories",
		Long: `Create the configuration directory with a default config.yaml and, for the
sqlite backend, an empty journal in the data directory.`,
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "typereg initialized")
	fmt.Fprintln(out, "  config: ", configDir)

	if a.backend() != types.BackendSQLite {
		fmt.Fprintln(out, "  backend:", a.backend())
		return nil
	}

	store, err := a.attachStore()
	if err != nil {
		return err
	}
	if err := store.Detach(); err != nil {
		return sysError(fmt.Errorf("detach journal: %w", err))
	}

	dataDir, err := a.resolveDataDir()
	if err != nil {
		return sysError(err)
	}
	fmt.Fprintln(out, "  data:   ", dataDir)
	return nil
}
