package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contenttypes/pkg/contenttypes"
)

const modulePath = "github.com/mesh-intelligence/contenttypes"

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the typereg version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "typereg v%s\nmodule: %s\n", contenttypes.Version, modulePath)
			return nil
		},
	}
}
