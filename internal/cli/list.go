package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// errJournalRequired is returned by journal commands on the memory
// backend.
var errJournalRequired = fmt.Errorf("command requires the %s backend", types.BackendSQLite)

type listOutput struct {
	ContentTypes []listContentType `json:"content_types"`
	Taxonomies   []listTaxonomy    `json:"taxonomies"`
}

type listContentType struct {
	Key             string         `json:"key"`
	RemovedFeatures []string       `json:"removed_features"`
	RunID           string         `json:"run_id"`
	Payload         map[string]any `json:"payload"`
}

type listTaxonomy struct {
	Key          string         `json:"key"`
	ContentTypes []string       `json:"content_types"`
	RunID        string         `json:"run_id"`
	Payload      map[string]any `json:"payload"`
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the journaled content types and taxonomies",
		Args:  cobra.NoArgs,
		RunE:  a.runList,
	}
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	if a.backend() != types.BackendSQLite {
		return errJournalRequired
	}

	store, err := a.attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	cts, err := store.ContentTypes()
	if err != nil {
		return sysError(err)
	}
	txs, err := store.Taxonomies()
	if err != nil {
		return sysError(err)
	}

	var result listOutput
	for _, ct := range cts {
		result.ContentTypes = append(result.ContentTypes, listContentType{
			Key:             ct.Key,
			RemovedFeatures: ct.RemovedFeatures,
			RunID:           ct.RunID,
			Payload:         ct.Payload,
		})
	}
	for _, tx := range txs {
		result.Taxonomies = append(result.Taxonomies, listTaxonomy{
			Key:          tx.Key,
			ContentTypes: tx.ContentTypes,
			RunID:        tx.RunID,
			Payload:      tx.Payload,
		})
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return writeJSON(out, result)
	}

	fmt.Fprintln(out, "content types:")
	for _, ct := range result.ContentTypes {
		fmt.Fprintf(out, "  %s (removed: %s)\n", ct.Key, strings.Join(ct.RemovedFeatures, ", "))
	}
	fmt.Fprintln(out, "taxonomies:")
	for _, tx := range result.Taxonomies {
		fmt.Fprintf(out, "  %s -> %s\n", tx.Key, strings.Join(tx.ContentTypes, ", "))
	}
	return nil
}

func (a *app) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Export the journal as JSONL files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.backend() != types.BackendSQLite {
				return errJournalRequired
			}

			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			if err := store.Export(args[0]); err != nil {
				return sysError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "exported to", args[0])
			return nil
		},
	}
}
