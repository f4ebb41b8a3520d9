package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contenttypes/internal/host"
	"github.com/mesh-intelligence/contenttypes/internal/manifest"
	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// activation is the JSON form of one content type the host accepted.
type activation struct {
	Key        string        `json:"key"`
	Features   []string      `json:"features"`
	Taxonomies []string      `json:"taxonomies"`
	Payload    types.Payload `json:"payload"`
}

func (a *app) newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <manifest>",
		Short: "Activate the content types declared in a manifest",
		Long: `Activate registers every content type in the manifest, fires the host's
init phase, and prints what the host accepted. With the sqlite backend the
registrations are journaled in the data directory.

Example:
  typereg activate catalog.yaml
  typereg activate catalog.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: a.runActivate,
	}
}

func (a *app) runActivate(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}

	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.activate(cmd.Context(), m); err != nil {
		return err
	}
	a.logger.Info("manifest activated", "manifest", args[0], "content_types", len(m.ContentTypes))

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return writeJSON(out, activations(s.runtime))
	}

	for _, act := range activations(s.runtime) {
		fmt.Fprintf(out, "%s\n", act.Key)
		fmt.Fprintf(out, "  features:   %s\n", strings.Join(act.Features, ", "))
		fmt.Fprintf(out, "  taxonomies: %s\n", strings.Join(act.Taxonomies, ", "))
	}
	return nil
}

// activations reports every content type in rt with the taxonomies
// attached to it.
func activations(rt *host.Runtime) []activation {
	taxonomies := make(map[string][]string)
	for _, tx := range rt.Taxonomies() {
		for _, key := range tx.ContentTypes {
			taxonomies[key] = append(taxonomies[key], tx.Key)
		}
	}

	out := make([]activation, 0)
	for _, ct := range rt.ContentTypes() {
		attached := taxonomies[ct.Key]
		if attached == nil {
			attached = []string{}
		}
		out = append(out, activation{
			Key:        ct.Key,
			Features:   ct.Features,
			Taxonomies: attached,
			Payload:    ct.Payload,
		})
	}
	return out
}

func (a *app) newRenderCmd() *cobra.Command {
	var (
		title  string
		status string
		meta   []string
	)

	cmd := &cobra.Command{
		Use:   "render <manifest> <content-type>",
		Short: "Render the edit panels of a content type",
		Long: `Render activates the manifest, opens the edit screen of a new item of the
given content type, and prints its panels in display order.

Example:
  typereg render catalog.yaml article --title "Hello" --meta notes="check facts"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseMeta(meta)
			if err != nil {
				return err
			}
			item := types.Item{
				ID:          uuid.NewString(),
				ContentType: args[1],
				Title:       title,
				Status:      status,
				Meta:        fields,
			}
			return a.runRender(cmd, args[0], item)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "item title")
	cmd.Flags().StringVar(&status, "status", "draft", "item status")
	cmd.Flags().StringArrayVar(&meta, "meta", nil, "item meta field as key=value (repeatable)")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, manifestPath string, item types.Item) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.activate(cmd.Context(), m); err != nil {
		return err
	}

	panels, err := s.runtime.EditItem(item)
	if err != nil {
		return err
	}
	a.logger.Info("item rendered", "item", item.ID, "content_type", item.ContentType, "panels", len(panels))

	return host.RenderPanels(cmd.OutOrStdout(), panels)
}

func parseMeta(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid meta %q (expected key=value)", pair)
		}
		fields[key] = value
	}
	return fields, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
