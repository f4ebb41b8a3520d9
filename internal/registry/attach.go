package registry

import (
	"io"

	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// AttachmentTask returns the callback the host invokes for each item of
// ct being edited. Every call adds ct's panels to host in collection
// order; each panel's trampoline writes Render(item) unmodified.
func AttachmentTask(host types.Host, ct types.ContentType) types.AttachFunc {
	return func(item types.Item) error {
		for panel := range ct.Panels().All() {
			err := host.AddPanel(types.PanelRegistration{
				ID:       panel.ID(),
				Title:    panel.Title(),
				Render:   trampoline(panel, item),
				Context:  panel.Context(),
				Priority: panel.Priority(),
			})
			if err != nil {
				return err
			}
		}
		return nil
	}
}

func trampoline(panel types.Panel, item types.Item) types.Trampoline {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, panel.Render(item))
		return err
	}
}
