package types

// Panel placement defaults.
const (
	DefaultPanelContext  = "advanced"
	DefaultPanelPriority = "default"
)

// Panel describes one editorial panel shown on an item's edit screen.
// Concrete panels embed *PanelBase and implement Render.
type Panel interface {
	ID() string
	Title() string

	// Context is the screen region the panel is placed in.
	Context() string

	// Priority orders panels within the context.
	Priority() string

	// Render returns the panel body for item. The text is emitted as-is;
	// escaping is the panel's job.
	Render(item Item) string
}

// PanelOptions holds the placement of a panel.
type PanelOptions struct {
	Context  string `json:"context" yaml:"context"`
	Priority string `json:"priority" yaml:"priority"`
}

// DefaultPanelOptions returns the host's default placement.
func DefaultPanelOptions() PanelOptions {
	return PanelOptions{
		Context:  DefaultPanelContext,
		Priority: DefaultPanelPriority,
	}
}

// PanelBase implements every Panel method except Render.
type PanelBase struct {
	id    string
	title string
	opts  PanelOptions
}

// NewPanelBase returns a PanelBase. The values are fixed after
// construction.
func NewPanelBase(id, title string, opts PanelOptions) *PanelBase {
	return &PanelBase{id: id, title: title, opts: opts}
}

func (p *PanelBase) ID() string       { return p.id }
func (p *PanelBase) Title() string    { return p.title }
func (p *PanelBase) Context() string  { return p.opts.Context }
func (p *PanelBase) Priority() string { return p.opts.Priority }
