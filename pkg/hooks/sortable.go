package hooks

import "github.com/galleria-dev/galleria/pkg/vdom"

// Drop event contract between the client sortable capability and the server.
// On drop completion the client emits EventReorder carrying the keys of the
// dragged element and the element it landed on.
const (
	EventReorder = "reorder"
	KeySource    = "source"
	KeyTarget    = "target"
)

// SortableConfig configures the Sortable hook.
type SortableConfig struct {
	Group      string `json:"group,omitempty"`
	Animation  int    `json:"animation,omitempty"`
	GhostClass string `json:"ghostClass,omitempty"`
	Handle     string `json:"handle,omitempty"`
	Disabled   bool   `json:"disabled,omitempty"`
}

// Sortable creates a Sortable hook attribute. The client binds drag gesture
// recognition and collision detection to the element's children and reports
// completed drops through an EventReorder hook event.
func Sortable(config SortableConfig) vdom.Attr {
	m := map[string]any{
		"group":      config.Group,
		"animation":  config.Animation,
		"ghostClass": config.GhostClass,
		"handle":     config.Handle,
		"disabled":   config.Disabled,
	}
	return Hook("Sortable", m)
}

// DropCompletion extracts the (source, target) pair from a reorder event.
// ok is false when either key is missing.
func DropCompletion(e Event) (source, target string, ok bool) {
	source = e.String(KeySource)
	target = e.String(KeyTarget)
	return source, target, source != "" && target != ""
}
