package picker

import (
	"fmt"

	"github.com/galleria-dev/galleria/pkg/hooks"
	"github.com/galleria-dev/galleria/pkg/vdom"
)

// GalleryOption configures the Gallery component.
type GalleryOption func(*galleryConfig)

type galleryConfig struct {
	multiple  bool
	disabled  bool
	className string
	inputID   string
	dragGroup string
	animation int
}

func defaultGalleryConfig() galleryConfig {
	return galleryConfig{
		multiple:  true,
		inputID:   "galleria-input",
		dragGroup: "galleria",
		animation: 150,
	}
}

// GalleryMultiple enables or disables multi-file selection.
func GalleryMultiple(multiple bool) GalleryOption {
	return func(c *galleryConfig) {
		c.multiple = multiple
	}
}

// GalleryDisabled disables the picker: the file input is inert and the
// drag capability is switched off.
func GalleryDisabled(disabled bool) GalleryOption {
	return func(c *galleryConfig) {
		c.disabled = disabled
	}
}

// GalleryClass adds a class to the root element.
func GalleryClass(className string) GalleryOption {
	return func(c *galleryConfig) {
		c.className = className
	}
}

// GalleryInputID sets the id of the file input element.
func GalleryInputID(id string) GalleryOption {
	return func(c *galleryConfig) {
		c.inputID = id
	}
}

// GalleryDragGroup sets the sortable group name.
func GalleryDragGroup(group string) GalleryOption {
	return func(c *galleryConfig) {
		c.dragGroup = group
	}
}

// Gallery renders the upload picker widget for the controller's current
// sequence: one keyed tile per item in display order, a remove button per
// tile, and the file input. Reordering is delegated to the client Sortable
// capability; its drop completions come back through the controller's
// HandleDrop.
func Gallery(ctrl *Controller, opts ...GalleryOption) *vdom.VNode {
	cfg := defaultGalleryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	items := ctrl.Items()
	store := ctrl.Store()

	classes := []string{"galleria"}
	if cfg.className != "" {
		classes = append(classes, cfg.className)
	}

	return vdom.Div(
		vdom.Class(classes...),
		vdom.Div(
			vdom.Class("galleria-grid"),
			vdom.Role("list"),
			hooks.Sortable(hooks.SortableConfig{
				Group:      cfg.dragGroup,
				Animation:  cfg.animation,
				GhostClass: "galleria-ghost",
				Disabled:   cfg.disabled,
			}),
			hooks.OnEvent(hooks.EventReorder, func(e hooks.Event) {
				if source, target, ok := hooks.DropCompletion(e); ok {
					ctrl.HandleDrop(source, target)
				}
			}),
			vdom.Map(items, func(item Item) *vdom.VNode {
				return galleryTile(ctrl, store, item)
			}),
		),
		galleryInput(ctrl, cfg),
	)
}

// galleryTile renders one item: preview image, caption, remove button.
func galleryTile(ctrl *Controller, store *PreviewStore, item Item) *vdom.VNode {
	id := item.ID
	return vdom.Figure(
		vdom.Key(id),
		vdom.Class("galleria-tile"),
		vdom.Data("item-id", id),
		vdom.Role("listitem"),
		vdom.Img(
			vdom.Src(store.URL(item.PreviewHandle)),
			vdom.Alt(item.File.Name),
		),
		vdom.Figcaption(item.File.Name),
		vdom.Button(
			vdom.TypeAttr("button"),
			vdom.Class("galleria-remove"),
			vdom.AriaLabel(fmt.Sprintf("Remove %s", item.File.Name)),
			vdom.OnClick(func() { ctrl.Remove(id) }),
			"×",
		),
	)
}

// galleryInput renders the file selection input.
func galleryInput(ctrl *Controller, cfg galleryConfig) *vdom.VNode {
	full := ctrl.MaxCount() > 0 && ctrl.Len() >= ctrl.MaxCount()
	return vdom.Label(
		vdom.Class("galleria-add"),
		vdom.For(cfg.inputID),
		vdom.Input(
			vdom.ID(cfg.inputID),
			vdom.TypeAttr("file"),
			vdom.Name("files"),
			vdom.Accept(ctrl.Limits().Accept),
			vdom.Multiple(cfg.multiple),
			vdom.Disabled(cfg.disabled || full),
		),
		vdom.Span("Add images"),
	)
}
