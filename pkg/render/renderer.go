package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/galleria-dev/galleria/pkg/vdom"
)

// Renderer handles server-side rendering of VNode trees to HTML.
type Renderer struct {
	// Pretty enables indented output. Development only; it inflates the
	// response size.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// ToString renders a VNode tree to an HTML string using default settings.
func ToString(node *vdom.VNode) (string, error) {
	return (&Renderer{}).RenderToString(node)
}

// RenderToString renders a VNode tree to a complete HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := w.Write([]byte(escapeHTML(node.Text)))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	// Void elements have no children and no closing tag.
	if vdom.IsVoidElement(tag) {
		if r.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if r.Pretty && len(node.Children) > 0 {
		w.Write([]byte{'\n'})
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if r.Pretty && len(node.Children) > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", tag)
	if r.Pretty {
		w.Write([]byte{'\n'})
	}
	return err
}

// renderAttributes renders all attributes for an element in sorted order.
// Function-valued props are server-side event handlers and are skipped.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		switch v := value.(type) {
		case nil:
			continue
		case bool:
			// Boolean attributes render bare when true, not at all when false.
			if v {
				if _, err := fmt.Fprintf(w, " %s", key); err != nil {
					return err
				}
			}
		case string:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(v)); err != nil {
				return err
			}
		case int, int64, uint64, float64:
			if _, err := fmt.Fprintf(w, ` %s="%v"`, key, v); err != nil {
				return err
			}
		default:
			// Event handlers and other non-serializable values.
			continue
		}
	}
	return nil
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	indent := r.Indent
	if indent == "" {
		indent = "  "
	}
	_, err := w.Write([]byte(strings.Repeat(indent, depth)))
	return err
}
