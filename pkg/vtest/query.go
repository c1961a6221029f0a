package vtest

import (
	"strings"

	"github.com/galleria-dev/galleria/pkg/vdom"
)

// FindByClass walks the tree depth-first for the first element carrying
// the class. Returns nil when nothing matches.
func FindByClass(node *vdom.VNode, class string) *vdom.VNode {
	return Find(node, func(n *vdom.VNode) bool {
		c, ok := n.Props["class"].(string)
		return ok && hasClass(c, class)
	})
}

// FindByTag walks the tree depth-first for the first element with the tag.
func FindByTag(node *vdom.VNode, tag string) *vdom.VNode {
	return Find(node, func(n *vdom.VNode) bool {
		return n.Tag == tag
	})
}

// Find walks the tree depth-first for the first node matching pred.
func Find(node *vdom.VNode, pred func(*vdom.VNode) bool) *vdom.VNode {
	if node == nil {
		return nil
	}
	if pred(node) {
		return node
	}
	for _, child := range node.Children {
		if found := Find(child, pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll collects every node matching pred, in depth-first order.
func FindAll(node *vdom.VNode, pred func(*vdom.VNode) bool) []*vdom.VNode {
	var out []*vdom.VNode
	if node == nil {
		return out
	}
	if pred(node) {
		out = append(out, node)
	}
	for _, child := range node.Children {
		out = append(out, FindAll(child, pred)...)
	}
	return out
}

// hasClass reports whether the space-separated class list contains class.
func hasClass(list, class string) bool {
	for _, c := range strings.Fields(list) {
		if c == class {
			return true
		}
	}
	return false
}
