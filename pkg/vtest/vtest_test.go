package vtest

import (
	"testing"

	"github.com/galleria-dev/galleria/pkg/vdom"
)

func sample() *vdom.VNode {
	return vdom.Div(
		vdom.Class("outer"),
		vdom.Ul(
			vdom.Class("list", "compact"),
			vdom.Li(vdom.Class("row"), "first"),
			vdom.Li(vdom.Class("row"), "second"),
		),
		vdom.Button(vdom.TypeAttr("button"), "go"),
	)
}

func TestFindByClass(t *testing.T) {
	root := sample()

	if got := FindByClass(root, "compact"); got == nil || got.Tag != "ul" {
		t.Errorf("FindByClass(compact) = %v, want the ul", got)
	}
	if got := FindByClass(root, "row"); got == nil || got.Children[0].Text != "first" {
		t.Error("FindByClass should return the first match in depth-first order")
	}
	// Substring of a class name is not a match.
	if got := FindByClass(root, "comp"); got != nil {
		t.Errorf("FindByClass(comp) = %v, want nil", got)
	}
	if got := FindByClass(nil, "row"); got != nil {
		t.Error("nil root should find nothing")
	}
}

func TestFindByTag(t *testing.T) {
	root := sample()

	if got := FindByTag(root, "button"); got == nil {
		t.Error("FindByTag(button) found nothing")
	}
	if got := FindByTag(root, "table"); got != nil {
		t.Errorf("FindByTag(table) = %v, want nil", got)
	}
}

func TestFindAll(t *testing.T) {
	root := sample()

	rows := FindAll(root, func(n *vdom.VNode) bool { return n.Tag == "li" })
	if len(rows) != 2 {
		t.Fatalf("FindAll(li) returned %d nodes, want 2", len(rows))
	}
	if rows[0].Children[0].Text != "first" || rows[1].Children[0].Text != "second" {
		t.Error("FindAll should preserve depth-first order")
	}
}

func TestExpectHelpers(t *testing.T) {
	root := sample()

	ExpectContains(t, root, "second")
	ExpectNotContains(t, root, "third")
	ExpectElement(t, root, "ul")
	ExpectAttribute(t, root, "class", "outer")
}

func TestRenderToStringNil(t *testing.T) {
	if got := RenderToString(nil); got != "" {
		t.Errorf("RenderToString(nil) = %q, want empty", got)
	}
}
