package render

import (
	"strings"
	"testing"

	"github.com/galleria-dev/galleria/pkg/vdom"
)

func TestRenderElement(t *testing.T) {
	node := vdom.Div(vdom.Class("gallery"), vdom.Span("hello"))

	html, err := ToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<div class="gallery"><span>hello</span></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderVoidElement(t *testing.T) {
	node := vdom.Img(vdom.Src("/previews/abc"), vdom.Alt("photo"))

	html, err := ToString(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<img alt="photo" src="/previews/abc">`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
	if strings.Contains(html, "</img>") {
		t.Error("void element must not have a closing tag")
	}
}

func TestRenderDeterministicAttrOrder(t *testing.T) {
	node := vdom.Input(
		vdom.TypeAttr("file"),
		vdom.Accept("image/*"),
		vdom.Name("files"),
	)

	first, _ := ToString(node)
	for i := 0; i < 10; i++ {
		again, _ := ToString(node)
		if again != first {
			t.Fatalf("non-deterministic output: %q vs %q", first, again)
		}
	}
	if first != `<input accept="image/*" name="files" type="file">` {
		t.Errorf("unexpected output: %q", first)
	}
}

func TestRenderBooleanAttrs(t *testing.T) {
	node := vdom.Input(vdom.TypeAttr("file"), vdom.Multiple(true), vdom.Disabled(false))

	html, _ := ToString(node)
	if !strings.Contains(html, " multiple") {
		t.Errorf("expected bare multiple attribute, got %q", html)
	}
	if strings.Contains(html, "disabled") {
		t.Errorf("false boolean attribute should be omitted, got %q", html)
	}
}

func TestRenderEscapesText(t *testing.T) {
	node := vdom.Span(`<script>alert("x")</script>`)

	html, _ := ToString(node)
	if strings.Contains(html, "<script>") {
		t.Errorf("text was not escaped: %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected entity-escaped text, got %q", html)
	}
}

func TestRenderEscapesAttrValues(t *testing.T) {
	node := vdom.Img(vdom.Alt(`"><img src=x onerror=alert(1)>`))

	html, _ := ToString(node)
	if strings.Contains(html, `"><img`) {
		t.Errorf("attribute was not escaped: %q", html)
	}
}

func TestRenderSkipsHandlers(t *testing.T) {
	node := vdom.Button(vdom.OnClick(func() {}), "Remove")

	html, _ := ToString(node)
	if strings.Contains(html, "onclick") {
		t.Errorf("handler prop must not serialize: %q", html)
	}
	if html != "<button>Remove</button>" {
		t.Errorf("unexpected output: %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	node := vdom.Fragment(vdom.Span("a"), vdom.Span("b"))

	html, _ := ToString(node)
	if html != "<span>a</span><span>b</span>" {
		t.Errorf("unexpected output: %q", html)
	}
}
