// Package vdom provides the virtual DOM representation for Galleria widgets.
//
// Widgets render to an in-memory VNode tree on the server. The tree is
// turned into HTML by pkg/render for the initial page, and re-rendered
// whenever the widget's state changes. Element constructors accept a mixed
// variadic argument list (attributes, children, text, event handlers) so
// render code reads like the markup it produces:
//
//	vdom.Div(vdom.Class("gallery"),
//	    vdom.Img(vdom.Src(url), vdom.Alt(name)),
//	    vdom.Button(vdom.OnClick(remove), "Remove"),
//	)
package vdom
