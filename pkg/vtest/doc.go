// Package vtest provides testing helpers for gallery components.
//
// The helpers cut boilerplate in component tests: render a node tree to
// HTML and assert on the output, or query the tree directly for an
// element by class or tag.
//
//	root := picker.Gallery(ctrl)
//	vtest.ExpectContains(t, root, "galleria-grid")
//
//	tile := vtest.FindByClass(root, "galleria-tile")
//	if tile == nil {
//	    t.Fatal("no tile rendered")
//	}
package vtest
