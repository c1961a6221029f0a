// Package render turns vdom trees into HTML for the initial page response.
//
// Rendering is deterministic: attributes are emitted in sorted order so the
// same tree always produces the same bytes. Event handler props are
// server-side values and are never serialized; client events reach the
// server through the widget's live session instead.
package render
