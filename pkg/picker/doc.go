// Package picker implements the gallery upload picker: file validation,
// preview handle lifecycle, and the ordered collection of accepted files.
//
// The picker is server-driven. Files selected in the browser arrive through
// the pkg/upload intake handler; user gestures (remove clicks, drag-drop
// completions) arrive through a pkg/session live session. The Controller
// owns the canonical ordered sequence of accepted items and reports every
// effective change to its owner as the complete new sequence.
//
// # Lifecycle
//
// Each accepted file receives a unique id and a preview handle from the
// PreviewStore. The handle is an opaque token under which the store serves
// the image bytes until the item is removed or the controller is torn down.
// A handle is released exactly once; releasing an unknown or already
// released handle is a no-op.
//
// # Errors
//
// All failures are non-fatal. They are reported through the configured Sink
// and never abort the operation, with one exception: adding to a full
// gallery skips insertion entirely for that call.
//
// # Concurrency
//
// The Controller is safe for concurrent use: the intake handler and the
// session's apply loop may drive the same gallery. Transitions are
// serialized, and the change callback runs outside the controller's lock;
// the PreviewStore locks internally because it also serves HTTP requests.
package picker
