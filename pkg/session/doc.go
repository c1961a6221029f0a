// Package session connects a gallery controller to its browser client.
//
// One Session serves one mounted widget over one WebSocket connection.
// Client gestures (remove clicks, drag-drop completions) arrive as small
// JSON events, are queued, and are applied to the controller by a single
// goroutine in arrival order. After
// every effective change the session pushes the complete new ordered
// sequence back to the client; picker failures are pushed as error messages.
//
// File content does not travel over the session; see pkg/upload.
package session
