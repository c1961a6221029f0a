// Package upload receives browser file selections for a gallery picker.
//
// WebSocket connections are poor at carrying large binary payloads (they
// block the heartbeat and the event loop), so file content takes a plain
// HTTP POST while gestures and state updates stay on the live session:
//
//  1. User picks files in <input type="file">
//  2. Client POSTs them as multipart form data to the intake endpoint
//  3. The handler validates and adds them through the gallery Controller
//  4. The response carries the resulting ordered sequence as JSON
//
// Validation failures flow through the controller's error sink like every
// other picker failure; the HTTP response stays 200 for a partially
// accepted batch.
package upload
