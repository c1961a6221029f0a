package session

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/galleria-dev/galleria/pkg/picker"
)

// Factory builds the controller for a newly connected widget. It receives
// the session so it can wire the session's Sink as the controller's error
// sink:
//
//	session.Handler(func(s *session.Session) *picker.Controller {
//	    return picker.NewController(picker.WithErrorSink(s.Sink()))
//	})
type Factory func(s *Session) *picker.Controller

// HandlerConfig configures the WebSocket upgrade.
type HandlerConfig struct {
	// ReadBufferSize and WriteBufferSize size the connection buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// CheckOrigin validates the Origin header. nil uses the gorilla
	// default (same-origin only).
	CheckOrigin func(*http.Request) bool

	// Logger logs upgrade failures.
	Logger *slog.Logger
}

// Handler returns an http.Handler that upgrades the request and serves a
// widget session until the client disconnects. Each connection gets its own
// controller from build; disconnecting tears it down.
func Handler(build Factory, opts ...Option) http.Handler {
	return HandlerWithConfig(build, HandlerConfig{}, opts...)
}

// HandlerWithConfig is Handler with upgrade configuration.
func HandlerWithConfig(build Factory, config HandlerConfig, opts ...Option) http.Handler {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	upgrader := websocket.Upgrader{
		ReadBufferSize:  config.ReadBufferSize,
		WriteBufferSize: config.WriteBufferSize,
		CheckOrigin:     config.CheckOrigin,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}

		s := New(conn, opts...)
		s.Bind(build(s))
		s.Run()
	})
}
