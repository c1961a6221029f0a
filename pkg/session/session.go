package session

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/galleria-dev/galleria/pkg/picker"
)

// Client event types.
const (
	evRemove  = "remove"
	evReorder = "reorder"
	evMove    = "move"
)

// clientEvent is a gesture sent by the browser.
type clientEvent struct {
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
	Source string `json:"source,omitempty"`
	Target string `json:"target,omitempty"`
	Index  int    `json:"index"`
}

// statePush carries the full ordered sequence to the client.
type statePush struct {
	Type  string            `json:"type"`
	Items []picker.ItemView `json:"items"`
}

// errorPush carries a picker failure to the client.
type errorPush struct {
	Type    string `json:"type"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
}

// Session binds one gallery controller to one WebSocket connection.
type Session struct {
	ctrl   *picker.Controller
	conn   *websocket.Conn
	logger *slog.Logger

	readTimeout  time.Duration
	writeTimeout time.Duration
	pingInterval time.Duration
	queueSize    int
	sharedCtrl   bool

	events    chan clientEvent
	done      chan struct{}
	closeOnce sync.Once
	writeMu   sync.Mutex
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithReadTimeout sets the read deadline window. Default: 60s.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.readTimeout = d
	}
}

// WithWriteTimeout sets the per-write deadline. Default: 10s.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.writeTimeout = d
	}
}

// WithQueueSize sets the pending-event buffer. Default: 64.
func WithQueueSize(n int) Option {
	return func(s *Session) {
		s.queueSize = n
	}
}

// WithSharedController keeps the controller alive when the session ends.
// Use it when one controller outlives individual connections, e.g. a shared
// demo gallery; by default disconnecting tears the controller down.
func WithSharedController() Option {
	return func(s *Session) {
		s.sharedCtrl = true
	}
}

// New creates a Session over an established connection. The caller wires
// the controller afterwards via Bind; Handler does both.
func New(conn *websocket.Conn, opts ...Option) *Session {
	s := &Session{
		conn:         conn,
		logger:       slog.Default(),
		readTimeout:  60 * time.Second,
		writeTimeout: 10 * time.Second,
		pingInterval: 25 * time.Second,
		queueSize:    64,
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.events = make(chan clientEvent, s.queueSize)
	return s
}

// Bind attaches the controller and subscribes the session to its changes.
func (s *Session) Bind(ctrl *picker.Controller) {
	s.ctrl = ctrl
	ctrl.SetOnChange(s.pushState)
}

// Sink returns a picker error sink that forwards failures to the client.
func (s *Session) Sink() picker.Sink {
	return func(e *picker.Error) {
		s.pushError(e)
	}
}

// Run serves the session: one goroutine applies queued events in arrival
// order while Run itself blocks in the read loop. On exit the controller is
// torn down, releasing every preview handle.
func (s *Session) Run() {
	defer s.Close()

	// Initial state so a reconnecting client resyncs immediately.
	s.pushState(nil)

	var workers sync.WaitGroup
	workers.Add(1)
	go func() {
		defer workers.Done()
		s.applyLoop()
	}()

	if s.pingInterval > 0 {
		workers.Add(1)
		go func() {
			defer workers.Done()
			s.pingLoop()
		}()
	}

	s.readLoop()
	close(s.events)
	workers.Wait()
}

// Close tears the session down. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.conn != nil {
			s.conn.Close()
		}
		if s.ctrl != nil && !s.sharedCtrl {
			s.ctrl.Close()
		}
	})
}

// readLoop reads client events until the connection drops.
func (s *Session) readLoop() {
	if s.conn == nil {
		return
	}
	s.conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(s.readTimeout))
		return nil
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("session read error", "error", err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(s.readTimeout))

		var ev clientEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.logger.Error("event decode error", "error", err)
			continue
		}

		select {
		case s.events <- ev:
		default:
			s.logger.Warn("event queue full, dropping event", "type", ev.Type)
		}
	}
}

// applyLoop applies events to the controller, strictly in arrival order.
func (s *Session) applyLoop() {
	for ev := range s.events {
		s.apply(ev)
	}
}

// apply dispatches one client event.
func (s *Session) apply(ev clientEvent) {
	switch ev.Type {
	case evRemove:
		s.ctrl.Remove(ev.ID)
	case evReorder:
		s.ctrl.HandleDrop(ev.Source, ev.Target)
	case evMove:
		s.ctrl.Move(ev.ID, ev.Index)
	default:
		s.logger.Warn("unknown event type", "type", ev.Type)
	}
}

// pingLoop keeps the connection alive.
func (s *Session) pingLoop() {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(s.writeTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

// pushState sends the full new sequence to the client. The item slice from
// the change callback is ignored in favor of the controller's view form,
// which carries preview URLs.
func (s *Session) pushState([]picker.Item) {
	s.writeJSON(statePush{Type: "state", Items: s.ctrl.Views()})
}

// pushError forwards a picker failure to the client.
func (s *Session) pushError(e *picker.Error) {
	msg := errorPush{
		Type:    "error",
		Kind:    e.Kind.String(),
		Message: e.Message,
	}
	if e.File != nil {
		msg.File = e.File.Name
	}
	s.writeJSON(msg)
}

// writeJSON serializes v to the connection under the write lock.
func (s *Session) writeJSON(v any) {
	if s.conn == nil {
		return
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	if err := s.conn.WriteJSON(v); err != nil {
		s.logger.Error("session write error", "error", err)
	}
}
