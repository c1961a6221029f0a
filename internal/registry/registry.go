// Package registry tracks live galleries for the demo server, keyed by the
// gallery id issued to each page load. The upload route and the WebSocket
// session resolve the same controller through it, and idle galleries are
// swept so abandoned tabs do not leak previews.
package registry

import (
	"log/slog"
	"sync"
	"time"

	"github.com/galleria-dev/galleria/pkg/picker"
)

// Builder creates the controller for a new gallery id.
type Builder func(id string) *picker.Controller

// Registry maps gallery ids to their controllers.
type Registry struct {
	build  Builder
	ttl    time.Duration
	logger *slog.Logger

	mu        sync.Mutex
	galleries map[string]*entry
	closed    bool

	done     chan struct{}
	stopOnce sync.Once
}

type entry struct {
	ctrl     *picker.Controller
	lastSeen time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithTTL sets how long an untouched gallery survives before the sweeper
// closes it. Default 30 minutes.
func WithTTL(d time.Duration) Option {
	return func(r *Registry) { r.ttl = d }
}

// WithLogger sets the logger. Default slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// New creates a Registry and starts its sweep loop.
func New(build Builder, opts ...Option) *Registry {
	r := &Registry{
		build:     build,
		ttl:       30 * time.Minute,
		logger:    slog.Default(),
		galleries: make(map[string]*entry),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	go r.sweep()
	return r
}

// Get returns the controller for id, creating it on first sight. Every
// call refreshes the gallery's idle timer.
func (r *Registry) Get(id string) *picker.Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	e, ok := r.galleries[id]
	if !ok {
		e = &entry{ctrl: r.build(id)}
		r.galleries[id] = e
		r.logger.Debug("gallery created", "gallery", id)
	}
	e.lastSeen = time.Now()
	return e.ctrl
}

// Lookup returns the controller for id without creating one.
func (r *Registry) Lookup(id string) (*picker.Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.galleries[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.ctrl, true
}

// Drop closes the gallery and forgets it. Unknown ids are a no-op.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	e, ok := r.galleries[id]
	if ok {
		delete(r.galleries, id)
	}
	r.mu.Unlock()
	if ok {
		e.ctrl.Close()
		r.logger.Debug("gallery dropped", "gallery", id)
	}
}

// Len returns the number of live galleries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.galleries)
}

// Close stops the sweeper and closes every gallery.
func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.done) })

	r.mu.Lock()
	galleries := r.galleries
	r.galleries = make(map[string]*entry)
	r.closed = true
	r.mu.Unlock()

	for _, e := range galleries {
		e.ctrl.Close()
	}
}

func (r *Registry) sweep() {
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.sweepOnce(time.Now())
		}
	}
}

func (r *Registry) sweepOnce(now time.Time) {
	var expired []*entry

	r.mu.Lock()
	for id, e := range r.galleries {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.galleries, id)
			expired = append(expired, e)
			r.logger.Debug("gallery expired", "gallery", id)
		}
	}
	r.mu.Unlock()

	for _, e := range expired {
		e.ctrl.Close()
	}
}
