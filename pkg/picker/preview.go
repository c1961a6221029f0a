package picker

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// PreviewStore tracks the ephemeral preview handles created for accepted
// files. A handle is acquired when a file enters the gallery and released
// exactly once, when the item is removed or the gallery is torn down. While
// live, the handle's bytes are served over HTTP at BasePath+handle.
type PreviewStore struct {
	basePath  string
	sink      Sink
	logger    *slog.Logger
	metrics   *Metrics
	onRelease func(handle string) error

	mu      sync.RWMutex
	entries map[string]*previewEntry
}

type previewEntry struct {
	contentType string
	data        []byte
}

// PreviewOption configures a PreviewStore.
type PreviewOption func(*PreviewStore)

// WithBasePath sets the URL prefix under which previews are served.
// Default: "/previews/".
func WithBasePath(path string) PreviewOption {
	return func(s *PreviewStore) {
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		s.basePath = path
	}
}

// WithPreviewSink sets the sink receiving release failures.
func WithPreviewSink(sink Sink) PreviewOption {
	return func(s *PreviewStore) {
		s.sink = sink
	}
}

// WithPreviewLogger sets the store's logger.
func WithPreviewLogger(logger *slog.Logger) PreviewOption {
	return func(s *PreviewStore) {
		s.logger = logger
	}
}

// WithPreviewMetrics sets the metrics collector.
func WithPreviewMetrics(m *Metrics) PreviewOption {
	return func(s *PreviewStore) {
		s.metrics = m
	}
}

// WithOnRelease installs a callback invoked for each released handle, e.g.
// to drop a cache entry. A callback error or panic never propagates to the
// caller; it is reported through the sink with kind Unknown.
func WithOnRelease(fn func(handle string) error) PreviewOption {
	return func(s *PreviewStore) {
		s.onRelease = fn
	}
}

// NewPreviewStore creates an empty PreviewStore.
func NewPreviewStore(opts ...PreviewOption) *PreviewStore {
	s := &PreviewStore{
		basePath: "/previews/",
		logger:   slog.Default(),
		entries:  make(map[string]*previewEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Acquire registers the file's bytes under a fresh handle and returns it.
func (s *PreviewStore) Acquire(f *File) string {
	handle := newHandle()

	s.mu.Lock()
	s.entries[handle] = &previewEntry{
		contentType: f.ContentType,
		data:        f.Data,
	}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.PreviewsActive.Inc()
	}
	return handle
}

// Release forgets the handle. Unknown or already-released handles are a
// no-op, not an error. Release never panics outward; callback failures are
// reported through the sink.
func (s *PreviewStore) Release(handle string) {
	s.mu.Lock()
	_, ok := s.entries[handle]
	if ok {
		delete(s.entries, handle)
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	if s.metrics != nil {
		s.metrics.PreviewsActive.Dec()
		s.metrics.PreviewsReleased.Inc()
	}
	s.runRelease(handle)
}

// runRelease invokes the release callback, converting errors and panics
// into sink reports.
func (s *PreviewStore) runRelease(handle string) {
	if s.onRelease == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("preview release panic", "handle", handle, "panic", r)
			report(s.sink, &Error{
				Kind:    KindUnknown,
				Message: fmt.Sprintf("preview release failed: %v", r),
			})
		}
	}()

	if err := s.onRelease(handle); err != nil {
		s.logger.Error("preview release failed", "handle", handle, "error", err)
		report(s.sink, &Error{
			Kind:    KindUnknown,
			Message: "preview release failed: " + err.Error(),
			Wrapped: err,
		})
	}
}

// URL returns the path at which the handle's bytes are served.
func (s *PreviewStore) URL(handle string) string {
	return s.basePath + handle
}

// Outstanding returns the number of live handles.
func (s *PreviewStore) Outstanding() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close releases every outstanding handle.
func (s *PreviewStore) Close() {
	s.mu.Lock()
	handles := make([]string, 0, len(s.entries))
	for h := range s.entries {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		s.Release(h)
	}
}

// ServeHTTP serves the bytes of a live handle with its content type.
// Released handles 404. The handle is the final path segment.
func (s *PreviewStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	handle := r.URL.Path
	if i := strings.LastIndexByte(handle, '/'); i >= 0 {
		handle = handle[i+1:]
	}

	s.mu.RLock()
	entry, ok := s.entries[handle]
	s.mu.RUnlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	ct := entry.contentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Length", strconv.Itoa(len(entry.data)))
	// Previews are immutable for the life of the handle.
	w.Header().Set("Cache-Control", "private, max-age=31536000, immutable")
	if r.Method == http.MethodHead {
		return
	}
	w.Write(entry.data)
}
