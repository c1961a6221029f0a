package picker

import "log/slog"

// Option configures a Controller.
type Option func(*Controller)

// WithMaxCount caps the number of items in the gallery. 0 means unlimited.
func WithMaxCount(n int) Option {
	return func(c *Controller) {
		c.maxCount = n
	}
}

// WithMaxSize sets the maximum file size in bytes.
func WithMaxSize(bytes int64) Option {
	return func(c *Controller) {
		c.limits.MaxSizeBytes = bytes
		c.limits = c.limits.withDefaults()
	}
}

// WithAccept sets the accepted type patterns (comma-separated).
func WithAccept(patterns string) Option {
	return func(c *Controller) {
		c.limits.Accept = patterns
		c.limits = c.limits.withDefaults()
	}
}

// WithOnChange sets the callback receiving the full sequence after every
// effective change.
func WithOnChange(fn ChangeFunc) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithErrorSink sets the sink receiving validation and lifecycle failures.
func WithErrorSink(sink Sink) Option {
	return func(c *Controller) {
		c.sink = sink
	}
}

// WithPreviewStore supplies a shared preview store. The controller releases
// its items' handles on Close but does not close a supplied store.
func WithPreviewStore(store *PreviewStore) Option {
	return func(c *Controller) {
		c.store = store
		c.ownsStore = false
	}
}

// WithLogger sets the controller's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}
