package picker

import (
	"fmt"
	"log/slog"
	"sync"
)

// Item is one accepted file in the gallery sequence.
type Item struct {
	// ID is the opaque unique id assigned on acceptance.
	ID string

	// File is the accepted file.
	File *File

	// PreviewHandle is the token under which the preview bytes are served.
	// Released exactly once, when the item leaves the sequence.
	PreviewHandle string
}

// ItemView is the wire representation of an Item, pushed to clients by the
// session and returned by the intake handler.
type ItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	PreviewURL  string `json:"previewUrl"`
}

// ChangeFunc receives the complete new ordered sequence after every
// effective change. The slice is a copy; callers may retain it.
type ChangeFunc func(items []Item)

// Controller owns the ordered sequence of accepted items and applies the
// add, remove, and move transitions. It is safe for concurrent use:
// transitions are serialized, and the change callback runs outside the
// controller's lock so it may call back into the controller.
type Controller struct {
	limits   Limits
	maxCount int // 0 means unlimited
	store    *PreviewStore
	sink     Sink
	logger   *slog.Logger
	metrics  *Metrics

	mu        sync.Mutex
	onChange  ChangeFunc
	ownsStore bool
	items     []Item
	closed    bool
}

// NewController creates a Controller with the given options. A PreviewStore
// is created internally unless WithPreviewStore supplies one.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		limits: Limits{}.withDefaults(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = NewPreviewStore(
			WithPreviewSink(c.sink),
			WithPreviewLogger(c.logger),
			WithPreviewMetrics(c.metrics),
		)
		c.ownsStore = true
	}
	return c
}

// Add validates each file and appends the accepted ones, in input order, to
// the end of the sequence. Each rejected file yields one error to the sink.
// When a maximum count is configured, an oversized batch is truncated to the
// remaining capacity (keeping the first files in input order) with a single
// LimitExceeded error naming the dropped count; a full gallery rejects the
// whole batch with one LimitExceeded error and no insertion.
func (c *Controller) Add(files ...*File) {
	fn, items := c.add(files)
	if fn != nil {
		fn(items)
	}
}

func (c *Controller) add(files []*File) (ChangeFunc, []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || len(files) == 0 {
		return nil, nil
	}

	accepted := make([]*File, 0, len(files))
	for _, f := range files {
		if err := Validate(f, c.limits); err != nil {
			c.logger.Debug("file rejected", "name", f.Name, "reason", err.Kind.String())
			if c.metrics != nil {
				c.metrics.FilesRejected.WithLabelValues(err.Kind.String()).Inc()
			}
			report(c.sink, err)
			continue
		}
		accepted = append(accepted, f)
	}
	if len(accepted) == 0 {
		return nil, nil
	}

	if c.maxCount > 0 {
		capacity := c.maxCount - len(c.items)
		if capacity <= 0 {
			if c.metrics != nil {
				c.metrics.FilesRejected.WithLabelValues(KindLimitExceeded.String()).Add(float64(len(accepted)))
			}
			report(c.sink, &Error{
				Kind:    KindLimitExceeded,
				Message: fmt.Sprintf("gallery is full: limit of %d files reached", c.maxCount),
			})
			return nil, nil
		}
		if len(accepted) > capacity {
			dropped := len(accepted) - capacity
			accepted = accepted[:capacity]
			if c.metrics != nil {
				c.metrics.FilesRejected.WithLabelValues(KindLimitExceeded.String()).Add(float64(dropped))
			}
			report(c.sink, &Error{
				Kind:    KindLimitExceeded,
				Message: fmt.Sprintf("%d of the selected files were dropped: only %d of %d slots left", dropped, capacity, c.maxCount),
			})
		}
	}

	for _, f := range accepted {
		item := Item{
			ID:            newItemID(),
			File:          f,
			PreviewHandle: c.store.Acquire(f),
		}
		c.items = append(c.items, item)
		if c.metrics != nil {
			c.metrics.FilesAccepted.Inc()
		}
	}
	return c.onChange, c.itemsLocked()
}

// Remove releases the item's preview handle and removes it from the
// sequence. Unknown ids are a no-op: no release, no change callback.
func (c *Controller) Remove(id string) {
	fn, items := c.remove(id)
	if fn != nil {
		fn(items)
	}
}

func (c *Controller) remove(id string) (ChangeFunc, []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, nil
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return nil, nil
	}

	c.store.Release(c.items[idx].PreviewHandle)
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return c.onChange, c.itemsLocked()
}

// Move relocates the item to toIndex, shifting the others. Out-of-range
// indexes clamp to the sequence bounds. Unknown ids and moves that leave
// the item in place are a no-op.
func (c *Controller) Move(id string, toIndex int) {
	fn, items := c.move(id, toIndex)
	if fn != nil {
		fn(items)
	}
}

func (c *Controller) move(id string, toIndex int) (ChangeFunc, []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, nil
	}
	if !c.moveLocked(id, toIndex) {
		return nil, nil
	}
	return c.onChange, c.itemsLocked()
}

// moveLocked applies the relocation and reports whether the sequence
// changed. Callers hold c.mu.
func (c *Controller) moveLocked(id string, toIndex int) bool {
	src := c.indexOf(id)
	if src < 0 {
		return false
	}
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex >= len(c.items) {
		toIndex = len(c.items) - 1
	}
	if toIndex == src {
		return false
	}

	item := c.items[src]
	rest := make([]Item, 0, len(c.items)-1)
	rest = append(rest, c.items[:src]...)
	rest = append(rest, c.items[src+1:]...)

	next := make([]Item, 0, len(c.items))
	next = append(next, rest[:toIndex]...)
	next = append(next, item)
	next = append(next, rest[toIndex:]...)
	c.items = next
	return true
}

// HandleDrop is the contract with the client drag capability: on drop
// completion it receives the dragged item's id and the id of the item it
// landed on. When both resolve to distinct existing items this becomes a
// Move to the target's position; anything else is ignored.
func (c *Controller) HandleDrop(sourceID, targetID string) {
	fn, items := c.handleDrop(sourceID, targetID)
	if fn != nil {
		fn(items)
	}
}

func (c *Controller) handleDrop(sourceID, targetID string) (ChangeFunc, []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || sourceID == targetID {
		return nil, nil
	}
	if c.indexOf(sourceID) < 0 {
		return nil, nil
	}
	target := c.indexOf(targetID)
	if target < 0 {
		return nil, nil
	}
	if !c.moveLocked(sourceID, target) {
		return nil, nil
	}
	return c.onChange, c.itemsLocked()
}

// Items returns a copy of the current ordered sequence.
func (c *Controller) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemsLocked()
}

// Views returns the wire representation of the current sequence.
func (c *Controller) Views() []ItemView {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ItemView, len(c.items))
	for i, item := range c.items {
		out[i] = ItemView{
			ID:          item.ID,
			Name:        item.File.Name,
			ContentType: item.File.ContentType,
			Size:        item.File.Size,
			PreviewURL:  c.store.URL(item.PreviewHandle),
		}
	}
	return out
}

// Len returns the number of items in the sequence.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Store returns the preview store serving this gallery's handles.
func (c *Controller) Store() *PreviewStore {
	return c.store
}

// Limits returns the validation limits in effect.
func (c *Controller) Limits() Limits {
	return c.limits
}

// MaxCount returns the configured maximum item count, 0 when unlimited.
func (c *Controller) MaxCount() int {
	return c.maxCount
}

// SetOnChange replaces the change callback. Used by the session to wire
// itself to a controller built before the session existed.
func (c *Controller) SetOnChange(fn ChangeFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Close tears the gallery down, releasing every preview handle. The
// controller accepts no operations afterwards. No change callback fires.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for _, item := range c.items {
		c.store.Release(item.PreviewHandle)
	}
	c.items = nil
	if c.ownsStore {
		c.store.Close()
	}
}

// itemsLocked copies the sequence. Callers hold c.mu.
func (c *Controller) itemsLocked() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// indexOf returns the position of id in the sequence, -1 when absent.
// Callers hold c.mu.
func (c *Controller) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
