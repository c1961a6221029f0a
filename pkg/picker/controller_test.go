package picker

import (
	"strings"
	"testing"
)

func png(name string, size int64) *File {
	return &File{Name: name, ContentType: "image/png", Size: size, Data: []byte("x")}
}

// harness bundles a controller with captured changes and errors.
type harness struct {
	ctrl     *Controller
	changes  [][]Item
	errs     []*Error
	releases int
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{}
	store := NewPreviewStore(WithOnRelease(func(string) error {
		h.releases++
		return nil
	}))
	opts = append(opts,
		WithPreviewStore(store),
		WithOnChange(func(items []Item) { h.changes = append(h.changes, items) }),
		WithErrorSink(func(e *Error) { h.errs = append(h.errs, e) }),
	)
	h.ctrl = NewController(opts...)
	t.Cleanup(h.ctrl.Close)
	return h
}

func (h *harness) ids() []string {
	items := h.ctrl.Items()
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestAddKeepsValidFilesInInputOrder(t *testing.T) {
	h := newHarness(t)

	h.ctrl.Add(png("a.png", 1), png("b.png", 2), png("c.png", 3))

	items := h.ctrl.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"a.png", "b.png", "c.png"} {
		if items[i].File.Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, items[i].File.Name)
		}
	}
	if len(h.errs) != 0 {
		t.Errorf("expected no errors, got %d", len(h.errs))
	}
	if len(h.changes) != 1 {
		t.Errorf("expected one change callback, got %d", len(h.changes))
	}
	if len(h.changes[0]) != 3 {
		t.Errorf("change callback should carry the full sequence, got %d items", len(h.changes[0]))
	}
}

func TestAddRejectsOversizedPerFile(t *testing.T) {
	h := newHarness(t, WithMaxSize(100))

	h.ctrl.Add(png("big1.png", 200), png("ok.png", 50), png("big2.png", 101))

	if h.ctrl.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", h.ctrl.Len())
	}
	if len(h.errs) != 2 {
		t.Fatalf("expected exactly one TooLarge error per oversized file, got %d", len(h.errs))
	}
	for _, e := range h.errs {
		if e.Kind != KindTooLarge {
			t.Errorf("expected TooLarge, got %v", e.Kind)
		}
		if e.File == nil {
			t.Error("error should carry the offending file")
		}
	}
}

func TestAddRejectsInvalidType(t *testing.T) {
	h := newHarness(t)

	h.ctrl.Add(&File{Name: "doc.pdf", ContentType: "application/pdf", Size: 10})

	if h.ctrl.Len() != 0 {
		t.Fatal("pdf must not enter an image/* gallery")
	}
	if len(h.errs) != 1 || h.errs[0].Kind != KindInvalidType {
		t.Fatalf("expected one InvalidType error, got %+v", h.errs)
	}
	if len(h.changes) != 0 {
		t.Error("no change callback when nothing was inserted")
	}
}

func TestAddFullGalleryRejectsWholeBatch(t *testing.T) {
	h := newHarness(t, WithMaxCount(2))
	h.ctrl.Add(png("a.png", 1), png("b.png", 2))
	before := h.ids()
	h.errs, h.changes = nil, nil

	h.ctrl.Add(png("c.png", 1), png("d.png", 2))

	if len(h.errs) != 1 || h.errs[0].Kind != KindLimitExceeded {
		t.Fatalf("expected a single LimitExceeded, got %+v", h.errs)
	}
	if len(h.changes) != 0 {
		t.Error("full gallery must not produce a change callback")
	}
	after := h.ids()
	if strings.Join(before, ",") != strings.Join(after, ",") {
		t.Error("sequence changed on a rejected batch")
	}
}

func TestAddTruncatesToCapacity(t *testing.T) {
	h := newHarness(t, WithMaxCount(3))
	h.ctrl.Add(png("a.png", 1), png("b.png", 1))
	h.errs, h.changes = nil, nil

	h.ctrl.Add(png("c.png", 1), png("d.png", 1), png("e.png", 1))

	items := h.ctrl.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	// First valid file in input order is the one kept.
	if items[2].File.Name != "c.png" {
		t.Errorf("expected c.png kept, got %s", items[2].File.Name)
	}
	if len(h.errs) != 1 || h.errs[0].Kind != KindLimitExceeded {
		t.Fatalf("expected a single LimitExceeded for the dropped pair, got %+v", h.errs)
	}
	if !strings.Contains(h.errs[0].Message, "2") {
		t.Errorf("message should name the dropped count: %q", h.errs[0].Message)
	}
}

func TestRemoveReleasesExactlyOneHandle(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Add(png("a.png", 1), png("b.png", 1))
	id := h.ids()[0]
	h.changes = nil

	h.ctrl.Remove(id)

	if h.releases != 1 {
		t.Errorf("expected exactly one release, got %d", h.releases)
	}
	for _, remaining := range h.ids() {
		if remaining == id {
			t.Error("removed id still present")
		}
	}
	if len(h.changes) != 1 {
		t.Errorf("expected one change callback, got %d", len(h.changes))
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Add(png("a.png", 1))
	h.changes = nil

	h.ctrl.Remove("no-such-id")

	if h.releases != 0 {
		t.Errorf("unknown id must not release a handle, got %d releases", h.releases)
	}
	if len(h.changes) != 0 {
		t.Error("unknown id must not produce a change callback")
	}
	if h.ctrl.Len() != 1 {
		t.Error("sequence changed")
	}
}

func TestMovePreservesSetAndChangesOrder(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Add(png("a.png", 1), png("b.png", 1), png("c.png", 1))
	ids := h.ids()
	h.changes = nil

	h.ctrl.Move(ids[0], 2)

	got := h.ids()
	want := []string{ids[1], ids[2], ids[0]}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got order %v, want %v", got, want)
	}
	if len(h.changes) != 1 {
		t.Errorf("expected one change callback, got %d", len(h.changes))
	}
}

func TestMoveToSamePositionIsNoop(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Add(png("a.png", 1), png("b.png", 1))
	ids := h.ids()
	h.changes = nil

	h.ctrl.Move(ids[1], 1)
	h.ctrl.Move("no-such-id", 0)

	if len(h.changes) != 0 {
		t.Errorf("expected no change callbacks, got %d", len(h.changes))
	}
}

func TestMoveClampsIndex(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Add(png("a.png", 1), png("b.png", 1), png("c.png", 1))
	ids := h.ids()

	h.ctrl.Move(ids[0], 99)

	got := h.ids()
	if got[len(got)-1] != ids[0] {
		t.Errorf("expected %s at the end, got %v", ids[0], got)
	}
}

func TestHandleDrop(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Add(png("a.png", 1), png("b.png", 1), png("c.png", 1))
	ids := h.ids()
	h.changes = nil

	// Valid drop: a lands on c.
	h.ctrl.HandleDrop(ids[0], ids[2])
	if got := h.ids(); got[2] != ids[0] {
		t.Errorf("expected %s at position 2, got %v", ids[0], got)
	}

	h.changes = nil
	h.ctrl.HandleDrop(ids[1], ids[1])  // same id: ignored
	h.ctrl.HandleDrop("ghost", ids[1]) // unknown source: ignored
	h.ctrl.HandleDrop(ids[1], "ghost") // unknown target: ignored
	if len(h.changes) != 0 {
		t.Errorf("ignored drops must not change state, got %d callbacks", len(h.changes))
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Add(png("keep.png", 1))
	before := h.ids()

	h.ctrl.Add(png("transient.png", 1))
	added := h.ids()[1]
	h.ctrl.Remove(added)

	after := h.ids()
	if strings.Join(before, ",") != strings.Join(after, ",") {
		t.Errorf("sequence not restored: before %v, after %v", before, after)
	}
	if h.releases != 1 {
		t.Errorf("expected exactly one acquire/release pair, got %d releases", h.releases)
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	h := &harness{}
	store := NewPreviewStore(WithOnRelease(func(string) error {
		h.releases++
		return nil
	}))
	h.ctrl = NewController(WithPreviewStore(store))

	h.ctrl.Add(png("a.png", 1), png("b.png", 1))
	h.ctrl.Close()

	if h.releases != 2 {
		t.Errorf("expected 2 releases on teardown, got %d", h.releases)
	}
	if store.Outstanding() != 0 {
		t.Errorf("expected no outstanding handles, got %d", store.Outstanding())
	}

	// Operations after Close are inert.
	h.ctrl.Add(png("c.png", 1))
	if h.ctrl.Len() != 0 {
		t.Error("closed controller accepted a file")
	}
}

func TestViews(t *testing.T) {
	h := newHarness(t)
	h.ctrl.Add(png("a.png", 7))

	views := h.ctrl.Views()
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	v := views[0]
	if v.Name != "a.png" || v.Size != 7 || v.ContentType != "image/png" {
		t.Errorf("unexpected view %+v", v)
	}
	if v.PreviewURL == "" || !strings.HasPrefix(v.PreviewURL, "/previews/") {
		t.Errorf("unexpected preview url %q", v.PreviewURL)
	}
}
