package hooks

import (
	"strings"
	"testing"
)

func TestSortable(t *testing.T) {
	attr := Sortable(SortableConfig{
		Group:      "gallery",
		Animation:  150,
		GhostClass: "ghost",
		Handle:     ".tile",
	})

	if attr.Key != "g-hook" {
		t.Errorf("expected key g-hook, got %q", attr.Key)
	}

	val := attr.Value.(string)
	if !strings.HasPrefix(val, "Sortable:") {
		t.Errorf("expected Sortable prefix, got %q", val)
	}
	if !strings.Contains(val, "gallery") {
		t.Error("expected value to contain group name")
	}
	if !strings.Contains(val, "150") {
		t.Error("expected value to contain animation duration")
	}
}

func TestSortableDefaults(t *testing.T) {
	attr := Sortable(SortableConfig{})

	if attr.Key != "g-hook" {
		t.Errorf("expected key g-hook, got %q", attr.Key)
	}
	if !strings.HasPrefix(attr.Value.(string), "Sortable:") {
		t.Error("expected Sortable prefix")
	}
}

func TestDropCompletion(t *testing.T) {
	tests := []struct {
		name   string
		data   map[string]any
		source string
		target string
		ok     bool
	}{
		{
			name:   "both ids present",
			data:   map[string]any{"source": "a", "target": "b"},
			source: "a", target: "b", ok: true,
		},
		{
			name: "missing target",
			data: map[string]any{"source": "a"},
			ok:   false,
		},
		{
			name: "empty event",
			data: map[string]any{},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, target, ok := DropCompletion(Event{Name: EventReorder, Data: tt.data})
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (source != tt.source || target != tt.target) {
				t.Errorf("got (%q, %q), want (%q, %q)", source, target, tt.source, tt.target)
			}
		})
	}
}

func TestEventAccessors(t *testing.T) {
	e := Event{
		Name: "reorder",
		Data: map[string]any{
			"source": "item-1",
			"index":  float64(3), // JSON numbers decode as float64
			"final":  true,
		},
	}

	if e.String("source") != "item-1" {
		t.Errorf("String: got %q", e.String("source"))
	}
	if e.Int("index") != 3 {
		t.Errorf("Int: got %d", e.Int("index"))
	}
	if !e.Bool("final") {
		t.Error("Bool: expected true")
	}
	if e.String("missing") != "" {
		t.Error("missing key should yield empty string")
	}
}
