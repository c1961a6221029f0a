// Package hooks attaches client-side behavior to rendered elements.
//
// A hook names a JavaScript capability that the thin client binds to the
// element on mount (drag sensors, collision detection, keyboard reordering).
// The server never implements the interaction itself; it only ships the
// hook's configuration down with the markup and receives the hook's
// completion events back through the live session.
package hooks

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/galleria-dev/galleria/pkg/vdom"
)

// Hook creates a hook attribute for an element.
// The config is serialized to JSON and sent to the client under the
// g-hook attribute as "HookName:{...}".
func Hook(name string, config any) vdom.Attr {
	b, _ := json.Marshal(config)
	return vdom.Attr{
		Key:   "g-hook",
		Value: fmt.Sprintf("%s:%s", name, string(b)),
	}
}

// OnEvent creates an event handler attribute for a hook event.
func OnEvent(name string, handler func(Event)) vdom.EventHandler {
	return vdom.EventHandler{
		Event:   name,
		Handler: handler,
	}
}

// Event represents an event triggered by a client hook.
type Event struct {
	Name string
	Data map[string]any
}

// String returns the value under key as a string, or "" if absent.
func (e Event) String(key string) string {
	if v, ok := e.Data[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Int returns the value under key as an int, or 0 if absent.
func (e Event) Int(key string) int {
	if v, ok := e.Data[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		case string:
			i, _ := strconv.Atoi(val)
			return i
		}
	}
	return 0
}

// Bool returns the value under key as a bool, or false if absent.
func (e Event) Bool(key string) bool {
	if v, ok := e.Data[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
		b, _ := strconv.ParseBool(fmt.Sprintf("%v", v))
		return b
	}
	return false
}
