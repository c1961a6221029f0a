package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnChange handles change events (fired when a value is committed).
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnInput handles input events (fired while a value changes).
func OnInput(handler any) EventHandler { return event("input", handler) }
