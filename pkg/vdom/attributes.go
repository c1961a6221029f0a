package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Key sets the reconciliation key for the element.
func Key(key string) Attr { return attr("key", key) }

// StyleAttr sets the style attribute (named to avoid conflict with a Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("item-id", "123") → data-item-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Media attributes

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) Attr { return attr("alt", alt) }

// Form attributes

// TypeAttr sets the type attribute (named to avoid conflict with Go keywords in callers).
func TypeAttr(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Accept sets the accept attribute on a file input.
func Accept(patterns string) Attr { return attr("accept", patterns) }

// Multiple sets the multiple attribute when allowed is true.
func Multiple(allowed bool) Attr {
	if !allowed {
		return Attr{}
	}
	return attr("multiple", true)
}

// Disabled sets the disabled attribute when disabled is true.
func Disabled(disabled bool) Attr {
	if !disabled {
		return Attr{}
	}
	return attr("disabled", true)
}

// For sets the for attribute on a label.
func For(id string) Attr { return attr("for", id) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }
