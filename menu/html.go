package menu

import "github.com/zjrosen/menukit/element"

// HTML is a menu item holding an opaque markup fragment, rendered verbatim.
type HTML struct {
	content string
	active  bool

	parentAttributes *element.Attributes
}

// NewHTML creates a raw markup item. The content is not escaped.
func NewHTML(content string) *HTML {
	return &HTML{
		content:          content,
		parentAttributes: element.NewAttributes(),
	}
}

// Content returns the raw fragment.
func (h *HTML) Content() string { return h.content }

// AddParentClass adds a class to the wrapping container element.
func (h *HTML) AddParentClass(class string) *HTML {
	h.parentAttributes.AddClass(class)
	return h
}

// SetParentAttribute sets an attribute on the wrapping container element.
func (h *HTML) SetParentAttribute(key, value string) *HTML {
	h.parentAttributes.Set(key, value)
	return h
}

// ParentAttributes exposes the wrapping container's attributes.
func (h *HTML) ParentAttributes() *element.Attributes { return h.parentAttributes }

// IsActive reports whether the fragment was marked active.
func (h *HTML) IsActive() bool { return h.active }

// SetActive marks the fragment active.
func (h *HTML) SetActive() { h.active = true }

// Render returns the fragment unchanged.
func (h *HTML) Render() (string, error) {
	return h.content, nil
}

// Text is a menu item holding plain text, escaped at render time.
type Text struct {
	content string
	active  bool

	parentAttributes *element.Attributes
}

// NewText creates a plain-text item.
func NewText(content string) *Text {
	return &Text{
		content:          content,
		parentAttributes: element.NewAttributes(),
	}
}

// Content returns the unescaped text.
func (t *Text) Content() string { return t.content }

// ParentAttributes exposes the wrapping container's attributes.
func (t *Text) ParentAttributes() *element.Attributes { return t.parentAttributes }

// IsActive reports whether the text was marked active.
func (t *Text) IsActive() bool { return t.active }

// SetActive marks the text active.
func (t *Text) SetActive() { t.active = true }

// Render returns the text with HTML special characters escaped.
func (t *Text) Render() (string, error) {
	return element.Escape(t.content), nil
}
