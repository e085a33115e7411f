package menu

import "github.com/zjrosen/menukit/element"

// Link is a menu item rendering an anchor element. The text is trusted
// markup; use Text for content that needs escaping.
type Link struct {
	url    string
	text   string
	active bool

	attributes       *element.Attributes
	parentAttributes *element.Attributes
}

// NewLink creates a link item pointing at url with the given body.
func NewLink(url, text string) *Link {
	return &Link{
		url:              url,
		text:             text,
		attributes:       element.NewAttributes(),
		parentAttributes: element.NewAttributes(),
	}
}

// URL returns the link's current destination.
func (l *Link) URL() string { return l.url }

// Text returns the link's body markup.
func (l *Link) Text() string { return l.text }

// SetURL replaces the link's destination.
func (l *Link) SetURL(url string) *Link {
	l.url = url
	return l
}

// Prefix prepends prefix to the link's destination.
func (l *Link) Prefix(prefix string) *Link {
	l.url = prefix + l.url
	return l
}

// AddClass adds a class to the anchor element.
func (l *Link) AddClass(class string) *Link {
	l.attributes.AddClass(class)
	return l
}

// SetAttribute sets an attribute on the anchor element.
func (l *Link) SetAttribute(key, value string) *Link {
	l.attributes.Set(key, value)
	return l
}

// AddParentClass adds a class to the wrapping container element.
func (l *Link) AddParentClass(class string) *Link {
	l.parentAttributes.AddClass(class)
	return l
}

// SetParentAttribute sets an attribute on the wrapping container element.
func (l *Link) SetParentAttribute(key, value string) *Link {
	l.parentAttributes.Set(key, value)
	return l
}

// ParentAttributes exposes the wrapping container's attributes.
func (l *Link) ParentAttributes() *element.Attributes { return l.parentAttributes }

// IsActive reports whether the link was marked active.
func (l *Link) IsActive() bool { return l.active }

// SetActive marks the link active.
func (l *Link) SetActive() { l.active = true }

// Render produces the anchor markup.
func (l *Link) Render() (string, error) {
	attrs := element.NewAttributes().Set("href", l.url).Merge(l.attributes)
	return element.Render("a", attrs, l.text), nil
}
