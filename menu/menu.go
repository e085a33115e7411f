package menu

import (
	"fmt"
	"strings"

	"github.com/zjrosen/menukit/element"
)

// Menu is an ordered collection of items rendered as a list element. Menus
// are built fluently: mutating methods return the receiver for chaining.
//
// A Menu satisfies Item, so a menu can be added to another menu; the nested
// menu is aliased, not copied, and mutations through any reference are
// visible everywhere it is used. Menus are not safe for concurrent use.
type Menu struct {
	items   []Item
	filters []Filter

	prepend string
	append  string

	attributes       *element.Attributes
	parentAttributes *element.Attributes
	active           bool
	tag              string
	itemTag          string
	activeClass      string
}

// New creates a menu with the given initial items. Initial items go through
// Add, so filters registered later do not see them but the insertion
// ordering rules already apply.
func New(items ...Item) *Menu {
	m := &Menu{
		attributes:       element.NewAttributes(),
		parentAttributes: element.NewAttributes(),
		tag:              "ul",
		itemTag:          "li",
		activeClass:      "active",
	}
	for _, item := range items {
		m.Add(item)
	}
	return m
}

// Add appends item to the menu if every registered filter accepts it. A
// rejected item is dropped silently; rejection is normal filter semantics,
// not an error.
func (m *Menu) Add(item Item) *Menu {
	if !m.applyFilters(item) {
		return m
	}
	m.items = append(m.items, item)
	return m
}

// AddIf adds item only when condition is true.
func (m *Menu) AddIf(condition bool, item Item) *Menu {
	if condition {
		m.Add(item)
	}
	return m
}

// AddLink adds a link item pointing at url with the given body.
func (m *Menu) AddLink(url, text string) *Menu {
	return m.Add(NewLink(url, text))
}

// AddHTML adds a raw markup fragment item.
func (m *Menu) AddHTML(content string) *Menu {
	return m.Add(NewHTML(content))
}

// AddText adds a plain-text item, escaped at render time.
func (m *Menu) AddText(content string) *Menu {
	return m.Add(NewText(content))
}

// Items returns a copy of the menu's item sequence in insertion order.
func (m *Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Count returns the number of items in the menu.
func (m *Menu) Count() int { return len(m.items) }

// IsEmpty reports whether the menu holds no items.
func (m *Menu) IsEmpty() bool { return len(m.items) == 0 }

// RegisterFilter appends f to the filter registry. Future Add calls run the
// filter; items already present are untouched. Use ApplyToAll to also reach
// current items.
func (m *Menu) RegisterFilter(f Filter) *Menu {
	m.filters = append(m.filters, f)
	return m
}

// applyFilters runs the registered filters against item in registration
// order. Filters whose type constraint does not accept the item are skipped
// without being invoked. The first filter returning false rejects the item
// and short-circuits the rest.
func (m *Menu) applyFilters(item Item) bool {
	for _, f := range m.filters {
		if !f.cb.applies(item) {
			continue
		}
		if !f.cb.invoke(item) {
			return false
		}
	}
	return true
}

// Each invokes v on every item its type constraint accepts, in insertion
// order. Non-matching items are skipped, not visited.
func (m *Menu) Each(v Visitor) *Menu {
	for _, item := range m.items {
		if v.cb.applies(item) {
			v.cb.invoke(item)
		}
	}
	return m
}

// ApplyToAll runs f's callback over every currently-matching item and then
// registers f as a filter for future additions. For the pass over existing
// items the callback's return value is ignored: items already in the menu
// are mutated but never removed, even when the callback would reject them
// as a filter. Only future Add calls are gated.
func (m *Menu) ApplyToAll(f Filter) *Menu {
	for _, item := range m.items {
		if f.cb.applies(item) {
			f.cb.invoke(item)
		}
	}
	return m.RegisterFilter(f)
}

// PrefixLinks prepends prefix to the destination of every link currently in
// the menu and of every link added later.
func (m *Menu) PrefixLinks(prefix string) *Menu {
	return m.ApplyToAll(FilterFor(func(l *Link) bool {
		l.Prefix(prefix)
		return true
	}))
}

// AddClass adds a class to the menu's own container element.
func (m *Menu) AddClass(class string) *Menu {
	m.attributes.AddClass(class)
	return m
}

// SetAttribute sets an attribute on the menu's own container element.
func (m *Menu) SetAttribute(key, value string) *Menu {
	m.attributes.Set(key, value)
	return m
}

// AddItemClass adds a class to the wrapping container of every current and
// future item that carries parent attributes.
func (m *Menu) AddItemClass(class string) *Menu {
	return m.ApplyToAll(FilterFor(func(p ParentAttributer) bool {
		p.ParentAttributes().AddClass(class)
		return true
	}))
}

// SetItemAttribute sets an attribute on the wrapping container of every
// current and future item that carries parent attributes.
func (m *Menu) SetItemAttribute(key, value string) *Menu {
	return m.ApplyToAll(FilterFor(func(p ParentAttributer) bool {
		p.ParentAttributes().Set(key, value)
		return true
	}))
}

// AddParentClass adds a class to the wrapping container element this menu
// gets when nested as an item inside another menu.
func (m *Menu) AddParentClass(class string) *Menu {
	m.parentAttributes.AddClass(class)
	return m
}

// SetParentAttribute sets an attribute on the wrapping container element
// this menu gets when nested as an item inside another menu.
func (m *Menu) SetParentAttribute(key, value string) *Menu {
	m.parentAttributes.Set(key, value)
	return m
}

// ParentAttributes exposes the wrapping container's attributes.
func (m *Menu) ParentAttributes() *element.Attributes { return m.parentAttributes }

// Prepend sets markup emitted verbatim before the menu's container element.
func (m *Menu) Prepend(markup string) *Menu {
	m.prepend = markup
	return m
}

// PrependIf sets the prepend markup only when condition is true.
func (m *Menu) PrependIf(condition bool, markup string) *Menu {
	if condition {
		m.Prepend(markup)
	}
	return m
}

// Append sets markup emitted verbatim after the menu's container element.
func (m *Menu) Append(markup string) *Menu {
	m.append = markup
	return m
}

// AppendIf sets the append markup only when condition is true.
func (m *Menu) AppendIf(condition bool, markup string) *Menu {
	if condition {
		m.Append(markup)
	}
	return m
}

// SetActiveClass changes the class added to an active item's wrapping
// container element. Defaults to "active".
func (m *Menu) SetActiveClass(class string) *Menu {
	m.activeClass = class
	return m
}

// IsActive reports whether the menu itself was marked active or any of its
// items is active, recursing through nested menus. An empty, unmarked menu
// is inactive.
func (m *Menu) IsActive() bool {
	if m.active {
		return true
	}
	for _, item := range m.items {
		if item.IsActive() {
			return true
		}
	}
	return false
}

// SetActive marks the menu itself active. Used when the menu is nested as
// an item and activated by its parent.
func (m *Menu) SetActive() { m.active = true }

// SetActiveWhen activates every item p selects. Items p does not select, or
// that its type constraint skips, keep their current state: this never
// deactivates anything.
func (m *Menu) SetActiveWhen(p Predicate) *Menu {
	for _, item := range m.items {
		if p.cb.applies(item) && p.cb.invoke(item) {
			item.SetActive()
		}
	}
	return m
}

// SetActiveURL activates every link whose destination equals url, recursing
// into nested menus.
func (m *Menu) SetActiveURL(url string) *Menu {
	for _, item := range m.items {
		switch it := item.(type) {
		case *Link:
			if it.URL() == url {
				it.SetActive()
			}
		case *Menu:
			it.SetActiveURL(url)
		}
	}
	return m
}

// Render produces the menu's markup: each item wrapped in its container
// element (carrying the active class when the item is active and the item's
// parent attributes), the item list wrapped in the menu's own container,
// and the prepend/append fragments concatenated verbatim around it.
// Rendering mutates nothing and is idempotent.
func (m *Menu) Render() (string, error) {
	var children strings.Builder
	for i, item := range m.items {
		selector := m.itemTag
		if item.IsActive() {
			selector += "." + m.activeClass
		}

		var parentAttrs *element.Attributes
		if pa, ok := item.(ParentAttributer); ok {
			parentAttrs = pa.ParentAttributes()
		}

		inner, err := item.Render()
		if err != nil {
			return "", fmt.Errorf("rendering item %d: %w", i, err)
		}
		children.WriteString(element.Render(selector, parentAttrs, inner))
	}

	return m.prepend + element.Render(m.tag, m.attributes, children.String()) + m.append, nil
}
