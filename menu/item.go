// Package menu builds hierarchical navigation menus and renders them to
// HTML. A Menu owns an ordered list of items (links, raw fragments, nested
// menus), a registry of insertion filters, and wrapping markup; items and
// bulk operations compose through a small capability-based Item contract.
package menu

import "github.com/zjrosen/menukit/element"

// Item is anything that can be placed in a Menu. A Menu is itself an Item,
// so menus nest arbitrarily.
type Item interface {
	// IsActive reports whether the item should render in its active state.
	IsActive() bool

	// SetActive marks the item active. There is no way back by design;
	// active state is computed fresh per menu build.
	SetActive()

	// Render produces the item's own markup, excluding the wrapping
	// container element its parent menu puts around it.
	Render() (string, error)
}

// ParentAttributer is an optional capability. Items implementing it carry
// attributes for the wrapping container element (the <li>) their parent
// menu renders around them, distinct from the item's own attributes.
type ParentAttributer interface {
	ParentAttributes() *element.Attributes
}
