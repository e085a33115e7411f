package menu

// callback pairs an optional type constraint with a function over items.
// A nil matches func means the callback is unconstrained and applies to
// every item. invoke's boolean result only matters where the operation
// assigns it a meaning (rejection for filters, selection for predicates).
type callback struct {
	matches func(Item) bool
	invoke  func(Item) bool
}

// applies reports whether the callback's type constraint accepts item.
func (c callback) applies(item Item) bool {
	return c.matches == nil || c.matches(item)
}

// typeMatch builds a constraint that accepts items assignable to T.
// T may be a concrete item type or an interface.
func typeMatch[T any]() func(Item) bool {
	return func(item Item) bool {
		_, ok := any(item).(T)
		return ok
	}
}

// Filter is a registered callback that can veto item insertion. A false
// return rejects the item; any other outcome lets it through. Filters built
// with FilterFor only ever see items of their constrained type.
type Filter struct {
	cb callback
}

// FilterFunc builds an unconstrained filter.
func FilterFunc(fn func(Item) bool) Filter {
	return Filter{cb: callback{invoke: fn}}
}

// FilterFor builds a filter scoped to items of type T. Items of other types
// skip the filter entirely and are treated as accepted by it.
func FilterFor[T any](fn func(T) bool) Filter {
	return Filter{cb: callback{
		matches: typeMatch[T](),
		invoke: func(item Item) bool {
			return fn(any(item).(T))
		},
	}}
}

// Visitor is a side-effect-only callback used by Each and bulk mutation.
type Visitor struct {
	cb callback
}

// VisitFunc builds an unconstrained visitor.
func VisitFunc(fn func(Item)) Visitor {
	return Visitor{cb: callback{invoke: func(item Item) bool {
		fn(item)
		return true
	}}}
}

// VisitFor builds a visitor scoped to items of type T; other items are
// skipped, not visited.
func VisitFor[T any](fn func(T)) Visitor {
	return Visitor{cb: callback{
		matches: typeMatch[T](),
		invoke: func(item Item) bool {
			fn(any(item).(T))
			return true
		},
	}}
}

// Predicate selects items, typically for activation. A true result selects
// the item; false leaves it untouched.
type Predicate struct {
	cb callback
}

// MatchFunc builds an unconstrained predicate.
func MatchFunc(fn func(Item) bool) Predicate {
	return Predicate{cb: callback{invoke: fn}}
}

// MatchFor builds a predicate scoped to items of type T; other items are
// never selected.
func MatchFor[T any](fn func(T) bool) Predicate {
	return Predicate{cb: callback{
		matches: typeMatch[T](),
		invoke: func(item Item) bool {
			return fn(any(item).(T))
		},
	}}
}
