package menu

// Map applies fn to every item of type T in m, preserving insertion order,
// and returns the results. Items of other types are excluded rather than
// passed through, so the result's length equals the number of matching
// items. T may be a concrete item type or an interface.
//
// Map is a package function because Go methods cannot take type parameters.
func Map[T any, R any](m *Menu, fn func(T) R) []R {
	var out []R
	for _, item := range m.items {
		if t, ok := any(item).(T); ok {
			out = append(out, fn(t))
		}
	}
	return out
}
