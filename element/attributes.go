package element

import "strings"

// Attributes is an ordered collection of HTML attributes. Attribute order is
// first-set order, so serialization is deterministic. Classes accumulate
// under a single "class" attribute anchored where the first class was added.
type Attributes struct {
	order   []string
	values  map[string]string
	classes []string
}

// NewAttributes creates an empty attribute collection.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]string)}
}

// Set stores an attribute value, overwriting any previous value for the key.
// Setting "class" replaces the accumulated class list.
func (a *Attributes) Set(key, value string) *Attributes {
	if key == "class" {
		a.classes = strings.Fields(value)
		if len(a.classes) == 0 {
			return a.Remove("class")
		}
		a.touch("class")
		return a
	}
	a.touch(key)
	a.values[key] = value
	return a
}

// Get returns the value for key and whether it was set.
func (a *Attributes) Get(key string) (string, bool) {
	if key == "class" {
		if len(a.classes) == 0 {
			return "", false
		}
		return strings.Join(a.classes, " "), true
	}
	v, ok := a.values[key]
	return v, ok
}

// Remove deletes an attribute.
func (a *Attributes) Remove(key string) *Attributes {
	for i, k := range a.order {
		if k == key {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	if key == "class" {
		a.classes = nil
	} else {
		delete(a.values, key)
	}
	return a
}

// AddClass appends classes to the class list, skipping duplicates.
func (a *Attributes) AddClass(classes ...string) *Attributes {
	for _, c := range classes {
		if c == "" || a.hasClass(c) {
			continue
		}
		if len(a.classes) == 0 {
			a.touch("class")
		}
		a.classes = append(a.classes, c)
	}
	return a
}

// Merge copies all attributes from other into a. Plain attributes overwrite,
// classes accumulate.
func (a *Attributes) Merge(other *Attributes) *Attributes {
	if other == nil {
		return a
	}
	for _, key := range other.order {
		if key == "class" {
			a.AddClass(other.classes...)
			continue
		}
		a.Set(key, other.values[key])
	}
	return a
}

// Empty reports whether no attributes are set.
func (a *Attributes) Empty() bool {
	return len(a.order) == 0
}

// String serializes the attributes as ` key="value" ...` with a leading
// space, or an empty string when nothing is set. Values are escaped.
func (a *Attributes) String() string {
	if a.Empty() {
		return ""
	}
	var sb strings.Builder
	for _, key := range a.order {
		value := a.values[key]
		if key == "class" {
			value = strings.Join(a.classes, " ")
		}
		sb.WriteString(" ")
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(Escape(value))
		sb.WriteString(`"`)
	}
	return sb.String()
}

func (a *Attributes) hasClass(class string) bool {
	for _, c := range a.classes {
		if c == class {
			return true
		}
	}
	return false
}

// touch records key in the ordering on first use.
func (a *Attributes) touch(key string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	for _, k := range a.order {
		if k == key {
			return
		}
	}
	a.order = append(a.order, key)
}
