// Package element builds HTML element strings from a CSS-like tag selector,
// an ordered attribute collection and pre-rendered child markup. Attribute
// values and text are escaped here; child markup is trusted and concatenated
// verbatim.
package element

import (
	"html"
	"strings"
)

// voidElements render without children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Render builds an HTML element. The selector follows the
// `tag(#id)?(.class)*` grammar, e.g. "ul", "li.active" or "nav#main.top".
// Classes and id from the selector merge into attrs without mutating it.
func Render(selector string, attrs *Attributes, children ...string) string {
	tag, id, classes := parseSelector(selector)

	merged := NewAttributes()
	if id != "" {
		merged.Set("id", id)
	}
	merged.Merge(attrs)
	merged.AddClass(classes...)

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)
	sb.WriteString(merged.String())
	sb.WriteString(">")

	if voidElements[tag] {
		return sb.String()
	}

	for _, child := range children {
		sb.WriteString(child)
	}
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
	return sb.String()
}

// Escape escapes text for safe inclusion in HTML content or attribute values.
func Escape(s string) string {
	return html.EscapeString(s)
}

// parseSelector splits "tag#id.a.b" into its parts. A missing tag defaults
// to "div", matching the usual selector convention.
func parseSelector(selector string) (tag, id string, classes []string) {
	tag = "div"
	current := strings.Builder{}
	kind := byte(0)

	flush := func() {
		s := current.String()
		current.Reset()
		if s == "" {
			return
		}
		switch kind {
		case '#':
			id = s
		case '.':
			classes = append(classes, s)
		default:
			tag = s
		}
	}

	for i := 0; i < len(selector); i++ {
		c := selector[i]
		if c == '#' || c == '.' {
			flush()
			kind = c
			continue
		}
		current.WriteByte(c)
	}
	flush()
	return tag, id, classes
}
