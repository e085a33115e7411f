// Package definition loads YAML menu definitions and builds menus from
// them through the public menu API.
package definition

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/menukit/internal/log"
	"github.com/zjrosen/menukit/menu"
)

// File is the root structure of a menu definition document.
type File struct {
	Menu MenuDef `yaml:"menu"`
}

// MenuDef describes one menu level.
type MenuDef struct {
	Class     string    `yaml:"class"`      // class for the container element
	ID        string    `yaml:"id"`         // id for the container element
	Prepend   string    `yaml:"prepend"`    // markup emitted before the container
	Append    string    `yaml:"append"`     // markup emitted after the container
	Prefix    string    `yaml:"prefix"`     // prefix applied to link urls
	ActiveURL string    `yaml:"active_url"` // link url to mark active, matched after prefixing
	Items     []ItemDef `yaml:"items"`
}

// ItemDef describes a single item. Exactly one of the fields may be set.
type ItemDef struct {
	Link *LinkDef `yaml:"link"`
	HTML string   `yaml:"html"`
	Text string   `yaml:"text"`
	Menu *MenuDef `yaml:"menu"`
}

// LinkDef describes a link item.
type LinkDef struct {
	URL   string `yaml:"url"`
	Text  string `yaml:"text"`
	Class string `yaml:"class"`
}

// Options are builder settings applied to every menu level, nested menus
// included. The zero value changes nothing.
type Options struct {
	// URLPrefix is prepended to every link url, on top of any per-level
	// prefix from the definition itself.
	URLPrefix string

	// ActiveClass replaces the class marking active items when non-empty.
	ActiveClass string
}

// Load reads and builds the menu defined in the file at path.
func Load(path string) (*menu.Menu, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions reads and builds the menu at path with opts applied to
// every level.
func LoadWithOptions(path string, opts Options) (*menu.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition %s: %w", path, err)
	}
	m, err := ParseWithOptions(data, opts)
	if err != nil {
		return nil, fmt.Errorf("definition %s: %w", path, err)
	}
	return m, nil
}

// Parse builds the menu defined in a YAML document.
func Parse(data []byte) (*menu.Menu, error) {
	return ParseWithOptions(data, Options{})
}

// ParseWithOptions builds the menu defined in a YAML document with opts
// applied to every level.
func ParseWithOptions(data []byte, opts Options) (*menu.Menu, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return build(&file.Menu, opts)
}

// build assembles one menu level and recurses into nested menus.
func build(def *MenuDef, opts Options) (*menu.Menu, error) {
	m := menu.New()
	if def.Class != "" {
		m.AddClass(def.Class)
	}
	if def.ID != "" {
		m.SetAttribute("id", def.ID)
	}
	m.PrependIf(def.Prepend != "", def.Prepend)
	m.AppendIf(def.Append != "", def.Append)

	if opts.ActiveClass != "" {
		m.SetActiveClass(opts.ActiveClass)
	}

	for i, item := range def.Items {
		if err := addItem(m, item, opts); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	// Prefixes before activation, so active_url is matched in final form.
	// PrefixLinks only touches this level's links; nested menus already
	// applied opts.URLPrefix during their own build.
	if def.Prefix != "" {
		m.PrefixLinks(def.Prefix)
	}
	if opts.URLPrefix != "" {
		m.PrefixLinks(opts.URLPrefix)
	}
	if def.ActiveURL != "" {
		m.SetActiveURL(def.ActiveURL)
	}

	log.Debug(log.CatDefinition, "built menu level", "items", m.Count())
	return m, nil
}

func addItem(m *menu.Menu, item ItemDef, opts Options) error {
	switch {
	case item.Link != nil:
		if item.Link.URL == "" {
			return fmt.Errorf("link requires a url")
		}
		l := menu.NewLink(item.Link.URL, item.Link.Text)
		if item.Link.Class != "" {
			l.AddClass(item.Link.Class)
		}
		m.Add(l)
	case item.HTML != "":
		m.AddHTML(item.HTML)
	case item.Text != "":
		m.AddText(item.Text)
	case item.Menu != nil:
		sub, err := build(item.Menu, opts)
		if err != nil {
			return err
		}
		m.Add(sub)
	default:
		return fmt.Errorf("unknown item kind: set one of link, html, text, menu")
	}
	return nil
}
