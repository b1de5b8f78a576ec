package styled

import (
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html/atom"
)

// Tag is what a styled component renders. It is one of:
//   - Element: a host element such as "button"
//   - *Func: a user-defined component function
//   - *Component: another styled component, whose chain is inherited
type Tag interface {
	tagName() string
}

// Element is a host element tag.
type Element string

func (e Element) tagName() string { return string(e) }

// atom returns the element's atom, or 0 for unknown names.
func (e Element) atom() atom.Atom {
	return atom.Lookup([]byte(e))
}

// recognized reports whether e names a known HTML element or a valid
// custom element. Unrecognized names are treated like user components.
func (e Element) recognized() bool {
	if e == "" || e[0] < 'a' || e[0] > 'z' {
		return false
	}
	return e.atom() != 0 || strings.Contains(string(e), "-")
}

// Func is a user-defined component. Render receives the forwarded
// properties, including the computed class.
type Func struct {
	Name     string
	Render   func(props Props) templ.Component
	Defaults Props
}

// NewFunc wraps a component function as a Tag.
func NewFunc(name string, render func(props Props) templ.Component) *Func {
	return &Func{Name: name, Render: render}
}

func (f *Func) tagName() string {
	if f.Name == "" {
		return "Component"
	}
	return f.Name
}

func (c *Component) tagName() string { return c.displayName }

// isNilTag reports an undefined tag, including typed nils.
func isNilTag(tag Tag) bool {
	switch t := tag.(type) {
	case nil:
		return true
	case Element:
		return t == ""
	case *Func:
		return t == nil || t.Render == nil
	case *Component:
		return t == nil
	}
	return false
}

// asTag interprets the value of the "as" property.
func asTag(v any) Tag {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return Element(t)
	case Tag:
		if isNilTag(t) {
			return nil
		}
		return t
	}
	return nil
}

// defaultsOf returns the default property table carried by tag.
func defaultsOf(tag Tag) Props {
	switch t := tag.(type) {
	case *Func:
		return t.Defaults
	case *Component:
		return t.defaults
	}
	return nil
}
