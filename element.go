package styled

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// createElement renders tag with the forwarded properties.
func createElement(ctx context.Context, w io.Writer, tag Tag, props Props) error {
	switch t := tag.(type) {
	case Element:
		return writeElement(ctx, w, t, props)
	case *Func:
		return t.Render(props).Render(ctx, w)
	case *Component:
		return t.With(props).Render(ctx, w)
	}
	return fmt.Errorf("styled: cannot render tag of type %T", tag)
}

// writeElement writes a host element. The class attribute comes first,
// the rest in name order.
func writeElement(ctx context.Context, w io.Writer, el Element, props Props) error {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(string(el))
	if class, ok := props[ClassProp].(string); ok && class != "" {
		writeAttr(&b, ClassProp, class)
	}
	for _, name := range sortedKeys(props) {
		if name == ClassProp || name == ChildrenProp {
			continue
		}
		writeAttr(&b, name, props[name])
	}
	b.WriteString(">")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if voidElements[el.atom()] {
		return nil
	}

	if err := writeChildren(ctx, w, props[ChildrenProp]); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+string(el)+">")
	return err
}

func writeAttr(b *strings.Builder, name string, value any) {
	if !isAttrName(name) {
		return
	}
	var s string
	switch v := value.(type) {
	case nil:
		return
	case bool:
		if v {
			b.WriteString(" ")
			b.WriteString(name)
		}
		return
	case string:
		s = v
	case templ.SafeURL:
		s = string(v)
	case templ.Component, func(Props) any, func(Props) string:
		return
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(s))
	b.WriteString(`"`)
}

// isAttrName reports whether name can be written as an attribute name
// without escaping.
func isAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case r == '"', r == '\'', r == '>', r == '<', r == '/', r == '=', r == '`':
			return false
		}
	}
	return true
}

// writeChildren renders element content. Without a children property the
// templ children of ctx are used, so components work as templ wrappers:
//
//	@Button.With(styled.Props{"type": "submit"}) {
//	    Save
//	}
func writeChildren(ctx context.Context, w io.Writer, children any) error {
	wrapped := templ.GetChildren(ctx)
	inner := templ.ClearChildren(ctx)
	switch c := children.(type) {
	case nil:
		return wrapped.Render(inner, w)
	case templ.Component:
		return c.Render(inner, w)
	case []templ.Component:
		for _, child := range c {
			if err := child.Render(inner, w); err != nil {
				return err
			}
		}
		return nil
	case string:
		_, err := io.WriteString(w, templ.EscapeString(c))
		return err
	case fmt.Stringer:
		_, err := io.WriteString(w, templ.EscapeString(c.String()))
		return err
	default:
		_, err := io.WriteString(w, templ.EscapeString(fmt.Sprint(c)))
		return err
	}
}

// writeStyle writes a style element carrying rules for names.
func writeStyle(w io.Writer, key string, names []string, nonce, rules string) error {
	var b strings.Builder
	b.WriteString(`<style data-emotion="`)
	b.WriteString(templ.EscapeString(strings.Join(append([]string{key}, names...), " ")))
	b.WriteString(`"`)
	if nonce != "" {
		writeAttr(&b, "nonce", nonce)
	}
	b.WriteString(">")
	b.WriteString(strings.ReplaceAll(rules, "</", `<\/`))
	b.WriteString("</style>")
	_, err := io.WriteString(w, b.String())
	return err
}

// isElement reports whether tag renders a host element directly.
func isElement(tag Tag) bool {
	_, ok := tag.(Element)
	return ok
}

