package styled

import (
	"sort"

	"github.com/pthm/styled/internal/diag"
	"github.com/pthm/styled/lib/serialize"
)

// Reserved property names.
const (
	// ClassProp holds incoming class names and receives the computed class.
	ClassProp = "class"
	// ThemeProp holds the resolved theme in merged properties.
	ThemeProp = "theme"
	// AsProp selects an alternate tag at render time.
	AsProp = "as"
	// ChildrenProp holds element content.
	ChildrenProp = "children"
)

// Props is a component's property table. Tables are never mutated once
// passed to a component; every stage builds a new one.
type Props = serialize.Props

// TransformFunc rewrites one property into a new name/value pair. An empty
// name drops the property.
type TransformFunc func(name string, value any) (string, any)

// transformProps rebuilds props through fn. Properties are visited in
// sorted order so rename collisions resolve the same way on every render;
// the later pair wins.
func transformProps(props Props, fn TransformFunc) Props {
	if fn == nil {
		return props
	}
	out := make(Props, len(props))
	for _, key := range sortedKeys(props) {
		name, value := fn(key, props[key])
		if name == "" {
			continue
		}
		if _, dup := out[name]; dup {
			diag.Warn("transformed property overwrites an earlier one", "prop", name, "from", key)
		}
		out[name] = value
	}
	return out
}

// resolveTheme returns props with a theme. When props has no theme a copy
// carrying theme is returned; otherwise props itself.
func resolveTheme(props Props, theme any) Props {
	if props[ThemeProp] != nil {
		return props
	}
	out := make(Props, len(props)+1)
	for k, v := range props {
		out[k] = v
	}
	out[ThemeProp] = theme
	return out
}

// applyDefaults fills absent properties from defaults. An explicit nil is
// kept.
func applyDefaults(defaults, props Props) Props {
	if len(defaults) == 0 {
		return props
	}
	out := make(Props, len(defaults)+len(props))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range props {
		out[k] = v
	}
	return out
}

// filterProps keeps the properties forward accepts. In polymorphic mode
// the as property is always dropped.
func filterProps(props Props, forward ForwardFunc, dropAs bool) Props {
	out := make(Props, len(props)+1)
	for k, v := range props {
		if dropAs && k == AsProp {
			continue
		}
		if forward(k) {
			out[k] = v
		}
	}
	return out
}

func sortedKeys(props Props) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func copyProps(props Props) Props {
	if props == nil {
		return nil
	}
	out := make(Props, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
