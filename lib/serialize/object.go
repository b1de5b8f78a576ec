package serialize

import (
	"fmt"
	"sort"
	"strings"
)

// unitless lists properties whose numeric values are emitted without px.
var unitless = map[string]bool{
	"animation-iteration-count": true,
	"aspect-ratio":              true,
	"border-image-outset":       true,
	"border-image-slice":        true,
	"border-image-width":        true,
	"column-count":              true,
	"columns":                   true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-shrink":               true,
	"font-weight":               true,
	"grid-area":                 true,
	"grid-column":               true,
	"grid-row":                  true,
	"line-clamp":                true,
	"line-height":               true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"scale":                     true,
	"tab-size":                  true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
	"fill-opacity":              true,
	"flood-opacity":             true,
	"stop-opacity":              true,
	"stroke-miterlimit":         true,
	"stroke-opacity":            true,
	"stroke-width":              true,
}

// object renders a style object. Keys are visited in sorted order so the
// output does not depend on map iteration.
func (st *state) object(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		st.objectEntry(&b, key, obj[key])
	}
	return b.String()
}

func (st *state) objectEntry(b *strings.Builder, key string, value any) {
	switch v := value.(type) {
	case StyleFunc:
		st.objectEntry(b, key, v(st.props))
	case func(Props) any:
		st.objectEntry(b, key, v(st.props))
	case func(Props) string:
		st.objectEntry(b, key, v(st.props))
	case map[string]any:
		b.WriteString(key)
		b.WriteString("{")
		b.WriteString(st.object(v))
		b.WriteString("}")
	case []any:
		for _, item := range v {
			st.objectEntry(b, key, item)
		}
	case string:
		if cached, ok := st.registered[v]; ok {
			b.WriteString(key)
			b.WriteString("{")
			b.WriteString(cached)
			b.WriteString("}")
			return
		}
		writeDecl(b, key, v)
	case *Serialized:
		if v != nil && v.keyframes {
			writeDecl(b, key, st.interpolate(v))
			return
		}
		b.WriteString(key)
		b.WriteString("{")
		b.WriteString(st.interpolate(v))
		b.WriteString("}")
	case nil, bool:
	default:
		writeDecl(b, key, v)
	}
}

func writeDecl(b *strings.Builder, key string, value any) {
	name := Hyphenate(key)
	b.WriteString(name)
	b.WriteString(":")
	b.WriteString(declValue(name, value))
	b.WriteString(";")
}

func declValue(name string, value any) string {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		s := fmt.Sprint(v)
		if s == "0" || unitless[name] || strings.HasPrefix(name, "--") {
			return s
		}
		return s + "px"
	default:
		return fmt.Sprint(v)
	}
}

// Hyphenate converts a camelCase property name to its CSS form.
// Custom properties (--name) are returned unchanged.
func Hyphenate(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	if strings.HasPrefix(name, "ms") && len(name) > 2 && name[2] >= 'A' && name[2] <= 'Z' {
		b.WriteString("-ms")
		name = name[2:]
	}
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
