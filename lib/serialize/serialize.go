// Package serialize turns a style chain into canonical rule text and a
// content-addressed name.
//
// The output is deterministic: the same chain content resolved against the
// same properties always yields the same Name, which is what lets a cache
// key inserted rules by name alone.
package serialize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/pthm/styled/internal/diag"
)

// NoComponentSelector is the selector projection of a component that has
// no stable target class.
const NoComponentSelector = "NO_COMPONENT_SELECTOR"

// Props is the merged property table passed to style functions.
type Props map[string]any

// StyleFunc is a fragment computed from the merged properties.
type StyleFunc func(Props) any

// ComponentSelector is implemented by components that can be interpolated
// into a selector position.
type ComponentSelector interface {
	ComponentSelector() string
}

// Serialized is the result of serializing a style chain.
//
// Next links additional rules pulled in by the chain (keyframes and the
// extra rules of interpolated Serialized values) in source order.
type Serialized struct {
	Name   string
	Styles string
	Next   *Serialized

	keyframes bool
}

// IsKeyframes reports whether s is an @keyframes rule.
func (s *Serialized) IsKeyframes() bool {
	return s.keyframes
}

// Names returns the name of s followed by the names along its Next chain.
func (s *Serialized) Names() []string {
	var names []string
	for cur := s; cur != nil; cur = cur.Next {
		names = append(names, cur.Name)
	}
	return names
}

// Serializer resolves a style chain against merged properties.
type Serializer interface {
	Serialize(chain []any, registered map[string]string, props Props) *Serialized
}

// Func adapts a function to the Serializer interface.
type Func func(chain []any, registered map[string]string, props Props) *Serialized

// Serialize calls f.
func (f Func) Serialize(chain []any, registered map[string]string, props Props) *Serialized {
	return f(chain, registered, props)
}

// Default is the serializer used when a render context does not configure
// one.
var Default Serializer = Func(Serialize)

var labelPattern = regexp.MustCompile(`label:\s*([^\s;{]+)\s*(;|$)`)

// Serialize resolves every fragment of chain and hashes the result.
//
// Strings that name a registered class are replaced by that class's
// styles. label declarations are dropped from the styles and appended to
// the name, so they never change the hash.
func Serialize(chain []any, registered map[string]string, props Props) *Serialized {
	st := &state{registered: registered, props: props}

	var b strings.Builder
	for _, fragment := range chain {
		b.WriteString(st.interpolate(fragment))
	}

	styles, labels := stripLabels(b.String())
	return &Serialized{
		Name:   Hash(styles) + labels,
		Styles: styles,
		Next:   st.head,
	}
}

// CSS serializes a property-independent chain for later interpolation.
func CSS(chain ...any) *Serialized {
	return Serialize(chain, nil, nil)
}

// Keyframes serializes an @keyframes rule. Interpolating the result
// yields the animation name and pulls the rule into the outer chain.
func Keyframes(chain ...any) *Serialized {
	inner := Serialize(chain, nil, nil)
	name := "animation-" + inner.Name
	return &Serialized{
		Name:      name,
		Styles:    "@keyframes " + name + "{" + inner.Styles + "}",
		keyframes: true,
	}
}

// Hash returns the base36 xxhash64 of s.
func Hash(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 36)
}

func stripLabels(styles string) (string, string) {
	matches := labelPattern.FindAllStringSubmatch(styles, -1)
	if len(matches) == 0 {
		return styles, ""
	}
	var labels strings.Builder
	for _, m := range matches {
		labels.WriteString("-")
		labels.WriteString(m[1])
	}
	return labelPattern.ReplaceAllString(styles, ""), labels.String()
}

type state struct {
	registered map[string]string
	props      Props
	head, tail *Serialized
}

func (st *state) link(name, styles string) {
	n := &Serialized{Name: name, Styles: styles}
	if st.tail == nil {
		st.head = n
	} else {
		st.tail.Next = n
	}
	st.tail = n
}

func (st *state) interpolate(v any) string {
	switch x := v.(type) {
	case nil, bool:
		return ""
	case string:
		if cached, ok := st.registered[x]; ok {
			return cached
		}
		return x
	case *Serialized:
		if x == nil {
			return ""
		}
		if x.keyframes {
			st.link(x.Name, x.Styles)
			return x.Name
		}
		for next := x.Next; next != nil; next = next.Next {
			st.link(next.Name, next.Styles)
		}
		return x.Styles + ";"
	case ComponentSelector:
		sel := x.ComponentSelector()
		if sel == NoComponentSelector {
			diag.Warn("component selectors need a target option; interpolating a component without one yields no usable selector")
		}
		return sel
	case StyleFunc:
		return st.interpolate(x(st.props))
	case func(Props) any:
		return st.interpolate(x(st.props))
	case func(Props) string:
		return st.interpolate(x(st.props))
	case []any:
		var b strings.Builder
		for _, item := range x {
			b.WriteString(st.interpolate(item))
		}
		return b.String()
	case []string:
		var b strings.Builder
		for _, item := range x {
			b.WriteString(st.interpolate(item))
		}
		return b.String()
	case map[string]any:
		return st.object(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
