package styled

import (
	"github.com/charmbracelet/log"

	"github.com/pthm/styled/internal/diag"
	"github.com/pthm/styled/lib/serialize"
)

// Re-export serializer types so users don't need to import lib/serialize.
type (
	// Serialized is the output of serialization: a hash name, the style
	// text and any keyframes it references.
	Serialized = serialize.Serialized

	// Serializer turns a style chain into a Serialized value.
	Serializer = serialize.Serializer

	// StyleFunc is a style fragment computed from merged properties.
	StyleFunc = serialize.StyleFunc
)

// NoComponentSelector is what a component without a target renders as
// when used as a selector.
const NoComponentSelector = serialize.NoComponentSelector

// CSS serializes fragments into a value that can be interpolated into
// other styles. Its class name is "{key}-{Name}" once a component using
// it has rendered.
func CSS(fragments ...any) *Serialized {
	return serialize.CSS(fragments...)
}

// Keyframes serializes a keyframes body. Interpolating the result yields
// its animation name and inserts the @keyframes rule alongside.
//
//	fade := styled.Keyframes("from{opacity:0}to{opacity:1}")
//	Box := styled.New(styled.Element("div"))("animation: ", fade, " 1s;")
func Keyframes(fragments ...any) *Serialized {
	return serialize.Keyframes(fragments...)
}

// SetLogger replaces the logger usage warnings are written to. Warnings
// are compiled out of styled_production builds.
func SetLogger(l *log.Logger) {
	diag.SetLogger(l)
}
