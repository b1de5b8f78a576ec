// Package styled attaches content-addressed styles to templ components.
//
// A styled component pairs a tag with a chain of style fragments. At
// render time the chain is evaluated against the component's properties,
// hashed into a class name, registered once in the request's render
// context, and the element is rendered with that class and the subset of
// properties it accepts.
//
// # Core Concepts
//
// Components are built in two steps: New picks the tag and options, and
// the returned Factory takes the style chain:
//
//	var Button = styled.New(styled.Element("button"), styled.Options{Label: "Button"})(
//	    "padding: 4px 8px; border: 0;",
//	    func(p styled.Props) any {
//	        return map[string]any{"color": p["color"]}
//	    },
//	)
//
// Fragments are strings, numbers, style objects, functions of the
// properties, values from CSS and Keyframes, or other components with a
// Target used as selectors. A Template followed by its interpolations
// reads like a tagged template literal.
//
// Wrapping a styled component inherits its chain, defaults and forwarding
// policy:
//
//	var Primary = styled.New(Button)("background: rebeccapurple;")
//
// # Class Names
//
// Class names are "{key}-{hash}" where hash is computed from the final
// style text, so identical styles share one class and one rule no matter
// which component produced them. A Label is appended to the name for
// debugging and never changes the hash.
//
// Incoming class names (the "class" property) that the render context
// registered are folded back into the chain, so composing styled classes
// produces one merged rule instead of two competing ones.
//
// # Forwarding
//
// Host elements receive only attributes valid for them (plus data-*,
// aria-*, hx-* and event handlers). Function components receive every
// property except the theme. Options.ShouldForwardProp replaces the
// default and is ANDed with the policy of a wrapped component.
//
// The "as" property renders a different tag with the same styles, unless
// the base tag accepts an attribute named as, such as <link>.
//
// # Render Context
//
// All registration state lives in a RenderContext carried by
// context.Context. There is no global cache: create one per request,
// usually with Middleware:
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    styled.Render(w, r, Page())
//	})
//	http.ListenAndServe(":8080", styled.Middleware(styled.ContextOptions{})(mux))
//
// By default each rule is emitted in a <style data-emotion> element right
// before the first element that uses it. With ContextOptions.Collect the
// rules stay in the sheet and StyleElement renders them in one place.
//
// # Diagnostics
//
// Usage warnings (illegal template escapes, components used as selectors
// without a target, colliding property transforms) are logged through
// charmbracelet/log; see SetLogger. Building with the styled_production
// tag removes the checks and warnings.
package styled
