package styled

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/styled/internal/diag"
)

// Options configures a styled component. Options are immutable once passed
// to New.
type Options struct {
	// Label is a stable human identifier. It is appended to generated names
	// for debugging and never changes the hash.
	Label string

	// Target is a fixed class added to every rendered class string, giving
	// the component a stable selector (see Component.String).
	Target string

	// ShouldForwardProp overrides the default forwarding policy. When
	// wrapping another styled component it is ANDed with that component's
	// policy.
	ShouldForwardProp ForwardFunc

	// ShouldTransformProp rewrites incoming properties before anything else
	// runs.
	ShouldTransformProp TransformFunc
}

// merge overlays the set fields of next onto o.
func (o Options) merge(next Options) Options {
	if next.Label != "" {
		o.Label = next.Label
	}
	if next.Target != "" {
		o.Target = next.Target
	}
	if next.ShouldForwardProp != nil {
		o.ShouldForwardProp = next.ShouldForwardProp
	}
	if next.ShouldTransformProp != nil {
		o.ShouldTransformProp = next.ShouldTransformProp
	}
	return o
}

func mergeOptions(opts []Options) Options {
	var o Options
	for _, next := range opts {
		o = o.merge(next)
	}
	return o
}

// Factory builds a styled component from a style chain. Each call returns
// a new, independent *Component.
//
// Fragments are either listed directly or given as a Template followed by
// its interpolations. A fragment may be a string, a number, a style object
// (map[string]any), a func(Props) any or func(Props) string computed at
// render time, a value from CSS or Keyframes, or a *Component with a
// Target used as a selector.
type Factory func(fragments ...any) *Component

// New returns a factory for components rendering tag.
//
//	Button := styled.New(styled.Element("button"), styled.Options{Label: "Button"})(
//	    "padding: 4px 8px;",
//	    func(p styled.Props) any { return "color: " + p["color"].(string) + ";" },
//	)
//
// tag may be another styled component; its chain, defaults and forwarding
// policy are inherited. New panics with a *ConfigurationError when tag is
// undefined; the check is skipped in styled_production builds.
func New(tag Tag, opts ...Options) Factory {
	if diag.Enabled && isNilTag(tag) {
		panic(&ConfigurationError{Op: "New", Err: ErrUndefinedTag})
	}

	o := mergeOptions(opts)
	derived, isDerived := tag.(*Component)

	base := tag
	if isDerived {
		base = derived.base
	}

	forward := composeForward(tag, o, isDerived)
	baseForward := forward
	if baseForward == nil {
		baseForward = defaultForward(base)
	}
	// A base that already forwards "as" gives it a meaning of its own.
	useAs := !baseForward(AsProp)

	displayName := o.Label
	if displayName == "" {
		displayName = "Styled(" + base.tagName() + ")"
	}

	return func(fragments ...any) *Component {
		return &Component{
			displayName: displayName,
			defaults:    copyProps(defaultsOf(tag)),
			styles:      accumulate(derived, o.Label, fragments),
			forward:     forward,
			base:        base,
			options:     o,
			baseForward: baseForward,
			useAs:       useAs,
		}
	}
}

// Component is a styled component. It is immutable after creation and safe
// to render from many render passes at once: the class name is computed
// per render and never stored.
type Component struct {
	displayName string
	defaults    Props
	styles      []any
	forward     ForwardFunc // explicit policy, inherited by wrappers
	base        Tag         // Element or *Func, never *Component
	options     Options

	baseForward ForwardFunc
	useAs       bool
}

// DisplayName returns the label, or Styled(base) when no label was set.
func (c *Component) DisplayName() string {
	return c.displayName
}

// Defaults returns a copy of the default property table.
func (c *Component) Defaults() Props {
	return copyProps(c.defaults)
}

// Styles returns a copy of the style chain.
func (c *Component) Styles() []any {
	out := make([]any, len(c.styles))
	copy(out, c.styles)
	return out
}

// Base returns the element or function the component renders.
func (c *Component) Base() Tag {
	return c.base
}

// Target returns the configured target class.
func (c *Component) Target() string {
	return c.options.Target
}

// Polymorphic reports whether the "as" property selects the rendered tag.
func (c *Component) Polymorphic() bool {
	return c.useAs
}

// ShouldForward reports whether the component forwards a property to its
// base tag.
func (c *Component) ShouldForward(name string) bool {
	if c.useAs && name == AsProp {
		return false
	}
	return c.baseForward(name)
}

// String returns the component's selector: the target class prefixed
// with a dot. Without a target, diagnostic builds return
// NoComponentSelector so misuse in a selector is detectable.
func (c *Component) String() string {
	if c.options.Target == "" && diag.Enabled {
		return NoComponentSelector
	}
	return "." + c.options.Target
}

// ComponentSelector is used when the component is interpolated into
// another component's styles.
func (c *Component) ComponentSelector() string {
	return c.String()
}

// WithComponent returns a component with the same styles rendering next.
// The forwarding policy is recomputed for next and ANDed with this
// component's explicit policy.
func (c *Component) WithComponent(next Tag, opts ...Options) *Component {
	nextOpts := mergeOptions(opts)
	merged := c.options.merge(nextOpts)
	merged.ShouldForwardProp = composeForward(c, nextOpts, true)
	comp := New(next, merged)()
	// c.styles already carries c's label, so only a new one is added.
	nextBase, _ := next.(*Component)
	comp.styles = accumulate(nextBase, nextOpts.Label, c.styles)
	return comp
}

// With returns a templ component rendering c with props.
func (c *Component) With(props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.render(ctx, w, props)
	})
}

// Render renders c without properties. It makes *Component a
// templ.Component.
func (c *Component) Render(ctx context.Context, w io.Writer) error {
	return c.render(ctx, w, nil)
}

func (c *Component) render(ctx context.Context, w io.Writer, props Props) error {
	res, err := c.Resolve(ctx, props)
	if err != nil {
		return err
	}
	if res.Rules != "" {
		rc := ContextFrom(ctx)
		if err := writeStyle(w, rc.Key(), res.Inserted, rc.Sheet().Nonce(), res.Rules); err != nil {
			return err
		}
	}
	return createElement(ctx, w, res.Tag, res.Props)
}

var _ templ.Component = (*Component)(nil)
