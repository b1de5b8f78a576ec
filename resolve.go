package styled

import (
	"context"
	"fmt"

	"github.com/pthm/styled/lib/serialize"
)

// Resolution is the outcome of resolving a component against one set of
// properties: what to render and which rules to emit before it.
type Resolution struct {
	// Tag is the rendered tag, the base tag unless "as" selected another.
	Tag Tag
	// ClassName is the full class string, also stored in Props.
	ClassName string
	// Props holds the forwarded properties.
	Props Props
	// Serialized is the serializer output the class name was derived from.
	Serialized *serialize.Serialized
	// Inserted lists the names this resolution inserted, in chain order.
	Inserted []string
	// Rules is the compiled rule text to emit inline; empty when the rules
	// were already inserted or the context collects them.
	Rules string
}

// Resolve computes the class name, registers the styles and filters the
// properties, without writing anything. Render uses it; it is exported
// for integrations that emit markup themselves.
func (c *Component) Resolve(ctx context.Context, props Props) (*Resolution, error) {
	rc := ContextFrom(ctx)
	if rc == nil {
		return nil, ErrNoRenderContext
	}

	props = applyDefaults(c.defaults, props)

	tag := c.base
	if c.useAs {
		if as := asTag(props[AsProp]); as != nil {
			tag = as
		}
	}

	transformed := transformProps(props, c.options.ShouldTransformProp)
	// The contextual theme feeds the styles only; it is never forwarded.
	merged := resolveTheme(transformed, ThemeFrom(ctx))

	var (
		className    string
		classInterps []any
	)
	switch v := merged[ClassProp].(type) {
	case nil:
	case string:
		className, classInterps = rc.RegisteredStyles(v)
	default:
		className = fmt.Sprint(v) + " "
	}

	chain := c.styles[:len(c.styles):len(c.styles)]
	if len(classInterps) > 0 {
		chain = append(chain, classInterps...)
	}

	serialized := rc.Serialize(chain, merged)
	rules, inserted := rc.Insert(serialized, isElement(tag))

	className += rc.Key() + "-" + serialized.Name
	if c.options.Target != "" {
		className += " " + c.options.Target
	}

	forward := c.baseForward
	if c.useAs && c.forward == nil {
		forward = defaultForward(tag)
	}

	out := filterProps(transformed, forward, c.useAs)
	out[ClassProp] = className

	return &Resolution{
		Tag:        tag,
		ClassName:  className,
		Props:      out,
		Serialized: serialized,
		Inserted:   inserted,
		Rules:      rules,
	}, nil
}
