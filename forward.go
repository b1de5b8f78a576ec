package styled

// ForwardFunc decides whether a property reaches the rendered element.
type ForwardFunc func(name string) bool

// composeForward derives the explicit forwarding predicate of a component
// built from tag. An explicit predicate in opts is ANDed with the one tag
// already carries; without one, a derived tag's predicate is inherited.
// A nil result means "use the default for the base tag".
func composeForward(tag Tag, opts Options, derived bool) ForwardFunc {
	var inherited ForwardFunc
	if c, ok := tag.(*Component); ok && derived {
		inherited = c.forward
	}

	explicit := opts.ShouldForwardProp
	switch {
	case explicit != nil && inherited != nil:
		return func(name string) bool {
			return inherited(name) && explicit(name)
		}
	case explicit != nil:
		return explicit
	default:
		return inherited
	}
}

// defaultForward returns the forwarding policy for tag when no explicit
// predicate is configured. Recognized host elements receive only valid
// attributes; everything else receives every property except the theme.
func defaultForward(tag Tag) ForwardFunc {
	if e, ok := tag.(Element); ok && e.recognized() {
		el := e.atom()
		return func(name string) bool {
			return isValidAttr(el, name)
		}
	}
	return forwardAllButTheme
}

func forwardAllButTheme(name string) bool {
	return name != ThemeProp
}

// And combines predicates; a property forwards only if every predicate
// agrees.
func And(fns ...ForwardFunc) ForwardFunc {
	return func(name string) bool {
		for _, fn := range fns {
			if fn != nil && !fn(name) {
				return false
			}
		}
		return true
	}
}

// Only returns a predicate that forwards exactly the named properties.
func Only(names ...string) ForwardFunc {
	set := setOf(names...)
	return func(name string) bool {
		return set[name]
	}
}

// Except returns a predicate that forwards everything but the named
// properties.
func Except(names ...string) ForwardFunc {
	set := setOf(names...)
	return func(name string) bool {
		return !set[name]
	}
}
