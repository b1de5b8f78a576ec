package styled

import "context"

// Theme is the default theme value type. Any value can be provided with
// WithTheme; Theme is what components see when no provider is present.
type Theme map[string]any

type themeKey struct{}

// WithTheme returns a context whose components resolve theme when their
// properties carry none.
func WithTheme(ctx context.Context, theme any) context.Context {
	return context.WithValue(ctx, themeKey{}, theme)
}

// ThemeFrom returns the contextual theme, or an empty Theme.
func ThemeFrom(ctx context.Context) any {
	if theme := ctx.Value(themeKey{}); theme != nil {
		return theme
	}
	return Theme{}
}
