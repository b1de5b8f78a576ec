package styled

import (
	"bytes"
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pthm/styled/lib/extract"
)

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on markup, emitted style
// elements and the classes elements received.
type TestResult struct {
	HTML    string
	Styles  []extract.Block
	Context *RenderContext
}

// TestRender renders a component under a fresh render context and returns
// testable output.
//
//	result, err := styled.TestRender(Button.With(styled.Props{"children": "OK"}))
//	if !result.StyleContains("color:red;") {
//	    t.Fatal("missing rule")
//	}
//
// At most one ContextOptions may be given.
func TestRender(component templ.Component, opts ...ContextOptions) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component, opts...)
}

// TestRenderWithContext renders with a custom parent context.
//
// Use this when testing components that read values from context, such as
// a theme:
//
//	ctx := styled.WithTheme(context.Background(), styled.Theme{"primary": "hotpink"})
//	result, err := styled.TestRenderWithContext(ctx, Button)
//
// If ctx already carries a render context it is reused, which lets tests
// render several components against one cache.
func TestRenderWithContext(ctx context.Context, component templ.Component, opts ...ContextOptions) (*TestResult, error) {
	rc := ContextFrom(ctx)
	if rc == nil {
		var o ContextOptions
		if len(opts) > 0 {
			o = opts[0]
		}
		var err error
		if rc, err = NewContext(o); err != nil {
			return nil, err
		}
		ctx = WithContext(ctx, rc)
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}

	blocks, err := extract.Styles(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:    buf.String(),
		Styles:  blocks,
		Context: rc,
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// CSS returns the text of every emitted style element, in order.
func (r *TestResult) CSS() string {
	var b strings.Builder
	for _, block := range r.Styles {
		b.WriteString(block.CSS)
	}
	return b.String()
}

// StyleContains checks if the emitted rules contain a substring.
func (r *TestResult) StyleContains(substr string) bool {
	return strings.Contains(r.CSS(), substr)
}

// ClassOf returns the class attribute of the first element matching a
// CSS selector, or "" if there is none.
//
//	result.ClassOf("button")
//	result.ClassOf("nav > a[href='/']")
func (r *TestResult) ClassOf(selector string) string {
	v, _ := r.AttrOf(selector, ClassProp)
	return v
}

// AttrOf returns an attribute of the first element matching a CSS
// selector.
func (r *TestResult) AttrOf(selector, name string) (string, bool) {
	n := r.find(selector)
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Has reports whether an element matching a CSS selector was rendered.
func (r *TestResult) Has(selector string) bool {
	return r.find(selector) != nil
}

func (r *TestResult) find(selector string) *html.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(r.HTML), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil
	}
	for _, n := range nodes {
		if m := sel.MatchFirst(n); m != nil {
			return m
		}
	}
	return nil
}
