// Package styledecho provides Echo framework integration for styled
// components.
//
// Attach a render context to every request, then render with Render:
//
//	e := echo.New()
//	e.Use(styledecho.Middleware(styled.ContextOptions{Key: "app"}))
//	e.GET("/", func(c echo.Context) error {
//	    return styledecho.Render(c, Page())
//	})
//
// Or scope it to a group:
//
//	g := e.Group("/app", authMiddleware, styledecho.Middleware(styled.ContextOptions{}))
package styledecho

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/styled"
)

// Middleware attaches a fresh styled.RenderContext to every request.
// It panics if opts are invalid.
//
//	codec, _ := snapshot.NewCodec(key)
//	e.Use(styledecho.Middleware(styled.ContextOptions{}, styled.WithSnapshot(codec)))
func Middleware(opts styled.ContextOptions, mwOpts ...styled.MiddlewareOption) echo.MiddlewareFunc {
	return echo.WrapMiddleware(styled.Middleware(opts, mwOpts...))
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return styledecho.Render(c, Card.With(styled.Props{"children": "hi"}))
//	}
func Render(c echo.Context, component templ.Component) error {
	return styled.Render(c.Response(), c.Request(), component)
}

// RenderContext returns the render context attached by Middleware, or nil.
func RenderContext(c echo.Context) *styled.RenderContext {
	return styled.ContextFrom(c.Request().Context())
}
