package styledecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pthm/styled"
)

var badge = styled.New(styled.Element("span"))("font-weight: bold;")

func newEcho() *echo.Echo {
	e := echo.New()
	e.Use(Middleware(styled.ContextOptions{Key: "app"}))
	e.GET("/", func(c echo.Context) error {
		return Render(c, badge.With(styled.Props{"children": "new"}))
	})
	return e
}

func TestMiddlewareAttachesContext(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(styled.ContextOptions{}))

	var rc *styled.RenderContext
	e.GET("/", func(c echo.Context) error {
		rc = RenderContext(c)
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rc == nil {
		t.Fatal("RenderContext() returned nil inside the middleware")
	}
	if rc.Key() != styled.DefaultKey {
		t.Errorf("Key() = %q, want %q", rc.Key(), styled.DefaultKey)
	}
}

func TestRender(t *testing.T) {
	rec := httptest.NewRecorder()
	newEcho().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<style data-emotion="app `) || !strings.Contains(body, ">new</span>") {
		t.Errorf("body = %s", body)
	}
}

func TestRenderWithoutMiddleware(t *testing.T) {
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return Render(c, badge)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 without a render context", rec.Code)
	}
}

func TestMiddlewareInvalidOptions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Middleware() should panic on invalid options")
		}
	}()
	Middleware(styled.ContextOptions{Key: "Not Valid"})
}
