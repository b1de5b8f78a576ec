package styled

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pthm/styled/lib/snapshot"
)

func TestIsHTMX(t *testing.T) {
	tests := []struct {
		name   string
		header string
		expect bool
	}{
		{"with HX-Request true", "true", true},
		{"with HX-Request false", "false", false},
		{"without header", "", false},
		{"with other value", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("HX-Request", tt.header)
			}

			result := IsHTMX(req)
			if result != tt.expect {
				t.Errorf("IsHTMX() = %v, want %v", result, tt.expect)
			}
		})
	}
}

func TestIsBoosted(t *testing.T) {
	tests := []struct {
		name   string
		header string
		expect bool
	}{
		{"with HX-Boosted true", "true", true},
		{"with HX-Boosted false", "false", false},
		{"without header", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("HX-Boosted", tt.header)
			}

			result := IsBoosted(req)
			if result != tt.expect {
				t.Errorf("IsBoosted() = %v, want %v", result, tt.expect)
			}
		})
	}
}

func newTestServer(t *testing.T, mwOpts ...MiddlewareOption) http.Handler {
	t.Helper()
	button := New(Element("button"))("color: red;")
	return Middleware(ContextOptions{Key: "app"}, mwOpts...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := Render(w, r, button); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
}

func TestRenderHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `<style data-emotion="app `) {
		t.Errorf("body = %s", rec.Body.String())
	}
	if rec.Header().Get(DefaultSnapshotHeader) != "" {
		t.Error("snapshot header sent without WithSnapshot")
	}
}

func TestRenderWithoutMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	err := Render(rec, req, New(Element("p"))("margin: 0;"))
	if !IsNoRenderContext(err) {
		t.Errorf("Render() error = %v, want ErrNoRenderContext", err)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("partial output written: %q", rec.Body.String())
	}
}

func TestMiddlewareFreshContextPerRequest(t *testing.T) {
	h := newTestServer(t)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if !strings.Contains(rec.Body.String(), "<style") {
			t.Errorf("request %d: styles missing, contexts leaked between requests", i)
		}
	}
}

func TestMiddlewareSnapshot(t *testing.T) {
	codec, err := snapshot.NewCodec([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	h := newTestServer(t, WithSnapshot(codec), WithSnapshotHeader("X-Styles"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	token := rec.Header().Get("X-Styles")
	if token == "" {
		t.Fatal("snapshot header missing")
	}

	tests := []struct {
		name       string
		headers    map[string]string
		wantStyles bool
	}{
		{"htmx partial", map[string]string{"HX-Request": "true", "X-Styles": token}, false},
		{"full load", map[string]string{"X-Styles": token}, true},
		{"boosted", map[string]string{"HX-Request": "true", "HX-Boosted": "true", "X-Styles": token}, true},
		{"tampered", map[string]string{"HX-Request": "true", "X-Styles": token + "x"}, true},
		{"no token", map[string]string{"HX-Request": "true"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := strings.Contains(rec.Body.String(), "<style"); got != tt.wantStyles {
				t.Errorf("styles emitted = %v, want %v\n%s", got, tt.wantStyles, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), "<button") {
				t.Errorf("body = %s", rec.Body.String())
			}
		})
	}
}

func TestMiddlewareInvalidOptionsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Middleware() should panic on invalid options")
		}
	}()
	Middleware(ContextOptions{Key: "NOPE"})
}
