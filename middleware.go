package styled

import (
	"context"
	"net/http"

	"github.com/pthm/styled/internal/diag"
	"github.com/pthm/styled/lib/snapshot"
)

// DefaultSnapshotHeader carries the signed inserted-names token between
// server and client.
const DefaultSnapshotHeader = "Styled-Inserted"

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	codec  *snapshot.Codec
	header string
}

// WithSnapshot enables snapshots: Render sends the names a response
// inserted, and partial requests that echo the token back skip rules the
// page already holds.
func WithSnapshot(codec *snapshot.Codec) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.codec = codec
	}
}

// WithSnapshotHeader overrides DefaultSnapshotHeader.
func WithSnapshotHeader(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.header = name
	}
}

type snapshotKey struct{}

func snapshotFrom(ctx context.Context) *middlewareConfig {
	c, _ := ctx.Value(snapshotKey{}).(*middlewareConfig)
	return c
}

// Middleware attaches a fresh RenderContext to every request.
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", handler)
//	http.ListenAndServe(":8080", styled.Middleware(styled.ContextOptions{Key: "app"})(mux))
//
// Options are validated once; Middleware panics if they are invalid.
func Middleware(opts ContextOptions, mwOpts ...MiddlewareOption) func(http.Handler) http.Handler {
	if _, err := NewContext(opts); err != nil {
		panic(err)
	}

	cfg := &middlewareConfig{header: DefaultSnapshotHeader}
	for _, opt := range mwOpts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := MustContext(opts)

			ctx := WithContext(r.Context(), rc)
			if cfg.codec != nil {
				ctx = context.WithValue(ctx, snapshotKey{}, cfg)
				restoreSnapshot(rc, cfg, r)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// restoreSnapshot marks names from the request's token as inserted. Only
// HTMX partial swaps qualify; full loads and boosted navigations start
// with an empty page.
func restoreSnapshot(rc *RenderContext, cfg *middlewareConfig, r *http.Request) {
	token := r.Header.Get(cfg.header)
	if token == "" || !IsHTMX(r) || IsBoosted(r) {
		return
	}
	if err := rc.Restore(cfg.codec, token); err != nil {
		diag.Warn("ignoring style snapshot", "header", cfg.header, "err", err)
	}
}
