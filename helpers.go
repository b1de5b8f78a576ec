package styled

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"github.com/pthm/styled/internal/diag"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context, which must carry a render context (see Middleware).
// The component is rendered into a buffer first so that, when the
// middleware was configured WithSnapshot, the inserted names can be sent
// in the snapshot header ahead of the body:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    styled.Render(w, r, Page())
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if sc := snapshotFrom(r.Context()); sc != nil {
		if rc := ContextFrom(r.Context()); rc != nil {
			token, err := rc.Snapshot(sc.codec)
			if err != nil {
				diag.Warn("snapshot not sent", "err", err)
			} else {
				w.Header().Set(sc.header, token)
			}
		}
	}
	_, err := buf.WriteTo(w)
	return err
}

// IsHTMX returns true if the request originated from HTMX.
//
// Partial requests swap markup into a page that already holds earlier
// style elements; pair this with WithSnapshot so those rules are not sent
// again:
//
//	if styled.IsHTMX(r) {
//	    return Row(item)
//	}
//	return Page(items)
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsBoosted returns true if the request is a boosted navigation (hx-boost).
// Boosted navigations replace the body, so previously emitted style
// elements may be gone; the middleware does not restore snapshots for them.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("HX-Boosted") == "true"
}
