package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pthm/styled"
	"github.com/pthm/styled/example/components"
	"github.com/pthm/styled/lib/snapshot"
)

func main() {
	store := NewStore()

	// In production, load the snapshot key from a secret.
	codec, err := snapshot.NewCodec([]byte("example-snapshot-key"))
	if err != nil {
		log.Fatal(err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(styled.Middleware(styled.ContextOptions{Key: "todo"}, styled.WithSnapshot(codec)))
	r.Use(withTheme)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render(w, r, layout(components.TodoList(store)))
	})
	r.Post("/todos/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !store.Toggle(id) {
			http.NotFound(w, r)
			return
		}
		render(w, r, components.TodoRow(store.Get(id)))
	})

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	fmt.Printf("Starting server at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func withTheme(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := styled.WithTheme(r.Context(), components.Theme)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	if err := styled.Render(w, r, c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// layout wraps the page body. The htmx snippet echoes the snapshot
// header back so swapped rows skip rules the page already has.
func layout(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>Todos</title>`+
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`+
			`<script>let s;document.addEventListener("htmx:afterRequest",e=>{s=e.detail.xhr.getResponseHeader("`+styled.DefaultSnapshotHeader+`")||s});`+
			`document.addEventListener("htmx:configRequest",e=>{if(s)e.detail.headers["`+styled.DefaultSnapshotHeader+`"]=s});</script>`+
			`</head><body>`); err != nil {
			return err
		}
		page := components.Page.With(styled.Props{"children": []templ.Component{
			body,
			components.LinkButton.With(styled.Props{"href": "/", "children": "Reload"}),
		}})
		if err := page.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
