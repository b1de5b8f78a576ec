package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/styled"
)

// TodoList renders every todo inside a card.
func TodoList(store TodoStore) templ.Component {
	items := make([]templ.Component, 0)
	for _, todo := range store.List() {
		items = append(items, TodoRow(todo))
	}
	return Card.With(styled.Props{
		"id": "todos",
		"children": []templ.Component{
			text("<h1>Todos</h1>"),
			templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				if _, err := io.WriteString(w, "<ul>"); err != nil {
					return err
				}
				for _, item := range items {
					if err := item.Render(ctx, w); err != nil {
						return err
					}
				}
				_, err := io.WriteString(w, "</ul>")
				return err
			}),
		},
	})
}

// TodoRow renders one todo with a toggle button that swaps the row.
func TodoRow(todo *Todo) templ.Component {
	children := []templ.Component{
		ToggleButton.With(styled.Props{
			"hx-post":   "/todos/" + todo.ID + "/toggle",
			"hx-target": "closest li",
			"hx-swap":   "outerHTML",
			"children":  toggleText(todo),
		}),
		text("<span>" + templ.EscapeString(todo.Title) + "</span>"),
	}
	for _, label := range todo.Labels {
		children = append(children, Badge.With(styled.Props{"label": label, "children": string(label)}))
	}
	return Row.With(styled.Props{
		"id":       todo.ID,
		"done":     todo.Done(),
		"children": children,
	})
}

func toggleText(todo *Todo) string {
	if todo.Done() {
		return "Undo"
	}
	return "Done"
}

func text(html string) templ.Component {
	return templ.Raw(html)
}
