package components

import "github.com/pthm/styled"

var fadeIn = styled.Keyframes("from{opacity:0;transform:translateY(-4px);}to{opacity:1;transform:none;}")

// Page centers the content column.
var Page = styled.New(styled.Element("main"), styled.Options{Label: "Page"})(
	"max-width: 40rem; margin: 2rem auto; font-family: system-ui, sans-serif;",
)

// Card is the list container.
var Card = styled.New(styled.Element("section"), styled.Options{Label: "Card"})(
	styled.Template{"background: ", "; border: 1px solid ", "; border-radius: 8px; padding: 1rem;"},
	func(p styled.Props) any { return themed(p, "surface") },
	func(p styled.Props) any { return themed(p, "border") },
)

// Row is a single todo. The done property strikes it through and is
// never rendered as an attribute.
var Row = styled.New(styled.Element("li"), styled.Options{Label: "Row", Target: "todo-row"})(
	map[string]any{
		"display":    "flex",
		"alignItems": "center",
		"gap":        8,
		"padding":    "0.5rem 0",
		"listStyle":  "none",
	},
	"&:not(:last-child){border-bottom: 1px solid #f3f4f6;}",
	"animation: ", fadeIn, " 150ms ease-out;",
	func(p styled.Props) any {
		if done, _ := p["done"].(bool); done {
			return map[string]any{"textDecoration": "line-through", "color": themed(p, "muted")}
		}
		return nil
	},
)

// Badge shows a label in its theme color.
var Badge = styled.New(styled.Element("span"), styled.Options{
	Label: "Badge",
	ShouldTransformProp: func(name string, value any) (string, any) {
		if name == "label" {
			return "data-label", value
		}
		return name, value
	},
})(
	"font-size: 0.75rem; padding: 0 6px; border-radius: 999px; color: white;",
	func(p styled.Props) any {
		theme, _ := p[styled.ThemeProp].(styled.Theme)
		colors, _ := theme["labels"].(map[Label]string)
		label, _ := p["data-label"].(Label)
		return map[string]any{"background": colors[label]}
	},
)

// Button is the base button.
var Button = styled.New(styled.Element("button"), styled.Options{Label: "Button"})(
	"border: 0; border-radius: 4px; padding: 4px 10px; cursor: pointer;",
	"& ", Row, "{margin: 0;}",
)

// ToggleButton extends Button with the accent color.
var ToggleButton = styled.New(Button, styled.Options{Label: "ToggleButton"})(
	func(p styled.Props) any {
		return "background: " + themed(p, "accent") + "; color: white;"
	},
)

// LinkButton renders Button's styles on an anchor.
var LinkButton = Button.WithComponent(styled.Element("a"))
