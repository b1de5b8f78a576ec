package components

import "github.com/pthm/styled"

// Theme is the palette handed to every component through the context.
var Theme = styled.Theme{
	"accent":  "#6d28d9",
	"muted":   "#6b7280",
	"surface": "#ffffff",
	"border":  "#e5e7eb",
	"labels": map[Label]string{
		LabelWork:     "#2563eb",
		LabelPersonal: "#059669",
		LabelUrgent:   "#dc2626",
	},
}

// themed reads a string from the theme in p.
func themed(p styled.Props, key string) string {
	theme, _ := p[styled.ThemeProp].(styled.Theme)
	s, _ := theme[key].(string)
	return s
}
