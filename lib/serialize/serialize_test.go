package serialize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type selector string

func (s selector) ComponentSelector() string { return string(s) }

func TestSerializeDeterministic(t *testing.T) {
	chain := []any{
		"display:flex;",
		func(p Props) any { return "color:" + p["color"].(string) + ";" },
	}

	a := Serialize(chain, nil, Props{"color": "red"})
	b := Serialize(chain, nil, Props{"color": "red"})
	c := Serialize(chain, nil, Props{"color": "blue"})

	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, "display:flex;color:red;", a.Styles)
	assert.NotEqual(t, a.Name, c.Name)
}

func TestSerializeLabels(t *testing.T) {
	plain := Serialize([]any{"color:red;"}, nil, nil)
	labeled := Serialize([]any{"label:Button;", "color:red;"}, nil, nil)

	assert.Equal(t, plain.Name+"-Button", labeled.Name)
	assert.Equal(t, "color:red;", labeled.Styles)
}

func TestSerializeRegisteredClassName(t *testing.T) {
	registered := map[string]string{"css-abc": "color:green;"}
	s := Serialize([]any{"css-abc", "margin:0;"}, registered, nil)
	assert.Equal(t, "color:green;margin:0;", s.Styles)
}

func TestSerializeValues(t *testing.T) {
	tests := []struct {
		name  string
		chain []any
		want  string
	}{
		{"nil and bools", []any{nil, true, false, "a:b;"}, "a:b;"},
		{"numbers", []any{"z-index:", 3, ";"}, "z-index:3;"},
		{"nested slices", []any{[]any{"a:1;", []any{"b:2;"}}, []string{"c:3;"}}, "a:1;b:2;c:3;"},
		{"style func", []any{StyleFunc(func(Props) any { return "x:y;" })}, "x:y;"},
		{"string func", []any{func(Props) string { return "p:q;" }}, "p:q;"},
		{"func returning func", []any{func(Props) any { return func(Props) string { return "n:m;" } }}, "n:m;"},
		{"component selector", []any{selector(".card"), "{color:red;}"}, ".card{color:red;}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.chain, nil, Props{}).Styles)
		})
	}
}

func TestSerializeObject(t *testing.T) {
	obj := map[string]any{
		"backgroundColor": "red",
		"zIndex":          2,
		"marginTop":       4,
		"padding":         0,
		"msTransition":    "none",
		"--gap":           8,
		"&:hover":         map[string]any{"color": "blue"},
		"hidden":          nil,
	}

	got := Serialize([]any{obj}, nil, nil).Styles

	assert.Equal(t,
		"&:hover{color:blue;}--gap:8;background-color:red;margin-top:4px;-ms-transition:none;padding:0;z-index:2;",
		got)
}

func TestSerializeObjectFuncValue(t *testing.T) {
	obj := map[string]any{
		"color": func(p Props) any { return p["tone"] },
	}
	got := Serialize([]any{obj}, nil, Props{"tone": "teal"}).Styles
	assert.Equal(t, "color:teal;", got)
}

func TestSerializeNestedCSS(t *testing.T) {
	fade := Keyframes("from{opacity:0;}to{opacity:1;}")
	base := CSS("padding:4px;animation:", fade, " 1s;")

	require.NotNil(t, base.Next)
	assert.True(t, strings.HasPrefix(base.Next.Styles, "@keyframes "+fade.Name))

	outer := Serialize([]any{base, "color:red;"}, nil, nil)

	assert.Equal(t, "padding:4px;animation:"+fade.Name+" 1s;;color:red;", outer.Styles)
	require.NotNil(t, outer.Next)
	assert.Equal(t, fade.Name, outer.Next.Name)
	assert.Equal(t, []string{outer.Name, fade.Name}, outer.Names())
}

func TestKeyframes(t *testing.T) {
	kf := Keyframes("from{opacity:0;}to{opacity:1;}")
	assert.True(t, kf.IsKeyframes())
	assert.True(t, strings.HasPrefix(kf.Name, "animation-"))
	assert.Equal(t, "@keyframes "+kf.Name+"{from{opacity:0;}to{opacity:1;}}", kf.Styles)

	s := Serialize([]any{"animation:", kf, " 2s;"}, nil, nil)
	assert.Equal(t, "animation:"+kf.Name+" 2s;", s.Styles)
	require.NotNil(t, s.Next)
	assert.Equal(t, kf.Styles, s.Next.Styles)
}

func TestHyphenate(t *testing.T) {
	tests := map[string]string{
		"color":           "color",
		"backgroundColor": "background-color",
		"msFlex":          "-ms-flex",
		"msg":             "msg",
		"--custom-Var":    "--custom-Var",
		"WebkitBoxShadow": "-webkit-box-shadow",
	}
	for in, want := range tests {
		assert.Equal(t, want, Hyphenate(in), in)
	}
}

func TestFuncAdapter(t *testing.T) {
	var called bool
	var s Serializer = Func(func(chain []any, registered map[string]string, props Props) *Serialized {
		called = true
		return &Serialized{Name: "x"}
	})
	assert.Equal(t, "x", s.Serialize(nil, nil, nil).Name)
	assert.True(t, called)
}
