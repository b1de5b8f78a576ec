package styled

import (
	"context"
	"strings"
	"testing"
)

func TestTransformPropsCollision(t *testing.T) {
	warnings := captureWarnings(t)

	props := Props{"b": 2, "a": 1, "c": 3}
	out := transformProps(props, func(name string, value any) (string, any) {
		if name == "a" || name == "b" {
			return "x", value
		}
		return name, value
	})

	if out["x"] != 2 {
		t.Errorf(`out["x"] = %v, want the later pair (2)`, out["x"])
	}
	if out["c"] != 3 || len(out) != 2 {
		t.Errorf("out = %v", out)
	}
	if len(props) != 3 {
		t.Error("input table was modified")
	}
	if !strings.Contains(warnings.String(), "overwrites") {
		t.Errorf("warnings = %q", warnings.String())
	}
}

func TestTransformPropsNil(t *testing.T) {
	props := Props{"a": 1}
	if out := transformProps(props, nil); out["a"] != 1 || len(out) != 1 {
		t.Errorf("out = %v", out)
	}
}

func TestResolveTheme(t *testing.T) {
	theme := Theme{"primary": "red"}

	props := Props{"a": 1}
	out := resolveTheme(props, theme)
	if _, ok := props[ThemeProp]; ok {
		t.Error("resolveTheme modified its input")
	}
	if out[ThemeProp] == nil || out["a"] != 1 {
		t.Errorf("out = %v", out)
	}

	nilTheme := Props{ThemeProp: nil}
	if out := resolveTheme(nilTheme, theme); out[ThemeProp] == nil {
		t.Error("nil theme should be replaced")
	}

	own := Props{ThemeProp: Theme{"primary": "blue"}}
	out = resolveTheme(own, theme)
	out["marker"] = true
	if own["marker"] != true {
		t.Error("a table with a theme should be used as-is")
	}
}

func TestThemeFromDefault(t *testing.T) {
	if _, ok := ThemeFrom(context.Background()).(Theme); !ok {
		t.Error("ThemeFrom() should default to an empty Theme")
	}
}

func TestApplyDefaults(t *testing.T) {
	out := applyDefaults(Props{"size": "m", "kind": "a", "tone": "dark"}, Props{"size": nil, "kind": "b"})
	if out["kind"] != "b" || out["tone"] != "dark" {
		t.Errorf("out = %v", out)
	}
	if v, ok := out["size"]; !ok || v != nil {
		t.Errorf("explicit nil should be kept, got size = %v", v)
	}
}

func TestFilterProps(t *testing.T) {
	props := Props{"as": "a", "href": "/", "x": 1}
	out := filterProps(props, Except("x"), true)
	if _, ok := out["as"]; ok {
		t.Error("as should be dropped in polymorphic mode")
	}
	if out["href"] != "/" || len(out) != 1 {
		t.Errorf("out = %v", out)
	}

	out = filterProps(props, Except("x"), false)
	if out["as"] != "a" {
		t.Error("as should pass through when not polymorphic")
	}
}
