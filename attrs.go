package styled

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// globalAttrs are valid on every HTML element.
var globalAttrs = setOf(
	"accesskey", "autocapitalize", "autofocus", "children", "class",
	"contenteditable", "dir", "draggable", "enterkeyhint", "hidden", "id",
	"inert", "inputmode", "is", "itemid", "itemprop", "itemref", "itemscope",
	"itemtype", "lang", "nonce", "part", "popover", "role", "slot",
	"spellcheck", "style", "tabindex", "title", "translate",
)

// elementAttrs lists attributes that are only meaningful on specific
// elements.
var elementAttrs = map[atom.Atom]map[string]bool{
	atom.A: setOf("download", "href", "hreflang", "ping", "referrerpolicy", "rel", "target", "type"),
	atom.Area: setOf("alt", "coords", "download", "href", "ping", "referrerpolicy", "rel", "shape", "target"),
	atom.Audio: setOf("autoplay", "controls", "crossorigin", "loop", "muted", "preload", "src"),
	atom.Button: setOf("disabled", "form", "formaction", "formenctype", "formmethod", "formnovalidate",
		"formtarget", "name", "popovertarget", "popovertargetaction", "type", "value"),
	atom.Details:  setOf("name", "open"),
	atom.Fieldset: setOf("disabled", "form", "name"),
	atom.Form: setOf("accept-charset", "action", "autocomplete", "enctype", "method", "name",
		"novalidate", "rel", "target"),
	atom.Iframe: setOf("allow", "allowfullscreen", "height", "loading", "name", "referrerpolicy",
		"sandbox", "src", "srcdoc", "width"),
	atom.Img: setOf("alt", "crossorigin", "decoding", "fetchpriority", "height", "ismap", "loading",
		"referrerpolicy", "sizes", "src", "srcset", "usemap", "width"),
	atom.Input: setOf("accept", "alt", "autocomplete", "capture", "checked", "dirname", "disabled",
		"form", "formaction", "formenctype", "formmethod", "formnovalidate", "formtarget", "height",
		"list", "max", "maxlength", "min", "minlength", "multiple", "name", "pattern", "placeholder",
		"readonly", "required", "size", "src", "step", "type", "value", "width"),
	atom.Label: setOf("for", "form"),
	atom.Li:    setOf("value"),
	atom.Link: setOf("as", "crossorigin", "disabled", "fetchpriority", "href", "hreflang", "integrity",
		"media", "referrerpolicy", "rel", "sizes", "type"),
	atom.Meta:   setOf("charset", "content", "http-equiv", "media", "name"),
	atom.Meter:  setOf("high", "low", "max", "min", "optimum", "value"),
	atom.Ol:     setOf("reversed", "start", "type"),
	atom.Option: setOf("disabled", "label", "selected", "value"),
	atom.Output: setOf("for", "form", "name"),
	atom.Progress: setOf("max", "value"),
	atom.Script: setOf("async", "crossorigin", "defer", "fetchpriority", "integrity", "nomodule",
		"referrerpolicy", "src", "type"),
	atom.Select: setOf("autocomplete", "disabled", "form", "multiple", "name", "required", "size"),
	atom.Source: setOf("height", "media", "sizes", "src", "srcset", "type", "width"),
	atom.Svg:    setOf("fill", "height", "preserveAspectRatio", "stroke", "viewBox", "width", "xmlns"),
	atom.Td:     setOf("colspan", "headers", "rowspan"),
	atom.Textarea: setOf("autocomplete", "cols", "dirname", "disabled", "form", "maxlength", "minlength",
		"name", "placeholder", "readonly", "required", "rows", "wrap"),
	atom.Th:    setOf("abbr", "colspan", "headers", "rowspan", "scope"),
	atom.Time:  setOf("datetime"),
	atom.Track: setOf("default", "kind", "label", "src", "srclang"),
	atom.Video: setOf("autoplay", "controls", "crossorigin", "height", "loop", "muted", "playsinline",
		"poster", "preload", "src", "width"),
}

// voidElements never have content or a closing tag.
var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true, atom.Embed: true,
	atom.Hr: true, atom.Img: true, atom.Input: true, atom.Link: true, atom.Meta: true,
	atom.Source: true, atom.Track: true, atom.Wbr: true,
}

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// isValidAttr reports whether name is a standard attribute for el, a
// data-/aria-/hx- attribute, or an event handler.
func isValidAttr(el atom.Atom, name string) bool {
	if globalAttrs[name] || elementAttrs[el][name] {
		return true
	}
	for _, prefix := range []string{"data-", "aria-", "hx-"} {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			return true
		}
	}
	return isEventHandler(name)
}

// isEventHandler matches onclick as well as onClick.
func isEventHandler(name string) bool {
	if len(name) < 3 || !strings.HasPrefix(name, "on") {
		return false
	}
	c := name[2]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
