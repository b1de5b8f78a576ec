package sheet

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// wrappingAtRules are at-rules whose body is compiled against the
// enclosing selector.
var wrappingAtRules = []string{"@media", "@supports", "@container", "@layer", "@document"}

// Compile turns serialized styles into flat CSS rules scoped to selector.
//
// Top-level declarations become selector{...}. Nested blocks resolve "&"
// against selector (or become descendants when there is no "&"), wrapping
// at-rules are compiled recursively, and other at-rules pass through. With
// an empty selector the styles are treated as complete rules, which is how
// keyframes and other additional rules are inserted.
func Compile(selector, styles string) []string {
	styles = stripComments(styles)
	if selector == "" {
		decls, blocks := scan(styles)
		var rules []string
		if d := strings.TrimSpace(strings.Join(decls, ";")); d != "" {
			rules = append(rules, d+";")
		}
		for _, b := range blocks {
			rules = append(rules, b.prelude+"{"+strings.TrimSpace(b.body)+"}")
		}
		return rules
	}
	var rules []string
	compileBlock(selector, styles, &rules)
	return rules
}

type block struct {
	prelude string
	body    string
}

func compileBlock(selector, body string, out *[]string) {
	decls, blocks := scan(body)
	if d := Declarations(decls); d != "" {
		*out = append(*out, selector+"{"+d+"}")
	}
	for _, b := range blocks {
		switch {
		case isWrappingAtRule(b.prelude):
			var inner []string
			compileBlock(selector, b.body, &inner)
			if len(inner) > 0 {
				*out = append(*out, b.prelude+"{"+strings.Join(inner, "")+"}")
			}
		case strings.HasPrefix(b.prelude, "@"):
			*out = append(*out, b.prelude+"{"+strings.TrimSpace(b.body)+"}")
		default:
			compileBlock(resolveSelector(selector, b.prelude), b.body, out)
		}
	}
}

func isWrappingAtRule(prelude string) bool {
	for _, at := range wrappingAtRules {
		if strings.HasPrefix(prelude, at) {
			return true
		}
	}
	return false
}

// resolveSelector combines every parent selector with every child
// selector.
func resolveSelector(parent, child string) string {
	var out []string
	for _, p := range splitTopLevel(parent, ',') {
		p = strings.TrimSpace(p)
		for _, c := range splitTopLevel(child, ',') {
			c = strings.TrimSpace(c)
			if strings.Contains(c, "&") {
				out = append(out, strings.ReplaceAll(c, "&", p))
			} else {
				out = append(out, p+" "+c)
			}
		}
	}
	return strings.Join(out, ",")
}

// Declarations normalizes a list of raw "prop: value" declarations into
// minified "prop:value;" form. Declarations are parsed with douceur; when
// the parser disagrees with a plain split (custom properties, odd values)
// the plain split is used.
func Declarations(decls []string) string {
	var raw []string
	for _, d := range decls {
		if d = strings.TrimSpace(d); d != "" {
			raw = append(raw, d)
		}
	}
	if len(raw) == 0 {
		return ""
	}

	manual := make([]string, 0, len(raw))
	for _, d := range raw {
		prop, value, ok := strings.Cut(d, ":")
		if !ok {
			continue
		}
		manual = append(manual, strings.TrimSpace(prop)+":"+normalizeValue(value)+";")
	}

	parsed, err := parser.ParseDeclarations(strings.Join(raw, ";") + ";")
	if err != nil || len(parsed) != len(manual) {
		return strings.Join(manual, "")
	}

	var b strings.Builder
	for i, d := range parsed {
		prop, _, _ := strings.Cut(manual[i], ":")
		if d.Property != prop {
			return strings.Join(manual, "")
		}
		b.WriteString(d.Property)
		b.WriteString(":")
		value := normalizeValue(d.Value)
		if d.Important && !strings.HasSuffix(value, "!important") {
			value += "!important"
		}
		b.WriteString(value)
		b.WriteString(";")
	}
	return b.String()
}

func normalizeValue(value string) string {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(strings.ToLower(value), "!important") {
		return strings.TrimSpace(value[:len(value)-len("!important")]) + "!important"
	}
	return value
}

// scan splits a block body into top-level declarations and nested blocks.
func scan(body string) ([]string, []block) {
	var (
		decls  []string
		blocks []block
		cur    strings.Builder
		quote  rune
		parens int
	)
	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if quote != 0 {
			cur.WriteRune(r)
			if r == '\\' && i+1 < len(runes) {
				i++
				cur.WriteRune(runes[i])
			} else if r == quote {
				quote = 0
			}
			continue
		}
		switch r {
		case '"', '\'':
			quote = r
			cur.WriteRune(r)
		case '(':
			parens++
			cur.WriteRune(r)
		case ')':
			parens--
			cur.WriteRune(r)
		case ';':
			if parens > 0 {
				cur.WriteRune(r)
				continue
			}
			decls = append(decls, cur.String())
			cur.Reset()
		case '{':
			end := matchBrace(runes, i)
			blocks = append(blocks, block{
				prelude: strings.TrimSpace(cur.String()),
				body:    string(runes[i+1 : end]),
			})
			cur.Reset()
			i = end
		case '}':
			// stray closing brace
		default:
			cur.WriteRune(r)
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		decls = append(decls, cur.String())
	}
	return decls, blocks
}

// matchBrace returns the index of the brace closing the one at open, or
// len(runes) when it is unbalanced.
func matchBrace(runes []rune, open int) int {
	depth := 0
	var quote rune
	for i := open; i < len(runes); i++ {
		r := runes[i]
		if quote != 0 {
			if r == '\\' {
				i++
			} else if r == quote {
				quote = 0
			}
			continue
		}
		switch r {
		case '"', '\'':
			quote = r
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(runes)
}

func splitTopLevel(s string, sep rune) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func stripComments(s string) string {
	for {
		start := strings.Index(s, "/*")
		if start < 0 {
			return s
		}
		end := strings.Index(s[start+2:], "*/")
		if end < 0 {
			return s[:start]
		}
		s = s[:start] + s[start+2+end+2:]
	}
}
