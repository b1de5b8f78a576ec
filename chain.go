package styled

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pthm/styled/internal/diag"
)

const illegalEscapeWarning = "template segment has an illegal escape sequence, most likely in a content value; " +
	`escape backslashes twice, e.g. write content: '\\00d7'; as content: '\\\\00d7';`

// Template is the literal half of a tagged template: raw text segments
// interleaved with the interpolations that follow it in a Factory call.
//
//	Button := styled.New(styled.Element("button"))(
//	    styled.Template{"color: ", "; padding: ", "px;"},
//	    func(p styled.Props) any { return p["color"] },
//	    4,
//	)
//
// Segments are cooked like JavaScript template literals, so `\\` yields a
// single backslash and `\n` a newline.
type Template []string

// accumulate builds the style chain for one factory call. A derived base
// contributes its chain first; the prefix shares base's backing array and
// is only copied when something is appended.
func accumulate(base *Component, label string, args []any) []any {
	var styles []any
	if base != nil {
		styles = base.styles[:len(base.styles):len(base.styles)]
	}
	if label != "" {
		styles = append(styles, "label:"+label+";")
	}
	if len(args) == 0 {
		return styles
	}

	tpl, ok := args[0].(Template)
	if !ok {
		return append(styles, args...)
	}

	styles = append(styles, segment(tpl, 0))
	for i := 1; i < len(args); i++ {
		styles = append(styles, args[i], segment(tpl, i))
	}
	for i := len(args); i < len(tpl); i++ {
		styles = append(styles, segment(tpl, i))
	}
	return styles
}

// segment returns the cooked segment i. Missing or uncookable segments are
// reported and replaced with the best available text.
func segment(tpl Template, i int) string {
	if i >= len(tpl) {
		diag.Warn(illegalEscapeWarning, "segment", i)
		return ""
	}
	cooked, ok := cook(tpl[i])
	if !ok {
		diag.Warn(illegalEscapeWarning, "segment", i)
		return tpl[i]
	}
	return cooked
}

// cook applies template-literal escape rules to raw. It fails on octal
// escapes (\1-\9, \0 followed by a digit) and malformed \x or \u escapes.
func cook(raw string) (string, bool) {
	if !strings.Contains(raw, `\`) {
		return raw, true
	}

	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			return "", false
		}
		switch e := raw[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			if i+1 < len(raw) && isDigit(raw[i+1]) {
				return "", false
			}
			b.WriteByte(0)
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return "", false
		case 'x':
			if i+2 >= len(raw) {
				return "", false
			}
			n, err := strconv.ParseUint(raw[i+1:i+3], 16, 8)
			if err != nil {
				return "", false
			}
			b.WriteRune(rune(n))
			i += 2
		case 'u':
			r, width, ok := unicodeEscape(raw[i+1:])
			if !ok {
				return "", false
			}
			b.WriteRune(r)
			i += width
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
		case '\n':
		default:
			b.WriteByte(e)
		}
	}
	return b.String(), true
}

// unicodeEscape parses the part of a \u escape after the u: either four
// hex digits or a braced code point.
func unicodeEscape(s string) (rune, int, bool) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, false
		}
		n, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || n > utf8.MaxRune {
			return 0, 0, false
		}
		return rune(n), end + 1, true
	}
	if len(s) < 4 {
		return 0, 0, false
	}
	n, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, 0, false
	}
	return rune(n), 4, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
