// Package extract reads style elements emitted during server rendering
// back out of an HTML document.
package extract

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is the attribute that identifies emitted style elements.
const Attr = "data-emotion"

var (
	styleSelector = cascadia.MustCompile("style[" + Attr + "]")
	classSelector = cascadia.MustCompile("[class]")
)

// Block is one emitted style element.
type Block struct {
	Key   string
	Names []string
	Nonce string
	CSS   string
}

// Styles parses an HTML document or fragment and returns every style
// element carrying the data-emotion attribute, in document order.
func Styles(r io.Reader) ([]Block, error) {
	nodes, err := html.ParseFragment(r, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	var blocks []Block
	for _, n := range nodes {
		walk(n, &blocks)
	}
	return blocks, nil
}

// Document parses a complete HTML document. Style elements in <head> are
// included, which Styles would move out of a body context.
func Document(r io.Reader) ([]Block, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	var blocks []Block
	walk(doc, &blocks)
	return blocks, nil
}

func walk(n *html.Node, blocks *[]Block) {
	for _, m := range styleSelector.MatchAll(n) {
		if b, ok := blockOf(m); ok {
			*blocks = append(*blocks, b)
		}
	}
}

func blockOf(n *html.Node) (Block, bool) {
	var b Block
	found := false
	for _, a := range n.Attr {
		switch a.Key {
		case Attr:
			fields := strings.Fields(a.Val)
			if len(fields) > 0 {
				b.Key = fields[0]
				b.Names = fields[1:]
			}
			found = true
		case "nonce":
			b.Nonce = a.Val
		}
	}
	if !found {
		return b, false
	}
	var css strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			css.WriteString(c.Data)
		}
	}
	b.CSS = css.String()
	return b, true
}

// ClassNames returns every class token used in an HTML document or
// fragment.
func ClassNames(r io.Reader) (map[string]bool, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	classes := make(map[string]bool)
	for _, n := range classSelector.MatchAll(doc) {
		for _, a := range n.Attr {
			if a.Key == "class" {
				for _, c := range strings.Fields(a.Val) {
					classes[c] = true
				}
			}
		}
	}
	return classes, nil
}
