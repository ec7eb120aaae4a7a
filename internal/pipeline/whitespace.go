package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// preformatted elements keep their whitespace.
var preformatted = map[string]bool{
	"pre":      true,
	"code":     true,
	"textarea": true,
}

// stripBlankText removes whitespace-only text nodes below n. Legacy markup is
// indented freely and those nodes would otherwise leak into the output.
func stripBlankText(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch {
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) == "":
			n.RemoveChild(c)
		case c.Type == html.ElementNode && preformatted[c.Data]:
		default:
			stripBlankText(c)
		}
		c = next
	}
}
