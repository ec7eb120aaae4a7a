package pipeline

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ComponentName is the MDX component an expander is rendered as.
const ComponentName = "Expander"

// presentationalAttrs are dropped from every element of emitted markup.
var presentationalAttrs = map[string]bool{
	"width":  true,
	"valign": true,
	"style":  true,
}

// cellAttrs are the only attributes a table cell keeps.
var cellAttrs = []string{"colspan", "rowspan", "scope", "align"}

var (
	footnoteMarker = regexp.MustCompile(`\[\^(\d+)\]`)

	// The HTML parser lower-cases element names; MDX components are case sensitive.
	componentCase = strings.NewReplacer(
		"<"+strings.ToLower(ComponentName)+" ", "<"+ComponentName+" ",
		"<"+strings.ToLower(ComponentName)+">", "<"+ComponentName+">",
		"</"+strings.ToLower(ComponentName)+">", "</"+ComponentName+">",
	)
)

// NormalizeMarkup parses an HTML fragment, strips presentational attributes
// and renders it back.
func NormalizeMarkup(markup string) (string, error) {
	root, err := parseFragment(markup)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	stripPresentational(root)

	out, err := renderFragment(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return componentCase.Replace(out), nil
}

// parseFragment parses markup in body context so no <html><body> wrapper
// is added.
func parseFragment(content string) (*nethtml.Node, error) {
	context := &nethtml.Node{
		Type:     nethtml.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := nethtml.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &nethtml.Node{Type: nethtml.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the container's children only.
func renderFragment(container *nethtml.Node) (string, error) {
	var buf strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := nethtml.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func stripPresentational(n *nethtml.Node) {
	if n.Type == nethtml.ElementNode && len(n.Attr) > 0 {
		kept := n.Attr[:0]
		for _, attr := range n.Attr {
			if !presentationalAttrs[strings.ToLower(attr.Key)] {
				kept = append(kept, attr)
			}
		}
		n.Attr = kept
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		stripPresentational(c)
	}
}

// crossReference replaces footnote markers in markup with links to a
// trailing list of the footnotes they refer to. Markers without a matching
// footnote are left alone.
func crossReference(markup string, footnotes []string) string {
	var order []int
	seen := make(map[int]bool)

	out := footnoteMarker.ReplaceAllStringFunc(markup, func(marker string) string {
		n, err := strconv.Atoi(footnoteMarker.FindStringSubmatch(marker)[1])
		if err != nil || n < 1 || n > len(footnotes) {
			return marker
		}
		if !seen[n] {
			seen[n] = true
			order = append(order, n)
		}
		return fmt.Sprintf(`<sup><a href="#fn-%d">%d</a></sup>`, n, n)
	})

	if len(order) == 0 {
		return out
	}

	var b strings.Builder
	b.WriteString(out)
	b.WriteString("<ol>")
	for _, n := range order {
		fmt.Fprintf(&b, `<li id="fn-%d" value="%d">%s</li>`, n, n, html.EscapeString(footnotes[n-1]))
	}
	b.WriteString("</ol>")
	return b.String()
}
