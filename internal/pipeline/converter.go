package pipeline

import (
	"errors"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/alnah/go-learning2mdx/internal/directive"
)

// ErrConversion indicates the markup tree could not be converted.
var ErrConversion = errors.New("markup conversion failed")

// Converter turns a markup tree into Markdown/MDX text.
//
// Footnotes are scoped to one Convert call. Asset references are recorded
// in the resolver and accumulate across calls. A Converter is not safe for
// concurrent use; give each worker its own.
type Converter struct {
	resolver *directive.Resolver
	markdown *MarkdownRenderer
	engine   *md.Converter

	footnotes []string
	markers   map[*html.Node]int // glossary link -> footnote number
	err       error
}

// NewConverter creates a Converter that rewrites links and images through
// resolver.
func NewConverter(resolver *directive.Resolver) *Converter {
	c := &Converter{
		resolver: resolver,
		markdown: NewMarkdownRenderer(),
	}

	engine := md.NewConverter("", true, nil)
	engine.Use(plugin.GitHubFlavored())
	// Rules registered later take precedence over the plugin's.
	engine.Use(c.rules())
	c.engine = engine
	return c
}

// Assets returns the asset references recorded so far.
func (c *Converter) Assets() *directive.Assets {
	return c.resolver.Assets()
}

// Footnotes returns the footnotes collected by the last Convert call.
func (c *Converter) Footnotes() []string {
	return append([]string(nil), c.footnotes...)
}

// Convert converts the tree under root. Whitespace-only text nodes are
// removed from the tree first.
func (c *Converter) Convert(root *goquery.Selection) (string, error) {
	c.footnotes = nil
	c.markers = make(map[*html.Node]int)
	c.err = nil

	for _, n := range root.Nodes {
		stripBlankText(n)
	}

	out := c.engine.Convert(root)
	if c.err != nil {
		return "", c.err
	}

	var b strings.Builder
	b.WriteString(out)
	for i, footnote := range c.footnotes {
		fmt.Fprintf(&b, "\n\n[^%d]: %s\n", i+1, footnote)
	}
	return b.String(), nil
}

// ConvertString parses markup and converts it.
func (c *Converter) ConvertString(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return c.Convert(doc.Selection)
}

// fail records the first error raised inside a rule. Rules cannot return
// errors, so Convert reports it after the walk.
func (c *Converter) fail(err error) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %w", ErrConversion, err)
	}
}

// finishMarkup resolves footnote markers and normalizes markup emitted for
// tables and expanders.
func (c *Converter) finishMarkup(markup string) string {
	markup = crossReference(markup, c.footnotes)
	out, err := NormalizeMarkup(markup)
	if err != nil {
		c.fail(err)
		return markup
	}
	return out
}
