package pipeline

import (
	"fmt"
	"html"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	nethtml "golang.org/x/net/html"

	"github.com/alnah/go-learning2mdx/internal/widget"
)

// glossaryClass marks links whose title is a glossary definition.
const glossaryClass = "glossary"

// rules is the element-name to handler table. Every handler returns a
// non-nil result: a nil result makes the engine convert the children again,
// which would record footnotes twice.
func (c *Converter) rules() md.Plugin {
	return func(_ *md.Converter) []md.Rule {
		return []md.Rule{
			{Filter: []string{"a"}, Replacement: c.link},
			{Filter: []string{"img"}, Replacement: c.image},
			{Filter: []string{"sub"}, Replacement: c.rawMarkup},
			{Filter: []string{"td", "th"}, Replacement: c.tableCell},
			{Filter: []string{"caption"}, Replacement: c.tableCaption},
			{Filter: []string{"tr", "thead", "tbody", "tfoot"}, Replacement: c.tableSection},
			{Filter: []string{"table"}, Replacement: c.table},
			{Filter: []string{widget.TitleTag}, Replacement: c.expanderTitle},
			{Filter: []string{widget.BodyTag}, Replacement: c.expanderBody},
			{Filter: []string{widget.ExpanderTag}, Replacement: c.expander},
		}
	}
}

func (c *Converter) link(content string, selec *goquery.Selection, _ *md.Options) *string {
	text := strings.TrimSpace(content)

	if selec.HasClass(glossaryClass) {
		c.footnotes = append(c.footnotes, collapseSpace(selec.AttrOr("title", "")))
		for _, n := range selec.Nodes {
			c.markers[n] = len(c.footnotes)
		}
		return md.String(fmt.Sprintf("%s[^%d]", text, len(c.footnotes)))
	}

	href := c.resolver.ResolveHref(selec.AttrOr("href", ""))
	if href == "" {
		return md.String(text)
	}
	return md.String(fmt.Sprintf("[%s](%s%s)", text, destination(href), linkTitle(selec)))
}

func (c *Converter) image(_ string, selec *goquery.Selection, _ *md.Options) *string {
	src := c.resolver.ResolveSrc(selec.AttrOr("src", ""))
	alt := strings.TrimSpace(selec.AttrOr("alt", ""))
	return md.String(fmt.Sprintf("![%s](%s%s)", alt, destination(src), linkTitle(selec)))
}

func (c *Converter) rawMarkup(_ string, selec *goquery.Selection, _ *md.Options) *string {
	out, err := goquery.OuterHtml(selec)
	if err != nil {
		c.fail(err)
		return md.String("")
	}
	return md.String(out)
}

// tableCell re-renders the cell's converted content as markup. Only the
// structural cell attributes survive.
func (c *Converter) tableCell(content string, selec *goquery.Selection, _ *md.Options) *string {
	inner, err := c.markdown.ToInlineHTML(content)
	if err != nil {
		c.fail(err)
		return md.String("")
	}

	tag := goquery.NodeName(selec)
	var b strings.Builder
	b.WriteString("<" + tag)
	for _, key := range cellAttrs {
		if val, ok := selec.Attr(key); ok {
			fmt.Fprintf(&b, ` %s="%s"`, key, html.EscapeString(val))
		}
	}
	b.WriteString(">" + inner + "</" + tag + ">")
	return md.String(b.String())
}

func (c *Converter) tableCaption(content string, _ *goquery.Selection, _ *md.Options) *string {
	inner, err := c.markdown.ToInlineHTML(content)
	if err != nil {
		c.fail(err)
		return md.String("")
	}
	return md.String("<caption>" + inner + "</caption>")
}

func (c *Converter) tableSection(content string, selec *goquery.Selection, _ *md.Options) *string {
	tag := goquery.NodeName(selec)
	return md.String("<" + tag + ">" + content + "</" + tag + ">")
}

func (c *Converter) table(content string, _ *goquery.Selection, _ *md.Options) *string {
	markup := c.finishMarkup("<table>" + content + "</table>")
	return md.String("\n\n" + markup + "\n\n")
}

func (c *Converter) expanderTitle(_ string, _ *goquery.Selection, _ *md.Options) *string {
	return md.String("")
}

func (c *Converter) expanderBody(content string, _ *goquery.Selection, _ *md.Options) *string {
	return md.String("\n\n" + strings.TrimSpace(content) + "\n\n")
}

// expander emits <Expander title="…">markup</Expander>. The body goes
// through the same markup round trip as a table.
func (c *Converter) expander(content string, selec *goquery.Selection, _ *md.Options) *string {
	title := c.titleText(selec.ChildrenFiltered(widget.TitleTag))

	body, err := c.markdown.ToHTML(content)
	if err != nil {
		c.fail(err)
		return md.String("")
	}
	body = strings.TrimSpace(c.finishMarkup(body))

	return md.String(fmt.Sprintf("\n\n<%s title=\"%s\">\n%s\n</%s>\n\n",
		ComponentName, html.EscapeString(title), body, ComponentName))
}

// titleText returns the plain text of an expander title. Glossary links
// keep their footnote marker so the footnote stays referenced.
func (c *Converter) titleText(title *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *nethtml.Node)
	walk = func(n *nethtml.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			switch child.Type {
			case nethtml.TextNode:
				b.WriteString(child.Data)
			case nethtml.ElementNode:
				if k, ok := c.markers[child]; ok {
					b.WriteString(strings.TrimSpace(nodeText(child)))
					fmt.Fprintf(&b, "[^%d]", k)
					continue
				}
				walk(child)
			}
		}
	}
	for _, n := range title.Nodes {
		walk(n)
	}
	return collapseSpace(b.String())
}

func nodeText(n *nethtml.Node) string {
	return goquery.NewDocumentFromNode(n).Text()
}

// collapseSpace joins the words of s with single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// destination wraps link targets containing spaces in angle brackets.
func destination(target string) string {
	if strings.ContainsAny(target, " \t") {
		return "<" + target + ">"
	}
	return target
}

func linkTitle(selec *goquery.Selection) string {
	title := strings.TrimSpace(selec.AttrOr("title", ""))
	if title == "" {
		return ""
	}
	return ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
}
