package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates the Markdown round trip back to markup failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// MarkdownRenderer turns converted Markdown back into markup for the
// elements that must be emitted as HTML (tables and expanders).
type MarkdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer creates a MarkdownRenderer with GFM extensions.
// Raw HTML is passed through so nested tables and expanders survive.
func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &MarkdownRenderer{md: md}
}

// ToHTML converts a Markdown fragment to an HTML fragment.
func (r *MarkdownRenderer) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// ToInlineHTML converts a Markdown fragment and drops the paragraph wrapper
// when the result is a single paragraph, as in a table cell.
func (r *MarkdownRenderer) ToInlineHTML(markdown string) (string, error) {
	out, err := r.ToHTML(markdown)
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	inner, ok := strings.CutPrefix(out, "<p>")
	if !ok {
		return out, nil
	}
	inner, ok = strings.CutSuffix(inner, "</p>")
	if !ok || strings.Contains(inner, "<p>") {
		return out, nil
	}
	return inner, nil
}
