package pipeline

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// ---------------------------------------------------------------------------
// TestNormalizeMarkup
// ---------------------------------------------------------------------------

func TestNormalizeMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "presentational attributes stripped",
			input: `<table width="1"><tr><td style="a" valign="top" colspan="2">x</td></tr></table>`,
			want:  `<table><tbody><tr><td colspan="2">x</td></tr></tbody></table>`,
		},
		{
			name:  "component case restored",
			input: `<Expander title="t"><p>x</p></Expander>`,
			want:  `<Expander title="t"><p>x</p></Expander>`,
		},
		{
			name:  "plain fragment unchanged",
			input: `<p>a <em>b</em></p>`,
			want:  `<p>a <em>b</em></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeMarkup(tt.input)
			if err != nil {
				t.Fatalf("NormalizeMarkup() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NormalizeMarkup() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCrossReference
// ---------------------------------------------------------------------------

func TestCrossReference(t *testing.T) {
	t.Parallel()

	footnotes := []string{"one", "two & three"}

	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "no markers",
			markup: "<p>plain</p>",
			want:   "<p>plain</p>",
		},
		{
			name:   "repeated marker listed once",
			markup: "<p>a[^2] b[^2]</p>",
			want: `<p>a<sup><a href="#fn-2">2</a></sup> b<sup><a href="#fn-2">2</a></sup></p>` +
				`<ol><li id="fn-2" value="2">two &amp; three</li></ol>`,
		},
		{
			name:   "unknown marker left alone",
			markup: "<p>x[^9]</p>",
			want:   "<p>x[^9]</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := crossReference(tt.markup, footnotes); got != tt.want {
				t.Errorf("crossReference() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdownRenderer
// ---------------------------------------------------------------------------

func TestMarkdownRenderer_ToInlineHTML(t *testing.T) {
	t.Parallel()

	r := NewMarkdownRenderer()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{name: "single paragraph unwrapped", markdown: "**bold** text", want: "<strong>bold</strong> text"},
		{name: "two paragraphs kept", markdown: "a\n\nb", want: "<p>a</p>\n<p>b</p>"},
		{name: "raw html passes", markdown: "<sub>2</sub>", want: "<sub>2</sub>"},
		{name: "empty", markdown: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.ToInlineHTML(tt.markdown)
			if err != nil {
				t.Fatalf("ToInlineHTML() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ToInlineHTML(%q) = %q, want %q", tt.markdown, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStripBlankText
// ---------------------------------------------------------------------------

func TestStripBlankText(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<div>\n  <p>x</p>\n  <pre>  </pre>\n</div>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	stripBlankText(doc.Get(0))

	div := doc.Find("div").Get(0)
	count := 0
	for c := div.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	if count != 2 {
		t.Errorf("div children = %d, want 2 (p and pre)", count)
	}
	if got := doc.Find("pre").Text(); got != "  " {
		t.Errorf("pre text = %q, want whitespace preserved", got)
	}
}
