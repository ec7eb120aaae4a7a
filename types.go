package learning2mdx

import (
	"fmt"
	"regexp"
)

// Output formats.
const (
	FormatMDX      = "mdx"
	FormatMarkdown = "md"
)

// codePattern matches legacy content codes such as CON123.
var codePattern = regexp.MustCompile(`^CON\d+$`)

// Row is one page extracted from a WCM export.
type Row struct {
	Title string // Head element text
	Body  string // Body element markup
	Index int    // 0-based position in the export
}

// Document is the result of importing one Row.
type Document struct {
	Title        string
	Stem         string // <code>_<index+1>, used for file names and links
	Source       string // Body prefixed by the title heading
	Restructured string // Source after widget restructuring
	Content      string // Front matter, component import, body and footnotes
	Expanders    int    // Number of widgets restructured
}

// ManifestEntry is one element of modules.json.
type ManifestEntry struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Entry returns the manifest entry for d.
func (d *Document) Entry() ManifestEntry {
	return ManifestEntry{Name: d.Title, Link: d.Stem}
}

// Options configures an Importer.
type Options struct {
	Code          string            // Content code of the export, "CON123"
	ContentPrefix string            // Prepended to links between imported pages
	AssetPrefix   string            // Prepended to rewritten asset links
	Component     string            // Import path of the Expander component
	Format        string            // FormatMDX (default) or FormatMarkdown
	Redirects     map[string]string // Extra redirects, merged over the built-in table
}

// Validate checks that options are usable.
func (o *Options) Validate() error {
	if !ValidCode(o.Code) {
		return fmt.Errorf("%w: %q (must be in the format CON123)", ErrInvalidCode, o.Code)
	}

	switch o.format() {
	case FormatMDX:
		if o.Component == "" {
			return ErrMissingComponent
		}
	case FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidFormat, o.Format, FormatMDX, FormatMarkdown)
	}

	return nil
}

// Extension returns the output file extension including the dot.
func (o *Options) Extension() string {
	return "." + o.format()
}

func (o *Options) format() string {
	if o.Format == "" {
		return FormatMDX
	}
	return o.Format
}

// ValidCode reports whether code is a legacy content code (CON followed by digits).
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}
