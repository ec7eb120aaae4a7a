package learning2mdx

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-learning2mdx/internal/directive"
	"github.com/alnah/go-learning2mdx/internal/pipeline"
	"github.com/alnah/go-learning2mdx/internal/widget"
	"github.com/alnah/go-learning2mdx/internal/yamlutil"
)

// frontMatter is the YAML header of every output document.
type frontMatter struct {
	Title string `yaml:"title"`
}

// Importer converts rows into documents.
// Asset references accumulate across ImportRow calls. An Importer is not
// safe for concurrent use; ImportRows gives each worker its own.
type Importer struct {
	opts      Options
	resolver  *directive.Resolver
	converter *pipeline.Converter
}

// NewImporter validates opts and creates an Importer.
func NewImporter(opts Options) (*Importer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return newImporter(opts), nil
}

// newImporter creates an Importer from already validated options.
func newImporter(opts Options) *Importer {
	redirects := directive.MergeRedirects(directive.DefaultRedirects(), opts.Redirects)
	resolver := directive.NewResolver(opts.ContentPrefix, opts.AssetPrefix, redirects)
	return &Importer{
		opts:      opts,
		resolver:  resolver,
		converter: pipeline.NewConverter(resolver),
	}
}

// ImportRow restructures and converts one row.
func (imp *Importer) ImportRow(row Row) (*Document, error) {
	doc := &Document{
		Title:  row.Title,
		Stem:   fmt.Sprintf("%s_%d", imp.opts.Code, row.Index+1),
		Source: "<h1>" + html.EscapeString(row.Title) + "</h1>" + row.Body,
	}

	tree, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Source))
	if err != nil {
		return nil, imp.rowError(row, err)
	}

	doc.Expanders, err = widget.Restructure(tree.Selection)
	if err != nil {
		return nil, imp.rowError(row, err)
	}

	doc.Restructured, err = tree.Html()
	if err != nil {
		return nil, imp.rowError(row, err)
	}

	body, err := imp.converter.Convert(tree.Selection)
	if err != nil {
		return nil, imp.rowError(row, err)
	}

	header, err := yamlutil.FrontMatter(frontMatter{Title: row.Title})
	if err != nil {
		return nil, imp.rowError(row, err)
	}

	var b strings.Builder
	b.WriteString(header)
	if imp.opts.format() == FormatMDX {
		fmt.Fprintf(&b, "import %s from %q\n\n", pipeline.ComponentName, imp.opts.Component)
	}
	b.WriteString(body)
	doc.Content = b.String()

	return doc, nil
}

// Assets returns the asset references recorded so far.
func (imp *Importer) Assets() AssetReport {
	return newAssetReport(imp.assets())
}

func (imp *Importer) assets() *directive.Assets {
	return imp.converter.Assets()
}

func (imp *Importer) rowError(row Row, err error) error {
	return fmt.Errorf("%w: row %d (%s_%d): %w", ErrRowImport, row.Index+1, imp.opts.Code, row.Index+1, err)
}

// AssetReport lists legacy assets that must be fetched by hand.
// Unknown is a subset of Fetch. Both are sorted.
type AssetReport struct {
	Fetch   []string
	Unknown []string
}

func newAssetReport(a *directive.Assets) AssetReport {
	return AssetReport{
		Fetch:   a.Fetch.Sorted(),
		Unknown: a.Unknown.Sorted(),
	}
}
