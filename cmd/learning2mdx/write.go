package main

import (
	"encoding/json"
	"fmt"
	"time"

	learning2mdx "github.com/alnah/go-learning2mdx"
	"github.com/alnah/go-learning2mdx/internal/fileutil"
)

// manifestName is the file listing the imported pages in row order.
const manifestName = "modules.json"

// Debug output extensions written with --html.
const (
	sourceExt       = ".html"
	restructuredExt = ".htmlx"
)

// writer writes imported documents to an output directory.
type writer struct {
	dir  string
	ext  string // ".mdx" or ".md"
	html bool
}

// RowOutput holds the outcome of importing and writing a single row.
type RowOutput struct {
	Row        learning2mdx.Row
	Document   *learning2mdx.Document // nil when conversion failed
	OutputPath string
	Err        error
	Duration   time.Duration
}

// writeDocuments writes every successfully imported document. A write
// failure is recorded on its row like a conversion failure.
func (w *writer) writeDocuments(results []learning2mdx.RowResult) []RowOutput {
	outputs := make([]RowOutput, len(results))
	for i, res := range results {
		out := RowOutput{Row: res.Row, Document: res.Document, Err: res.Err, Duration: res.Duration}
		if res.Err == nil {
			out.OutputPath, out.Err = w.writeDocument(res.Document)
		}
		outputs[i] = out
	}
	return outputs
}

// writeDocument writes doc as <stem><ext>, plus the debug markup files
// when enabled. Returns the document path.
func (w *writer) writeDocument(doc *learning2mdx.Document) (string, error) {
	if w.html {
		if _, err := fileutil.WriteFile(w.dir, doc.Stem+sourceExt, doc.Source); err != nil {
			return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		if _, err := fileutil.WriteFile(w.dir, doc.Stem+restructuredExt, doc.Restructured); err != nil {
			return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}

	path, err := fileutil.WriteFile(w.dir, doc.Stem+w.ext, doc.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return path, nil
}

// manifest returns the entries of rows whose document was written, in row
// order.
func manifest(outputs []RowOutput) []learning2mdx.ManifestEntry {
	entries := make([]learning2mdx.ManifestEntry, 0, len(outputs))
	for _, o := range outputs {
		if o.Err == nil && o.Document != nil {
			entries = append(entries, o.Document.Entry())
		}
	}
	return entries
}

// writeManifest writes modules.json.
func (w *writer) writeManifest(entries []learning2mdx.ManifestEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: encoding manifest: %w", ErrWriteOutput, err)
	}
	if _, err := fileutil.WriteFile(w.dir, manifestName, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
