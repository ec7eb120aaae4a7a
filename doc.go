// Package learning2mdx converts legacy Stellent WCM learning-module exports
// into MDX or Markdown pages for a static site generator.
//
// # Quick Start
//
// Read the rows of an export and import them:
//
//	f, err := os.Open("export.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	rows, err := learning2mdx.ReadRows(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	batch, err := learning2mdx.ImportRows(ctx, learning2mdx.Options{
//	    Code:        "CON123",
//	    AssetPrefix: "../assets/",
//	    Component:   "../components/Expander",
//	}, rows, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, res := range batch.Results {
//	    if res.Err != nil {
//	        log.Printf("row %d: %v", res.Row.Index+1, res.Err)
//	        continue
//	    }
//	    os.WriteFile(res.Document.Stem+".mdx", []byte(res.Document.Content), 0644)
//	}
//
// # Import Pipeline
//
// Every row goes through these stages:
//
//  1. The title is prepended to the body as an <h1> heading
//  2. "showhide" toggle widgets are restructured into expander elements
//  3. The markup tree is converted to Markdown; legacy link and image
//     directives are resolved, glossary links become footnotes, tables and
//     expanders are emitted as normalized markup
//  4. YAML front matter (and, for MDX, the Expander import) is prepended
//
// # Assets
//
// Links and images that point into the legacy content server cannot be
// converted automatically. Their identifiers are collected in an
// AssetReport: Fetch lists everything to download by hand, Unknown the
// subset whose file type could not be determined (written with a .unknown
// extension).
//
// A single Importer accumulates assets across rows. ImportRows gives every
// worker its own Importer and merges their reports.
package learning2mdx
