// Package pipeline converts a restructured learning-module markup tree into
// Markdown/MDX text.
//
// The walk is driven by html-to-markdown with a rule table keyed by element
// name. Most elements use the library's CommonMark and GitHub-flavored rules.
// The exceptions are:
//   - Links and images, whose targets go through the directive resolver
//   - Glossary links, which become footnote markers
//   - Tables and expanders, which are emitted as markup after a Markdown
//     round trip through goldmark
//   - Subscripts, which are kept as raw markup
//
// Footnotes are collected per Convert call and appended as a trailing block.
// Asset references accumulate in the resolver for the converter's lifetime.
package pipeline
