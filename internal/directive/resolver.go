// Package directive rewrites legacy Stellent placeholder directives found in
// link and image attributes into output-relative asset paths, content links
// or external redirects.
//
// Only the fixed directive spellings observed in the exported corpus are
// recognized. Values that match none of them are returned unchanged.
package directive

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Directive prefixes emitted by the legacy content server.
const (
	SiteRootDirective = "[!--$ssServerRelativeSiteRoot--]"
	HTTPRootDirective = "[!--$HttpRelativeWebRoot--]"
)

const (
	pdfDocumentsPath = "Opendocuments/OpenPDFdocuments"
	showPageParam    = "showpage"
	pdfExtension     = ".pdf"
	unknownExtension = ".unknown"
)

var (
	// [!--$ssLink("ABC123?showpage=2")--]
	ssLinkPattern = regexp.MustCompile(`^\[!--\$ssLink\(\s*["'](.*)["']\s*\)--\]$`)

	// [!--$ssWeblayoutUrl('groups/images/abc.jpg')--]
	webLayoutPattern = regexp.MustCompile(`^\[!--\$ssWeblayoutUrl\(\s*["'](.*)["']\s*\)--\]$`)

	// Entity spellings of "&" seen in exported query strings.
	ampersandReplacer = strings.NewReplacer("&#38;", "&", "&amp;", "&")
)

// Resolver rewrites directive-bearing href and src values.
// It records every referenced asset in its Assets, which accumulate
// for the lifetime of the Resolver. A Resolver is not safe for concurrent use.
type Resolver struct {
	ContentPrefix string            // prepended to rewritten content page links
	AssetPrefix   string            // prepended to rewritten asset links
	Redirects     map[string]string // content code -> absolute URL

	assets Assets
}

// NewResolver creates a Resolver. A nil redirects table means no redirects.
func NewResolver(contentPrefix, assetPrefix string, redirects map[string]string) *Resolver {
	return &Resolver{
		ContentPrefix: contentPrefix,
		AssetPrefix:   assetPrefix,
		Redirects:     redirects,
	}
}

// Assets returns the asset sets collected so far.
func (r *Resolver) Assets() *Assets {
	return &r.assets
}

// ResolveHref rewrites a link target. The rules run in a fixed order and each
// one sees the output of the previous one, so an unwrapped ssLink may go on
// to match the showpage or site-root rules.
func (r *Resolver) ResolveHref(href string) string {
	href = unwrapSSLink(href)
	href = r.rewritePDFDocument(href)
	href = r.rewriteShowPage(href)
	href = r.rewriteSiteRoot(href)
	href = r.rewriteHTTPRoot(href)
	return href
}

// ResolveSrc rewrites an image source wrapped in an ssWeblayoutUrl directive.
func (r *Resolver) ResolveSrc(src string) string {
	match := webLayoutPattern.FindStringSubmatch(strings.TrimSpace(src))
	if match == nil {
		return src
	}

	name := path.Base(stripQuery(match[1]))
	r.assets.addFetch(stem(name))
	return r.AssetPrefix + strings.ToLower(name)
}

func unwrapSSLink(href string) string {
	match := ssLinkPattern.FindStringSubmatch(strings.TrimSpace(href))
	if match == nil {
		return href
	}
	return match[1]
}

func (r *Resolver) rewritePDFDocument(href string) string {
	if !strings.HasPrefix(href, SiteRootDirective+pdfDocumentsPath) {
		return href
	}

	code := stem(stripQuery(href))
	r.assets.addFetch(code)
	return r.AssetPrefix + strings.ToLower(code) + pdfExtension
}

// rewriteShowPage turns /module/ABC123?showpage=4#frag into
// <content-prefix>ABC123_4#frag.
func (r *Resolver) rewriteShowPage(href string) string {
	normalized := ampersandReplacer.Replace(href)

	rest, fragment, _ := strings.Cut(normalized, "#")
	p, rawQuery, ok := strings.Cut(rest, "?")
	if !ok {
		return href
	}

	// ParseQuery keeps every well-formed pair even when it reports an error.
	values, _ := url.ParseQuery(rawQuery)
	page := values.Get(showPageParam)
	if page == "" {
		return href
	}

	out := r.ContentPrefix + stem(urlPath(p)) + "_" + page
	if fragment != "" {
		out += "#" + fragment
	}
	return out
}

func (r *Resolver) rewriteSiteRoot(href string) string {
	if !strings.HasPrefix(href, SiteRootDirective) {
		return href
	}

	code := stem(stripQuery(href))
	if code == "" || strings.HasPrefix(code, "[!--") {
		return href
	}
	if target, ok := r.Redirects[code]; ok {
		return target
	}

	r.assets.addUnknown(code)
	return r.AssetPrefix + strings.ToLower(code) + unknownExtension
}

func (r *Resolver) rewriteHTTPRoot(href string) string {
	if !strings.HasPrefix(href, HTTPRootDirective) {
		return href
	}

	name := path.Base(stripQuery(strings.TrimPrefix(href, HTTPRootDirective)))
	r.assets.addFetch(stem(name))
	return r.AssetPrefix + strings.ToLower(name)
}

// urlPath returns the path of an absolute URL, so a bare host never
// becomes a page stem. Other values are returned unchanged.
func urlPath(p string) string {
	u, err := url.Parse(p)
	if err != nil || u.Host == "" {
		return p
	}
	return u.Path
}

// stripQuery drops any query string and fragment.
func stripQuery(s string) string {
	s, _, _ = strings.Cut(s, "#")
	s, _, _ = strings.Cut(s, "?")
	return s
}

// stem returns the final path element without its extension.
func stem(p string) string {
	name := path.Base(p)
	if name == "." || name == "/" {
		return ""
	}
	if ext := path.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
