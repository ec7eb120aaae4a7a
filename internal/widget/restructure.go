// Package widget rewrites the legacy "showhide" toggle widgets into explicit
// expander elements.
//
// A widget is a trigger link carrying onclick="showhide('ID')" and a target
// element carrying id="ID". After restructuring every widget becomes
//
//	<expander><expander-title>…</expander-title><expander-body>…</expander-body></expander>
//
// which the pipeline converter renders as an Expander component.
package widget

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Element names of the restructured widget.
const (
	ExpanderTag = "expander"
	TitleTag    = "expander-title"
	BodyTag     = "expander-body"
)

const closeLabel = "Close"

// Sentinel errors for widget restructuring. Every error returned by
// Restructure wraps ErrStructure.
var (
	ErrStructure             = errors.New("unexpected widget structure")
	ErrCloseControlShape     = errors.New("close control container holds other content")
	ErrWidgetTargetMissing   = errors.New("widget target not found")
	ErrWidgetTargetDuplicate = errors.New("widget target id is not unique")
	ErrWidgetTargetNesting   = errors.New("widget target contains its own trigger")
)

var showhidePattern = regexp.MustCompile(`^showhide\(['"]([^'"]*)['"]\)`)

// Restructure rewrites every showhide widget under root in place and returns
// the number of expanders built. Running it on its own output is a no-op.
func Restructure(root *goquery.Selection) (int, error) {
	if err := removeCloseControls(root); err != nil {
		return 0, err
	}

	built := 0
	for _, trigger := range findTriggers(root).Nodes {
		if err := buildExpander(root, trigger); err != nil {
			return built, err
		}
		built++
	}
	return built, nil
}

// removeCloseControls drops the container of every "Close" trigger. The
// container must hold nothing but the trigger.
func removeCloseControls(root *goquery.Selection) error {
	closers := findTriggers(root).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == closeLabel || s.AttrOr("title", "") == closeLabel
	})

	for _, trigger := range closers.Nodes {
		parent := trigger.Parent
		if parent == nil {
			continue
		}
		if isDocumentLevel(parent) || significantChildren(parent) != 1 {
			return fmt.Errorf("%w: %w: <%s> around %q", ErrStructure, ErrCloseControlShape, parent.Data, onclick(trigger))
		}
		parent.Parent.RemoveChild(parent)
	}
	return nil
}

func buildExpander(root *goquery.Selection, trigger *html.Node) error {
	id := showhidePattern.FindStringSubmatch(onclick(trigger))[1]

	target, err := findTarget(root, id)
	if err != nil {
		return err
	}
	if contains(target, trigger) {
		return fmt.Errorf("%w: %w: %q", ErrStructure, ErrWidgetTargetNesting, id)
	}

	parent := trigger.Parent
	var expander *html.Node
	switch {
	case !isDocumentLevel(parent) && significantChildren(parent) == 1:
		expander = parent
		rename(expander, ExpanderTag)
	case isDocumentLevel(parent):
		expander = &html.Node{Type: html.ElementNode, Data: ExpanderTag}
		parent.InsertBefore(expander, trigger)
		parent.RemoveChild(trigger)
		expander.AppendChild(trigger)
	default:
		expander = &html.Node{Type: html.ElementNode, Data: ExpanderTag}
		parent.Parent.InsertBefore(expander, parent.NextSibling)
		parent.RemoveChild(trigger)
		expander.AppendChild(trigger)
	}

	target.Parent.RemoveChild(target)
	rename(target, BodyTag)
	expander.AppendChild(target)

	rename(trigger, TitleTag)
	return nil
}

func findTriggers(root *goquery.Selection) *goquery.Selection {
	return root.Find("a[onclick]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return showhidePattern.MatchString(s.AttrOr("onclick", ""))
	})
}

func findTarget(root *goquery.Selection, id string) (*html.Node, error) {
	matches := root.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == id
	})

	switch matches.Length() {
	case 0:
		return nil, fmt.Errorf("%w: %w: %q", ErrStructure, ErrWidgetTargetMissing, id)
	case 1:
		return matches.Get(0), nil
	default:
		return nil, fmt.Errorf("%w: %w: %q (%d elements)", ErrStructure, ErrWidgetTargetDuplicate, id, matches.Length())
	}
}

func onclick(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "onclick" {
			return attr.Val
		}
	}
	return ""
}

// significantChildren counts child nodes, ignoring comments and
// whitespace-only text.
func significantChildren(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.CommentNode:
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) == "":
		default:
			count++
		}
	}
	return count
}

// isDocumentLevel reports whether n must never be renamed or removed.
func isDocumentLevel(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Parent == nil {
		return true
	}
	return n.Data == "body" || n.Data == "html"
}

func contains(ancestor, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

func rename(n *html.Node, tag string) {
	n.Data = tag
	n.DataAtom = 0
	n.Attr = nil
}
