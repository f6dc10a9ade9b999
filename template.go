package dlit

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Verbose gates operational logging. The only event logged is a compile
// discarded because another goroutine cached the same Strings identity
// first; the scanner logs nothing. Off by default so library
// consumers don't get log spam; mirrors the teacher's Config.DevMode-gated
// log.Printf calls.
var Verbose = false

func logf(format string, args ...any) {
	if Verbose {
		log.Printf("dlit: "+format, args...)
	}
}

// Template is the compiled, process-wide-cached prototype: an inert
// fragment plus the ordered descriptors the instance binder walks against
// it (spec.md §3 "Template").
type Template struct {
	Fragment *html.Node
	Parts    []TemplatePart
}

// templateCache maps a TemplateResult's Strings identity to its compiled
// Template (spec.md §3 invariant 1, §5 "one process-wide template cache").
// Writes only ever happen from inside getTemplate, guarded by LoadOrStore
// so a race between two goroutines compiling the same literal for the
// first time resolves to a single winner without a separate lock.
var templateCache sync.Map // stringsKey -> *Template

// Compile returns the cached Template for result's Strings identity,
// compiling it on first use. Exported for tooling (cmd/dlitdebug) that
// wants to inspect a literal's TemplatePart list without rendering it.
func Compile(result TemplateResult) (*Template, error) {
	return getTemplate(result)
}

// getTemplate returns the cached Template for result's Strings identity,
// compiling it on first use.
func getTemplate(result TemplateResult) (*Template, error) {
	key := keyOf(result.Strings)
	if v, ok := templateCache.Load(key); ok {
		return v.(*Template), nil
	}
	tmpl, err := compileTemplate(result)
	if err != nil {
		return nil, err
	}
	actual, loaded := templateCache.LoadOrStore(key, tmpl)
	if loaded {
		logf("discarding redundant compile: another goroutine won the race for this Strings identity")
	}
	return actual.(*Template), nil
}

// compileTemplate runs the scanner, parses its output into an inert
// fragment, and walks that fragment to produce the ordered TemplatePart
// descriptors (spec.md §4.2).
func compileTemplate(result TemplateResult) (*Template, error) {
	annotated, attrNames := scanHTML(result.Strings, result.Type)

	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(annotated), ctx)
	if err != nil {
		return nil, fmt.Errorf("dlit: parse template: %w", err)
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	if result.Type == SVGResult {
		root = liftSVGWrapper(root)
	}

	parts := buildParts(root, attrNames)
	if err := checkAlignment(result, parts); err != nil {
		return nil, err
	}
	return &Template{Fragment: root, Parts: parts}, nil
}

// liftSVGWrapper discards the synthetic <svg> the scanner added and
// promotes its children to fragment root (spec.md §4.2 step 1).
func liftSVGWrapper(root *html.Node) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Svg {
			return detachChildren(c)
		}
	}
	return root
}

// buildParts walks fragment in depth-first pre-order, classifying every
// marker it finds into a TemplatePart and mutating the tree in place
// (stripping ATTR_SUFFIX-suffixed attribute names, splitting raw-text
// element content into text/comment-marker runs) as it goes. The running
// index matches the order the shared walker (walker.go) later uses to
// re-locate each descriptor's anchor node in a clone (spec.md §4.2 steps
// 2-3, invariant 3). buildParts has its own traversal rather than reusing
// walkPreOrder because it mutates siblings as it visits them; walkPreOrder
// is reserved for the stable, non-mutating walks done at clone time.
func buildParts(root *html.Node, attrNames []string) []TemplatePart {
	var parts []TemplatePart
	index := 0
	attrCursor := 0
	popAttrName := func() string {
		if attrCursor >= len(attrNames) {
			return ""
		}
		name := attrNames[attrCursor]
		attrCursor++
		return name
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			switch c.Type {
			case html.ElementNode:
				parts = append(parts, handleElement(c, index, popAttrName)...)
				index++
				walk(c)
			case html.CommentNode:
				switch {
				case c.Data == commentBody:
					parts = append(parts, TemplatePart{Kind: partNode, Index: index})
				case strings.Contains(c.Data, mark):
					for range strings.Split(c.Data, mark)[1:] {
						parts = append(parts, TemplatePart{Kind: partComment, Index: index})
					}
				}
				index++
			default:
				index++
				walk(c)
			}
			c = next
		}
	}
	walk(root)
	return parts
}

// handleElement processes one element's attributes, emitting ATTRIBUTE and
// ELEMENT descriptors and stripping their marker spelling from the live
// attribute list, then — for script/style/textarea — expands the raw-text
// content into alternating text/comment-marker children (spec.md §4.2
// step 3).
func handleElement(n *html.Node, index int, popAttrName func() string) []TemplatePart {
	var parts []TemplatePart
	kept := n.Attr[:0:0]
	for _, a := range n.Attr {
		switch {
		case strings.HasSuffix(a.Key, attrSuffix):
			rawName := popAttrName()
			residual, kind := parseAttrPrefix(rawName)
			statics := strings.Split(a.Val, mark)
			if len(statics) == 2 && statics[0] == "" && statics[1] == "" {
				statics = nil // single-value binding (spec.md §3)
			}
			parts = append(parts, TemplatePart{
				Kind: partAttribute, Index: index,
				Name: residual, Strings: statics, AttrK: kind,
			})
		case a.Key == mark:
			parts = append(parts, TemplatePart{Kind: partElement, Index: index})
		default:
			kept = append(kept, a)
		}
	}
	n.Attr = kept

	if rawElements[strings.ToLower(n.Data)] && n.FirstChild != nil &&
		n.FirstChild.Type == html.TextNode && n.FirstChild.NextSibling == nil &&
		strings.Contains(n.FirstChild.Data, mark) {
		expandRawText(n)
	}
	return parts
}

// parseAttrPrefix strips the single leading prefix character from a raw
// attribute-name token (spec.md §6's prefix grammar).
func parseAttrPrefix(raw string) (residual string, kind attrKind) {
	if raw == "" {
		return raw, attrPlain
	}
	switch raw[0] {
	case '.':
		return raw[1:], attrProp
	case '?':
		return raw[1:], attrBool
	case '@':
		return raw[1:], attrEvent
	default:
		return raw, attrPlain
	}
}

// expandRawText splits a raw-text element's sole text child on mark into
// k+1 segments, inserting a fresh marker comment (data commentBody) after
// each of the first k (spec.md §4.2 step 3). Each such comment becomes the anchor of a
// NODE part once buildParts's walk reaches it.
func expandRawText(n *html.Node) {
	text := n.FirstChild
	segments := strings.Split(text.Data, mark)
	n.RemoveChild(text)

	k := len(segments) - 1
	for i := 0; i < k; i++ {
		if segments[i] != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: segments[i]})
		}
		n.AppendChild(&html.Node{Type: html.CommentNode, Data: commentBody})
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: segments[k]})
}

// checkAlignment verifies spec.md §3 invariant 2: the total value
// consumption of every descriptor must equal len(values).
func checkAlignment(result TemplateResult, parts []TemplatePart) error {
	want := len(result.Values)
	got := 0
	for _, p := range parts {
		got += p.valueCount()
	}
	if got != want {
		return fmt.Errorf("%w: template expects %d value(s), got %d", ErrPartValueMismatch, got, want)
	}
	return nil
}
