package dlit

import "golang.org/x/net/html"

// walkPreOrder visits every node under root (root itself excluded) in
// depth-first pre-order — the same order a browser's shared tree walker
// would produce over SHOW_ALL (spec.md §3 invariant 3, §4.2 step 2,
// §4.3 step 2). The instance binder resolves descriptor indexes back to
// live nodes with this function; the template factory's buildParts
// (template.go) assigns those indexes with its own traversal, which visits
// nodes in this same order.
//
// visit is called once per node with its zero-based pre-order index. If
// visit returns false, the walk stops early.
func walkPreOrder(root *html.Node, visit func(n *html.Node, index int) bool) {
	index := 0
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling // visit may reparent/replace c's siblings
			if !visit(c, index) {
				return false
			}
			index++
			if !walk(c) {
				return false
			}
			c = next
		}
		return true
	}
	walk(root)
}

// detachChildren moves every child of n into a fresh fragment root and
// returns it, leaving n empty. Used when lifting an <svg> wrapper's
// contents back out after parsing (spec.md §4.2 step 1).
func detachChildren(n *html.Node) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		root.AppendChild(c)
		c = next
	}
	return root
}

// cloneFragment deep-copies the subtree rooted at src's children into a
// fresh fragment root, preserving node identity order so walkPreOrder
// produces indexes matching the original template (spec.md §4.3 step 1).
func cloneFragment(src *html.Node) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		root.AppendChild(cloneNode(c))
	}
	return root
}

func cloneNode(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneNode(c))
	}
	return clone
}
