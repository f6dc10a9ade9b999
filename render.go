package dlit

import (
	"sync"

	"golang.org/x/net/html"
)

// containerParts tracks the one NodePart installed per container, reused
// across renders of that container the same way a browser-side render()
// call keeps reusing the part it installed on its first call against a
// given DOM node (spec.md §6).
var containerParts sync.Map // *html.Node -> *NodePart

// Render commits value into container, installing a root NodePart the
// first time container is used and reusing it on every later call. Passing
// a plain TemplateResult re-diffs against the previous render; passing any
// other value is a one-shot primitive/DOM-node/sentinel commit exactly as a
// nested NodePart would handle it (spec.md §4.4, §6).
func Render(value any, container *html.Node) error {
	if v, ok := containerParts.Load(container); ok {
		return v.(*NodePart).commit(value)
	}
	anchor := &html.Node{Type: html.CommentNode, Data: commentBody}
	container.AppendChild(anchor)
	part := newNodePart(anchor)
	actual, _ := containerParts.LoadOrStore(container, part)
	return actual.(*NodePart).commit(value)
}

// RenderToString renders value into a detached fragment and serializes it,
// a one-shot convenience for snapshot-style tests that don't want to stand
// up a persistent container (spec.md §6, mirroring the teacher's one-shot
// Template.Execute-style helpers).
func RenderToString(value any) (string, error) {
	container := &html.Node{Type: html.ElementNode, Data: "div"}
	anchor := &html.Node{Type: html.CommentNode, Data: commentBody}
	container.AppendChild(anchor)
	if err := newNodePart(anchor).commit(value); err != nil {
		return "", err
	}
	return Snapshot(container)
}
