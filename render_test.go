package dlit

import (
	"testing"

	"golang.org/x/net/html"
)

func newContainer() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "div"}
}

func TestRenderFirstCallInstallsPart(t *testing.T) {
	c := newContainer()
	strs := []string{"<p>", "</p>"}
	if err := Render(Html(strs, "hi"), c); err != nil {
		t.Fatalf("render: %v", err)
	}
	snap, err := Snapshot(c)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if want := "<p>hi</p>"; snap != want {
		t.Fatalf("got %q, want %q", snap, want)
	}
}

func TestRenderReusesPartAcrossCalls(t *testing.T) {
	c := newContainer()
	strs := []string{"<p>", "</p>"}
	if err := Render(Html(strs, "one"), c); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := Render(Html(strs, "two"), c); err != nil {
		t.Fatalf("render: %v", err)
	}
	snap, err := Snapshot(c)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if want := "<p>two</p>"; snap != want {
		t.Fatalf("got %q, want %q", snap, want)
	}
	// Anchor comment plus the single rendered <p>, not one <p> per call.
	if count := countChildren(c); count != 2 {
		t.Fatalf("expected exactly 2 children under the container (anchor + content), got %d", count)
	}
}

func TestRenderIdempotentOnIdenticalValue(t *testing.T) {
	c := newContainer()
	strs := []string{"<p>", "</p>"}
	if err := Render(Html(strs, "same"), c); err != nil {
		t.Fatalf("render: %v", err)
	}
	before, _ := Snapshot(c)
	if err := Render(Html(strs, "same"), c); err != nil {
		t.Fatalf("render: %v", err)
	}
	after, _ := Snapshot(c)
	if before != after {
		t.Fatalf("expected idempotent re-render to leave snapshot unchanged: %q vs %q", before, after)
	}
}

func TestRenderNoChangeLeavesPriorValue(t *testing.T) {
	c := newContainer()
	strs := []string{"<p>", "</p>"}
	if err := Render(Html(strs, "kept"), c); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := Render(NoChange, c); err != nil {
		t.Fatalf("render: %v", err)
	}
	snap, _ := Snapshot(c)
	if want := "<p>kept</p>"; snap != want {
		t.Fatalf("got %q, want %q", snap, want)
	}
}

func TestRenderNothingErasesContent(t *testing.T) {
	c := newContainer()
	strs := []string{"<p>", "</p>"}
	if err := Render(Html(strs, "x"), c); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := Render(Nothing, c); err != nil {
		t.Fatalf("render: %v", err)
	}
	snap, _ := Snapshot(c)
	if want := ""; snap != want {
		t.Fatalf("got %q, want %q", snap, want)
	}
}

func TestRenderToStringProducesDetachedSnapshot(t *testing.T) {
	strs := []string{"<p>", "</p>"}
	s, err := RenderToString(Html(strs, "hi"))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if want := "<p>hi</p>"; s != want {
		t.Fatalf("got %q, want %q", s, want)
	}
}

func countChildren(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}
