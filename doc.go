// Package dlit is a DOM-oriented templating engine: build an HTML (or SVG)
// literal with Html/SVG, compile it once into a Template that separates
// static structure from interpolation positions, then Render it against a
// container node as many times as the data changes. Only the parts of the
// tree that actually changed are touched; everything else is left alone.
//
// A minimal counter:
//
//	strs := []string{"<button>count: ", "</button>"}
//	container := &html.Node{Type: html.ElementNode, Data: "div"}
//	dlit.Render(dlit.Html(strs, 0), container)
//	dlit.Render(dlit.Html(strs, 1), container) // only the text node updates
//
// Reusing the same backing strs slice across calls is what makes the second
// Render hit the Template cache instead of recompiling (see TemplateResult).
package dlit
