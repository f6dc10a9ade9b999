package dlit

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/net/html"
)

// NodePart owns the sibling range between its anchor comment node and
// whatever static content already followed that comment at clone time. Each
// commit replaces that range's contents (spec.md §4.4).
type NodePart struct {
	anchor   *html.Node
	boundary *html.Node // anchor.NextSibling at construction; content stays strictly before this

	last  any
	child *TemplateInstance // set when last committed a nested TemplateResult
}

func newNodePart(anchor *html.Node) *NodePart {
	return &NodePart{anchor: anchor, boundary: anchor.NextSibling}
}

// commit applies one value's dirty-checked effect to the DOM range (spec.md
// §4.4). NoChange is a pure no-op, including on the very first commit.
func (p *NodePart) commit(value any) error {
	if value == NoChange {
		return nil
	}
	if value == Nothing {
		if p.last == Nothing {
			return nil
		}
		p.clear()
		p.child = nil
		p.last = Nothing
		return nil
	}

	switch v := value.(type) {
	case TemplateResult:
		return p.commitTemplateResult(v)
	case *html.Node:
		if sameValue(p.last, v) {
			return nil
		}
		p.clear()
		p.insertNode(v)
		p.child = nil
		p.last = v
		return nil
	default:
		if p.child == nil && sameValue(p.last, value) {
			return nil
		}
		p.clear()
		p.child = nil
		p.insertText(stringify(value))
		p.last = value
		return nil
	}
}

// sameValue reports whether a and b are the same committed value without
// risking the runtime panic plain == gives when both sides share a
// non-comparable dynamic type (slice, map, func) — spec.md §4.4 requires
// func values to be dirty-checked and stringified like any other primitive,
// not to crash the commit path.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	at := reflect.TypeOf(a)
	if at != reflect.TypeOf(b) {
		return false
	}
	if !at.Comparable() {
		return false
	}
	return a == b
}

// commitTemplateResult rebinds the part's nested TemplateInstance in place
// when the incoming result shares the same Strings identity as the one
// already rendered here, otherwise compiles/clones fresh (spec.md §4.4,
// mirroring §3's "Equality of strings identity" invariant at the instance
// level).
func (p *NodePart) commitTemplateResult(v TemplateResult) error {
	if p.child != nil && sameTemplate(p.child, v) {
		if err := p.child.update(v.Values); err != nil {
			return err
		}
		p.last = v
		return nil
	}

	tmpl, err := getTemplate(v)
	if err != nil {
		return err
	}
	inst := newTemplateInstance(tmpl)
	if err := inst.update(v.Values); err != nil {
		return err
	}

	p.clear()
	p.insertFragment(inst.Fragment)
	p.child = inst
	p.last = v
	return nil
}

// sameTemplate reports whether inst was built from a Template with the same
// Strings identity as result (spec.md §3 invariant 1).
func sameTemplate(inst *TemplateInstance, result TemplateResult) bool {
	return inst.tmpl == templateFor(result)
}

// templateFor returns the already-cached Template for result's Strings
// identity, or nil if it has never been compiled. Used only for the
// identity comparison in sameTemplate; it never compiles on miss.
func templateFor(result TemplateResult) *Template {
	if v, ok := templateCache.Load(keyOf(result.Strings)); ok {
		return v.(*Template)
	}
	return nil
}

func (p *NodePart) clear() {
	parent := p.anchor.Parent
	for c := p.anchor.NextSibling; c != nil && c != p.boundary; {
		next := c.NextSibling
		parent.RemoveChild(c)
		c = next
	}
}

func (p *NodePart) insertText(s string) {
	if s == "" {
		return
	}
	p.insertNode(&html.Node{Type: html.TextNode, Data: s})
}

func (p *NodePart) insertNode(n *html.Node) {
	p.anchor.Parent.InsertBefore(n, p.boundary)
}

func (p *NodePart) insertFragment(fragment *html.Node) {
	for c := fragment.FirstChild; c != nil; {
		next := c.NextSibling
		fragment.RemoveChild(c)
		p.insertNode(c)
		c = next
	}
}

// stringify renders a committed primitive the way spec.md §4.4 requires:
// plain text content, not re-parsed as markup.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// AttributePart binds one attribute position, either a single value or an
// interpolation across statics (spec.md §4.5). Its behavior further
// dispatches on kind: plain setAttribute/removeAttribute, '.' property
// assignment (modeled as the same attribute-list write, since *html.Node has
// no separate property namespace), or '?' boolean presence.
type AttributePart struct {
	node    *html.Node
	name    string
	kind    attrKind
	statics []string // nil for single-value binding

	slots    []any  // last effective value per interpolation slot
	lastText string // last attribute string written
	present  bool   // whether the attribute is currently set on node
}

func newAttributePart(node *html.Node, desc TemplatePart) *AttributePart {
	p := &AttributePart{node: node, name: desc.Name, kind: desc.AttrK, statics: desc.Strings}
	if desc.Strings != nil {
		p.slots = make([]any, len(desc.Strings)-1)
	}
	return p
}

// commit applies values (length 1 for a single-value binding, k for an
// interpolation of k values) per spec.md §4.5.
func (p *AttributePart) commit(values []any) {
	if p.statics == nil {
		p.commitSingle(values[0])
		return
	}
	p.commitInterpolated(values)
}

func (p *AttributePart) commitSingle(value any) {
	if value == NoChange {
		return
	}
	removed := value == Nothing || value == nil
	var text string
	if !removed {
		if p.kind == attrBool {
			if !truthy(value) {
				removed = true
			} else {
				text = ""
			}
		} else {
			text = stringify(value)
		}
	}
	p.write(text, !removed)
}

func (p *AttributePart) commitInterpolated(values []any) {
	changed := false
	allNoChange := len(values) > 0
	for i, v := range values {
		if v == NoChange {
			continue
		}
		allNoChange = false
		if !reflect.DeepEqual(p.slots[i], v) {
			p.slots[i] = v
			changed = true
		}
	}
	if allNoChange || (!changed && p.present) {
		return
	}

	for _, v := range p.slots {
		if v == Nothing {
			p.write("", false)
			return
		}
	}

	var b strings.Builder
	b.WriteString(p.statics[0])
	for i, v := range p.slots {
		b.WriteString(stringify(v))
		b.WriteString(p.statics[i+1])
	}
	p.write(b.String(), true)
}

// write commits text to the live attribute list, skipping the mutation
// entirely when nothing would change (spec.md §4.5 dirty-checking).
func (p *AttributePart) write(text string, present bool) {
	if present == p.present && text == p.lastText {
		return
	}
	p.lastText = text
	p.present = present

	attrs := p.node.Attr
	idx := -1
	for i, a := range attrs {
		if a.Key == p.name {
			idx = i
			break
		}
	}
	if !present {
		if idx >= 0 {
			p.node.Attr = append(attrs[:idx], attrs[idx+1:]...)
		}
		return
	}
	if idx >= 0 {
		attrs[idx].Val = text
		return
	}
	p.node.Attr = append(attrs, html.Attribute{Key: p.name, Val: text})
}

// truthy approximates JS truthiness for the boolean-attribute prefix over
// the value kinds Go callers actually pass: nil, bool, numeric zero, and
// empty string are falsy; everything else, including the two sentinels
// reaching here only via Nothing (already handled by the caller), is truthy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	default:
		return true
	}
}
