package dlit

import (
	"fmt"

	"golang.org/x/net/html"
)

// TemplateInstance is a live clone of a Template's fragment with one Part
// bound per active descriptor (spec.md §3 "TemplateInstance", §4.3). ELEMENT
// and COMMENT descriptors, and '@'-prefixed attribute descriptors, reserve
// their value slots but bind no Part (spec.md §9 Non-goals).
type TemplateInstance struct {
	tmpl     *Template
	Fragment *html.Node
	parts    []any // element i is *NodePart, *AttributePart, or nil
}

// newTemplateInstance clones tmpl's fragment and binds one Part per
// descriptor by walking the clone in the same pre-order the factory used to
// assign indexes (spec.md §4.3 steps 1-2).
func newTemplateInstance(tmpl *Template) *TemplateInstance {
	inst := &TemplateInstance{
		tmpl:     tmpl,
		Fragment: cloneFragment(tmpl.Fragment),
		parts:    make([]any, len(tmpl.Parts)),
	}

	byIndex := make(map[int]*html.Node, len(tmpl.Parts))
	walkPreOrder(inst.Fragment, func(n *html.Node, index int) bool {
		byIndex[index] = n
		return true
	})

	for i, desc := range tmpl.Parts {
		node := byIndex[desc.Index]
		switch desc.Kind {
		case partNode:
			inst.parts[i] = newNodePart(node)
		case partAttribute:
			if desc.AttrK != attrEvent { // '@' event bindings stay unbound
				inst.parts[i] = newAttributePart(node, desc)
			}
		case partElement, partComment:
			// Inactive: spec.md §9 leaves these unbound.
		}
	}
	return inst
}

// update walks the descriptor list alongside the flat Values slice,
// dispatching each descriptor's reserved values to its Part (spec.md §4.3
// "update with values", §4.2 point 4 value ledger).
func (inst *TemplateInstance) update(values []any) error {
	cursor := 0
	for i, desc := range inst.tmpl.Parts {
		n := desc.valueCount()
		if cursor+n > len(values) {
			return fmt.Errorf("%w: need %d more value(s) at descriptor %d", ErrPartValueMismatch, n, i)
		}
		switch p := inst.parts[i].(type) {
		case *NodePart:
			if err := p.commit(values[cursor]); err != nil {
				return err
			}
		case *AttributePart:
			p.commit(values[cursor : cursor+n])
		}
		cursor += n
	}
	if cursor != len(values) {
		return fmt.Errorf("%w: template consumed %d value(s), got %d", ErrPartValueMismatch, cursor, len(values))
	}
	return nil
}
