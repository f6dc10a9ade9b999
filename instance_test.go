package dlit

import (
	"errors"
	"testing"
)

func TestNewTemplateInstanceBindsNodeAndAttributeParts(t *testing.T) {
	strs := []string{`<div class="`, `">`, `</div>`}
	tmpl, err := compileTemplate(Html(strs, "a", "b"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	inst := newTemplateInstance(tmpl)
	if len(inst.parts) != len(tmpl.Parts) {
		t.Fatalf("expected one binder slot per descriptor, got %d vs %d", len(inst.parts), len(tmpl.Parts))
	}
	for i, desc := range tmpl.Parts {
		switch desc.Kind {
		case partAttribute:
			if _, ok := inst.parts[i].(*AttributePart); !ok {
				t.Fatalf("descriptor %d: expected *AttributePart, got %T", i, inst.parts[i])
			}
		case partNode:
			if _, ok := inst.parts[i].(*NodePart); !ok {
				t.Fatalf("descriptor %d: expected *NodePart, got %T", i, inst.parts[i])
			}
		}
	}
}

func TestTemplateInstanceUpdateCommitsValues(t *testing.T) {
	strs := []string{"<p>", "</p>"}
	tmpl, err := compileTemplate(Html(strs, "x"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	inst := newTemplateInstance(tmpl)
	if err := inst.update([]any{"hello"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	snap, err := Snapshot(inst.Fragment)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if want := "<p>hello</p>"; snap != want {
		t.Fatalf("snapshot = %q, want %q", snap, want)
	}
}

func TestTemplateInstanceUpdateValueCountMismatch(t *testing.T) {
	strs := []string{"<p>", "</p>"}
	tmpl, err := compileTemplate(Html(strs, "x"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	inst := newTemplateInstance(tmpl)
	err = inst.update([]any{"a", "b"})
	if !errors.Is(err, ErrPartValueMismatch) {
		t.Fatalf("expected ErrPartValueMismatch for too many values, got %v", err)
	}

	inst2 := newTemplateInstance(tmpl)
	err = inst2.update([]any{})
	if !errors.Is(err, ErrPartValueMismatch) {
		t.Fatalf("expected ErrPartValueMismatch for too few values, got %v", err)
	}
}

func TestTemplateInstanceElementPartStaysUnbound(t *testing.T) {
	strs := []string{`<div `, `>text</div>`}
	tmpl, err := compileTemplate(Html(strs, "whatever"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(tmpl.Parts) != 1 || tmpl.Parts[0].Kind != partElement {
		t.Fatalf("expected a single ELEMENT descriptor, got %+v", tmpl.Parts)
	}
	inst := newTemplateInstance(tmpl)
	if inst.parts[0] != nil {
		t.Fatalf("expected the ELEMENT descriptor's binder slot to stay nil, got %v", inst.parts[0])
	}
	if err := inst.update([]any{"whatever"}); err != nil {
		t.Fatalf("update should still accept the reserved value: %v", err)
	}
}
