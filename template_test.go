package dlit

import (
	"errors"
	"testing"
)

func TestGetTemplateCachesBySliceIdentity(t *testing.T) {
	strs := []string{"<div>", "</div>"}
	r1 := Html(strs, 1)
	r2 := Html(strs, 2)

	t1, err := getTemplate(r1)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	t2, err := getTemplate(r2)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if t1 != t2 {
		t.Fatalf("expected identical Strings identity to share one compiled Template")
	}
}

func TestGetTemplateDistinguishesDifferentSlices(t *testing.T) {
	a := []string{"<div>", "</div>"}
	b := []string{"<div>", "</div>"}

	ta, err := getTemplate(Html(a, 1))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	tb, err := getTemplate(Html(b, 1))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if ta == tb {
		t.Fatalf("expected two distinct backing arrays to compile to distinct Templates even with identical contents")
	}
}

func TestCompileTemplateAttributeSingleValue(t *testing.T) {
	strs := []string{`<div class="`, `"></div>`}
	tmpl, err := compileTemplate(Html(strs, "x"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(tmpl.Parts) != 1 {
		t.Fatalf("expected exactly one part, got %d", len(tmpl.Parts))
	}
	p := tmpl.Parts[0]
	if p.Kind != partAttribute || p.Name != "class" || p.Strings != nil {
		t.Fatalf("expected single-value class attribute, got %+v", p)
	}
}

func TestCompileTemplateAttributeInterpolated(t *testing.T) {
	strs := []string{`<div class="a-`, `-b"></div>`}
	tmpl, err := compileTemplate(Html(strs, "x"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(tmpl.Parts) != 1 {
		t.Fatalf("expected exactly one part, got %d", len(tmpl.Parts))
	}
	p := tmpl.Parts[0]
	if p.Kind != partAttribute || p.Strings == nil || len(p.Strings) != 2 {
		t.Fatalf("expected interpolated class attribute with 2 statics, got %+v", p)
	}
	if p.Strings[0] != "a-" || p.Strings[1] != "-b" {
		t.Fatalf("unexpected statics %v", p.Strings)
	}
}

func TestCompileTemplatePropertyAndBooleanPrefix(t *testing.T) {
	strs := []string{`<input .value="`, `" ?disabled="`, `">`}
	tmpl, err := compileTemplate(Html(strs, "v", true))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(tmpl.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(tmpl.Parts))
	}
	if tmpl.Parts[0].AttrK != attrProp || tmpl.Parts[0].Name != "value" {
		t.Fatalf("expected property part, got %+v", tmpl.Parts[0])
	}
	if tmpl.Parts[1].AttrK != attrBool || tmpl.Parts[1].Name != "disabled" {
		t.Fatalf("expected boolean part, got %+v", tmpl.Parts[1])
	}
}

func TestCompileTemplateNodePart(t *testing.T) {
	strs := []string{"<p>", "</p>"}
	tmpl, err := compileTemplate(Html(strs, "hi"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(tmpl.Parts) != 1 || tmpl.Parts[0].Kind != partNode {
		t.Fatalf("expected a single NODE part, got %+v", tmpl.Parts)
	}
}

func TestCompileTemplateCommentPart(t *testing.T) {
	strs := []string{"<!-- ", " -->"}
	tmpl, err := compileTemplate(Html(strs, "note"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(tmpl.Parts) != 1 || tmpl.Parts[0].Kind != partComment {
		t.Fatalf("expected a single COMMENT part, got %+v", tmpl.Parts)
	}
}

func TestCompileTemplateRawTextSplitsIntoNodeParts(t *testing.T) {
	strs := []string{"<script>const a = ", "; const b = ", ";</script>"}
	tmpl, err := compileTemplate(Html(strs, 1, 2))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	count := 0
	for _, p := range tmpl.Parts {
		if p.Kind == partNode {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 NODE parts inside the raw-text element, got %d (parts=%+v)", count, tmpl.Parts)
	}
}

func TestCompileTemplateSVGLiftsWrapper(t *testing.T) {
	strs := []string{"<circle r=", "></circle>"}
	tmpl, err := compileTemplate(SVG(strs, "5"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if tmpl.Fragment.FirstChild == nil || tmpl.Fragment.FirstChild.Data != "circle" {
		t.Fatalf("expected the synthetic <svg> wrapper to be lifted, got first child %+v", tmpl.Fragment.FirstChild)
	}
}

func TestCheckAlignmentMismatch(t *testing.T) {
	strs := []string{"<p>", "</p>"}
	_, err := compileTemplate(Html(strs, "one", "two"))
	if !errors.Is(err, ErrPartValueMismatch) {
		t.Fatalf("expected ErrPartValueMismatch, got %v", err)
	}
}

func TestParseAttrPrefix(t *testing.T) {
	cases := []struct {
		raw      string
		residual string
		kind     attrKind
	}{
		{"class", "class", attrPlain},
		{".value", "value", attrProp},
		{"?disabled", "disabled", attrBool},
		{"@click", "click", attrEvent},
	}
	for _, c := range cases {
		residual, kind := parseAttrPrefix(c.raw)
		if residual != c.residual || kind != c.kind {
			t.Fatalf("parseAttrPrefix(%q) = (%q, %v), want (%q, %v)", c.raw, residual, kind, c.residual, c.kind)
		}
	}
}
