package edit

import (
	"testing"

	"github.com/clausemd/clausemd/internal/doctree"
	"github.com/clausemd/clausemd/internal/parse"
)

func variantDoc() *doctree.Document {
	return parse.Blocks([]parse.SourceBlock{
		{Type: "paragraph", Text: "前置段落。"},
		{Type: "paragraph", Variants: []doctree.Variant{{Text: "A"}, {Text: "B"}}},
	})
}

func TestApplyVariant_SwitchesSelection(t *testing.T) {
	doc := variantDoc()
	out, changed := ApplyVariant(doc, 1, 1)
	if !changed {
		t.Fatal("expected change")
	}
	vp := out.Blocks[1].(*doctree.VariantParagraph)
	if vp.Selected != 1 || doctree.Text(vp.Inline) != "B" {
		t.Errorf("expected selected=1 inline %q, got selected=%d inline %q", "B", vp.Selected, doctree.Text(vp.Inline))
	}
	if len(vp.Variants) != 2 {
		t.Errorf("variants must survive application, got %d", len(vp.Variants))
	}
	// Prior version stays intact.
	if old := doc.Blocks[1].(*doctree.VariantParagraph); old.Selected != 0 {
		t.Error("input document must not be mutated")
	}
	// Unrelated blocks are shared, not copied.
	if out.Blocks[0] != doc.Blocks[0] {
		t.Error("unrelated blocks must be reused")
	}
}

func TestApplyVariant_StaleReferencesAreNoOps(t *testing.T) {
	doc := variantDoc()
	tests := []struct {
		name           string
		block, variant int
	}{
		{"block out of range", 5, 0},
		{"negative block", -1, 0},
		{"variant out of range", 1, 2},
		{"negative variant", 1, -1},
		{"not a variant paragraph", 0, 0},
		{"same selection", 1, 0},
	}
	for _, tt := range tests {
		out, changed := ApplyVariant(doc, tt.block, tt.variant)
		if changed || out != doc {
			t.Errorf("%s: expected no-op, got changed=%v", tt.name, changed)
		}
	}
}

func TestApplyVariant_NilDocument(t *testing.T) {
	if _, changed := ApplyVariant(nil, 0, 0); changed {
		t.Error("expected no-op on nil document")
	}
}

func TestSetItemLevel_RebuildsNesting(t *testing.T) {
	doc := parse.Text("1. 甲\n2. 乙\n3. 丙")
	out, changed := SetItemLevel(doc, 0, 1, 1)
	if !changed {
		t.Fatal("expected change")
	}
	tree := out.Blocks[0].(*doctree.ListTree)
	if len(tree.Items) != 2 {
		t.Fatalf("expected 2 top-level items after demotion, got %d", len(tree.Items))
	}
	nested := tree.Items[0].Nested
	if nested == nil || doctree.Text(nested.Items[0].Inline) != "乙" {
		t.Errorf("expected 乙 nested under 甲, got %v", nested)
	}
	if doctree.Text(tree.Items[1].Inline) != "丙" {
		t.Errorf("expected 丙 promoted to second sibling, got %q", doctree.Text(tree.Items[1].Inline))
	}
	// Original tree untouched.
	if len(doc.Blocks[0].(*doctree.ListTree).Items) != 3 {
		t.Error("input document must not be mutated")
	}
}

func TestSetItemLevel_StaleReferencesAreNoOps(t *testing.T) {
	doc := parse.Text("1. 甲\n2. 乙")
	tests := []struct {
		name                string
		block, item, level int
	}{
		{"block out of range", 3, 0, 1},
		{"not a list", 0, 0, 1}, // set below
		{"item out of range", 0, 9, 1},
		{"level unchanged", 0, 0, 0},
	}
	paraDoc := parse.Text("纯段落")
	for _, tt := range tests {
		target := doc
		if tt.name == "not a list" {
			target = paraDoc
		}
		out, changed := SetItemLevel(target, tt.block, tt.item, tt.level)
		if changed || out != target {
			t.Errorf("%s: expected no-op, got changed=%v", tt.name, changed)
		}
	}
}
