package number

import (
	"testing"

	"github.com/clausemd/clausemd/internal/doctree"
)

func heading(level int, text string) *doctree.Heading {
	return &doctree.Heading{Level: level, Inline: []doctree.Run{{Text: text}}}
}

func labels(doc *doctree.Document) []string {
	var out []string
	for _, b := range doc.Blocks {
		if h, ok := b.(*doctree.Heading); ok {
			out = append(out, h.Number)
		}
	}
	return out
}

func assertLabels(t *testing.T, doc *doctree.Document, want ...string) {
	t.Helper()
	got := labels(doc)
	if len(got) != len(want) {
		t.Fatalf("expected %d headings, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading %d: expected label %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRenumber_NumberingLaw(t *testing.T) {
	doc := &doctree.Document{Blocks: []doctree.Block{
		heading(2, "Two"),
		heading(3, "Two.One"),
		heading(2, "Three"),
		heading(3, "Three.One"),
	}}
	doc, changed := Renumber(doc)
	if !changed {
		t.Fatal("expected first renumber to report a change")
	}
	assertLabels(t, doc, "1", "1.1", "2", "2.1")
}

func TestRenumber_DeeperCountersResetOnShallowerHeading(t *testing.T) {
	doc := &doctree.Document{Blocks: []doctree.Block{
		heading(1, "一"),
		heading(2, "一.一"),
		heading(2, "一.二"),
		heading(1, "二"),
		heading(2, "二.一"),
	}}
	doc, _ = Renumber(doc)
	assertLabels(t, doc, "1", "1.1", "1.2", "2", "2.1")
}

func TestRenumber_Idempotent(t *testing.T) {
	doc := &doctree.Document{Blocks: []doctree.Block{
		heading(2, "甲"),
		&doctree.Paragraph{Inline: []doctree.Run{{Text: "正文"}}},
		heading(3, "乙"),
		heading(1, "丙"),
	}}
	once, _ := Renumber(doc)
	twice, changed := Renumber(once)
	if changed {
		t.Error("second application must be a fixed point")
	}
	if twice != once {
		t.Error("fixed point must return the input document itself")
	}
}

func TestRenumber_LevelSixGetsEmptyLabel(t *testing.T) {
	doc := &doctree.Document{Blocks: []doctree.Block{
		heading(1, "正常"),
		heading(6, "过深"),
	}}
	doc, _ = Renumber(doc)
	assertLabels(t, doc, "1", "")
}

func TestRenumber_InteriorZeroCounterIsKept(t *testing.T) {
	// Skipping a level mid-document keeps the zero in the path; only
	// levels never seen at the start of the path are dropped.
	doc := &doctree.Document{Blocks: []doctree.Block{
		heading(1, "一"),
		heading(3, "一..一"),
	}}
	doc, _ = Renumber(doc)
	assertLabels(t, doc, "1", "1.0.1")
}

func TestRenumber_ReusesUnchangedBlocks(t *testing.T) {
	para := &doctree.Paragraph{Inline: []doctree.Run{{Text: "正文"}}}
	correct := &doctree.Heading{Level: 1, Number: "1", Inline: []doctree.Run{{Text: "对"}}}
	stale := &doctree.Heading{Level: 1, Number: "9", Inline: []doctree.Run{{Text: "错"}}}
	doc := &doctree.Document{Blocks: []doctree.Block{correct, para, stale}}

	out, changed := Renumber(doc)
	if !changed {
		t.Fatal("expected stale heading to be replaced")
	}
	if out == doc {
		t.Error("changed renumber must produce a new document value")
	}
	if out.Blocks[0] != doctree.Block(correct) {
		t.Error("heading with correct label must be reused, not replaced")
	}
	if out.Blocks[1] != doctree.Block(para) {
		t.Error("non-heading blocks must be reused")
	}
	if h := out.Blocks[2].(*doctree.Heading); h == stale || h.Number != "2" {
		t.Errorf("stale heading must be replaced with label %q, got %q", "2", h.Number)
	}
	// The input document is untouched.
	if doc.Blocks[2].(*doctree.Heading).Number != "9" {
		t.Error("input document must not be mutated")
	}
}

func TestRenumber_OutOfRangeLevelsClamped(t *testing.T) {
	doc := &doctree.Document{Blocks: []doctree.Block{
		&doctree.Heading{Level: 0, Inline: doctree.EmptyInline()},
		&doctree.Heading{Level: 9, Inline: doctree.EmptyInline()},
	}}
	doc, _ = Renumber(doc)
	first := doc.Blocks[0].(*doctree.Heading)
	second := doc.Blocks[1].(*doctree.Heading)
	if first.Level != 1 || first.Number != "1" {
		t.Errorf("expected level 1 label %q, got level %d label %q", "1", first.Level, first.Number)
	}
	if second.Level != 6 || second.Number != "" {
		t.Errorf("expected level 6 with empty label, got level %d label %q", second.Level, second.Number)
	}
}

func TestRenumber_NilDocument(t *testing.T) {
	doc, changed := Renumber(nil)
	if doc == nil || changed {
		t.Errorf("expected empty unchanged document, got %v changed=%v", doc, changed)
	}
}
