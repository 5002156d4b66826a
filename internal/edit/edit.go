// Package edit holds the structural edit operations the host editing surface
// applies to a document. Every operation is a pure function returning a new
// document version; an edit against a stale reference is a silent no-op
// reported as "no change occurred", not an error.
package edit

import (
	"github.com/clausemd/clausemd/internal/doctree"
	"github.com/clausemd/clausemd/internal/parse"
)

// ApplyVariant switches the variant paragraph at block index to the given
// variant, rematerializing its inline content. Out-of-range indices, blocks
// that are not variant paragraphs, and re-selecting the current variant all
// leave the document untouched.
func ApplyVariant(doc *doctree.Document, block, variant int) (*doctree.Document, bool) {
	if doc == nil || block < 0 || block >= len(doc.Blocks) {
		return doc, false
	}
	vp, ok := doc.Blocks[block].(*doctree.VariantParagraph)
	if !ok || variant < 0 || variant >= len(vp.Variants) || variant == vp.Selected {
		return doc, false
	}

	blocks := make([]doctree.Block, len(doc.Blocks))
	copy(blocks, doc.Blocks)
	blocks[block] = &doctree.VariantParagraph{
		Inline:   parse.TokenizeBlock(vp.Variants[variant].Text),
		Variants: vp.Variants,
		Selected: variant,
	}
	return &doctree.Document{Blocks: blocks}, true
}

// SetItemLevel re-levels one item of the list tree at block index, rebuilding
// the nesting around it. The item index counts depth-first over the whole
// tree. Stale indices are a no-op.
func SetItemLevel(doc *doctree.Document, block, item, level int) (*doctree.Document, bool) {
	if doc == nil || block < 0 || block >= len(doc.Blocks) {
		return doc, false
	}
	tree, ok := doc.Blocks[block].(*doctree.ListTree)
	if !ok {
		return doc, false
	}
	flat := parse.Flatten(tree)
	if item < 0 || item >= len(flat) {
		return doc, false
	}
	if level < 0 {
		level = 0
	}
	if flat[item].Level == level {
		return doc, false
	}
	flat[item].Level = level

	blocks := make([]doctree.Block, len(doc.Blocks))
	copy(blocks, doc.Blocks)
	blocks[block] = parse.BuildList(flat)
	return &doctree.Document{Blocks: blocks}, true
}
