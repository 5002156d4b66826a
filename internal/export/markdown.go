// Package export projects a document back out: the canonical authoring-text
// serializer plus the output formatters consumed by the API and CLI. Nothing
// here mutates the document.
package export

import (
	"strconv"
	"strings"

	"github.com/clausemd/clausemd/internal/doctree"
	"github.com/clausemd/clausemd/internal/number"
)

// VariantSidecar carries a variant paragraph's alternatives alongside the
// markdown output, so exporting never flattens variants away.
type VariantSidecar struct {
	Block    int               `json:"block"`
	Variants []doctree.Variant `json:"variants"`
	Selected int               `json:"selected"`
}

// Result is the authoring-format projection of a document.
type Result struct {
	Markdown string           `json:"markdown"`
	Variants []VariantSidecar `json:"variants,omitempty"`
}

// Markdown serializes a document to canonical authoring text. Heading and
// list labels are recomputed fresh: whatever numerals the author originally
// typed, the output is canonical. Renumbering runs on a copy first, so the
// export is correct even if the caller skipped a maintainer invocation.
func Markdown(doc *doctree.Document) Result {
	doc, _ = number.Renumber(doc)

	var parts []string
	var variants []VariantSidecar
	for i, b := range doc.Blocks {
		switch blk := b.(type) {
		case *doctree.Heading:
			var sb strings.Builder
			sb.WriteString(strings.Repeat("#", blk.Level))
			sb.WriteByte(' ')
			if blk.Number != "" {
				sb.WriteString(blk.Number)
				sb.WriteByte(' ')
			}
			sb.WriteString(InlineText(blk.Inline))
			parts = append(parts, sb.String())
		case *doctree.Paragraph:
			parts = append(parts, InlineText(blk.Inline))
		case *doctree.VariantParagraph:
			parts = append(parts, InlineText(blk.Inline))
			variants = append(variants, VariantSidecar{Block: i, Variants: blk.Variants, Selected: blk.Selected})
		case *doctree.ListTree:
			parts = append(parts, listLines(blk))
		}
	}
	return Result{Markdown: strings.Join(parts, "\n\n"), Variants: variants}
}

// InlineText renders runs back to authoring markup: bold wrapped in **, hard
// breaks as newlines.
func InlineText(runs []doctree.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		switch {
		case r.Break:
			sb.WriteByte('\n')
		case r.Bold:
			sb.WriteString("**")
			sb.WriteString(r.Text)
			sb.WriteString("**")
		default:
			sb.WriteString(r.Text)
		}
	}
	return sb.String()
}

// listLines emits a list tree as authoring lines. Each label is the parent
// path plus the item's 1-based sibling index; a nested subtree is emitted one
// indent deeper, directly beneath its owning item. Top-level items keep the
// conventional trailing dot ("1. "), nested ones don't ("1.1 ").
func listLines(tree *doctree.ListTree) string {
	var lines []string
	var walk func(t *doctree.ListTree, parent string, depth int)
	walk = func(t *doctree.ListTree, parent string, depth int) {
		for i, item := range t.Items {
			label := strconv.Itoa(i + 1)
			if parent != "" {
				label = parent + "." + label
			}
			marker := label
			if parent == "" {
				marker += "."
			}
			lines = append(lines, strings.Repeat("  ", depth)+marker+" "+InlineText(item.Inline))
			if item.Nested != nil {
				walk(item.Nested, label, depth+1)
			}
		}
	}
	walk(tree, "", 0)
	return strings.Join(lines, "\n")
}
