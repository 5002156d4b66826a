package parse

import (
	"strings"

	"github.com/clausemd/clausemd/internal/doctree"
	"github.com/clausemd/clausemd/internal/number"
)

// SourceBlock is one block from an external document source. Type is
// "heading" or "paragraph"; anything else is treated as a paragraph. Text may
// itself be multi-line authoring markup and is re-classified on assembly.
type SourceBlock struct {
	Type     string            `json:"type"`
	Level    int               `json:"level,omitempty"`
	Text     string            `json:"text"`
	Variants []doctree.Variant `json:"variants,omitempty"`
	Selected int               `json:"selected,omitempty"`
}

// Blocks assembles source blocks into a canonical, renumbered document.
// Assembly is total: an empty input yields a document with one empty
// paragraph.
func Blocks(src []SourceBlock) *doctree.Document {
	doc := &doctree.Document{}
	for _, sb := range src {
		if sb.Type == "heading" {
			doc.Blocks = append(doc.Blocks, &doctree.Heading{
				Level:  doctree.ClampLevel(sb.Level),
				Inline: TokenizeBlock(sb.Text),
			})
			continue
		}
		if len(sb.Variants) > 0 {
			selected := sb.Selected
			if selected < 0 || selected >= len(sb.Variants) {
				selected = 0
			}
			doc.Blocks = append(doc.Blocks, &doctree.VariantParagraph{
				Inline:   TokenizeBlock(sb.Variants[selected].Text),
				Variants: sb.Variants,
				Selected: selected,
			})
			continue
		}
		doc.Blocks = append(doc.Blocks, textBlocks(sb.Text)...)
	}
	if len(doc.Blocks) == 0 {
		doc.Blocks = []doctree.Block{&doctree.Paragraph{Inline: doctree.EmptyInline()}}
	}
	doc, _ = number.Renumber(doc)
	return doc
}

// Text parses raw authoring text into a canonical document.
func Text(text string) *doctree.Document {
	return Blocks([]SourceBlock{{Type: "paragraph", Text: text}})
}

// textBlocks re-classifies multi-line paragraph text: embedded heading lines
// and list runs expand into their own blocks, a single line matching the
// heading pattern is promoted, and consecutive plain lines join into one
// paragraph with hard breaks.
func textBlocks(text string) []doctree.Block {
	var blocks []doctree.Block
	var para []string
	var items []FlatItem

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, &doctree.Paragraph{Inline: TokenizeBlock(strings.Join(para, "\n"))})
		para = nil
	}
	flushList := func() {
		if len(items) == 0 {
			return
		}
		if tree := BuildList(items); tree != nil {
			blocks = append(blocks, tree)
		}
		items = nil
	}

	for _, line := range strings.Split(text, "\n") {
		c := classifyLine(line)
		switch c.kind {
		case lineBlank:
			flushPara()
			flushList()
		case lineHeading:
			flushPara()
			flushList()
			blocks = append(blocks, &doctree.Heading{Level: c.level, Inline: TokenizeLine(c.text)})
		case lineListItem:
			flushPara()
			items = append(items, FlatItem{Level: c.level, Inline: TokenizeLine(c.text)})
		default:
			flushList()
			para = append(para, line)
		}
	}
	flushPara()
	flushList()
	return blocks
}
