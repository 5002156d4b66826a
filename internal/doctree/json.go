package doctree

import (
	"encoding/json"
	"fmt"
)

// The wire form of a Document is a tagged union: every block carries a "type"
// discriminator. Decoding is total — unknown or malformed blocks degrade to
// paragraphs instead of failing the whole document.

func (d *Document) MarshalJSON() ([]byte, error) {
	blocks := make([]json.RawMessage, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		raw, err := marshalBlock(b)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, raw)
	}
	return json.Marshal(struct {
		Blocks []json.RawMessage `json:"blocks"`
	}{blocks})
}

func marshalBlock(b Block) (json.RawMessage, error) {
	switch blk := b.(type) {
	case *Heading:
		return json.Marshal(struct {
			Type   string `json:"type"`
			Level  int    `json:"level"`
			Number string `json:"number,omitempty"`
			Inline []Run  `json:"inline"`
		}{"heading", blk.Level, blk.Number, blk.Inline})
	case *Paragraph:
		return json.Marshal(struct {
			Type   string `json:"type"`
			Inline []Run  `json:"inline"`
		}{"paragraph", blk.Inline})
	case *VariantParagraph:
		return json.Marshal(struct {
			Type     string    `json:"type"`
			Inline   []Run     `json:"inline"`
			Variants []Variant `json:"variants"`
			Selected int       `json:"selected"`
		}{"variant_paragraph", blk.Inline, blk.Variants, blk.Selected})
	case *ListTree:
		return json.Marshal(struct {
			Type  string      `json:"type"`
			Items []*ListItem `json:"items"`
		}{"list", blk.Items})
	default:
		return nil, fmt.Errorf("unknown block type %T", b)
	}
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var wire struct {
		Blocks []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d.Blocks = nil
	for _, raw := range wire.Blocks {
		d.Blocks = append(d.Blocks, unmarshalBlock(raw))
	}
	return nil
}

func unmarshalBlock(raw json.RawMessage) Block {
	var probe struct {
		Type     string      `json:"type"`
		Level    int         `json:"level"`
		Number   string      `json:"number"`
		Inline   []Run       `json:"inline"`
		Variants []Variant   `json:"variants"`
		Selected int         `json:"selected"`
		Items    []*ListItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return &Paragraph{Inline: EmptyInline()}
	}
	inline := probe.Inline
	if len(inline) == 0 {
		inline = EmptyInline()
	}
	switch probe.Type {
	case "heading":
		return &Heading{Level: ClampLevel(probe.Level), Number: probe.Number, Inline: inline}
	case "variant_paragraph":
		if len(probe.Variants) == 0 {
			return &Paragraph{Inline: inline}
		}
		selected := probe.Selected
		if selected < 0 || selected >= len(probe.Variants) {
			selected = 0
		}
		return &VariantParagraph{Inline: inline, Variants: probe.Variants, Selected: selected}
	case "list":
		tree := &ListTree{Items: probe.Items}
		normalizeList(tree)
		return tree
	default:
		return &Paragraph{Inline: inline}
	}
}

// normalizeList restores the never-empty-inline and non-negative-level
// invariants on decoded list items.
func normalizeList(tree *ListTree) {
	if tree == nil {
		return
	}
	for i, item := range tree.Items {
		if item == nil {
			item = &ListItem{}
			tree.Items[i] = item
		}
		if item.Level < 0 {
			item.Level = 0
		}
		if len(item.Inline) == 0 {
			item.Inline = EmptyInline()
		}
		normalizeList(item.Nested)
	}
}
