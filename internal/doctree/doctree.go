package doctree

import "strings"

// Heading levels. Levels deeper than MaxNumberedLevel exist but never receive
// a number label.
const (
	MinHeadingLevel  = 1
	MaxHeadingLevel  = 6
	MaxNumberedLevel = 5
)

// Run is one inline segment of a block's content. A hard line break is a
// zero-content run with Break set.
type Run struct {
	Text  string `json:"text"`
	Bold  bool   `json:"bold,omitempty"`
	Break bool   `json:"break,omitempty"`
}

// Variant is one alternate phrasing of a variant paragraph.
type Variant struct {
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}

// Block is a top-level document node: heading, paragraph, variant paragraph,
// or list tree.
type Block interface {
	block()
}

// Heading is a titled structural block. Number is derived by the numbering
// maintainer; it is empty for level 6 headings.
type Heading struct {
	Level  int
	Number string
	Inline []Run
}

// Paragraph is plain body text.
type Paragraph struct {
	Inline []Run
}

// VariantParagraph is a paragraph carrying alternate phrasings. Inline always
// mirrors Variants[Selected].Text; the variant list is never collapsed away.
type VariantParagraph struct {
	Inline   []Run
	Variants []Variant
	Selected int
}

// ListItem is one entry of a list tree. An item owns at most one nested
// subtree.
type ListItem struct {
	Level  int       `json:"level"`
	Inline []Run     `json:"inline"`
	Nested *ListTree `json:"nested,omitempty"`
}

// ListTree is a possibly multi-level nested ordered list.
type ListTree struct {
	Items []*ListItem `json:"items"`
}

// Document is the canonical in-memory representation of a contract body.
type Document struct {
	Blocks []Block
}

func (*Heading) block()          {}
func (*Paragraph) block()        {}
func (*VariantParagraph) block() {}
func (*ListTree) block()         {}

// ClampLevel forces a heading level into [1,6].
func ClampLevel(level int) int {
	if level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}

// EmptyInline is the representation of empty block content: a run sequence is
// never empty.
func EmptyInline() []Run {
	return []Run{{Text: ""}}
}

// Text renders runs as plain text, hard breaks as newlines. Bold emphasis is
// dropped.
func Text(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		if r.Break {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(r.Text)
	}
	return sb.String()
}
