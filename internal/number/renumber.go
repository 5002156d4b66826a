// Package number keeps heading number labels consistent with document
// structure. The host editing surface calls Renumber after every structural
// edit; the reducer converges after a single application, so redundant
// invocations are harmless.
package number

import (
	"strconv"
	"strings"

	"github.com/clausemd/clausemd/internal/doctree"
)

// Renumber recomputes heading number labels in document order and reports
// whether anything changed. It is pure: the input document is never mutated,
// blocks whose labels are already correct are reused as-is, and when nothing
// differs the input document itself is returned. Level 6 headings always get
// an empty label.
func Renumber(doc *doctree.Document) (*doctree.Document, bool) {
	if doc == nil {
		return &doctree.Document{}, false
	}

	var counters [doctree.MaxNumberedLevel + 1]int // 1-based, index 0 unused
	changed := false
	blocks := make([]doctree.Block, len(doc.Blocks))
	copy(blocks, doc.Blocks)

	for i, b := range blocks {
		h, ok := b.(*doctree.Heading)
		if !ok {
			continue
		}
		level := doctree.ClampLevel(h.Level)
		label := ""
		if level <= doctree.MaxNumberedLevel {
			counters[level]++
			for deeper := level + 1; deeper <= doctree.MaxNumberedLevel; deeper++ {
				counters[deeper] = 0
			}
			label = joinLabel(counters[1 : level+1])
		}
		if h.Level == level && h.Number == label {
			continue
		}
		blocks[i] = &doctree.Heading{Level: level, Number: label, Inline: h.Inline}
		changed = true
	}

	if !changed {
		return doc, false
	}
	return &doctree.Document{Blocks: blocks}, true
}

// joinLabel dot-joins the counter path, dropping leading levels that have not
// produced a heading yet — a document whose first heading is level 2 starts
// at "1", not "0.1".
func joinLabel(counters []int) string {
	start := 0
	for start < len(counters)-1 && counters[start] == 0 {
		start++
	}
	parts := make([]string, 0, len(counters)-start)
	for _, c := range counters[start:] {
		parts = append(parts, strconv.Itoa(c))
	}
	return strings.Join(parts, ".")
}
