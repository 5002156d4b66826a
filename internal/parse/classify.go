package parse

import (
	"regexp"
	"strings"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineListItem
	linePlain
)

var (
	headingRe  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	listItemRe = regexp.MustCompile(`^(\s*)(\d+(?:\.\d+)*)\.?\s+(.+)$`)
)

type classified struct {
	kind  lineKind
	level int    // heading level, or list depth
	text  string // content without the structural marker
}

// classifyLine decides what one authoring line is. List depth comes from two
// independent signals: physical indentation and the dot count of the numeric
// label. Indentation wins whenever it is nonzero; the dot count only applies
// for items at the left margin.
func classifyLine(line string) classified {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return classified{kind: lineBlank}
	}
	if m := headingRe.FindStringSubmatch(trimmed); m != nil {
		return classified{kind: lineHeading, level: len(m[1]), text: m[2]}
	}
	if m := listItemRe.FindStringSubmatch(line); m != nil {
		level := strings.Count(m[2], ".")
		if indent := len(m[1]); indent > 0 {
			level = indent / 2
		}
		return classified{kind: lineListItem, level: level, text: m[3]}
	}
	return classified{kind: linePlain, text: line}
}
