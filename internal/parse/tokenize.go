package parse

import (
	"strings"

	"github.com/clausemd/clausemd/internal/doctree"
)

const boldMarker = "**"

// TokenizeLine splits one line into plain and bold runs. Bold pairs are
// matched left to right, non-nesting and non-greedy; an unmatched opening
// marker stays in the text as-is. The result is never empty.
func TokenizeLine(line string) []doctree.Run {
	var runs []doctree.Run
	rest := line
	for {
		open := strings.Index(rest, boldMarker)
		if open < 0 {
			break
		}
		end := strings.Index(rest[open+2:], boldMarker)
		if end < 0 {
			break
		}
		if open > 0 {
			runs = append(runs, doctree.Run{Text: rest[:open]})
		}
		runs = append(runs, doctree.Run{Text: rest[open+2 : open+2+end], Bold: true})
		rest = rest[open+2+end+2:]
	}
	if rest != "" {
		runs = append(runs, doctree.Run{Text: rest})
	}
	if len(runs) == 0 {
		runs = doctree.EmptyInline()
	}
	return runs
}

// TokenizeBlock tokenizes multi-line text line by line, inserting a hard
// break between lines but not after the last one.
func TokenizeBlock(text string) []doctree.Run {
	var runs []doctree.Run
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			runs = append(runs, doctree.Run{Break: true})
		}
		if line == "" {
			continue
		}
		runs = append(runs, TokenizeLine(line)...)
	}
	if len(runs) == 0 {
		runs = doctree.EmptyInline()
	}
	return runs
}
