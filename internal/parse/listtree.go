package parse

import "github.com/clausemd/clausemd/internal/doctree"

// FlatItem is one leveled list line before nesting.
type FlatItem struct {
	Level  int
	Inline []doctree.Run
}

// BuildList nests a flat run of leveled items into a list tree. The
// shallowest level in the run is normalized to 0 first, so absolute
// indentation does not matter. Returns nil for an empty run.
func BuildList(items []FlatItem) *doctree.ListTree {
	if len(items) == 0 {
		return nil
	}
	min := items[0].Level
	for _, it := range items[1:] {
		if it.Level < min {
			min = it.Level
		}
	}
	normalized := make([]FlatItem, len(items))
	for i, it := range items {
		normalized[i] = FlatItem{Level: it.Level - min, Inline: it.Inline}
	}
	tree, _ := buildLevel(normalized, 0, 0)
	return tree
}

// buildLevel consumes items at exactly level as siblings. A deeper item nests
// under the immediately preceding sibling; a shallower one ends the current
// list and hands the unconsumed index back to the caller. Recursion depth
// equals nesting depth.
func buildLevel(items []FlatItem, start, level int) (*doctree.ListTree, int) {
	tree := &doctree.ListTree{}
	i := start
	for i < len(items) {
		it := items[i]
		switch {
		case it.Level == level:
			tree.Items = append(tree.Items, &doctree.ListItem{Level: it.Level, Inline: it.Inline})
			i++
		case it.Level > level:
			if len(tree.Items) == 0 {
				// Run starts deeper than this level: fabricate an empty
				// sibling so the deeper items have a parent to hang from.
				tree.Items = append(tree.Items, &doctree.ListItem{Level: level, Inline: doctree.EmptyInline()})
			}
			nested, next := buildLevel(items, i, level+1)
			tree.Items[len(tree.Items)-1].Nested = nested
			i = next
		default:
			return tree, i
		}
	}
	return tree, i
}

// Flatten is the inverse of BuildList: depth-first item order with levels
// taken from nesting depth.
func Flatten(tree *doctree.ListTree) []FlatItem {
	var out []FlatItem
	var walk func(t *doctree.ListTree, depth int)
	walk = func(t *doctree.ListTree, depth int) {
		if t == nil {
			return
		}
		for _, it := range t.Items {
			out = append(out, FlatItem{Level: depth, Inline: it.Inline})
			walk(it.Nested, depth+1)
		}
	}
	walk(tree, 0)
	return out
}
