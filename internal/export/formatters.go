package export

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/clausemd/clausemd/internal/doctree"
	"github.com/clausemd/clausemd/internal/number"
)

// Formatter renders a document in one output format. Formatters are total:
// they never fail on any document.
type Formatter interface {
	Format(doc *doctree.Document) any
}

var formatters = map[string]Formatter{
	"structured_json": structuredJSONFormatter{},
	"markdown":        markdownFormatter{},
	"plain_text":      plainTextFormatter{},
	"editor_html":     editorHTMLFormatter{},
	"tag_list":        tagListFormatter{},
}

// For returns the formatter registered under name.
func For(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", name)
	}
	return f, nil
}

// Names lists the registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// structured_json: the renumbered document itself; the doctree wire codec
// handles JSON encoding.
type structuredJSONFormatter struct{}

func (structuredJSONFormatter) Format(doc *doctree.Document) any {
	doc, _ = number.Renumber(doc)
	return doc
}

// markdown: canonical authoring text plus the variant sidecar.
type markdownFormatter struct{}

func (markdownFormatter) Format(doc *doctree.Document) any {
	return Markdown(doc)
}

// plain_text: text content only, one line per block and list item. Heading
// labels are kept since they carry structural meaning in a contract.
type plainTextFormatter struct{}

func (plainTextFormatter) Format(doc *doctree.Document) any {
	doc, _ = number.Renumber(doc)
	var lines []string
	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case *doctree.Heading:
			text := strings.TrimSpace(doctree.Text(blk.Inline))
			if blk.Number != "" {
				text = blk.Number + " " + text
			}
			lines = append(lines, text)
		case *doctree.Paragraph:
			lines = append(lines, strings.TrimSpace(doctree.Text(blk.Inline)))
		case *doctree.VariantParagraph:
			lines = append(lines, strings.TrimSpace(doctree.Text(blk.Inline)))
		case *doctree.ListTree:
			for _, item := range flattenItems(blk) {
				lines = append(lines, strings.TrimSpace(doctree.Text(item.Inline)))
			}
		}
	}
	return strings.Join(lines, "\n")
}

// editor_html: the projection handed to the rich-text editing surface.
type editorHTMLFormatter struct{}

func (editorHTMLFormatter) Format(doc *doctree.Document) any {
	doc, _ = number.Renumber(doc)
	var parts []string
	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case *doctree.Heading:
			tag := fmt.Sprintf("h%d", blk.Level)
			prefix := ""
			if blk.Number != "" {
				prefix = blk.Number + " "
			}
			parts = append(parts, fmt.Sprintf("<%s>%s%s</%s>", tag, prefix, runsHTML(blk.Inline), tag))
		case *doctree.Paragraph:
			parts = append(parts, "<p>"+runsHTML(blk.Inline)+"</p>")
		case *doctree.VariantParagraph:
			parts = append(parts, fmt.Sprintf(`<p data-variants="%d" data-selected="%d">%s</p>`,
				len(blk.Variants), blk.Selected, runsHTML(blk.Inline)))
		case *doctree.ListTree:
			parts = append(parts, listHTML(blk))
		}
	}
	return strings.Join(parts, "\n")
}

// tag_list: sorted structural tags, the shape downstream classifiers expect.
type tagListFormatter struct{}

func (tagListFormatter) Format(doc *doctree.Document) any {
	set := map[string]bool{}
	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case *doctree.Heading:
			set["HAS_HEADINGS"] = true
			set[fmt.Sprintf("HEADING_LEVEL_%d", blk.Level)] = true
		case *doctree.VariantParagraph:
			set["HAS_VARIANTS"] = true
		case *doctree.ListTree:
			set["HAS_LISTS"] = true
		}
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func runsHTML(runs []doctree.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		switch {
		case r.Break:
			sb.WriteString("<br>")
		case r.Bold:
			sb.WriteString("<strong>")
			sb.WriteString(html.EscapeString(r.Text))
			sb.WriteString("</strong>")
		default:
			sb.WriteString(html.EscapeString(r.Text))
		}
	}
	return sb.String()
}

func listHTML(tree *doctree.ListTree) string {
	var sb strings.Builder
	sb.WriteString("<ol>")
	for _, item := range tree.Items {
		sb.WriteString("<li>")
		sb.WriteString(runsHTML(item.Inline))
		if item.Nested != nil {
			sb.WriteString(listHTML(item.Nested))
		}
		sb.WriteString("</li>")
	}
	sb.WriteString("</ol>")
	return sb.String()
}

func flattenItems(tree *doctree.ListTree) []*doctree.ListItem {
	var out []*doctree.ListItem
	var walk func(t *doctree.ListTree)
	walk = func(t *doctree.ListTree) {
		if t == nil {
			return
		}
		for _, item := range t.Items {
			out = append(out, item)
			walk(item.Nested)
		}
	}
	walk(tree)
	return out
}
