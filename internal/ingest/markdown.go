package ingest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/clausemd/clausemd/internal/parse"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownIngester normalizes arbitrary CommonMark into source blocks using
// goldmark. Headings and lists are re-emitted in the constrained authoring
// format; strong emphasis survives as ** markers.
type MarkdownIngester struct{}

func (p *MarkdownIngester) Ingest(r io.Reader, filename string) ([]parse.SourceBlock, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []parse.SourceBlock
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			blocks = append(blocks, parse.SourceBlock{
				Type:  "heading",
				Level: node.Level,
				Text:  stripNumberLabel(inlineMarkdown(node, src)),
			})
		case *ast.List:
			var lines []string
			collectListLines(node, src, 0, &lines)
			if len(lines) > 0 {
				blocks = append(blocks, parse.SourceBlock{Type: "paragraph", Text: strings.Join(lines, "\n")})
			}
		default:
			if t := inlineMarkdown(n, src); t != "" {
				blocks = append(blocks, parse.SourceBlock{Type: "paragraph", Text: t})
			}
		}
	}
	return blocks, nil
}

// collectListLines flattens a (possibly nested, possibly bulleted) list into
// numbered authoring lines; the constrained format has only numbered lists,
// and depth is carried by two-space indentation.
func collectListLines(list *ast.List, src []byte, depth int, lines *[]string) {
	index := 1
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var itemText string
		var nested []*ast.List
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				nested = append(nested, sub)
				continue
			}
			if t := inlineMarkdown(c, src); t != "" {
				if itemText != "" {
					itemText += " "
				}
				itemText += t
			}
		}
		*lines = append(*lines, fmt.Sprintf("%s%d. %s", strings.Repeat("  ", depth), index, itemText))
		for _, sub := range nested {
			collectListLines(sub, src, depth+1, lines)
		}
		index++
	}
}

// inlineMarkdown renders a node's inline content back to authoring markup.
func inlineMarkdown(n ast.Node, src []byte) string {
	var buf bytes.Buffer

	// Blocks without inline children (code blocks) carry raw lines.
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch cn := c.(type) {
			case *ast.Text:
				buf.Write(cn.Value(src))
				if cn.HardLineBreak() || cn.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			case *ast.String:
				buf.Write(cn.Value)
			case *ast.Emphasis:
				if cn.Level >= 2 {
					buf.WriteString("**")
					walk(c)
					buf.WriteString("**")
				} else {
					walk(c)
				}
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
