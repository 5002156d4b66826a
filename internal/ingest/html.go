package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/clausemd/clausemd/internal/parse"
	"golang.org/x/net/html"
)

// HTMLIngester reads editor-style HTML (h1-h6, p, ol/ul/li, strong, br) back
// into source blocks. It is the inverse of the editor_html formatter and
// tolerates arbitrary page HTML by skipping non-content elements.
type HTMLIngester struct{}

func (p *HTMLIngester) Ingest(r io.Reader, filename string) ([]parse.SourceBlock, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var blocks []parse.SourceBlock
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				blocks = append(blocks, parse.SourceBlock{
					Type:  "heading",
					Level: level,
					Text:  stripNumberLabel(inlineHTML(n)),
				})
				return
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "blockquote":
				if t := inlineHTML(n); t != "" {
					blocks = append(blocks, parse.SourceBlock{Type: "paragraph", Text: t})
				}
				return
			case "ol", "ul":
				var lines []string
				collectListItems(n, 0, &lines)
				if len(lines) > 0 {
					blocks = append(blocks, parse.SourceBlock{Type: "paragraph", Text: strings.Join(lines, "\n")})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}
	return blocks, nil
}

// collectListItems flattens nested ol/ul structures into numbered authoring
// lines, two-space indented per depth.
func collectListItems(list *html.Node, depth int, lines *[]string) {
	index := 1
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		*lines = append(*lines, fmt.Sprintf("%s%d. %s", strings.Repeat("  ", depth), index, inlineHTML(c)))
		for sub := c.FirstChild; sub != nil; sub = sub.NextSibling {
			if sub.Type == html.ElementNode && (sub.Data == "ol" || sub.Data == "ul") {
				collectListItems(sub, depth+1, lines)
			}
		}
		index++
	}
}

// inlineHTML renders an element's inline content back to authoring markup:
// strong/b become ** markers, br becomes a newline. Nested lists are skipped;
// the list collector owns those.
func inlineHTML(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				sb.WriteString(c.Data)
			case c.Type != html.ElementNode:
			case c.Data == "strong" || c.Data == "b":
				sb.WriteString("**")
				walk(c)
				sb.WriteString("**")
			case c.Data == "br":
				sb.WriteByte('\n')
			case c.Data == "ol" || c.Data == "ul":
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
