package ingest

import (
	"io"

	"github.com/clausemd/clausemd/internal/parse"
)

// TextIngester passes plain text straight through as one paragraph source
// block; the assembler splits it on blank lines and classifies embedded
// headings and lists.
type TextIngester struct{}

func (p *TextIngester) Ingest(r io.Reader, filename string) ([]parse.SourceBlock, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return []parse.SourceBlock{{Type: "paragraph", Text: string(data)}}, nil
}
