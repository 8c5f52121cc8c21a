// Package markdown converts Markdown text into typed content blocks.
//
// The converter is deliberately narrow: it recognises level 1-3
// headings and blank-line separated paragraphs, and nothing else.
// Lists, tables, code fences and inline formatting pass through as
// plain paragraph text.
package markdown

import (
	"strings"
	"unicode"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
	"github.com/bon-clevique/NotionSync/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.BlockConverter = (*Converter)(nil)

// Converter maps Markdown text onto an ordered block sequence.
type Converter struct{}

// New creates a new Markdown block converter.
func New() *Converter {
	return &Converter{}
}

// Convert scans content line by line and emits heading and paragraph
// blocks in source order. It never fails: anything that is not a
// recognised heading accumulates into paragraphs. Empty or
// whitespace-only content yields no blocks at all.
func (c *Converter) Convert(content string) []domain.Block {
	var blocks []domain.Block
	var paragraph []string

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		blocks = append(blocks, domain.NewParagraph(strings.Join(paragraph, "\n")))
		paragraph = nil
	}

	for _, line := range strings.Split(content, "\n") {
		// Trailing whitespace never survives, which also strips the
		// \r of CRLF line endings.
		line = strings.TrimRightFunc(line, unicode.IsSpace)

		switch {
		case strings.HasPrefix(line, "# "):
			flush()
			blocks = append(blocks, domain.NewHeading(1, line[2:]))
		case strings.HasPrefix(line, "## "):
			flush()
			blocks = append(blocks, domain.NewHeading(2, line[3:]))
		case strings.HasPrefix(line, "### "):
			flush()
			blocks = append(blocks, domain.NewHeading(3, line[4:]))
		case line == "":
			flush()
		default:
			paragraph = append(paragraph, line)
		}
	}
	flush()

	return blocks
}
