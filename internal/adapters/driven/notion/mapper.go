package notion

import (
	"github.com/jomei/notionapi"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
)

// Blocks maps converted blocks onto their wire representations,
// preserving order. It is exported for the convert command, which
// prints the exact payload the daemon would send.
func Blocks(blocks []domain.Block) []notionapi.Block {
	out := make([]notionapi.Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, block(b))
	}
	return out
}

// block maps a single block. Unknown block types degrade to
// paragraphs so no content is ever dropped.
func block(b domain.Block) notionapi.Block {
	switch b.Type {
	case domain.BlockTypeHeading1:
		return notionapi.Heading1Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading1),
			Heading1:   notionapi.Heading{RichText: richText(b.Text)},
		}
	case domain.BlockTypeHeading2:
		return notionapi.Heading2Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading2),
			Heading2:   notionapi.Heading{RichText: richText(b.Text)},
		}
	case domain.BlockTypeHeading3:
		return notionapi.Heading3Block{
			BasicBlock: basicBlock(notionapi.BlockTypeHeading3),
			Heading3:   notionapi.Heading{RichText: richText(b.Text)},
		}
	default:
		return notionapi.ParagraphBlock{
			BasicBlock: basicBlock(notionapi.BlockTypeParagraph),
			Paragraph:  notionapi.Paragraph{RichText: richText(b.Text)},
		}
	}
}

// basicBlock fills the envelope fields shared by every block type.
func basicBlock(t notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{
		Object: notionapi.ObjectTypeBlock,
		Type:   t,
	}
}

// richText wraps plain text in a single-span rich text list.
func richText(text string) []notionapi.RichText {
	return []notionapi.RichText{
		{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{Content: text},
		},
	}
}
