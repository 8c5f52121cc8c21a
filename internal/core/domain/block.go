package domain

// MaxBlockTextLength is the longest text a single block may carry.
// The remote API rejects rich text spans beyond this length.
const MaxBlockTextLength = 2000

// truncationSuffix marks text that was cut at construction time.
const truncationSuffix = "..."

// BlockType identifies the structural kind of a converted block.
type BlockType string

const (
	// BlockTypeHeading1 is a top-level heading.
	BlockTypeHeading1 BlockType = "heading_1"

	// BlockTypeHeading2 is a second-level heading.
	BlockTypeHeading2 BlockType = "heading_2"

	// BlockTypeHeading3 is a third-level heading.
	BlockTypeHeading3 BlockType = "heading_3"

	// BlockTypeParagraph is plain paragraph text.
	BlockTypeParagraph BlockType = "paragraph"
)

// Block is one structural unit of converted page content.
// Blocks keep their source order all the way to the remote store.
type Block struct {
	// Type is the structural kind of the block.
	Type BlockType

	// Text is the block content, never longer than MaxBlockTextLength.
	Text string
}

// NewHeading builds a heading block of the given level (1-3).
// Levels outside that range degrade to a paragraph, keeping the
// constructor total.
func NewHeading(level int, text string) Block {
	switch level {
	case 1:
		return Block{Type: BlockTypeHeading1, Text: truncate(text)}
	case 2:
		return Block{Type: BlockTypeHeading2, Text: truncate(text)}
	case 3:
		return Block{Type: BlockTypeHeading3, Text: truncate(text)}
	default:
		return NewParagraph(text)
	}
}

// NewParagraph builds a paragraph block.
func NewParagraph(text string) Block {
	return Block{Type: BlockTypeParagraph, Text: truncate(text)}
}

// truncate enforces the remote rich-text limit. Text longer than
// MaxBlockTextLength characters keeps its first 1997 characters and
// gains an ellipsis marker. Lengths are counted in runes so multi-byte
// characters are never split.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxBlockTextLength {
		return text
	}
	return string(runes[:MaxBlockTextLength-len(truncationSuffix)]) + truncationSuffix
}
