package driven

import "github.com/bon-clevique/NotionSync/internal/core/domain"

// BlockConverter turns Markdown text into ordered content blocks.
// Implementations must be pure and total: malformed input degrades to
// plain paragraphs rather than failing.
type BlockConverter interface {
	// Convert maps content onto blocks, preserving source order.
	// Empty or whitespace-only content yields an empty sequence.
	Convert(content string) []domain.Block
}
