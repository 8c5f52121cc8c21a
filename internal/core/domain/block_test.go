package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewParagraph tests paragraph construction
func TestNewParagraph(t *testing.T) {
	t.Run("keeps short text intact", func(t *testing.T) {
		block := NewParagraph("hello world")

		assert.Equal(t, BlockTypeParagraph, block.Type)
		assert.Equal(t, "hello world", block.Text)
	})

	t.Run("keeps text at exactly the limit intact", func(t *testing.T) {
		text := strings.Repeat("a", MaxBlockTextLength)
		block := NewParagraph(text)

		assert.Equal(t, text, block.Text)
		assert.NotContains(t, block.Text, truncationSuffix)
	})

	t.Run("truncates text one over the limit", func(t *testing.T) {
		block := NewParagraph(strings.Repeat("a", MaxBlockTextLength+1))

		assert.Len(t, block.Text, MaxBlockTextLength)
		assert.True(t, strings.HasSuffix(block.Text, "..."))
		assert.Equal(t, strings.Repeat("a", 1997)+"...", block.Text)
	})

	t.Run("truncates very long text to the limit", func(t *testing.T) {
		block := NewParagraph(strings.Repeat("x", 10*MaxBlockTextLength))

		assert.Len(t, block.Text, MaxBlockTextLength)
		assert.True(t, strings.HasSuffix(block.Text, "..."))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		// 2001 three-byte runes: over the limit by character count.
		block := NewParagraph(strings.Repeat("あ", MaxBlockTextLength+1))

		runes := []rune(block.Text)
		assert.Len(t, runes, MaxBlockTextLength)
		assert.Equal(t, strings.Repeat("あ", 1997)+"...", block.Text)
	})

	t.Run("preserves empty text", func(t *testing.T) {
		block := NewParagraph("")

		assert.Equal(t, BlockTypeParagraph, block.Type)
		assert.Empty(t, block.Text)
	})
}

// TestNewHeading tests heading construction for each level
func TestNewHeading(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected BlockType
	}{
		{"level 1", 1, BlockTypeHeading1},
		{"level 2", 2, BlockTypeHeading2},
		{"level 3", 3, BlockTypeHeading3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := NewHeading(tt.level, "Section")

			assert.Equal(t, tt.expected, block.Type)
			assert.Equal(t, "Section", block.Text)
		})
	}
}

// TestNewHeading_OutOfRangeLevels tests degradation to paragraph
func TestNewHeading_OutOfRangeLevels(t *testing.T) {
	for _, level := range []int{0, 4, -1, 100} {
		block := NewHeading(level, "text")

		assert.Equal(t, BlockTypeParagraph, block.Type)
		assert.Equal(t, "text", block.Text)
	}
}

// TestNewHeading_Truncation tests that headings share the length cap
func TestNewHeading_Truncation(t *testing.T) {
	block := NewHeading(1, strings.Repeat("h", MaxBlockTextLength+50))

	assert.Equal(t, BlockTypeHeading1, block.Type)
	assert.Len(t, block.Text, MaxBlockTextLength)
	assert.True(t, strings.HasSuffix(block.Text, "..."))
}
