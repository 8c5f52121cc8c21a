package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadFile(t *testing.T) {
	t.Run("returns full content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "note.md")
		require.NoError(t, os.WriteFile(path, []byte("# Title\n\n日本語の本文"), 0o644))

		content, err := NewReader().ReadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "# Title\n\n日本語の本文", string(content))
	})

	t.Run("reports a missing file", func(t *testing.T) {
		_, err := NewReader().ReadFile(filepath.Join(t.TempDir(), "nope.md"))

		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}
