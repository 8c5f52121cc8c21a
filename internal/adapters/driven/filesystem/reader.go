package filesystem

import (
	"os"

	"github.com/bon-clevique/NotionSync/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.FileReader = (*Reader)(nil)

// Reader reads local files for the sync pipeline.
type Reader struct{}

// NewReader creates a local file reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile returns the full content of the file at path.
func (*Reader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
