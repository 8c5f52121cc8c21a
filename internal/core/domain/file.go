package domain

import (
	"path/filepath"
	"strings"
)

// FileEvent is a raw file-creation notification from the watch
// capability. It carries no judgement about whether the entry is
// interesting; filtering happens in the dispatcher.
type FileEvent struct {
	// ID correlates every log line produced for this event.
	ID string

	// Path is the created entry's path as reported by the watcher.
	Path string
}

// DetectedFile is a Markdown file that passed the dispatcher's filter.
// It is created once per qualifying event and consumed once by the
// sync pipeline.
type DetectedFile struct {
	// EventID is the originating event's correlation id.
	EventID string

	// Path is the file's path.
	Path string

	// Dir is the file's parent directory as derived from Path, used
	// for the relation lookup against configured targets.
	Dir string
}

// Title returns the file's base name without its extension. It becomes
// the created page's title.
func (f DetectedFile) Title() string {
	base := filepath.Base(f.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
