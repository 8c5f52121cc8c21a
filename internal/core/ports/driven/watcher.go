package driven

import (
	"context"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
)

// FileWatcher delivers raw file-creation events for a fixed set of
// directories. Directories are watched non-recursively: entries created
// in subdirectories never produce events.
type FileWatcher interface {
	// Watch validates every watched directory, creating missing ones,
	// then begins delivering creation events. Validation failure is
	// fatal and returns an error. The returned channel is closed when
	// ctx is cancelled or the watcher is closed.
	Watch(ctx context.Context) (<-chan domain.FileEvent, error)

	// Close stops event delivery and releases watch resources.
	Close() error
}
