package driving

import (
	"context"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
)

// SyncPipeline processes one detected file end to end: read, convert,
// create the remote page, dispose of the local file.
type SyncPipeline interface {
	// Process runs the full flow for one file. relationID is the
	// watched directory's configured relation, empty when it has none.
	// Any error is terminal for that one file only; the caller logs it
	// and moves on.
	Process(ctx context.Context, file domain.DetectedFile, relationID string) error
}
