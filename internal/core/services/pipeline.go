package services

import (
	"context"
	"fmt"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
	"github.com/bon-clevique/NotionSync/internal/core/ports/driven"
	"github.com/bon-clevique/NotionSync/internal/core/ports/driving"
	"github.com/bon-clevique/NotionSync/internal/logger"
)

// Ensure SyncPipeline implements the interface.
var _ driving.SyncPipeline = (*SyncPipeline)(nil)

// SyncPipeline turns one detected Markdown file into a remote page and
// then disposes of the local file.
type SyncPipeline struct {
	reader    driven.FileReader
	converter driven.BlockConverter
	publisher driven.PagePublisher
	disposer  driven.FileDisposer
}

// NewSyncPipeline creates a pipeline over the given collaborators.
func NewSyncPipeline(
	reader driven.FileReader,
	converter driven.BlockConverter,
	publisher driven.PagePublisher,
	disposer driven.FileDisposer,
) *SyncPipeline {
	return &SyncPipeline{
		reader:    reader,
		converter: converter,
		publisher: publisher,
		disposer:  disposer,
	}
}

// Process runs the full flow for one file. Every failure is terminal
// for this file only and reports which stage gave up through the
// domain error it wraps.
func (p *SyncPipeline) Process(ctx context.Context, file domain.DetectedFile, relationID string) error {
	// 1. Read the file content
	content, err := p.reader.ReadFile(file.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrFileRead, err)
	}

	// 2. Build the page request. The relation property rides along
	// only when the watched directory carries a relation id.
	req := domain.PageRequest{
		Title:      file.Title(),
		RelationID: relationID,
		Blocks:     p.converter.Convert(string(content)),
	}
	logger.Debug("Converted %s into %d block(s)", file.Title(), len(req.Blocks))

	// 3. Create the remote page. On failure the local file stays put.
	page, err := p.publisher.CreatePage(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRemoteCreate, err)
	}
	logger.Info("Saved to Notion: %s (page %s)", req.Title, page.ID)
	logger.Info("Page URL: %s", page.URL)

	// 4. Dispose of the local file. The remote page already exists, so
	// a failure here leaves the file both local and remote.
	if err := p.disposer.Dispose(file.Path); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDisposal, err)
	}

	return nil
}
