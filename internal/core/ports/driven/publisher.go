package driven

import (
	"context"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
)

// PagePublisher creates pages in the remote document store.
type PagePublisher interface {
	// CreatePage sends one page-creation request and returns a
	// reference to the created page. It is called at most once per
	// detected file; callers never retry a failed call.
	CreatePage(ctx context.Context, req domain.PageRequest) (domain.PageRef, error)
}
