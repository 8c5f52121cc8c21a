package driving

import "context"

// WatchDispatcher runs the watch loop that feeds the sync pipeline.
type WatchDispatcher interface {
	// Run blocks consuming file events until ctx is cancelled,
	// dispatching qualifying Markdown files to the pipeline one at a
	// time. Files already past their settle delay finish processing
	// before Run returns. A nil return means a clean shutdown.
	Run(ctx context.Context) error
}
