package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bon-clevique/NotionSync/internal/core/domain"
	"github.com/bon-clevique/NotionSync/internal/core/ports/driven"
	"github.com/bon-clevique/NotionSync/internal/core/ports/driving"
	"github.com/bon-clevique/NotionSync/internal/logger"
)

// Ensure Dispatcher implements the interface.
var _ driving.WatchDispatcher = (*Dispatcher)(nil)

// DefaultSettleDelay is how long a detected file rests before the
// pipeline reads it, giving the writing process time to finish.
const DefaultSettleDelay = 500 * time.Millisecond

// markdownExt is the only file extension the dispatcher lets through.
const markdownExt = ".md"

// Dispatcher consumes raw file events and feeds qualifying Markdown
// files to the sync pipeline, one at a time.
type Dispatcher struct {
	targets  map[string]domain.WatchTarget
	watcher  driven.FileWatcher
	pipeline driving.SyncPipeline
	settle   time.Duration
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSettleDelay overrides the pause between detecting a file and
// handing it to the pipeline. Negative values are ignored.
func WithSettleDelay(d time.Duration) Option {
	return func(di *Dispatcher) {
		if d >= 0 {
			di.settle = d
		}
	}
}

// NewDispatcher creates a dispatcher for the given targets. The target
// index is keyed by the configured directory string exactly as
// written; event paths are matched against it literally.
func NewDispatcher(
	targets []domain.WatchTarget,
	watcher driven.FileWatcher,
	pipeline driving.SyncPipeline,
	opts ...Option,
) *Dispatcher {
	index := make(map[string]domain.WatchTarget, len(targets))
	for _, t := range targets {
		index[t.Directory] = t
	}

	d := &Dispatcher{
		targets:  index,
		watcher:  watcher,
		pipeline: pipeline,
		settle:   DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// dispatchJob pairs a settled file with its directory's relation id.
type dispatchJob struct {
	file       domain.DetectedFile
	relationID string
}

// Run consumes creation events until ctx is cancelled. Each qualifying
// file waits out the settle delay on its own goroutine so intake never
// blocks, then jobs are processed one at a time in settle order. On
// shutdown, files already detected finish processing before Run
// returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	if len(d.targets) == 0 {
		return domain.ErrNoTargets
	}

	events, err := d.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("start watch: %w", err)
	}
	logger.Info("Dispatching events for %d watch target(s)", len(d.targets))

	// In-flight work is detached from ctx so an interrupt never
	// abandons a file between page creation and disposal.
	workCtx := context.WithoutCancel(ctx)

	queue := make(chan dispatchJob)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		for job := range queue {
			if err := d.pipeline.Process(workCtx, job.file, job.relationID); err != nil {
				logger.Error("Processing failed for %s (event %s): %v",
					filepath.Base(job.file.Path), job.file.EventID, err)
			}
		}
	}()

	var settling sync.WaitGroup
intake:
	for {
		select {
		case <-ctx.Done():
			break intake
		case ev, ok := <-events:
			if !ok {
				break intake
			}
			if !qualifies(ev) {
				continue
			}

			file := domain.DetectedFile{
				EventID: ev.ID,
				Path:    ev.Path,
				Dir:     filepath.Dir(ev.Path),
			}
			logger.Info("New markdown file detected: %s (event %s)",
				filepath.Base(file.Path), file.EventID)

			settling.Add(1)
			go func() {
				defer settling.Done()
				time.Sleep(d.settle)
				queue <- dispatchJob{
					file:       file,
					relationID: d.targets[file.Dir].RelationID,
				}
			}()
		}
	}

	// Let every settling file reach the queue, then drain it.
	settling.Wait()
	close(queue)
	<-workerDone

	return nil
}

// qualifies filters raw events down to newly created Markdown files.
// The extension check is case-insensitive; directories are skipped. A
// path that vanished between event and check still qualifies, and the
// pipeline reports the read failure.
func qualifies(ev domain.FileEvent) bool {
	if !strings.EqualFold(filepath.Ext(ev.Path), markdownExt) {
		return false
	}
	if info, err := os.Stat(ev.Path); err == nil && info.IsDir() {
		return false
	}
	return true
}
