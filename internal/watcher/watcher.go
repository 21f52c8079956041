package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Silverls96/transcript-summarizer/internal/logger"
	"github.com/Silverls96/transcript-summarizer/internal/runner"
)

type implWatcher struct {
	inputDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start begins monitoring the input directory for new audio files. Files
// are handled one at a time, in arrival order; a handler failure is logged
// and monitoring continues.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for new audio files in: %s", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !runner.IsAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New audio file detected: %s", event.Name)

			// Small delay to ensure the file is fully written
			time.Sleep(500 * time.Millisecond)

			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
