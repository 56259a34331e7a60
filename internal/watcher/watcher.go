package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/quickrecap/recap-pipeline/internal/logger"
	"github.com/quickrecap/recap-pipeline/internal/pipeline"
)

// implWatcher consumes record-update events dropped into a spool directory
// as JSON files of the form {"userId": "...", "fileUrl": "..."}. Each file
// is one trigger; it is deleted once handled.
type implWatcher struct {
	eventsDir string
	pipeline  pipeline.Pipeline
	logger    logger.Logger
	watcher   *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup
}

// Start drains events already in the spool, then blocks consuming new ones
// until ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Event watcher started (max concurrent: %d). Monitoring: %s", cap(w.semaphore), w.eventsDir)

	if err := w.drainExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Event watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isEventFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-event file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New event detected: %s", event.Name)

			// Small delay so the producer finishes writing the file.
			time.Sleep(200 * time.Millisecond)

			if err := w.dispatch(ctx, event.Name); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// drainExisting handles event files that arrived while the service was down.
func (w *implWatcher) drainExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.eventsDir)
	if err != nil {
		return fmt.Errorf("read events dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !isEventFile(e.Name()) {
			continue
		}
		if err := w.dispatch(ctx, filepath.Join(w.eventsDir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// dispatch hands one event file to the pipeline under the semaphore.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()

		w.handleEventFile(ctx, path)
	}()
	return nil
}

func (w *implWatcher) handleEventFile(ctx context.Context, path string) {
	event, err := readEvent(path)
	if err != nil {
		w.logger.Error(ctx, "Invalid event file %s: %v", path, err)
		w.remove(ctx, path)
		return
	}

	if err := w.pipeline.Handle(ctx, *event); err != nil {
		w.logger.Error(ctx, "Failed to process event for user %s: %v", event.UserID, err)
	}

	// The pipeline records its own outcome on the user record; the spool
	// entry is consumed either way.
	w.remove(ctx, path)
}

func (w *implWatcher) remove(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		w.logger.Warn(ctx, "Failed to remove event file %s: %v", path, err)
	}
}

func readEvent(path string) (*pipeline.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event: %w", err)
	}

	var event pipeline.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("parse event: %w", err)
	}
	if event.UserID == "" {
		return nil, fmt.Errorf("event missing userId")
	}
	return &event, nil
}

func isEventFile(path string) bool {
	name := filepath.Base(path)
	return strings.HasSuffix(strings.ToLower(name), ".json") && !strings.HasPrefix(name, ".")
}
