package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/quickrecap/recap-pipeline/internal/logger"
	"github.com/quickrecap/recap-pipeline/internal/pipeline"
)

// New creates a Watcher on the event spool directory with concurrency
// control.
func New(eventsDir string, pipe pipeline.Pipeline, log logger.Logger, maxConcurrent int) (Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Add(eventsDir); err != nil {
		w.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		eventsDir: eventsDir,
		pipeline:  pipe,
		logger:    log,
		watcher:   w,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
