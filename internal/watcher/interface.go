package watcher

import "context"

// Watcher turns record-update event files into pipeline invocations.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}
