package watcher

import "context"

// Watcher monitors a directory and hands new recordings to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly arrived recording.
type EventHandler func(ctx context.Context, filePath string) error
