package ports

import "context"

// Watcher observes a single file for changes. It backs `skilldock sync --watch`.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch blocks until ctx is done, invoking onChange (debounced) whenever
	// the watched file is written, created or renamed.
	Watch(ctx context.Context, path string, onChange func()) error
}
