// Package watcher reruns an action whenever an input file changes.
//
// The Watcher subscribes to fsnotify events on the directory holding the
// file, so editors that save by writing a temporary file and renaming it
// over the original are seen as a change too. Bursts of events are
// collapsed by a debounce timer and the action never runs concurrently
// with itself.
//
// Example usage:
//
//	w, err := watcher.New("data/vote.arff", func(ctx context.Context) error {
//		return mine(ctx)
//	}, watcher.WithDebounce(200*time.Millisecond))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Blocks until ctx is cancelled
//	if err := w.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package watcher
