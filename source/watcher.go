package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the bursts of write events many tools emit for
// one logical save.
const debounceWindow = 100 * time.Millisecond

// Watch follows a LAS file on disk and delivers its full text on every
// change, starting with the current content. The channel is closed when
// the context is cancelled or the watcher fails. Uses fsnotify on the
// file's directory, which is more reliable than watching the file itself.
func Watch(ctx context.Context, path string) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		defer watcher.Close()

		// Initial snapshot before any event arrives.
		if text, err := os.ReadFile(path); err == nil {
			select {
			case ch <- string(text):
			case <-ctx.Done():
				return
			}
		}

		baseName := filepath.Base(path)
		var pending *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != baseName {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				// Debounce: restart the timer on every event in a burst.
				if pending == nil {
					pending = time.NewTimer(debounceWindow)
					fire = pending.C
				} else {
					pending.Reset(debounceWindow)
				}

			case <-fire:
				pending, fire = nil, nil
				text, err := os.ReadFile(path)
				if err != nil {
					continue
				}
				select {
				case ch <- string(text):
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Usually recoverable; keep watching.
			}
		}
	}()

	return ch, nil
}
