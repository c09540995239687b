package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventBucketChanged indicates records under the named bucket (the first
	// path segment, e.g. rauchfrei_dailyEntries) were added or rewritten.
	EventBucketChanged EventType = iota

	// EventStoreInvalidated signals a change that could not be attributed to
	// a single bucket; callers should refresh their full view.
	EventStoreInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type   EventType
	Bucket string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel; the channel closes once ctx is done or the watcher
// hits an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		// Track directories we already watch so new user or bucket
		// directories get picked up at runtime without duplicate watches.
		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// A slow consumer just misses a redraw; it must never
				// back-pressure the filesystem watcher.
			}
		}

		batch := newCoalescer(100*time.Millisecond, send)
		defer batch.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// An unclassifiable change still means the view is stale.
				batch.Add(Event{Type: EventStoreInvalidated})
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					// diskv creates the user directory on the first write of
					// a bucket; start watching it before its files land.
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
						batch.Add(Event{Type: EventStoreInvalidated})
						continue
					}
				}

				bucket := p.bucketForPath(evt.Name)
				if bucket == "" {
					batch.Add(Event{Type: EventStoreInvalidated})
					continue
				}

				batch.Add(Event{Type: EventBucketChanged, Bucket: bucket})
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// bucketForPath derives the top-level bucket name from a diskv file path.
func (p *persistence) bucketForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil {
		return ""
	}
	if rel == "." {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) == 0 || parts[0] == "" {
		return ""
	}
	return parts[0]
}

// coalescer batches change notifications per bucket. A single check or smoke
// touches the entry, the log, and sometimes the settings record in quick
// succession; the dashboard should redraw once for that, not three times.
// Event is comparable, so deduplication is just set membership.
type coalescer struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	settle  time.Duration
	send    func(Event)
}

func newCoalescer(settle time.Duration, send func(Event)) *coalescer {
	return &coalescer{
		settle:  settle,
		pending: make(map[Event]struct{}),
		send:    send,
	}
}

// Add records the event and arms the settle timer. Events arriving while the
// timer runs fold into the same batch.
func (c *coalescer) Add(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[ev] = struct{}{}
	if c.timer == nil {
		c.timer = time.AfterFunc(c.settle, c.flush)
	}
}

func (c *coalescer) flush() {
	c.mu.Lock()
	batch := c.pending
	c.pending = make(map[Event]struct{})
	c.timer = nil
	c.mu.Unlock()

	for ev := range batch {
		c.send(ev)
	}
}

func (c *coalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
