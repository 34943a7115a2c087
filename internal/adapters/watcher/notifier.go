package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChangeNotifier = (*Notifier)(nil)

// DefaultDebounceWindow is the default time window for debouncing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Notifier implements ports.ChangeNotifier using fsnotify. Every
// subscription owns its own fsnotify watcher, so overlapping path sets
// across subscriptions stay independent.
//
// Watches are installed on the parent directories of the subscribed files
// and events are filtered back down to the exact file set. Watching the
// files themselves would silently detach on the replace-by-rename save
// strategy most editors use.
type Notifier struct {
	logger ports.Logger
	window time.Duration
}

// NewNotifier creates a Notifier that coalesces event bursts over the
// default debounce window.
func NewNotifier(logger ports.Logger) *Notifier {
	return &Notifier{logger: logger, window: DefaultDebounceWindow}
}

// NewNotifierWithWindow creates a Notifier with a custom debounce window.
func NewNotifierWithWindow(logger ports.Logger, window time.Duration) *Notifier {
	return &Notifier{logger: logger, window: window}
}

// Subscribe starts watching the given absolute paths and invokes onChange
// with each changed path after debouncing.
func (n *Notifier) Subscribe(paths []string, onChange func(path string)) (ports.Subscription, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}

	watched := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, path := range paths {
		clean := filepath.Clean(path)
		watched[clean] = struct{}{}
		dirs[filepath.Dir(clean)] = struct{}{}
	}

	for dir := range dirs {
		if addErr := fsw.Add(dir); addErr != nil {
			_ = fsw.Close()
			return nil, zerr.With(zerr.Wrap(addErr, "failed to watch directory"), "dir", dir)
		}
	}

	sub := &subscription{
		fsw:    fsw,
		logger: n.logger,
	}
	sub.debouncer = NewDebouncer(n.window, func(changed []string) {
		for _, path := range changed {
			onChange(path)
		}
	})

	go sub.loop(watched)

	return sub, nil
}

type subscription struct {
	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	logger    ports.Logger

	closeOnce sync.Once
	closeErr  error
}

// Close stops event delivery and releases the underlying watcher.
func (s *subscription) Close() error {
	s.closeOnce.Do(func() {
		s.debouncer.Stop()
		s.closeErr = s.fsw.Close()
	})
	return s.closeErr
}

// relevantOps are the operations that can change a built artifact.
const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

func (s *subscription) loop(watched map[string]struct{}) {
	for {
		select {
		case event, ok := <-s.fsw.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			clean := filepath.Clean(event.Name)
			if _, subscribed := watched[clean]; !subscribed {
				continue
			}
			s.debouncer.Add(clean)

		case err, ok := <-s.fsw.Errors:
			if !ok {
				return
			}
			s.logger.Warn(fmt.Sprintf("file watcher error: %v", err))
		}
	}
}
