package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"midic/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change reports that the listing of Dir may be out of date.
type Change struct {
	Dir       string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Watcher follows a single directory with fsnotify. Watch retargets it
// whenever the browser changes directory.
type Watcher struct {
	// Directory currently being watched
	dir string

	// Pending changes; at most one is queued since a refresh covers all
	changes chan Change

	// Channel to signal stop
	stopChan chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
	stopped bool
}

// New creates a directory watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		changes:   make(chan Change, 1),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Watch replaces the watched directory with dir.
func (w *Watcher) Watch(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("error resolving directory: %w", err)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == abs {
		return nil
	}
	if w.dir != "" {
		// The old directory may already be gone.
		_ = w.fsWatcher.Remove(w.dir)
	}
	w.dir = ""
	if err := w.fsWatcher.Add(abs); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", abs, err)
	}
	w.dir = abs
	log.WithField("directory", abs).Debug("watching directory")
	return nil
}

// Dir returns the directory being watched, or "" if none.
func (w *Watcher) Dir() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}

// Changes returns the channel that delivers directory changes
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins processing fsnotify events. A stopped watcher cannot be
// started again.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	if w.stopped {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	stop := w.stopChan
	w.mutex.Unlock()

	go w.loop(stop)
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}) {
	defer close(w.changes)
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// Writes and attribute changes leave the listing as it was.
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			dir := w.Dir()
			if dir == "" || filepath.Dir(event.Name) != dir {
				continue
			}

			select {
			case w.changes <- Change{Dir: dir, Op: event.Op, Timestamp: time.Now()}:
			default:
				// A refresh is already pending.
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("fsnotify watcher error")

		case <-stop:
			return
		}
	}
}

// Stop halts the watcher. The Changes channel is closed once the event
// loop has exited.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.WithError(err).Warn("error closing fsnotify watcher")
	}
	w.running = false
	w.stopped = true
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
