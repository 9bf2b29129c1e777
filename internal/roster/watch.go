package roster

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher notices edits made to the roster file by other processes (friendctl,
// a text editor) and applies them on the caller's goroutine via Poll.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	log     *zap.Logger
	target  string

	changed chan struct{}
	done    chan struct{}
	started bool
	once    sync.Once
}

func NewWatcher(store *Store, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		store:   store,
		watcher: fw,
		log:     log,
		target:  filepath.Clean(store.Path()),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}, nil
}

// Start watches the directory holding the roster file. Saves replace the file
// by rename, so watching the file itself would lose track of it.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.started = true
	go w.run()
	return nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			select {
			case w.changed <- struct{}{}:
			default:
				// A reload is already pending; it will read the latest content.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("roster watcher", zap.Error(err))
		}
	}
}

// Poll reloads the store if the file changed since the last call. It never
// blocks and reports whether the roster contents changed.
func (w *Watcher) Poll() bool {
	select {
	case <-w.changed:
		return w.store.Reload()
	default:
		return false
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.watcher.Close()
		if w.started {
			<-w.done
		}
	})
	return err
}
