package input

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a keybind file when it changes on disk. Parsed bindings
// are sent to out; the owner of the Context applies them on its next Tick.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	namer   KeyNamer
	out     chan<- []BindingSpec
	log     *slog.Logger

	closeOnce sync.Once
	closeCh   chan struct{}
	done      sync.WaitGroup
}

// WatchKeybinds starts watching path. The parent directory is watched so
// editors that replace the file by renaming are picked up too.
func WatchKeybinds(path string, namer KeyNamer, out chan<- []BindingSpec, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    abs,
		namer:   namer,
		out:     out,
		log:     log.With("component", "keybind-watcher"),
		closeCh: make(chan struct{}),
	}
	w.done.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.done.Done()
	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	specs, err := ReadKeybinds(w.path, w.namer, w.log)
	if err != nil {
		w.log.Warn("keybind reload failed", "error", err)
		return
	}
	select {
	case w.out <- specs:
	case <-w.closeCh:
	default:
		w.log.Warn("keybind reload dropped, previous reload still pending")
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		w.done.Wait()
		err = w.watcher.Close()
	})
	return err
}
