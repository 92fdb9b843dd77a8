package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
// Parse errors are reported on Errors and the previous config stays active.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	preset  DifficultyPreset
	Configs chan DasherConfig
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory containing path. Editors often replace
// files instead of writing them, so watching the file itself misses saves.
// A non-empty preset is applied to every reloaded config, as on startup.
func NewWatcher(path string, preset DifficultyPreset) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    filepath.Clean(path),
		preset:  preset,
		Configs: make(chan DasherConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// settleDelay lets a burst of write events finish before the file is read.
const settleDelay = 100 * time.Millisecond

func (w *Watcher) run() {
	timer := time.NewTimer(settleDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(settleDelay)
		case <-timer.C:
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.send(w.Errors, err)
				continue
			}
			ApplyPreset(&cfg, w.preset)
			select {
			case <-w.Configs: // drop a stale config nobody picked up
			default:
			}
			select {
			case w.Configs <- cfg:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(w.Errors, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) send(ch chan error, err error) {
	select {
	case ch <- err:
	default:
	}
}
