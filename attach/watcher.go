package attach

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/excerptkit/excerpt/debounce"
)

// Watcher reloads an attachment config file when it changes on disk and
// hands the parsed result to a callback. Reloads are debounced so editors
// that write in several bursts produce one reload.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	deb      *debounce.Debouncer
	onChange func(*Config)
	done     chan struct{}
}

// Watch starts watching the config file at path. onChange runs after each
// successful reload; parse failures are skipped so a half-written file
// never tears down existing bindings.
func Watch(path string, onChange func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory, not the file: editors commonly replace the
	// file, which drops a direct watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	w := &Watcher{
		path:     path,
		fw:       fw,
		deb:      debounce.New(0),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Path returns the watched config file path.
func (w *Watcher) Path() string { return w.path }

// Close stops watching and cancels any pending reload.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	w.deb.Stop()
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)

	base := filepath.Base(w.path)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.deb.Trigger(w.reload)

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Usually recoverable, keep watching.
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		return
	}
	w.onChange(cfg)
}
