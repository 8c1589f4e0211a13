package stublib

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// OverrideWatcher watches a directory of local stub overrides and
// invalidates the corresponding package in idx whenever a file under it
// changes, so a long-lived checker session picks up edits without a
// restart.
type OverrideWatcher struct {
	w   *fsnotify.Watcher
	idx *Index
	dir string
}

// WatchOverrides starts watching dir for changes and wires them into idx.
// Each overridden stub file is expected to be named <package-path>.pyi (or
// equivalent); the package path used for Invalidate is the file's base name
// without extension.
func WatchOverrides(dir string, idx *Index) (*OverrideWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	ow := &OverrideWatcher{w: w, idx: idx, dir: dir}
	go ow.loop()
	return ow, nil
}

func (ow *OverrideWatcher) loop() {
	for {
		select {
		case ev, ok := <-ow.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			ow.idx.Invalidate(packagePathFromOverrideFile(ev.Name))
		case _, ok := <-ow.w.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal: the index simply keeps serving
			// whatever was last loaded until the watcher recovers or the
			// process restarts.
		}
	}
}

func (ow *OverrideWatcher) Close() error { return ow.w.Close() }

func packagePathFromOverrideFile(name string) string {
	base := filepath.Base(name)
	return base[:len(base)-len(filepath.Ext(base))]
}
