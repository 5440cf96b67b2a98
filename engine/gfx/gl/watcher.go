package glbackend

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads shaders when their source files change on disk.
//
// File events arrive on a background goroutine, which only marks shaders as
// dirty. The GL work happens in Poll, which must be called from the render
// thread (once per frame is typical).
type Watcher struct {
	fw *fsnotify.Watcher

	mu      sync.Mutex
	files   map[string][]*Shader
	shaders map[*Shader][2]string // watched vertex/fragment paths
	dirty   map[*Shader]struct{}

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	w := &Watcher{
		fw:      fw,
		files:   make(map[string][]*Shader),
		shaders: make(map[*Shader][2]string),
		dirty:   make(map[*Shader]struct{}),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch registers s. s must have been compiled from files by a loader that
// is backed by a directory on disk. If s is later compiled from other files,
// the next Poll moves the watch to them.
func (w *Watcher) Watch(s *Shader) error {
	paths, err := sourcePaths(s)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.track(s, paths)
}

func sourcePaths(s *Shader) ([2]string, error) {
	var paths [2]string
	vert, frag := s.Sources()
	if vert == "" || frag == "" {
		return paths, fmt.Errorf("watch: %w from files", ErrNotCompiled)
	}
	if s.loader == nil {
		return paths, errors.New("watch: shader has no source loader")
	}
	for i, name := range []string{vert, frag} {
		p, ok := s.loader.Path(name)
		if !ok {
			return paths, fmt.Errorf("watch %q: source is not on disk", name)
		}
		paths[i] = filepath.Clean(p)
	}
	return paths, nil
}

// track points the file index at paths for s. Callers hold w.mu.
func (w *Watcher) track(s *Shader, paths [2]string) error {
	for _, p := range paths {
		// Watch the directory: editors often replace files on save, which
		// drops a watch placed on the file itself.
		if err := w.fw.Add(filepath.Dir(p)); err != nil {
			return fmt.Errorf("watch %q: %w", p, err)
		}
	}
	w.untrack(s)
	for _, p := range paths {
		w.files[p] = append(w.files[p], s)
	}
	w.shaders[s] = paths
	return nil
}

func (w *Watcher) untrack(s *Shader) {
	old, ok := w.shaders[s]
	if !ok {
		return
	}
	for _, p := range old {
		w.files[p] = slices.DeleteFunc(w.files[p], func(x *Shader) bool { return x == s })
		if len(w.files[p]) == 0 {
			delete(w.files, p)
		}
	}
	delete(w.shaders, s)
}

// refresh follows shaders that were recompiled from different files since
// they were registered. Callers hold w.mu.
func (w *Watcher) refresh() []error {
	var errs []error
	for s, old := range w.shaders {
		paths, err := sourcePaths(s)
		if err != nil {
			// Rebuilt from in-memory source: nothing left to watch.
			w.untrack(s)
			delete(w.dirty, s)
			continue
		}
		if paths == old {
			continue
		}
		if err := w.track(s, paths); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Poll reloads every shader whose sources changed since the last call.
// A shader that fails to reload keeps its previous program; the failures are
// returned joined.
func (w *Watcher) Poll() error {
	w.mu.Lock()
	errs := w.refresh()
	pending := make([]*Shader, 0, len(w.dirty))
	for s := range w.dirty {
		pending = append(pending, s)
	}
	clear(w.dirty)
	w.mu.Unlock()

	for _, s := range pending {
		vert, frag := s.Sources()
		if err := s.Reload(); err != nil {
			Logger().Warn("shader reload failed",
				slog.String("vertex", vert),
				slog.String("fragment", frag),
				slog.Any("err", err))
			errs = append(errs, err)
			continue
		}
		Logger().Info("shader reloaded",
			slog.String("vertex", vert),
			slog.String("fragment", frag))
	}
	return errors.Join(errs...)
}

// Close stops watching. Later calls are no-ops.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.markDirty(filepath.Clean(ev.Name))
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			Logger().Warn("shader watcher error", slog.Any("err", err))
		}
	}
}

func (w *Watcher) markDirty(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, s := range w.files[path] {
		w.dirty[s] = struct{}{}
	}
}
