package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher serves a catalog loaded from a JSON file and swaps it whenever the
// file is rewritten. A file that fails to load leaves the previous catalog
// in place.
type Watcher struct {
	path    string
	current atomic.Pointer[Catalog]
	fsw     *fsnotify.Watcher
	logger  zerolog.Logger
	reloads atomic.Int64
}

// NewWatcher loads path and starts watching its directory. Editors often
// replace files by rename, which a watch on the file itself would miss.
func NewWatcher(path string, logger zerolog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	c, err := LoadFile(abs)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{path: abs, fsw: fsw, logger: logger.With().Str("component", "catalog_watcher").Logger()}
	w.current.Store(c)
	return w, nil
}

func (w *Watcher) Current() *Catalog {
	return w.current.Load()
}

// Reloads reports how many successful reloads happened since start.
func (w *Watcher) Reloads() int64 {
	return w.reloads.Load()
}

// Reload reads the file again and swaps the catalog on success.
func (w *Watcher) Reload() error {
	c, err := LoadFile(w.path)
	if err != nil {
		return err
	}
	w.current.Store(c)
	w.reloads.Add(1)
	recipes, advice := c.Len()
	w.logger.Info().Int("recipes", recipes).Int("advice", advice).Msg("catalog reloaded")
	return nil
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := w.Reload(); err != nil {
					w.logger.Error().Err(err).Msg("catalog reload failed, keeping previous version")
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("file watcher error")
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
