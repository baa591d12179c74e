package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// Library holds the current site document and swaps it on reload.
type Library struct {
	dir    string
	site   atomic.Pointer[Site]
	logger *logging.Logger
}

// NewLibrary loads the site from dir, or the builtin document when dir is empty.
func NewLibrary(dir string, logger *logging.Logger) (*Library, error) {
	if logger == nil {
		logger = logging.Default()
	}
	site, err := Load(dir)
	if err != nil {
		return nil, err
	}
	l := &Library{dir: dir, logger: logger}
	l.site.Store(site)
	return l, nil
}

// Site returns the current document.
func (l *Library) Site() *Site { return l.site.Load() }

// Reload re-reads the document. A bad document leaves the current one in place.
func (l *Library) Reload() error {
	site, err := Load(l.dir)
	if err != nil {
		return err
	}
	l.site.Store(site)
	return nil
}

// Watch reloads the document whenever site.yaml in the override directory
// changes, until ctx is done. It is a no-op for the builtin document.
// Reloaded reports each successful reload; it may be nil.
func (l *Library) Watch(ctx context.Context, reloaded chan<- struct{}) error {
	if l.dir == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: create watcher: %w", err)
	}
	// Watch the directory so editors that replace the file are still seen.
	if err := w.Add(l.dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("content: watch %s: %w", l.dir, err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != FileName {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
					continue
				}
				if err := l.Reload(); err != nil {
					l.logger.Warn("content: reload failed, keeping previous site", "error", err)
					continue
				}
				l.logger.Info("content: site reloaded", "dir", l.dir)
				if reloaded != nil {
					select {
					case reloaded <- struct{}{}:
					default:
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.logger.Warn("content: watcher error", "error", err)
			}
		}
	}()
	return nil
}
