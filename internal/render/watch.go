package render

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch re-parses the template directory whenever a file in it changes.
// It returns a stop function and is a no-op for embedded templates.
func (r *Renderer) Watch(log *zap.Logger) (func() error, error) {
	if r.dir == "" {
		return func() error { return nil }, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(r.dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if err := r.Reload(); err != nil {
					log.Warn("template reload failed", zap.Error(err))
					continue
				}
				log.Debug("templates reloaded", zap.String("file", event.Name))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("template watcher error", zap.Error(err))
			}
		}
	}()

	return watcher.Close, nil
}
