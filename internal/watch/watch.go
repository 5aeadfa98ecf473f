// internal/watch/watch.go
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const debounceDuration = 500 * time.Millisecond

// Run rebuilds the inventory whenever one of the given files changes. It
// blocks until the watcher fails. Rebuild errors are logged, not fatal,
// so a broken edit can be fixed without restarting.
func Run(paths []string, rebuild func() error) error {
	if err := rebuild(); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch each file's PARENT directory. This handles editors that save
	// via rename-and-swap, which would otherwise detach the watch.
	targets := make(map[string]bool, len(paths))
	watchedDirs := make(map[string]bool)
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		} else if err != nil {
			return fmt.Errorf("could not stat path %s: %w", path, err)
		}

		targets[filepath.Clean(path)] = true
		dir := filepath.Dir(filepath.Clean(path))
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("could not watch %s: %w", dir, err)
			}
			log.Info("Watching", "dir", dir)
			watchedDirs[dir] = true
		}
	}

	var lastBuildTime time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if time.Since(lastBuildTime) > debounceDuration {
					time.Sleep(100 * time.Millisecond)

					log.Info("Change detected, rebuilding", "file", event.Name)
					if err := rebuild(); err != nil {
						log.Error("Rebuild failed", "err", err)
					} else {
						log.Info("Rebuild complete")
					}
					lastBuildTime = time.Now()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("Watcher error", "err", err)
		}
	}
}
