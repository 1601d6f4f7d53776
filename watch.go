package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

// settingsDebounce coalesces the burst of events editors produce on save.
const settingsDebounce = 200 * time.Millisecond

// watchSettings reloads and re-applies the settings whenever the file at path
// changes. The parent directory is watched so atomic replace-on-save works.
func (a *App) watchSettings(path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		w.Close()
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	debounced := debounce.New(settingsDebounce)
	reload := func() {
		if err := a.Reload(); err != nil {
			log.Printf("Apply after settings change failed: %v", err)
		}
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-a.quit:
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op == fsnotify.Chmod {
					continue
				}
				debounced(reload)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Settings watcher error: %v", err)
			}
		}
	}()
	return nil
}
