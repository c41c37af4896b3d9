package utils

import (
	"fmt"
	"path"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

func watcherLoop(filePath string, settle time.Duration, watcher *fsnotify.Watcher, f func()) {
	var lastEvent time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			log.WithFields(log.Fields{
				"name": event.Name,
				"op":   event.Op,
			}).Debug("File watcher")
			if path.Clean(event.Name) == path.Clean(filePath) &&
				(event.Op&fsnotify.Write != 0 || event.Op&fsnotify.Create != 0) &&
				time.Since(lastEvent) >= settle {
				lastEvent = time.Now()
				f()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithField("error", fmt.Sprint(err)).Error("File watcher")
		}
	}
}

// NewFileWatcher calls f when filePath is written or created, at most once per
// settle interval. Close the returned watcher to stop.
func NewFileWatcher(filePath string, settle time.Duration, f func()) (*fsnotify.Watcher, error) {
	var watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	go watcherLoop(filePath, settle, watcher, f)
	err = watcher.Add(path.Dir(filePath))
	return watcher, err
}
