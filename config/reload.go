// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package config

import (
	"github.com/aristanetworks/fsnotify"

	"github.com/aristanetworks/jtable/logger"
)

// Watcher reloads the config file whenever it changes on disk and hands
// the new Config to onChange. Parse errors are logged and otherwise
// ignored, so a typo in a hand-edited file does not take the watcher
// itself down.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	log      logger.Logger
	onChange func(Config)
	done     chan struct{}
}

// Watch starts watching path for changes, invoking onChange with each
// successfully-parsed reload. Call Close to stop.
func Watch(path string, log logger.Logger, onChange func(Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{path: path, fw: fw, log: log, onChange: onChange, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Errorf("config: reload of %s failed: %v", w.path, err)
				continue
			}
			w.onChange(cfg)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Errorf("config: watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
