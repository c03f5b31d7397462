// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"log/slog"
	"sync"

	"cogentcore.org/shade/base/logx"
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the given theme file and reloads the theme
// whenever the file is written, calling onReload (if non-nil) after
// each successful reload. A reload that fails leaves the previous
// contents in place. It returns a stop function that ends the watch.
// The reload runs on the watcher goroutine; callers that read the
// theme from other goroutines must synchronize externally.
func (th *Theme) Watch(filename string, onReload func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	done := make(chan struct{})
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := th.Open(filename); err != nil {
					slog.Error("error reloading theme file: " + err.Error())
					continue
				}
				if logx.UserLevel <= slog.LevelInfo {
					slog.Info("reloaded theme file", "file", filename, "theme", th.Name)
				}
				if onReload != nil {
					onReload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("theme file watcher error: " + err.Error())
			}
		}
	}()
	err = watcher.Add(filename)
	if err != nil {
		close(done)
		return nil, err
	}
	stop := sync.OnceFunc(func() { close(done) })
	return stop, nil
}
