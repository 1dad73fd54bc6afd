// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the script in the given file once, and again every
// time the file is written or re-created, until ctx is done. It watches
// the directory of the file, so that editors that save by renaming a new
// file into place are seen. Errors opening the script are passed to fn.
func Watch(ctx context.Context, filename string, fn func(sc *Script, err error)) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("replay: creating watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("replay: watching %s: %w", filename, err)
	}

	fn(Open(abs))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Debug("replay script changed", "file", ev.Name, "op", ev.Op)
			fn(Open(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("replay watcher", "err", err)
		}
	}
}
