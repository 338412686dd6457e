package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// shaderProgram maps a changed file to the program it belongs to.
func shaderProgram(path string) (string, bool) {
	ext := filepath.Ext(path)
	if ext != ".vert" && ext != ".frag" {
		return "", false
	}
	return strings.TrimSuffix(filepath.Base(path), ext), true
}

func reloadEvent(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// watchShaders posts the program name of every edited shader in dir to out
// until ctx is done. Sends never block; names arriving while out is full are
// dropped. The returned channel is closed once the watcher has stopped.
func watchShaders(ctx context.Context, dir string, out chan<- string) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	slog.Info("watching shaders", "dir", dir)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				name, isShader := shaderProgram(ev.Name)
				if !isShader || !reloadEvent(ev) {
					continue
				}
				select {
				case out <- name:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("shader watcher", "err", err)
			}
		}
	}()
	return done, nil
}
