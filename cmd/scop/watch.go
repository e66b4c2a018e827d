package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/scop/pkg/formats"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

func cmdWatch(w io.Writer, args []string, opts formats.Options) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: usage: scop watch <model>", errUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchModel(ctx, w, args[0], opts)
}

// watchModel prints info for path and again every time it, or a material
// library next to it, changes. It returns when ctx is done.
func watchModel(ctx context.Context, w io.Writer, path string, opts formats.Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Fail fast on paths that can never load.
	if _, err := formats.DetectFormat(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	reload := func() {
		m, err := formats.Load(path, opts)
		if err != nil {
			log.Warn("reload failed", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(w, "error: %v\n", err)
			return
		}
		printInfo(w, newSummary(path, m))
		fmt.Fprintln(w)
	}

	reload()
	log.Info("watching model", zap.String("path", path), zap.String("dir", dir))

	timer := time.NewTimer(watchDebounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event, path) {
				continue
			}
			log.Debug("model changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
			timer.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			reload()
		}
	}
}

// relevantEvent reports whether event touches the model or a material library.
func relevantEvent(event fsnotify.Event, path string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	if filepath.Clean(event.Name) == filepath.Clean(path) {
		return true
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".mtl")
}
