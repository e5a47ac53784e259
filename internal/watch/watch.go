// Package watch supervises the bar process: it respawns it when it dies
// and reloads it when the theme or installed configuration changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cwel/waybarctl/internal/bar"
	"github.com/cwel/waybarctl/internal/config"
)

// Options configures the supervision loop.
type Options struct {
	Interval time.Duration
	Paths    *config.Paths
	Bar      *bar.Client
}

// Run blocks until ctx is cancelled, polling bar liveness at the configured
// interval. Cancellation kills the bar and returns; nothing else is held.
func Run(ctx context.Context, opts Options) error {
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Second
	}

	if !opts.Bar.Running() {
		if err := opts.Bar.Start(); err != nil {
			return err
		}
		slog.Info("bar started", "process", opts.Bar.Process())
	}

	reload := watchStyleFiles(ctx, opts.Paths)

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return opts.Bar.Kill()
		case <-ticker.C:
			if !opts.Bar.Running() {
				slog.Warn("bar died, respawning", "process", opts.Bar.Process())
				if err := opts.Bar.Start(); err != nil {
					slog.Error("respawn failed", "err", err)
				}
			}
		case <-reload:
			slog.Info("style change detected, reloading bar")
			if err := opts.Bar.Reload(); err != nil {
				slog.Warn("reload signal failed", "err", err)
			}
		}
	}
}

// watchStyleFiles signals on the returned channel whenever the theme, user
// overrides, or installed files change. Watching is best-effort: if the
// watcher cannot be created the channel simply never fires.
func watchStyleFiles(ctx context.Context, paths *config.Paths) <-chan struct{} {
	changes := make(chan struct{}, 1)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("file watcher unavailable", "err", err)
		return changes
	}

	watched := map[string]bool{
		paths.ThemeCSS:        true,
		paths.UserCSS:         true,
		paths.InstalledConfig: true,
	}
	// Watch the parent directories: editors replace files by rename, which
	// drops a direct file watch.
	dirs := map[string]bool{}
	for f := range watched {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			slog.Debug("cannot watch dir", "dir", dir, "err", err)
		}
	}

	go func() {
		defer watcher.Close()
		var debounce *time.Timer
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !watched[event.Name] {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(200*time.Millisecond, func() {
					select {
					case changes <- struct{}{}:
					default:
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("watcher error", "err", err)
			}
		}
	}()

	return changes
}
