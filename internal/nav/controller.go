// Package nav orchestrates layout switching: resolving the target layout,
// pairing it with a style, persisting state, installing the files waybar
// reads, and notifying the running bar.
package nav

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/cwel/waybarctl/internal/bar"
	"github.com/cwel/waybarctl/internal/catalog"
	"github.com/cwel/waybarctl/internal/config"
	"github.com/cwel/waybarctl/internal/state"
	"github.com/cwel/waybarctl/internal/style"
)

// ErrEmptyCatalog is returned when navigation is attempted with no
// discoverable layouts.
var ErrEmptyCatalog = errors.New("no layouts found in search path")

// Notifier tells the running bar process to pick up a new configuration.
type Notifier interface {
	Reload() error
}

// Controller performs set/next/prev navigation.
type Controller struct {
	catalog  *catalog.Catalog
	styles   *style.Resolver
	store    *state.Store
	paths    *config.Paths
	notifier Notifier
}

// New creates a Controller wired to the real bar process.
func New(paths *config.Paths, cfg *config.Config) *Controller {
	return &Controller{
		catalog:  catalog.New(paths.LayoutDirs),
		styles:   style.New(paths.StyleDirs),
		store:    state.New(paths.StateFile),
		paths:    paths,
		notifier: bar.New(cfg.Bar.Process),
	}
}

// SetNotifier replaces the reload notifier. Tests inject a stub here.
func (c *Controller) SetNotifier(n Notifier) {
	c.notifier = n
}

// Catalog exposes the layout catalog for read-only queries.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Current returns the persisted record, bootstrapping it from the installed
// configuration when absent or incomplete.
func (c *Controller) Current() (state.Record, error) {
	if err := c.store.EnsureBootstrapped(c.catalog, c.styles, c.paths.InstalledConfig); err != nil {
		return state.Record{}, err
	}
	return c.store.Load(), nil
}

// Set activates the layout matching ref, which may be a full path or a
// display name. An unknown ref fails with catalog.ErrNotFound and leaves
// the state file untouched.
func (c *Controller) Set(ref string) error {
	entry, err := c.catalog.Find(ref)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			if s := c.suggest(ref); s != "" {
				return fmt.Errorf("%w (did you mean %s?)", err, s)
			}
		}
		return err
	}
	return c.apply(entry)
}

// Next activates the layout after the current one, wrapping at the end.
func (c *Controller) Next() error {
	return c.step(1)
}

// Prev activates the layout before the current one, wrapping at the start.
func (c *Controller) Prev() error {
	return c.step(-1)
}

func (c *Controller) step(delta int) error {
	entries, err := c.catalog.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrEmptyCatalog
	}

	idx := c.currentIndex(entries)
	if idx < 0 {
		// State absent or stale; recover the position by matching the
		// installed configuration against the catalog by content.
		if match, ok := catalog.Reconcile(c.paths.InstalledConfig, entries); ok {
			for i, e := range entries {
				if e.Path == match.Path {
					idx = i
					break
				}
			}
		}
	}
	if idx < 0 {
		return fmt.Errorf("cannot determine current layout; run `waybarctl set` first")
	}

	n := len(entries)
	return c.apply(entries[(idx+delta+n)%n])
}

// currentIndex locates the persisted layout in the freshly listed catalog.
// Position is found by stored path, never by a cached index: the catalog
// may have changed since the record was written.
func (c *Controller) currentIndex(entries []catalog.Entry) int {
	current := c.store.Load().LayoutPath
	if current == "" {
		return -1
	}
	for i, e := range entries {
		if e.Path == current {
			return i
		}
	}
	return -1
}

// apply persists the record, installs the layout and style, and notifies
// the bar. State is written first: a failed install surfaces its own error,
// but a failed state write aborts before anything on disk changes.
func (c *Controller) apply(entry catalog.Entry) error {
	stylePath, ok := c.styles.Resolve(entry.Name)
	if !ok {
		stylePath = c.styles.Fallback()
	}

	rec := state.Record{LayoutPath: entry.Path, StylePath: stylePath}
	if err := c.store.Write(rec); err != nil {
		return err
	}

	if err := c.installLayout(entry.Path); err != nil {
		return err
	}
	if err := style.WriteInstalled(c.paths.InstalledStyle, stylePath, c.paths.ThemeCSS, c.paths.UserCSS); err != nil {
		return err
	}

	if err := c.notifier.Reload(); err != nil {
		slog.Warn("reload signal failed", "err", err)
	}

	slog.Info("layout activated", "name", entry.Name, "style", filepath.Base(stylePath))
	return nil
}

// installLayout copies the layout file byte-for-byte to the fixed path the
// bar process reads.
func (c *Controller) installLayout(src string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.paths.InstalledConfig), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(c.paths.InstalledConfig, data, 0644); err != nil {
		return fmt.Errorf("install layout: %w", err)
	}
	return nil
}

// suggest fuzzy-matches ref against catalog names for the error message.
func (c *Controller) suggest(ref string) string {
	entries, err := c.catalog.List()
	if err != nil || len(entries) == 0 {
		return ""
	}
	matches := fuzzy.Find(ref, catalog.Names(entries))
	if len(matches) == 0 {
		return ""
	}
	limit := 3
	if len(matches) < limit {
		limit = len(matches)
	}
	names := make([]string, limit)
	for i := 0; i < limit; i++ {
		names[i] = matches[i].Str
	}
	return strings.Join(names, ", ")
}
