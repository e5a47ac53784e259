// Package state persists the active layout/style record in a line-oriented
// KEY=value file shared with other subsystems.
package state

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cwel/waybarctl/internal/catalog"
	"github.com/cwel/waybarctl/internal/style"
)

// Managed keys. Every other line in the state file belongs to someone else
// and is preserved verbatim.
const (
	KeyLayoutPath = "WAYBAR_LAYOUT_PATH"
	KeyStylePath  = "WAYBAR_STYLE_PATH"
)

// Record is the persisted pointer to the active layout and style.
type Record struct {
	LayoutPath string
	StylePath  string
}

// Complete reports whether both managed keys are present.
func (r Record) Complete() bool {
	return r.LayoutPath != "" && r.StylePath != ""
}

// Store reads and writes the state file.
type Store struct {
	path string
}

// New creates a Store for the given state file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the record. A missing or unreadable file is treated as no
// state, never as an error; navigation bootstraps from there.
func (s *Store) Load() Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("state file unreadable, treating as empty", "path", s.path, "err", err)
		}
		return Record{}
	}

	var rec Record
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case KeyLayoutPath:
			rec.LayoutPath = value
		case KeyStylePath:
			rec.StylePath = value
		}
	}
	return rec
}

// Write rewrites the state file. Lines belonging to other subsystems are
// preserved verbatim and in place; the managed keys are updated where they
// stand or appended. Empty record fields leave their key untouched. The
// file is committed with a temp-file rename so concurrent invocations never
// observe a torn record.
func (s *Store) Write(rec Record) error {
	var lines []string
	if data, err := os.ReadFile(s.path); err == nil {
		lines = strings.Split(string(data), "\n")
		// Drop the trailing empty element from a final newline.
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = lines[:n-1]
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read state file: %w", err)
	}

	sawLayout, sawStyle := false, false
	for i, line := range lines {
		key, _, ok := strings.Cut(line, "=")
		if !ok || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		switch key {
		case KeyLayoutPath:
			sawLayout = true
			if rec.LayoutPath != "" {
				lines[i] = KeyLayoutPath + "=" + rec.LayoutPath
			}
		case KeyStylePath:
			sawStyle = true
			if rec.StylePath != "" {
				lines[i] = KeyStylePath + "=" + rec.StylePath
			}
		}
	}
	if !sawLayout && rec.LayoutPath != "" {
		lines = append(lines, KeyLayoutPath+"="+rec.LayoutPath)
	}
	if !sawStyle && rec.StylePath != "" {
		lines = append(lines, KeyStylePath+"="+rec.StylePath)
	}

	data := strings.Join(lines, "\n") + "\n"
	if err := saveAtomic(s.path, []byte(data), 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// EnsureBootstrapped reconciles the record with whatever configuration is
// already installed when the record is absent or incomplete. A layout is
// recognized by content digest; if none matches, the missing keys stay
// missing rather than being guessed. Idempotent.
func (s *Store) EnsureBootstrapped(cat *catalog.Catalog, res *style.Resolver, installedConfig string) error {
	rec := s.Load()
	if rec.Complete() {
		return nil
	}

	entries, err := cat.List()
	if err != nil {
		return err
	}

	match, ok := catalog.Reconcile(installedConfig, entries)
	if !ok {
		return nil
	}

	if rec.LayoutPath == "" {
		rec.LayoutPath = match.Path
	}
	if rec.StylePath == "" {
		stylePath, ok := res.Resolve(match.Name)
		if !ok {
			stylePath = res.Fallback()
		}
		rec.StylePath = stylePath
	}

	slog.Debug("bootstrapped state from installed config", "layout", rec.LayoutPath, "style", rec.StylePath)
	return s.Write(rec)
}
