// Package catalog discovers layout definition files across the configured
// search directories.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// LayoutExt is the extension of layout definition files.
const LayoutExt = ".jsonc"

// ErrNotFound is returned when a requested layout matches no catalog entry.
var ErrNotFound = errors.New("layout not found")

// Entry is a discovered layout. Name is the path relative to the search
// directory that contains it, extension stripped. A `#tag` suffix in the
// file name (e.g. "bar#compact") marks a variant that shares a base style.
type Entry struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
}

// BaseName returns the entry name with any `#tag` suffix removed.
func (e Entry) BaseName() string {
	if i := strings.IndexByte(e.Name, '#'); i >= 0 {
		return e.Name[:i]
	}
	return e.Name
}

// Catalog lists layouts under an ordered set of search directories.
// Earlier directories take precedence when deriving display names.
type Catalog struct {
	dirs []string
}

// New creates a Catalog over the given search directories.
func New(dirs []string) *Catalog {
	return &Catalog{dirs: dirs}
}

// List walks every search directory recursively and returns all layout
// files, sorted by path and de-duplicated by path. Directories that do not
// exist are skipped. An empty catalog is valid.
func (c *Catalog) List() ([]Entry, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, dir := range c.dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Missing or unreadable search roots are optional.
				return nil
			}
			if d.IsDir() || filepath.Ext(path) != LayoutExt {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
	}

	sort.Strings(paths)

	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		entries = append(entries, Entry{Path: path, Name: c.displayName(path)})
	}
	return entries, nil
}

// displayName derives the entry name relative to the first search directory
// containing the path, with the layout extension stripped.
func (c *Catalog) displayName(path string) string {
	name := path
	for _, dir := range c.dirs {
		rel, err := filepath.Rel(dir, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			name = rel
			break
		}
	}
	return strings.TrimSuffix(name, LayoutExt)
}

// Find resolves a layout by full path or display name. The first matching
// entry wins; a miss returns ErrNotFound.
func (c *Catalog) Find(ref string) (Entry, error) {
	entries, err := c.List()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Path == ref || e.Name == ref {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// Names returns the display names of all entries, in catalog order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
