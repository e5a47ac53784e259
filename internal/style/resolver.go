// Package style resolves the stylesheet paired with a layout and generates
// the installed style wrapper waybar reads.
package style

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// StyleExt is the extension of stylesheet files.
const StyleExt = ".css"

// defaultsName is the directory-level fallback stylesheet.
const defaultsName = "defaults" + StyleExt

// ErrUnresolved is returned when even the fallback stylesheet is missing.
// It surfaces at install time, not at resolution time.
var ErrUnresolved = errors.New("no stylesheet found")

// Resolver finds stylesheets across an ordered set of search directories.
// Earlier directories shadow later ones.
type Resolver struct {
	dirs []string
}

// New creates a Resolver over the given search directories.
func New(dirs []string) *Resolver {
	return &Resolver{dirs: dirs}
}

// Resolve returns the stylesheet for a layout name. The chain, stopping at
// the first hit:
//
//  1. a file named "{name}*" with the style extension, by directory
//     precedence then lexical order within a directory;
//  2. the same search with any "#tag" suffix stripped, so variant layouts
//     share their base style unless an override exists;
//  3. a literal defaults stylesheet in any directory, in precedence order.
//
// ok is false when nothing matched; callers then fall back to Fallback().
func (r *Resolver) Resolve(name string) (path string, ok bool) {
	if p, found := r.findPrefixed(name); found {
		return p, true
	}
	if base, _, tagged := strings.Cut(name, "#"); tagged && base != "" {
		if p, found := r.findPrefixed(base); found {
			return p, true
		}
	}
	for _, dir := range r.dirs {
		p := filepath.Join(dir, defaultsName)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// Fallback returns the defaults path under the first search directory. The
// file is not guaranteed to exist; install checks before use and surfaces
// ErrUnresolved when it is absent.
func (r *Resolver) Fallback() string {
	if len(r.dirs) == 0 {
		return defaultsName
	}
	return filepath.Join(r.dirs[0], defaultsName)
}

// findPrefixed searches each directory for files named "{name}*" with the
// style extension. The name may contain path separators.
func (r *Resolver) findPrefixed(name string) (string, bool) {
	prefix := filepath.Base(name)
	rel := filepath.Dir(name)

	for _, dir := range r.dirs {
		searchDir := dir
		if rel != "." {
			searchDir = filepath.Join(dir, rel)
		}
		entries, err := os.ReadDir(searchDir)
		if err != nil {
			continue
		}
		var matches []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			fn := e.Name()
			if strings.HasPrefix(fn, prefix) && filepath.Ext(fn) == StyleExt {
				matches = append(matches, fn)
			}
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return filepath.Join(searchDir, matches[0]), true
		}
	}
	return "", false
}
