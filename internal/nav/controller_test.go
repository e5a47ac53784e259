package nav

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwel/waybarctl/internal/catalog"
	"github.com/cwel/waybarctl/internal/config"
	"github.com/cwel/waybarctl/internal/state"
)

type stubNotifier struct {
	reloads int
}

func (s *stubNotifier) Reload() error {
	s.reloads++
	return nil
}

type fixture struct {
	ctl      *Controller
	notifier *stubNotifier
	paths    *config.Paths
	store    *state.Store
	layouts  map[string]string // name -> path
}

func newFixture(t *testing.T, layoutNames ...string) *fixture {
	t.Helper()
	root := t.TempDir()
	layoutDir := filepath.Join(root, "layouts")
	styleDir := filepath.Join(root, "styles")
	os.MkdirAll(layoutDir, 0755)
	os.MkdirAll(styleDir, 0755)

	layouts := make(map[string]string)
	for _, name := range layoutNames {
		path := filepath.Join(layoutDir, name+".jsonc")
		os.WriteFile(path, []byte("layout "+name), 0644)
		layouts[name] = path
		base := name
		if i := strings.IndexByte(base, '#'); i >= 0 {
			base = base[:i]
		}
		os.WriteFile(filepath.Join(styleDir, base+".css"), []byte("* {}"), 0644)
	}

	paths := &config.Paths{
		LayoutDirs:      []string{layoutDir},
		StyleDirs:       []string{styleDir},
		StateFile:       filepath.Join(root, "state"),
		InstalledConfig: filepath.Join(root, "config.jsonc"),
		InstalledStyle:  filepath.Join(root, "style.css"),
		ThemeCSS:        filepath.Join(root, "theme.css"),
		UserCSS:         filepath.Join(root, "user-style.css"),
	}

	notifier := &stubNotifier{}
	ctl := New(paths, config.DefaultConfig())
	ctl.SetNotifier(notifier)

	return &fixture{
		ctl:      ctl,
		notifier: notifier,
		paths:    paths,
		store:    state.New(paths.StateFile),
		layouts:  layouts,
	}
}

func (f *fixture) currentLayout(t *testing.T) string {
	t.Helper()
	return f.store.Load().LayoutPath
}

func TestSetByName(t *testing.T) {
	f := newFixture(t, "a", "b")

	if err := f.ctl.Set("b"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if got := f.currentLayout(t); got != f.layouts["b"] {
		t.Errorf("current layout = %q, want %q", got, f.layouts["b"])
	}
	if f.notifier.reloads != 1 {
		t.Errorf("reloads = %d, want 1", f.notifier.reloads)
	}

	installed, err := os.ReadFile(f.paths.InstalledConfig)
	if err != nil {
		t.Fatalf("installed config not written: %v", err)
	}
	if string(installed) != "layout b" {
		t.Errorf("installed config = %q, want byte-identical copy", installed)
	}
}

func TestSetByPath(t *testing.T) {
	f := newFixture(t, "a", "b")

	if err := f.ctl.Set(f.layouts["a"]); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := f.currentLayout(t); got != f.layouts["a"] {
		t.Errorf("current layout = %q, want %q", got, f.layouts["a"])
	}
}

func TestSetNotFoundLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, "a", "b")
	os.WriteFile(f.paths.StateFile, []byte("OTHER=1\nWAYBAR_LAYOUT_PATH="+f.layouts["a"]+"\n"), 0644)
	before, _ := os.ReadFile(f.paths.StateFile)

	err := f.ctl.Set("nonexistent")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("Set() error = %v, want ErrNotFound", err)
	}

	after, _ := os.ReadFile(f.paths.StateFile)
	if string(before) != string(after) {
		t.Errorf("state file changed on failed Set:\n%s\nvs\n%s", before, after)
	}
	if f.notifier.reloads != 0 {
		t.Errorf("reloads = %d, want 0", f.notifier.reloads)
	}
}

func TestSetNotFoundSuggests(t *testing.T) {
	f := newFixture(t, "navbar", "sidebar")

	err := f.ctl.Set("navbr")
	if err == nil || !strings.Contains(err.Error(), "navbar") {
		t.Errorf("Set() error = %v, want suggestion containing %q", err, "navbar")
	}
}

func TestNextAdvancesInCatalogOrder(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	f.ctl.Set("b")

	if err := f.ctl.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got := f.currentLayout(t); got != f.layouts["c"] {
		t.Errorf("after Next from b: %q, want c", got)
	}
}

func TestNextWrapsAround(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	f.ctl.Set("c")

	if err := f.ctl.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got := f.currentLayout(t); got != f.layouts["a"] {
		t.Errorf("after Next from c: %q, want a (wraparound)", got)
	}
}

func TestPrevWrapsAround(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	f.ctl.Set("a")

	if err := f.ctl.Prev(); err != nil {
		t.Fatalf("Prev() error = %v", err)
	}
	if got := f.currentLayout(t); got != f.layouts["c"] {
		t.Errorf("after Prev from a: %q, want c (wraparound)", got)
	}
}

func TestNextThenPrevRoundTrip(t *testing.T) {
	f := newFixture(t, "a", "b", "c", "d")

	for _, start := range []string{"a", "b", "c", "d"} {
		f.ctl.Set(start)
		if err := f.ctl.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if err := f.ctl.Prev(); err != nil {
			t.Fatalf("Prev() error = %v", err)
		}
		if got := f.currentLayout(t); got != f.layouts[start] {
			t.Errorf("round trip from %s landed on %q", start, got)
		}
	}
}

func TestNextFullCycleVisitsEveryEntry(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	f.ctl.Set("a")

	visited := make(map[string]bool)
	for i := 0; i < 3; i++ {
		if err := f.ctl.Next(); err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		visited[f.currentLayout(t)] = true
	}

	if len(visited) != 3 {
		t.Errorf("full cycle visited %d distinct entries, want 3", len(visited))
	}
	if got := f.currentLayout(t); got != f.layouts["a"] {
		t.Errorf("full cycle ended on %q, want start", got)
	}
}

func TestSingleEntryCatalogIsIdentity(t *testing.T) {
	f := newFixture(t, "only")
	f.ctl.Set("only")

	if err := f.ctl.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got := f.currentLayout(t); got != f.layouts["only"] {
		t.Errorf("Next on single-entry catalog moved to %q", got)
	}

	if err := f.ctl.Prev(); err != nil {
		t.Fatalf("Prev() error = %v", err)
	}
	if got := f.currentLayout(t); got != f.layouts["only"] {
		t.Errorf("Prev on single-entry catalog moved to %q", got)
	}
}

func TestEmptyCatalogFails(t *testing.T) {
	f := newFixture(t)

	if err := f.ctl.Next(); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Next() error = %v, want ErrEmptyCatalog", err)
	}
	if err := f.ctl.Prev(); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Prev() error = %v, want ErrEmptyCatalog", err)
	}
}

func TestNextBootstrapsFromInstalledConfig(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	// No state file, but the installed config matches b by content.
	os.WriteFile(f.paths.InstalledConfig, []byte("layout b"), 0644)

	if err := f.ctl.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got := f.currentLayout(t); got != f.layouts["c"] {
		t.Errorf("after bootstrap+Next: %q, want c", got)
	}
}

func TestNextWithStaleStateRebootstraps(t *testing.T) {
	f := newFixture(t, "a", "b", "c")
	os.WriteFile(f.paths.InstalledConfig, []byte("layout a"), 0644)
	// The recorded layout no longer exists in the catalog.
	os.WriteFile(f.paths.StateFile, []byte("WAYBAR_LAYOUT_PATH=/gone/x.jsonc\nWAYBAR_STYLE_PATH=/gone/x.css\n"), 0644)

	if err := f.ctl.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	// Position recovered from the installed config (layout a), so Next
	// lands on b.
	if got := f.currentLayout(t); got != f.layouts["b"] {
		t.Errorf("after stale-state Next: %q, want b", got)
	}
}

func TestNextUnrecoverableWithoutInstalledConfig(t *testing.T) {
	f := newFixture(t, "a", "b")
	// No state and no installed config to reconcile against.

	if err := f.ctl.Next(); err == nil {
		t.Error("Next() expected error with no state and no installed config")
	}
}

func TestApplyWritesStyleWrapper(t *testing.T) {
	f := newFixture(t, "a")

	if err := f.ctl.Set("a"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, err := os.ReadFile(f.paths.InstalledStyle)
	if err != nil {
		t.Fatalf("installed style not written: %v", err)
	}
	content := string(data)
	iStyle := strings.Index(content, "a.css")
	iTheme := strings.Index(content, f.paths.ThemeCSS)
	iUser := strings.Index(content, f.paths.UserCSS)
	if iStyle < 0 || iTheme < 0 || iUser < 0 {
		t.Fatalf("wrapper missing imports:\n%s", content)
	}
	if !(iStyle < iTheme && iTheme < iUser) {
		t.Errorf("wrapper import order wrong:\n%s", content)
	}
}

func TestVariantSharesBaseStyle(t *testing.T) {
	f := newFixture(t, "bar#compact", "bar#full")

	if err := f.ctl.Set("bar#compact"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	rec := f.store.Load()
	if filepath.Base(rec.StylePath) != "bar.css" {
		t.Errorf("StylePath = %q, want shared bar.css", rec.StylePath)
	}
}

func TestCurrentBootstraps(t *testing.T) {
	f := newFixture(t, "a", "b")
	os.WriteFile(f.paths.InstalledConfig, []byte("layout a"), 0644)

	rec, err := f.ctl.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if rec.LayoutPath != f.layouts["a"] {
		t.Errorf("Current().LayoutPath = %q, want a", rec.LayoutPath)
	}
}
