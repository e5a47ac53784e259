package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDigestStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.jsonc")
	os.WriteFile(path, []byte(`{"layer": "top"}`), 0644)

	first, err := Digest(path)
	if err != nil {
		t.Fatalf("Digest() error = %v", err)
	}
	second, err := Digest(path)
	if err != nil {
		t.Fatalf("Digest() error = %v", err)
	}
	if first != second {
		t.Errorf("Digest() not stable: %q vs %q", first, second)
	}
}

func TestDigestMissingFile(t *testing.T) {
	if _, err := Digest(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Digest() expected error for missing file")
	}
}

func TestReconcileMatchesByContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jsonc")
	b := filepath.Join(dir, "b.jsonc")
	installed := filepath.Join(dir, "config.jsonc")
	os.WriteFile(a, []byte("content-a"), 0644)
	os.WriteFile(b, []byte("content-b"), 0644)
	os.WriteFile(installed, []byte("content-b"), 0644)

	entries := []Entry{{Path: a, Name: "a"}, {Path: b, Name: "b"}}

	match, ok := Reconcile(installed, entries)
	if !ok {
		t.Fatal("Reconcile() reported no match")
	}
	if match.Name != "b" {
		t.Errorf("Reconcile() = %q, want %q", match.Name, "b")
	}
}

func TestReconcileMissOnEditedConfig(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jsonc")
	installed := filepath.Join(dir, "config.jsonc")
	os.WriteFile(a, []byte("content-a"), 0644)
	os.WriteFile(installed, []byte("hand edited"), 0644)

	if _, ok := Reconcile(installed, []Entry{{Path: a, Name: "a"}}); ok {
		t.Error("Reconcile() expected miss for edited config")
	}
}

func TestReconcileMissingInstalled(t *testing.T) {
	if _, ok := Reconcile(filepath.Join(t.TempDir(), "missing"), nil); ok {
		t.Error("Reconcile() expected miss for missing installed config")
	}
}
