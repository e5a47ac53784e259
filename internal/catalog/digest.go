package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Digest returns the hex-encoded sha256 of the file's contents.
func Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("digest %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("digest %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Reconcile finds the first entry whose content digest equals that of the
// installed configuration file. Comparison is byte-exact. It reports false
// when the installed file is unreadable or was edited out of recognition.
func Reconcile(installed string, entries []Entry) (Entry, bool) {
	want, err := Digest(installed)
	if err != nil {
		slog.Debug("installed config unreadable, skipping reconciliation", "path", installed, "err", err)
		return Entry{}, false
	}
	for _, e := range entries {
		got, err := Digest(e.Path)
		if err != nil {
			continue
		}
		if got == want {
			return e, true
		}
	}
	slog.Debug("no catalog entry matches installed config", "path", installed)
	return Entry{}, false
}
