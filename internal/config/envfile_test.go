package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSourceEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "environment")
	content := `# comment
WAYBARCTL_TEST_A=plain
WAYBARCTL_TEST_B='quoted value'

malformed line without equals
=no-key
WAYBARCTL_TEST_C=a=b
`
	os.WriteFile(path, []byte(content), 0644)
	defer os.Unsetenv("WAYBARCTL_TEST_A")
	defer os.Unsetenv("WAYBARCTL_TEST_B")
	defer os.Unsetenv("WAYBARCTL_TEST_C")

	SourceEnvFiles(path, filepath.Join(t.TempDir(), "missing"))

	if got := os.Getenv("WAYBARCTL_TEST_A"); got != "plain" {
		t.Errorf("A = %q, want %q", got, "plain")
	}
	if got := os.Getenv("WAYBARCTL_TEST_B"); got != "quoted value" {
		t.Errorf("B = %q, want %q", got, "quoted value")
	}
	if got := os.Getenv("WAYBARCTL_TEST_C"); got != "a=b" {
		t.Errorf("C = %q, want %q", got, "a=b")
	}
}
