package config

import (
	"bufio"
	"os"
	"strings"
)

// SourceEnvFiles loads KEY=value lines from each file into the process
// environment. Missing files are skipped; malformed lines are ignored.
// Values already present in the environment are overwritten, matching shell
// `source` semantics.
func SourceEnvFiles(paths ...string) {
	for _, path := range paths {
		sourceEnvFile(path)
	}
}

func sourceEnvFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		os.Setenv(key, strings.Trim(value, "'"))
	}
}
