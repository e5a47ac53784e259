package config

import (
	"os"
	"path/filepath"
)

// Paths holds every filesystem location waybarctl touches. It is built once
// at startup and passed into the packages that need it, so nothing below the
// CLI reads the process environment directly and tests can inject temp
// directories.
type Paths struct {
	// LayoutDirs and StyleDirs are ordered highest-precedence first.
	// Directories that do not exist are skipped during discovery.
	LayoutDirs []string
	StyleDirs  []string

	// StateFile is the shared KEY=value state record. Other subsystems keep
	// their own keys in the same file; waybarctl only manages its two.
	StateFile string

	// InstalledConfig and InstalledStyle are the fixed paths waybar reads.
	InstalledConfig string
	InstalledStyle  string

	// ThemeCSS and UserCSS are imported by the generated InstalledStyle
	// wrapper, after the resolved style and in that order.
	ThemeCSS string
	UserCSS  string

	// ModulesDir holds the per-widget JSON fragments patched by `update`.
	ModulesDir string

	// BorderRadiusCSS is the dynamic stylesheet rewritten by `update`.
	BorderRadiusCSS string

	// EnvFiles are sourced into the environment before anything else runs.
	EnvFiles []string

	ConfigFile string
	LogFile    string
	RunDir     string
}

// DefaultPaths builds the standard XDG-based path set.
func DefaultPaths() *Paths {
	waybarDir := filepath.Join(configHome(), "waybar")
	if dir := os.Getenv("WAYBARCTL_CONFIG_DIR"); dir != "" {
		waybarDir = dir
	}

	dataDir := filepath.Join(dataHome(), "waybar")
	if dir := os.Getenv("WAYBARCTL_DATA_DIR"); dir != "" {
		dataDir = dir
	}

	stateFile := filepath.Join(stateHome(), "waybarctl", "state")
	if f := os.Getenv("WAYBARCTL_STATE_FILE"); f != "" {
		stateFile = f
	}

	return &Paths{
		LayoutDirs: dedup([]string{
			filepath.Join(waybarDir, "layouts"),
			filepath.Join(dataDir, "layouts"),
			"/usr/local/share/waybar/layouts",
			"/usr/share/waybar/layouts",
		}),
		StyleDirs: dedup([]string{
			filepath.Join(waybarDir, "styles"),
			filepath.Join(dataDir, "styles"),
			"/usr/local/share/waybar/styles",
			"/usr/share/waybar/styles",
		}),
		StateFile:       stateFile,
		InstalledConfig: filepath.Join(waybarDir, "config.jsonc"),
		InstalledStyle:  filepath.Join(waybarDir, "style.css"),
		ThemeCSS:        filepath.Join(waybarDir, "theme.css"),
		UserCSS:         filepath.Join(waybarDir, "user-style.css"),
		ModulesDir:      filepath.Join(waybarDir, "modules"),
		BorderRadiusCSS: filepath.Join(waybarDir, "styles", "dynamic", "border-radius.css"),
		EnvFiles: []string{
			filepath.Join(runtimeDir(), "waybarctl", "environment"),
			stateFile,
		},
		ConfigFile: filepath.Join(configHome(), "waybarctl", "config.toml"),
		LogFile:    filepath.Join(dataHome(), "waybarctl", "waybarctl.log"),
		RunDir:     filepath.Join(runtimeDir(), "waybarctl"),
	}
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share")
}

func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state")
}

func runtimeDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".runtime")
}

func dedup(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	var out []string
	for _, d := range dirs {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
