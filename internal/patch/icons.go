// Package patch applies appearance tweaks to the installed waybar files:
// icon sizes in the module JSON fragments and border radii in the dynamic
// stylesheet.
package patch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cwel/waybarctl/internal/config"
)

// IconSize determines the icon size to apply. Environment overrides win
// over the config file: WAYBAR_ICON_SIZE directly, WAYBAR_FONT_SIZE plus
// 16, FONT_SIZE plus 6, then the configured value, then 16.
func IconSize(cfg *config.Config) int {
	if v, ok := envInt("WAYBAR_ICON_SIZE"); ok {
		return v
	}
	if v, ok := envInt("WAYBAR_FONT_SIZE"); ok {
		return v + 16
	}
	if v, ok := envInt("FONT_SIZE"); ok {
		return v + 6
	}
	if cfg != nil && cfg.Appearance.IconSize > 0 {
		return cfg.Appearance.IconSize
	}
	return 16
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// UpdateIconSizes sets icon-size and tooltip-icon-size in every module
// fragment under modulesDir. The privacy module renders its icons smaller,
// so privacy.json gets size minus 6.
func UpdateIconSizes(modulesDir string, size int) error {
	files, err := filepath.Glob(filepath.Join(modulesDir, "*.json"))
	if err != nil {
		return fmt.Errorf("list modules: %w", err)
	}
	if files == nil {
		slog.Debug("no module fragments to patch", "dir", modulesDir)
		return nil
	}

	for _, file := range files {
		moduleSize := size
		if filepath.Base(file) == "privacy.json" {
			moduleSize = size - 6
		}
		if err := updateJSONFile(file, moduleSize, "icon-size", "tooltip-icon-size"); err != nil {
			return err
		}
	}
	return nil
}

// updateJSONFile rewrites every occurrence of the given keys, at any
// nesting depth, with the new value.
func updateJSONFile(path string, value int, keys ...string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read module %s: %w", path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse module %s: %w", path, err)
	}

	for _, key := range keys {
		setKeyDeep(doc, key, value)
	}

	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal module %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("write module %s: %w", path, err)
	}
	return nil
}

// setKeyDeep replaces key wherever it already appears; it never adds the
// key to objects that lack it.
func setKeyDeep(doc any, key string, value any) {
	switch node := doc.(type) {
	case map[string]any:
		for k, v := range node {
			if k == key {
				node[k] = value
				continue
			}
			setKeyDeep(v, key, value)
		}
	case []any:
		for _, item := range node {
			setKeyDeep(item, key, value)
		}
	}
}
