package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"regexp"

	"github.com/cwel/waybarctl/internal/config"
)

var ptValue = regexp.MustCompile(`\d+pt`)

// BorderRadius determines the border radius to apply: the
// WAYBAR_BORDER_RADIUS environment variable, then the config file, then
// the compositor's rounding setting, floored at 2.
func BorderRadius(cfg *config.Config) int {
	radius := 0
	if v, ok := envInt("WAYBAR_BORDER_RADIUS"); ok {
		radius = v
	} else if cfg != nil && cfg.Appearance.BorderRadius > 0 {
		radius = cfg.Appearance.BorderRadius
	} else if v, ok := hyprctlRounding(); ok {
		radius = v
	}
	if radius < 2 {
		radius = 2
	}
	return radius
}

// hyprctlRounding queries hyprland's decoration rounding. The compositor
// not running, or not being hyprland, is a silent miss.
func hyprctlRounding() (int, bool) {
	out, err := exec.Command("hyprctl", "getoption", "decoration:rounding", "-j").Output()
	if err != nil {
		slog.Debug("hyprctl query failed", "err", err)
		return 0, false
	}
	var result struct {
		Int int `json:"int"`
	}
	if err := json.Unmarshal(out, &result); err != nil {
		slog.Debug("hyprctl output unparseable", "err", err)
		return 0, false
	}
	return result.Int, true
}

// UpdateBorderRadius replaces every {number}pt occurrence in the dynamic
// stylesheet with the new radius. A missing stylesheet is skipped.
func UpdateBorderRadius(path string, radius int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no dynamic stylesheet to patch", "path", path)
			return nil
		}
		return fmt.Errorf("read stylesheet: %w", err)
	}

	updated := ptValue.ReplaceAll(data, []byte(fmt.Sprintf("%dpt", radius)))
	if bytes.Equal(updated, data) {
		return nil
	}
	if err := os.WriteFile(path, updated, 0644); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}
