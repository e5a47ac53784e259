package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// BarConfig holds settings for the supervised bar process.
type BarConfig struct {
	Process string `toml:"process"` // process name signalled on reload (default "waybar")
}

// WatchConfig holds liveness-supervision settings.
type WatchConfig struct {
	IntervalSeconds int `toml:"interval_seconds"`
}

// AppearanceConfig holds overrides applied by the `update` command.
// Environment variables of the same name take precedence.
type AppearanceConfig struct {
	IconSize     int `toml:"icon_size"`
	FontSize     int `toml:"font_size"`
	BorderRadius int `toml:"border_radius"`
}

// Config holds all waybarctl configuration.
type Config struct {
	Bar        BarConfig        `toml:"bar"`
	Watch      WatchConfig      `toml:"watch"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Bar: BarConfig{
			Process: "waybar",
		},
		Watch: WatchConfig{
			IntervalSeconds: 5,
		},
	}
}

// LoadConfig loads configuration from the config file, using defaults for
// missing values. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Bar.Process == "" {
		cfg.Bar.Process = "waybar"
	}
	if cfg.Watch.IntervalSeconds < 1 {
		cfg.Watch.IntervalSeconds = 5
	}

	return cfg, nil
}
