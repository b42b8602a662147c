package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	LogLevel string       `toml:"log_level"`
	Scroll   ScrollConfig `toml:"scroll"`
	UI       UIConfig     `toml:"ui"`
}

// ScrollConfig tunes the animation engine.
type ScrollConfig struct {
	DurationMs    int     `toml:"duration_ms"`
	FPS           int     `toml:"fps"`
	Margin        int     `toml:"margin"`
	Easing        string  `toml:"easing"` // "sine", "ease-out" or "spring"
	SineSteepness float64 `toml:"sine_steepness"`
	SineBias      float64 `toml:"sine_bias"`
	EaseOutSlope  float64 `toml:"ease_out_slope"`
	LockCursor    bool    `toml:"lock_cursor"`
}

// UIConfig tunes the viewer's appearance.
type UIConfig struct {
	FoldIcon    string `toml:"fold_icon"`
	CursorColor string `toml:"cursor_color"`
	FoldColor   string `toml:"fold_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Scroll: ScrollConfig{
			DurationMs:    250,
			FPS:           144,
			Margin:        2,
			Easing:        "sine",
			SineSteepness: 1,
			SineBias:      0,
			EaseOutSlope:  3,
		},
		UI: UIConfig{
			FoldIcon:    "▸",
			CursorColor: "#2A2B3D",
			FoldColor:   "#3AC4BA",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "viewtween", "config.toml")
}

// Load reads the config at path, returning defaults when the file does not
// exist. Unknown keys are ignored; invalid values are clamped by Normalize.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg.Normalize(), nil
}

// Save writes the config to path, creating parent directories.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Normalize clamps out-of-range values back to their defaults.
func (c Config) Normalize() Config {
	def := Default()
	if c.Scroll.DurationMs <= 0 {
		c.Scroll.DurationMs = def.Scroll.DurationMs
	}
	if c.Scroll.FPS <= 0 || c.Scroll.FPS > 500 {
		c.Scroll.FPS = def.Scroll.FPS
	}
	if c.Scroll.Margin < 0 {
		c.Scroll.Margin = def.Scroll.Margin
	}
	switch c.Scroll.Easing {
	case "sine", "ease-out", "spring":
	default:
		c.Scroll.Easing = def.Scroll.Easing
	}
	if c.Scroll.SineSteepness <= 0 {
		c.Scroll.SineSteepness = def.Scroll.SineSteepness
	}
	if c.Scroll.SineBias < -0.5 || c.Scroll.SineBias > 0.5 {
		c.Scroll.SineBias = def.Scroll.SineBias
	}
	if c.Scroll.EaseOutSlope < 1 {
		c.Scroll.EaseOutSlope = def.Scroll.EaseOutSlope
	}
	if c.UI.FoldIcon == "" {
		c.UI.FoldIcon = def.UI.FoldIcon
	}
	return c
}
