// Package config loads the demo configuration from a JSON file. A missing
// file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// LevelConfig selects or generates the demo level.
type LevelConfig struct {
	// Path loads a level file when set; otherwise a level is generated.
	Path string `json:"path"`

	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Braiding float64 `json:"braiding"`
	Seed     int64   `json:"seed"`
}

// Config is the demo configuration.
type Config struct {
	// ScaleRaw is the initial frame-to-level scale in raw 16.16.
	ScaleRaw int32 `json:"scale_raw"`

	// PanCells is the keyboard pan step in screen cells per tick.
	PanCells int `json:"pan_cells"`

	// TickMs is the tick interval in milliseconds (Doom heritage: ~35Hz).
	TickMs int `json:"tick_ms"`

	// Rotate starts the session with rotate-with-player enabled.
	Rotate bool `json:"rotate"`

	// Sound enables the feedback blips.
	Sound bool `json:"sound"`

	// LogFile receives zerolog output; empty disables logging.
	LogFile string `json:"log_file"`

	Level LevelConfig `json:"level"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		ScaleRaw: 4 << 16, // 4 level units per screen cell
		PanCells: 4,
		TickMs:   28,
		Sound:    true,
		Level: LevelConfig{
			Width:    41,
			Height:   31,
			Braiding: 0.3,
			Seed:     1,
		},
	}
}

// Load reads path over the defaults. A missing file returns the defaults
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ScaleRaw <= 1 {
		return fmt.Errorf("config: scale_raw must be > 1, got %d", c.ScaleRaw)
	}
	if c.PanCells <= 0 {
		return fmt.Errorf("config: pan_cells must be positive, got %d", c.PanCells)
	}
	if c.TickMs <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.TickMs)
	}
	return nil
}
