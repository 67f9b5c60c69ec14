package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"
)

// ConfigError reports a missing or invalid settings value. Startup aborts on
// the first one encountered.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("settings: %s: %s", e.Field, e.Reason)
}

// RGB is a color triple as stored in the settings file ([r, g, b] with each
// component in 0..255).
type RGB struct {
	R, G, B uint8
}

// Color converts the triple to an opaque RGBA color.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// UnmarshalJSON decodes a 3-element JSON array into the triple.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var parts []int
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("want 3 color components, got %d", len(parts))
	}
	for _, p := range parts {
		if p < 0 || p > 255 {
			return fmt.Errorf("color component %d outside 0..255", p)
		}
	}
	c.R, c.G, c.B = uint8(parts[0]), uint8(parts[1]), uint8(parts[2])
	return nil
}

// Config holds the validated startup settings.
type Config struct {
	GridWidth      int
	GridHeight     int
	CellSize       int
	InitialDelay   time.Duration
	Background     RGB
	AliveColor     RGB
	DeadColor      RGB
	HighlightColor RGB
	HighlightSleep time.Duration
	SeedDensity    float64
}

// rawConfig mirrors the settings file. Pointers distinguish a missing key
// from a zero value so required fields can be reported by name.
type rawConfig struct {
	GridWidth        *int     `json:"grid_width"`
	GridHeight       *int     `json:"grid_height"`
	CellSize         *int     `json:"cell_size_px"`
	InitialDelayMS   *int     `json:"initial_delay_ms"`
	Background       *RGB     `json:"background_color"`
	AliveColor       *RGB     `json:"alive_color"`
	DeadColor        *RGB     `json:"dead_color"`
	HighlightColor   *RGB     `json:"highlight_color"`
	HighlightSleepMS *int     `json:"highlight_sleep_ms"`
	SeedDensity      *float64 `json:"seed_density"`
}

// Load reads and validates the settings file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &ConfigError{Field: path, Reason: err.Error()}
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads and validates settings from r. Required keys are grid_width,
// grid_height, cell_size_px, initial_delay_ms and the three display colors.
// highlight_color (default red), highlight_sleep_ms (default 1000) and
// seed_density (default 0, an empty board) are optional.
func Parse(r io.Reader) (Config, error) {
	var raw rawConfig
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return Config{}, &ConfigError{Field: "settings", Reason: err.Error()}
	}

	var cfg Config

	if raw.GridWidth == nil {
		return Config{}, missing("grid_width")
	}
	if *raw.GridWidth < 1 {
		return Config{}, invalid("grid_width", "must be a positive integer")
	}
	cfg.GridWidth = *raw.GridWidth

	if raw.GridHeight == nil {
		return Config{}, missing("grid_height")
	}
	if *raw.GridHeight < 1 {
		return Config{}, invalid("grid_height", "must be a positive integer")
	}
	cfg.GridHeight = *raw.GridHeight

	if raw.CellSize == nil {
		return Config{}, missing("cell_size_px")
	}
	if *raw.CellSize < 1 {
		return Config{}, invalid("cell_size_px", "must be a positive integer")
	}
	cfg.CellSize = *raw.CellSize

	if raw.InitialDelayMS == nil {
		return Config{}, missing("initial_delay_ms")
	}
	if *raw.InitialDelayMS < 20 || *raw.InitialDelayMS > 1000 {
		return Config{}, invalid("initial_delay_ms", "must be in 20..1000")
	}
	cfg.InitialDelay = time.Duration(*raw.InitialDelayMS) * time.Millisecond

	if raw.Background == nil {
		return Config{}, missing("background_color")
	}
	cfg.Background = *raw.Background

	if raw.AliveColor == nil {
		return Config{}, missing("alive_color")
	}
	cfg.AliveColor = *raw.AliveColor

	if raw.DeadColor == nil {
		return Config{}, missing("dead_color")
	}
	cfg.DeadColor = *raw.DeadColor

	cfg.HighlightColor = RGB{R: 255}
	if raw.HighlightColor != nil {
		cfg.HighlightColor = *raw.HighlightColor
	}

	cfg.HighlightSleep = time.Second
	if raw.HighlightSleepMS != nil {
		if *raw.HighlightSleepMS < 0 {
			return Config{}, invalid("highlight_sleep_ms", "must not be negative")
		}
		cfg.HighlightSleep = time.Duration(*raw.HighlightSleepMS) * time.Millisecond
	}

	if raw.SeedDensity != nil {
		if *raw.SeedDensity < 0 || *raw.SeedDensity > 1 {
			return Config{}, invalid("seed_density", "must be in 0..1")
		}
		cfg.SeedDensity = *raw.SeedDensity
	}

	return cfg, nil
}

func missing(field string) error {
	return &ConfigError{Field: field, Reason: "required key is missing"}
}

func invalid(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}
