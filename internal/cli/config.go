package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/labelforge/labelforge/internal/label"
	"github.com/labelforge/labelforge/pkg/device"
)

// Config holds user defaults loaded from the config file. Command-line flags
// take precedence over config values, which take precedence over built-ins.
type Config struct {
	// Style is the default font style (regular, bold, italic, narrow).
	Style string `toml:"style"`

	// Font is a font file path or family name, overriding Style when set.
	Font string `toml:"font"`

	// FontScale is the font scaling factor in percent (0-100].
	FontScale int `toml:"font_scale"`

	// MarginPx is the default visible horizontal margin in pixels.
	MarginPx int `toml:"margin_px"`

	// TapeSizeMM is the default tape width in millimeters.
	TapeSizeMM int `toml:"tape_size_mm"`

	// Device holds substring patterns used to select a printer.
	Device []string `toml:"device"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Style:      "regular",
		FontScale:  label.DefaultFontScalePercent,
		MarginPx:   label.DefaultMarginPx,
		TapeSizeMM: device.DefaultTapeSizeMM,
	}
}

// LoadConfig reads the config file at path, layering it over the defaults.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.FontScale <= 0 || c.FontScale > 100 {
		return fmt.Errorf("font_scale must be in (0, 100], got %d", c.FontScale)
	}
	if c.MarginPx < 0 {
		return fmt.Errorf("margin_px must be non-negative, got %d", c.MarginPx)
	}
	found := false
	for _, mm := range device.TapeSizesMM() {
		if mm == c.TapeSizeMM {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("tape_size_mm %d is not supported", c.TapeSizeMM)
	}
	return nil
}
