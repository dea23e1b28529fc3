// Package config loads the optional slate.yaml host configuration:
// display dimensions, animation speed, theme colors, and sound cue names.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-slate/slate/pkg/graphics"
)

// Config represents the optional slate.yaml configuration.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     ThemeConfig     `yaml:"theme"`
	Sounds    SoundConfig     `yaml:"sounds"`
}

// DisplayConfig describes the target screen.
type DisplayConfig struct {
	Width       int     `yaml:"width,omitempty"`
	Height      int     `yaml:"height,omitempty"`
	RefreshRate float64 `yaml:"refresh_rate,omitempty"`
}

// AnimationConfig tunes element movement.
type AnimationConfig struct {
	// Speed is the reposition travel speed in pixels per second.
	Speed float64 `yaml:"speed,omitempty"`
}

// ThemeConfig holds display colors as #RRGGBB hex strings.
type ThemeConfig struct {
	Background string `yaml:"background,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Accent     string `yaml:"accent,omitempty"`
}

// SoundConfig names the cues buttons trigger.
type SoundConfig struct {
	Touched string `yaml:"touched,omitempty"`
	Held    string `yaml:"held,omitempty"`
	Clicked string `yaml:"clicked,omitempty"`
}

// Default returns the configuration used when no slate.yaml is present:
// a 400x240 display at 50Hz, default animation speed, monochrome theme.
func Default() *Config {
	return &Config{
		Display:   DisplayConfig{Width: 400, Height: 240, RefreshRate: 50},
		Animation: AnimationConfig{Speed: 300},
		Theme: ThemeConfig{
			Background: "#ffffff",
			Foreground: "#000000",
			Accent:     "#000000",
		},
	}
}

// LoadOptional reads slate.yaml from dir if present, filling unset fields
// from the defaults. A missing file is not an error.
func LoadOptional(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, "slate.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read slate.yaml: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse slate.yaml: %w", err)
	}
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		return nil, fmt.Errorf("slate.yaml: invalid display size %dx%d",
			cfg.Display.Width, cfg.Display.Height)
	}
	return cfg, nil
}

// DisplaySize returns the configured screen dimensions.
func (c *Config) DisplaySize() graphics.Size {
	return graphics.Size{
		Width:  float64(c.Display.Width),
		Height: float64(c.Display.Height),
	}
}

// ParseColor parses a #RRGGBB or #AARRGGBB hex string.
func ParseColor(s string) (graphics.Color, error) {
	hexPart := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hexPart) {
	case 6:
		v, err := strconv.ParseUint(hexPart, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return graphics.Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hexPart, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return graphics.Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
}
