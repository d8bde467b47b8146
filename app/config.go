// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the display configuration of a Platform. It is owned
// by the Platform; applications query the live values through the
// facade methods.
type Config struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	MultiSampling bool   `yaml:"multi_sampling"`
	// Samples is the multi-sampling sample count. Zero selects the
	// backend default.
	Samples    int  `yaml:"samples"`
	MultiTouch bool `yaml:"multi_touch"`
	// TouchEmulation synthesizes flagged touch events from
	// primary-button mouse input on backends without touch
	// hardware.
	TouchEmulation bool `yaml:"touch_emulation"`

	headless bool
}

// Option alters the configuration of a Platform.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Title:  "GamePlay",
		Width:  1024,
		Height: 768,
		VSync:  true,
	}
}

// LoadConfig reads a YAML configuration file. Missing keys keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("app: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("app: parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Title sets the title of the window.
func Title(t string) Option {
	return func(c *Config) {
		c.Title = t
	}
}

// Size sets the size of the window in pixels.
func Size(w, h int) Option {
	return func(c *Config) {
		c.Width = w
		c.Height = h
	}
}

// Fullscreen sets whether the window covers the primary monitor.
func Fullscreen(enabled bool) Option {
	return func(c *Config) {
		c.Fullscreen = enabled
	}
}

// VSync sets whether buffer swaps are synchronized to the display
// refresh.
func VSync(enabled bool) Option {
	return func(c *Config) {
		c.VSync = enabled
	}
}

// MultiSampling enables multi-sample anti-aliasing with the given
// sample count.
func MultiSampling(samples int) Option {
	return func(c *Config) {
		c.MultiSampling = samples > 0
		c.Samples = samples
	}
}

// MultiTouch requests delivery of more than one simultaneous touch
// contact, on backends that support it.
func MultiTouch(enabled bool) Option {
	return func(c *Config) {
		c.MultiTouch = enabled
	}
}

// TouchEmulation requests synthesized touch events from mouse input
// on backends without touch hardware.
func TouchEmulation(enabled bool) Option {
	return func(c *Config) {
		c.TouchEmulation = enabled
	}
}

// WithConfig replaces the whole configuration, typically with the
// result of LoadConfig. Options following it still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		headless := c.headless
		*c = cfg
		c.headless = headless
	}
}

// Headless selects the windowless backend. No OS window or graphics
// surface is created; input arrives only through injected callbacks.
func Headless() Option {
	return func(c *Config) {
		c.headless = true
	}
}
