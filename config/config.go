// Package config loads the game's YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"skyhaul/input"
)

// Config is the root of config.yaml.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	Input   InputConfig   `yaml:"input"`
	Data    DataConfig    `yaml:"data"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// InputConfig mirrors the player-tunable input options.
type InputConfig struct {
	RepeatDelayMS     int     `yaml:"repeat_delay_ms"`
	RepeatFreqMS      int     `yaml:"repeat_freq_ms"`
	AfterburnSensMS   int     `yaml:"afterburn_sens_ms"`
	MouseDoubleClickS float64 `yaml:"mouse_doubleclick_s"`
	Layout            string  `yaml:"layout"`
	KeybindsFile      string  `yaml:"keybinds_file"`
	WatchKeybinds     bool    `yaml:"watch_keybinds"`
}

type DataConfig struct {
	OutfitsFile string `yaml:"outfits_file"`
	HooksDir    string `yaml:"hooks_dir"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "skyhaul",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Input: InputConfig{
			RepeatDelayMS:     300,
			RepeatFreqMS:      30,
			AfterburnSensMS:   250,
			MouseDoubleClickS: 0.5,
			Layout:            input.LayoutArrows,
		},
		Data: DataConfig{
			OutfitsFile: "data/outfits.xml",
		},
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Input.RepeatDelayMS < 0 || c.Input.RepeatFreqMS < 0 || c.Input.AfterburnSensMS < 0 {
		return errors.New("input timings must not be negative")
	}
	switch c.Input.Layout {
	case "", input.LayoutArrows, input.LayoutWASD:
	default:
		return fmt.Errorf("unknown keyboard layout %q", c.Input.Layout)
	}
	return nil
}

// InputSettings converts the input section to the durations the input
// context works with. A non-positive double-click window stays non-positive.
func (c *Config) InputSettings() input.Settings {
	return input.Settings{
		RepeatDelay:   time.Duration(c.Input.RepeatDelayMS) * time.Millisecond,
		RepeatFreq:    time.Duration(c.Input.RepeatFreqMS) * time.Millisecond,
		AfterburnSens: time.Duration(c.Input.AfterburnSensMS) * time.Millisecond,
		DoubleClick:   time.Duration(c.Input.MouseDoubleClickS * float64(time.Second)),
	}
}
