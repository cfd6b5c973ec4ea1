// Package config assembles the runner's settings from defaults, an optional
// TOML file, ADVENT_ environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/plus3/advent/runner"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ADVENT_"

var (
	ErrUnknownKeys = errors.New("unknown configuration keys")
	ErrInvalid     = errors.New("invalid configuration")
)

type Config struct {
	Window Window `toml:"window" envPrefix:"WINDOW_"`
	Audio  Audio  `toml:"audio" envPrefix:"AUDIO_"`

	// Sprites is the sprite sheet path. Empty uses the built-in placeholder.
	Sprites string `toml:"sprites" env:"SPRITES"`

	// Debug shows the inspector overlay.
	Debug bool `toml:"debug" env:"DEBUG"`

	Tuning runner.Tuning `toml:"tuning" envPrefix:"TUNING_"`
}

type Window struct {
	Title string `toml:"title" env:"TITLE"`

	// Width is the horizontal space available to the window, margin
	// included.
	Width int `toml:"width" env:"WIDTH"`

	// MaxScale caps the window at this multiple of the logical play field.
	MaxScale float64 `toml:"max_scale" env:"MAX_SCALE"`
}

type Audio struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:    "Jour 2",
			Width:    940,
			MaxScale: 1,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.6,
		},
		Tuning: runner.DefaultTuning(),
	}
}

// Load builds a Config from the defaults, the TOML file at path (skipped when
// path is empty) and environ. A nil environ reads the process environment.
func Load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			slices.Sort(keys)
			return Config{}, fmt.Errorf("read config %s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate reports every problem with c.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 {
		errs = append(errs, fmt.Errorf("%w: window.width must be positive, got %d", ErrInvalid, c.Window.Width))
	}
	if c.Window.MaxScale <= 0 {
		errs = append(errs, fmt.Errorf("%w: window.max_scale must be positive, got %v", ErrInvalid, c.Window.MaxScale))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: audio.volume must be in [0,1], got %v", ErrInvalid, c.Audio.Volume))
	}
	if err := c.Tuning.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
