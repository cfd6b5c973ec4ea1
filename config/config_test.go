package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/advent/runner"
)

var noEnv = map[string]string{}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, runner.DefaultTuning(), cfg.Tuning)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("", noEnv)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load("testdata/advent.toml", noEnv)
	require.NoError(t, err)

	assert.Equal(t, "assets/sprites-v2.png", cfg.Sprites)
	assert.True(t, cfg.Debug)
	assert.Equal(t, Window{Title: "Runner", Width: 1200, MaxScale: 1.5}, cfg.Window)
	assert.Equal(t, Audio{Enabled: false, Volume: 0.25}, cfg.Audio)

	assert.Equal(t, 1.2, cfg.Tuning.Gravity)
	assert.Equal(t, 6.5, cfg.Tuning.InitialSpeed)
	assert.Equal(t, 450.0, cfg.Tuning.MinSpawnInterval)
	assert.Equal(t, uint64(7), cfg.Tuning.Seed)
	assert.Equal(t, -18.0, cfg.Tuning.JumpForce, "unset keys keep their defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", "testdata/nope.toml", "read config testdata/nope.toml"},
		{"unknown key", "testdata/typo.toml", "tuning.gravty"},
		{"wrong type", "testdata/bad-type.toml", "read config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path, noEnv)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := Load("testdata/typo.toml", noEnv)
	assert.ErrorIs(t, err, ErrUnknownKeys)
}

func TestEnvOverridesFile(t *testing.T) {
	cfg, err := Load("testdata/advent.toml", map[string]string{
		"ADVENT_WINDOW_WIDTH":      "800",
		"ADVENT_AUDIO_ENABLED":     "true",
		"ADVENT_TUNING_GRAVITY":    "0.9",
		"ADVENT_TUNING_JUMP_FORCE": "-20",
		"ADVENT_TUNING_SEED":       "99",
		"GRAVITY":                  "5",
	})
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 1.5, cfg.Window.MaxScale)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.9, cfg.Tuning.Gravity)
	assert.Equal(t, -20.0, cfg.Tuning.JumpForce)
	assert.Equal(t, uint64(99), cfg.Tuning.Seed)
}

func TestEnvError(t *testing.T) {
	_, err := Load("", map[string]string{"ADVENT_TUNING_GRAVITY": "heavy"})
	assert.ErrorContains(t, err, "parse env:")
}

func TestEnvFromProcess(t *testing.T) {
	t.Setenv("ADVENT_DEBUG", "true")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Audio.Volume = 2
	cfg.Tuning.HitboxScale = -1

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, runner.ErrInvalidTuning)
	assert.ErrorContains(t, err, "window.width")
	assert.ErrorContains(t, err, "audio.volume")
	assert.ErrorContains(t, err, "hitbox_scale")
}

func TestFlagsApplyOnlyExplicit(t *testing.T) {
	cfg, err := Load("testdata/advent.toml", noEnv)
	require.NoError(t, err)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := NewFlags(fs)
	require.NoError(t, fs.Parse([]string{"-config", "x.toml", "-seed", "3", "-mute", "-sprites", "s.png"}))
	flags.Apply(&cfg)

	assert.Equal(t, "x.toml", flags.Path)
	assert.Equal(t, uint64(3), cfg.Tuning.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "s.png", cfg.Sprites)
	assert.Equal(t, 1200, cfg.Window.Width, "width flag not given")
	assert.Equal(t, 0.25, cfg.Audio.Volume, "volume flag not given")
	assert.True(t, cfg.Debug, "debug flag not given")
}
