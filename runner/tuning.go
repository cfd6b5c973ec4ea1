package runner

import (
	"errors"
	"fmt"
)

// Logical play field. Renderers scale it to the window.
const (
	Width   = 900
	Height  = 200
	GroundY = Height - 40

	PlayerX = 50
	PlayerW = 28
	PlayerH = 42

	// SpawnX is where new obstacles appear, just past the right edge.
	SpawnX = Width + 20

	// CullX is how far past the left edge an obstacle's right side must go
	// before it is removed.
	CullX = -50

	// frameStep is the reference frame length the per-frame constants
	// (gravity, jump impulse, speed) are expressed in.
	frameStep = 16.0
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant. Durations are milliseconds, distances
// logical units, and per-frame quantities refer to a 16ms frame.
type Tuning struct {
	Gravity   float64 `toml:"gravity" env:"GRAVITY"`
	JumpForce float64 `toml:"jump_force" env:"JUMP_FORCE"`

	InitialSpeed float64 `toml:"initial_speed" env:"INITIAL_SPEED"`
	SpeedGain    float64 `toml:"speed_gain" env:"SPEED_GAIN"`

	InitialSpawnInterval float64 `toml:"initial_spawn_interval" env:"INITIAL_SPAWN_INTERVAL"`
	SpawnBase            float64 `toml:"spawn_base" env:"SPAWN_BASE"`
	SpawnJitter          float64 `toml:"spawn_jitter" env:"SPAWN_JITTER"`
	SpawnScoreFactor     float64 `toml:"spawn_score_factor" env:"SPAWN_SCORE_FACTOR"`
	SpawnScoreCap        float64 `toml:"spawn_score_cap" env:"SPAWN_SCORE_CAP"`
	MinSpawnInterval     float64 `toml:"min_spawn_interval" env:"MIN_SPAWN_INTERVAL"`

	FrameInterval float64 `toml:"frame_interval" env:"FRAME_INTERVAL"`

	HitboxScale   float64 `toml:"hitbox_scale" env:"HITBOX_SCALE"`
	HitboxOffsetX float64 `toml:"hitbox_offset_x" env:"HITBOX_OFFSET_X"`
	CrouchRatio   float64 `toml:"crouch_ratio" env:"CROUCH_RATIO"`

	// Seed fixes the obstacle sequence. Zero picks a random seed.
	Seed uint64 `toml:"seed" env:"SEED"`
}

// DefaultTuning returns the stock gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:   1.1,
		JumpForce: -18,

		InitialSpeed: 5,
		SpeedGain:    0.0005,

		InitialSpawnInterval: 1200,
		SpawnBase:            650,
		SpawnJitter:          1200,
		SpawnScoreFactor:     2,
		SpawnScoreCap:        500,
		MinSpawnInterval:     400,

		FrameInterval: 200,

		HitboxScale:   1.6,
		HitboxOffsetX: 10,
		CrouchRatio:   0.55,
	}
}

// Validate rejects tuning that cannot produce a playable run.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}

	check(t.Gravity > 0, "gravity must be positive, got %v", t.Gravity)
	check(t.JumpForce < 0, "jump_force must be negative (upwards), got %v", t.JumpForce)
	check(t.InitialSpeed > 0, "initial_speed must be positive, got %v", t.InitialSpeed)
	check(t.SpeedGain >= 0, "speed_gain must not be negative, got %v", t.SpeedGain)
	check(t.InitialSpawnInterval > 0, "initial_spawn_interval must be positive, got %v", t.InitialSpawnInterval)
	check(t.SpawnJitter >= 0, "spawn_jitter must not be negative, got %v", t.SpawnJitter)
	check(t.MinSpawnInterval > 0, "min_spawn_interval must be positive, got %v", t.MinSpawnInterval)
	check(t.FrameInterval > 0, "frame_interval must be positive, got %v", t.FrameInterval)
	check(t.HitboxScale > 0, "hitbox_scale must be positive, got %v", t.HitboxScale)
	check(t.CrouchRatio > 0 && t.CrouchRatio <= 1, "crouch_ratio must be in (0,1], got %v", t.CrouchRatio)

	return errors.Join(errs...)
}
