package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/advent/render"
	"github.com/plus3/advent/runner"
	"github.com/plus3/advent/sound"
)

func readyGame(t *testing.T) *runner.Game {
	t.Helper()
	tuning := runner.DefaultTuning()
	tuning.Seed = 1
	g := runner.New(tuning)
	g.MarkAssetsReady()
	return g
}

func playButtonCentre() (float64, float64) {
	b := render.PlayButton
	return b.X + b.W/2, b.Y + b.H/2
}

func TestApplyIntentJumpStartsRun(t *testing.T) {
	g := readyGame(t)
	applyIntent(g, Intent{Jump: true})

	assert.True(t, g.Running())
	scene := g.Scene()
	assert.False(t, scene.Player.Grounded)
	assert.Equal(t, runner.EventStarted|runner.EventJumped, g.DrainEvents())
}

func TestApplyIntentPlayButton(t *testing.T) {
	g := readyGame(t)
	x, y := playButtonCentre()
	applyIntent(g, Intent{Pointer: true, X: x, Y: y})

	assert.True(t, g.Running())
	assert.True(t, g.Scene().Player.Grounded, "the play button starts without jumping")
}

func TestApplyIntentPointerJumps(t *testing.T) {
	g := readyGame(t)
	applyIntent(g, Intent{Pointer: true, X: 100, Y: 20})

	assert.True(t, g.Running())
	assert.False(t, g.Scene().Player.Grounded)

	// While running the play button area is just part of the field.
	g = readyGame(t)
	g.Start()
	x, y := playButtonCentre()
	applyIntent(g, Intent{Pointer: true, X: x, Y: y})
	assert.False(t, g.Scene().Player.Grounded)
}

func TestApplyIntentCrouch(t *testing.T) {
	g := readyGame(t)
	g.Start()

	applyIntent(g, Intent{CrouchHeld: true})
	assert.True(t, g.Scene().Player.Crouching)

	applyIntent(g, Intent{CrouchRelease: true})
	assert.False(t, g.Scene().Player.Crouching)
}

func TestApplyIntentRestart(t *testing.T) {
	g := readyGame(t)
	applyIntent(g, Intent{Restart: true})
	applyIntent(g, Intent{Restart: true})

	scene := g.Scene()
	assert.True(t, scene.Running)
	assert.Equal(t, 2, scene.Runs)
}

func TestApplyIntentBeforeAssets(t *testing.T) {
	g := runner.New(runner.DefaultTuning())
	applyIntent(g, Intent{Jump: true})

	assert.False(t, g.Running())
	assert.True(t, g.StartPending())

	g.MarkAssetsReady()
	assert.True(t, g.Running())
}

func TestApplyMute(t *testing.T) {
	bank := &sound.Bank{}

	muted, changed := applyMute(bank, Intent{Jump: true})
	assert.False(t, changed)
	assert.False(t, muted)
	assert.False(t, bank.Muted())

	muted, changed = applyMute(bank, Intent{ToggleMute: true})
	assert.True(t, changed)
	assert.True(t, muted)
	assert.True(t, bank.Muted())

	muted, _ = applyMute(bank, Intent{ToggleMute: true})
	assert.False(t, muted)
}
