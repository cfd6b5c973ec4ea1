package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/advent/runner"
)

func TestTuningEditorRejectsInvalid(t *testing.T) {
	live := runner.DefaultTuning()
	var e tuningEditor
	e.reset(live)

	e.draft.CrouchRatio = 1.5
	e.commit(&live)
	assert.ErrorIs(t, e.err, runner.ErrInvalidTuning)
	assert.Equal(t, 0.55, live.CrouchRatio)

	e.draft.CrouchRatio = 0.5
	e.draft.MinSpawnInterval = 0
	e.commit(&live)
	assert.ErrorIs(t, e.err, runner.ErrInvalidTuning)
	assert.Equal(t, 400.0, live.MinSpawnInterval)
}

func TestTuningEditorApplies(t *testing.T) {
	live := runner.DefaultTuning()
	var e tuningEditor
	e.reset(live)

	e.draft.Gravity = 1.4
	e.commit(&live)
	assert.NoError(t, e.err)
	assert.Equal(t, 1.4, live.Gravity)

	e.draft.Gravity = -1
	e.commit(&live)
	assert.Error(t, e.err)
	e.reset(live)
	assert.NoError(t, e.err)
	assert.Equal(t, 1.4, e.draft.Gravity)
}
